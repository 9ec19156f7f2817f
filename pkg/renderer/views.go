package renderer

import (
	"sync"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/scene"
)

// RenderViews renders every view concurrently. Results are in the order of
// views; a failed view carries its error in Err and never aborts the others.
func (r *Rasterizer) RenderViews(s *scene.Scene, views []geometry.ViewSpec) []*ViewResult {
	results := make([]*ViewResult, len(views))
	var wg sync.WaitGroup
	for i, view := range views {
		wg.Add(1)
		go func(i int, view geometry.ViewSpec) {
			defer wg.Done()
			results[i], _ = r.Render(s, view)
		}(i, view)
	}
	wg.Wait()
	return results
}

// FirstFatal returns the first error that is not a recoverable render marker
func FirstFatal(results []*ViewResult) error {
	for _, vr := range results {
		if vr != nil && !IsRecoverable(vr.Err) {
			return vr.Err
		}
	}
	return nil
}
