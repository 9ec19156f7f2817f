package renderer

import (
	"errors"
	"fmt"
	"image"
	stdmath "math"
	"time"

	"github.com/df07/go-phong-views/pkg/core"
	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/math"
	"github.com/df07/go-phong-views/pkg/scene"
)

// RasterConfig contains parameters for tiled rasterization
type RasterConfig struct {
	TileSize   int // Size of each tile in pixels
	NumWorkers int // Number of parallel workers (0 = auto-detect)
}

// DefaultRasterConfig returns sensible default settings
func DefaultRasterConfig() RasterConfig {
	return RasterConfig{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Rasterizer projects a scene along one axis and shades the nearest surface
// of every pixel
type Rasterizer struct {
	config RasterConfig
	logger core.Logger
}

// NewRasterizer creates a rasterizer; a nil logger discards messages
func NewRasterizer(config RasterConfig, logger core.Logger) *Rasterizer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultRasterConfig().TileSize
	}
	if logger == nil {
		logger = core.Discard
	}
	return &Rasterizer{config: config, logger: logger}
}

// ViewResult is the output of rendering one view
type ViewResult struct {
	View   geometry.ViewSpec
	Grid   *geometry.PixelGrid
	Result *RenderResult // Raw samples and depth buffer
	Image  image.Image   // Normalized 0-255 image
	Stats  RenderStats
	Err    error
}

// ProfileAt returns the raw-sample cross-section through the row nearest v
func (vr *ViewResult) ProfileAt(v float64) []float64 {
	if vr.Grid == nil || vr.Result == nil {
		return nil
	}
	row, _ := vr.Grid.Nearest(0, v)
	return vr.Result.Profile(row)
}

// Render rasterizes one view of the scene. Recoverable conditions
// (ErrEmptyResult, ErrDegenerateNormalization) are returned together with a
// complete result; any other error leaves Image nil.
func (r *Rasterizer) Render(s *scene.Scene, view geometry.ViewSpec) (*ViewResult, error) {
	start := time.Now()
	vr := &ViewResult{View: view}
	fail := func(err error) (*ViewResult, error) {
		vr.Err = fmt.Errorf("view %s: %w", view.Axis, err)
		return vr, vr.Err
	}

	grid, err := geometry.NewPixelGrid(view)
	if err != nil {
		return fail(err)
	}
	vr.Grid = grid

	observer := s.Observer.Position
	if view.Observer != nil {
		observer = *view.Observer
		if err := s.ValidateObserver(observer); err != nil {
			return fail(err)
		}
	}

	result := NewRenderResult(grid.Width, grid.Height, s.Colored)
	vr.Result = result

	tiles := NewTileGrid(grid.Width, grid.Height, r.config.TileSize)
	pool := NewWorkerPool(func(bounds image.Rectangle) (int, error) {
		return renderBounds(s, grid, observer, result, bounds)
	}, len(tiles), r.config.NumWorkers)
	numWorkers := pool.GetNumWorkers()
	r.logger.Printf("Rendering view %s: %dx%d pixels, %d tiles, %d workers\n",
		view.Axis, grid.Width, grid.Height, len(tiles), numWorkers)

	var tileErrs []error
	for _, tr := range pool.RunTiles(tiles) {
		if tr.Error != nil {
			tileErrs = append(tileErrs, tr.Error)
		}
	}
	if len(tileErrs) > 0 {
		return fail(errors.Join(tileErrs...))
	}

	vr.Stats = collectSampleStats(result)
	vr.Stats.Workers = numWorkers
	vr.Stats.ControlSamples, err = controlSamples(s, view.Axis, observer)
	if err != nil {
		return fail(err)
	}

	var recoverable []error
	if vr.Stats.OccupiedPixels == 0 {
		recoverable = append(recoverable, ErrEmptyResult)
	}
	img, normErr := result.Normalize()
	if normErr != nil {
		recoverable = append(recoverable, normErr)
	}
	vr.Image = img
	vr.Stats.Elapsed = time.Since(start)

	r.logger.Printf("View %s: %d/%d pixels occupied, max %.6g, min %.6g in %v\n",
		view.Axis, vr.Stats.OccupiedPixels, vr.Stats.TotalPixels(),
		vr.Stats.MaxSample, vr.Stats.MinSample, vr.Stats.Elapsed)

	if len(recoverable) > 0 {
		err := fmt.Errorf("view %s: %w", view.Axis, errors.Join(recoverable...))
		r.logger.Printf("View %s: %v\n", view.Axis, err)
		vr.Err = err
		return vr, err
	}
	return vr, nil
}

// renderBounds shades the pixels of one tile. Each pixel keeps the surface
// with the strictly greatest depth; ties keep the earlier surface.
func renderBounds(s *scene.Scene, grid *geometry.PixelGrid, observer math.Vec3, result *RenderResult, bounds image.Rectangle) (int, error) {
	occupied := 0
	for row := bounds.Min.Y; row < bounds.Max.Y; row++ {
		for col := bounds.Min.X; col < bounds.Max.X; col++ {
			u, v := grid.At(row, col)

			depth := stdmath.Inf(-1)
			var nearest geometry.Surface
			for _, surface := range s.Surfaces {
				if d, ok := surface.Depth(grid.Axis, u, v); ok && d > depth {
					depth, nearest = d, surface
				}
			}
			if nearest == nil {
				continue
			}

			p := grid.Axis.Point(u, v, depth)
			radiance, err := s.Radiance(nearest, p, observer)
			if err != nil {
				return occupied, err
			}
			idx := grid.Index(row, col)
			result.Samples[idx] = radiance
			result.Depth[idx] = depth
			occupied++
		}
	}
	return occupied, nil
}

// controlSamples evaluates the raw radiance at every surface's control points
func controlSamples(s *scene.Scene, axis geometry.Axis, observer math.Vec3) ([]ControlSample, error) {
	var samples []ControlSample
	for i, surface := range s.Surfaces {
		for _, cp := range surface.ControlPoints(axis) {
			radiance, err := s.Radiance(surface, cp.Point, observer)
			if err != nil {
				return nil, fmt.Errorf("control point %s of surfaces[%d]: %w", cp.Name, i, err)
			}
			samples = append(samples, ControlSample{
				Surface:  i,
				Kind:     surface.Kind(),
				Name:     cp.Name,
				Point:    cp.Point,
				Radiance: radiance,
				Value:    radiance.MaxComponent(),
			})
		}
	}
	return samples, nil
}
