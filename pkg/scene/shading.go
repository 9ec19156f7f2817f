package scene

import (
	"fmt"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/material"
	"github.com/df07/go-phong-views/pkg/math"
)

// Radiance shades point p on surface as seen from observer. It fails with
// math.ErrDegenerateVector when the observer coincides with p.
func (s *Scene) Radiance(surface geometry.Surface, p, observer math.Vec3) (math.Vec3, error) {
	view, err := observer.Subtract(p).TryNormalize()
	if err != nil {
		return math.Vec3{}, fmt.Errorf("view direction at %v: %w", p, err)
	}
	sp := material.ShadingPoint{
		Point:       p,
		Normal:      surface.NormalAt(p),
		View:        view,
		Reflectance: surface.Reflectance(),
	}
	return s.Shader().Shade(sp, s.Lights, s.VisibilityFor(p, surface), s.Colored), nil
}
