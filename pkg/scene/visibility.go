package scene

import (
	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/material"
	"github.com/df07/go-phong-views/pkg/math"
)

// Occluded reports whether any surface other than self blocks the shadow ray
// from p towards the light. The shaded surface is excluded by identity because
// p lies on it and a geometric self-test would hit through roundoff.
func (s *Scene) Occluded(p math.Vec3, light lights.PointLight, self geometry.Surface) bool {
	ray, err := math.NewRayTowards(p, light.Position)
	if err != nil {
		return false
	}
	for _, other := range s.Surfaces {
		if other == self {
			continue
		}
		if other.Occludes(ray) {
			return true
		}
	}
	return false
}

// VisibilityFor returns the per-light visibility test for a point on self,
// or nil when shadows are disabled
func (s *Scene) VisibilityFor(p math.Vec3, self geometry.Surface) material.Visibility {
	if !s.Shadows {
		return nil
	}
	return func(light lights.PointLight) bool {
		return !s.Occluded(p, light, self)
	}
}
