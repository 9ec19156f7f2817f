package scene

import (
	"math"
	"testing"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/material"
	mathpkg "github.com/df07/go-phong-views/pkg/math"
)

// blockerScene places a small sphere between a light and the pole of a larger one
func blockerScene(t *testing.T, shadows bool) *Scene {
	t.Helper()
	s, err := New(Scene{
		Observer: Observer{Position: mathpkg.NewVec3(0, 0, 2000)},
		Lights: []lights.PointLight{
			lights.NewPointLight(mathpkg.NewVec3(0, 0, 1000), 1000),   // blocked
			lights.NewPointLight(mathpkg.NewVec3(0, 500, 1000), 1000), // clear
		},
		Surfaces: []geometry.Surface{
			geometry.NewSphere(mathpkg.NewVec3(0, 0, 0), 100, mathpkg.Gray(1)),
			geometry.NewSphere(mathpkg.NewVec3(0, 0, 400), 50, mathpkg.Gray(1)),
		},
		Material: material.NewPhong(1, 0, 1),
		Shadows:  shadows,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return s
}

func TestScene_Occluded(t *testing.T) {
	s := blockerScene(t, true)
	pole := mathpkg.NewVec3(0, 0, 100)

	if !s.Occluded(pole, s.Lights[0], s.Surfaces[0]) {
		t.Error("Expected the blocker sphere to occlude the overhead light")
	}
	if s.Occluded(pole, s.Lights[1], s.Surfaces[0]) {
		t.Error("Expected the offset light to be unobstructed")
	}
}

func TestScene_OccludedExcludesSelfByIdentity(t *testing.T) {
	s := blockerScene(t, true)

	// A point on the lower sphere's equator, lit by a light on the far side:
	// the ray passes back through its own sphere, which must be ignored.
	equator := mathpkg.NewVec3(100, 0, 0)
	behind := lights.NewPointLight(mathpkg.NewVec3(-1000, 0, 0), 1)
	if s.Occluded(equator, behind, s.Surfaces[0]) {
		t.Error("The shaded surface must never occlude itself")
	}
	if !s.Occluded(equator, behind, s.Surfaces[1]) {
		t.Error("The same sphere must occlude when it is not the shaded surface")
	}
}

func TestScene_ShadowZeroesContribution(t *testing.T) {
	pole := mathpkg.NewVec3(0, 0, 100)

	shadowed := blockerScene(t, true)
	got, err := shadowed.Radiance(shadowed.Surfaces[0], pole, shadowed.Observer.Position)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	unshadowed := blockerScene(t, false)
	all, err := unshadowed.Radiance(unshadowed.Surfaces[0], pole, unshadowed.Observer.Position)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Only the offset light should survive with shadows on
	clear := material.NewPhong(1, 0, 1).Radiance(material.ShadingPoint{
		Point:  pole,
		Normal: mathpkg.NewVec3(0, 0, 1),
		View:   mathpkg.NewVec3(0, 0, 1),
	}, shadowed.Lights[1])

	if math.Abs(got.X-clear) > 1e-9 {
		t.Errorf("Expected only the unobstructed light (%f), got %f", clear, got.X)
	}
	if math.Abs(all.X-(clear+1000)) > 1e-9 {
		t.Errorf("Expected both lights without shadows (%f), got %f", clear+1000, all.X)
	}
}

func TestScene_PlaneOccludesSphereBelow(t *testing.T) {
	s, err := New(Scene{
		Observer: Observer{Position: mathpkg.NewVec3(0, 0, 1000)},
		Lights:   []lights.PointLight{lights.NewPointLight(mathpkg.NewVec3(0, 0, 500), 100)},
		Surfaces: []geometry.Surface{
			geometry.NewDiscPlane(mathpkg.NewVec3(0, 0, 0), 200, mathpkg.Gray(1)),
			geometry.NewSphere(mathpkg.NewVec3(0, 0, -300), 100, mathpkg.Gray(1)),
		},
		Material: material.NewPhong(1, 0, 1),
		Shadows:  true,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	top := mathpkg.NewVec3(0, 0, -200)
	if !s.Occluded(top, s.Lights[0], s.Surfaces[1]) {
		t.Error("Expected the screen to shadow the sphere beneath it")
	}
	if s.VisibilityFor(top, s.Surfaces[1]) == nil {
		t.Error("Expected a visibility test when shadows are enabled")
	}
}
