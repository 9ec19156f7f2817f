package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/material"
	"github.com/df07/go-phong-views/pkg/math"
)

// Preset is a built-in scene together with its recommended views
type Preset struct {
	Name        string
	Description string
	Build       func() (*Scene, []geometry.ViewSpec, error)
}

var presets = map[string]Preset{
	"screen": {
		Name:        "screen",
		Description: "Illuminance map of a point source over a circular screen",
		Build:       NewScreenScene,
	},
	"sphere": {
		Name:        "sphere",
		Description: "Single gray sphere with Phong shading",
		Build:       NewSphereScene,
	},
	"two-spheres": {
		Name:        "two-spheres",
		Description: "Two colored spheres with shadows in three orthogonal views",
		Build:       NewTwoSphereScene,
	},
}

// Presets returns the built-in scenes sorted by name
func Presets() []Preset {
	list := make([]Preset, 0, len(presets))
	for _, p := range presets {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Lookup builds a preset by name
func Lookup(name string) (*Scene, []geometry.ViewSpec, error) {
	p, ok := presets[name]
	if !ok {
		return nil, nil, fmt.Errorf("unknown scene: %q", name)
	}
	return p.Build()
}

// NewScreenScene creates a 500x300 mm screen lit by a single source 800 mm
// above it, with statistics taken inside an 80 mm circle
func NewScreenScene() (*Scene, []geometry.ViewSpec, error) {
	s, err := New(Scene{
		Observer: Observer{Position: math.NewVec3(0, 0, 1000)},
		Lights: []lights.PointLight{
			lights.NewPointLight(math.NewVec3(0, 0, 800), 100),
		},
		Surfaces: []geometry.Surface{
			geometry.NewDiscPlane(math.NewVec3(0, 0, 0), 80, math.Gray(1)),
		},
		Material: material.NewPhong(1, 0, 1),
		Model:    ModelIlluminance,
		Shadows:  true,
	})
	if err != nil {
		return nil, nil, err
	}
	return s, []geometry.ViewSpec{geometry.NewViewSpec(geometry.AxisZ, 500, 300)}, nil
}

// NewSphereScene creates a single sphere 500 mm in front of the screen plane,
// viewed from 1000 mm along +Z
func NewSphereScene() (*Scene, []geometry.ViewSpec, error) {
	s, err := New(Scene{
		Observer: Observer{Position: math.NewVec3(0, 0, 1000)},
		Lights: []lights.PointLight{
			lights.NewPointLight(math.NewVec3(200, 200, 800), 1000),
		},
		Surfaces: []geometry.Surface{
			geometry.NewSphere(math.NewVec3(0, 0, 500), 100, math.Gray(1)),
		},
		Material: material.NewPhong(0.7, 0.5, 20),
		Model:    ModelPhong,
		Shadows:  true,
	})
	if err != nil {
		return nil, nil, err
	}

	view := geometry.NewViewSpec(geometry.AxisZ, 500, 500)
	view.BaseResolution = 100
	view = geometry.EnsureContains(view, s.Surfaces, 50)
	return s, []geometry.ViewSpec{view}, nil
}

// NewTwoSphereScene creates a red and a blue sphere side by side, rendered
// along Z, Y and X with the observer 1500 mm out on each axis
func NewTwoSphereScene() (*Scene, []geometry.ViewSpec, error) {
	const observerDistance = 1500

	s, err := New(Scene{
		Observer: Observer{Position: math.NewVec3(0, 0, observerDistance)},
		Lights: []lights.PointLight{
			lights.NewPointLight(math.NewVec3(300, 0, 800), 1000),
		},
		Surfaces: []geometry.Surface{
			geometry.NewSphere(math.NewVec3(-150, 0, 500), 150, math.NewVec3(1, 0.2, 0.2)),
			geometry.NewSphere(math.NewVec3(150, 0, 500), 150, math.NewVec3(0.2, 0.2, 1)),
		},
		Material: material.NewPhong(0.7, 0.5, 50),
		Model:    ModelPhong,
		Colored:  true,
		Shadows:  true,
	})
	if err != nil {
		return nil, nil, err
	}

	views, err := geometry.OrthogonalViews(s.Surfaces, geometry.AllAxes, observerDistance,
		geometry.DefaultViewMargin, geometry.DefaultBaseResolution)
	if err != nil {
		return nil, nil, err
	}
	return s, views, nil
}
