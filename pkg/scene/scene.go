package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/material"
	"github.com/df07/go-phong-views/pkg/math"
)

// ErrInvalidScene is matched by every scene validation failure
var ErrInvalidScene = errors.New("invalid scene")

// ValidationError describes a rejected scene parameter
type ValidationError struct {
	Field string // e.g. "surfaces[1].radius"
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid scene: %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidScene) succeed for every validation error
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidScene }

func invalid(field string, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Err: fmt.Errorf(format, args...)}
}

// Model selects the shading evaluator
type Model int

const (
	ModelPhong       Model = iota // Diffuse + Blinn-Phong specular
	ModelIlluminance              // Point-source irradiance E = I0*cos²α/R²
)

// String returns the model name used in configs and flags
func (m Model) String() string {
	switch m {
	case ModelPhong:
		return "phong"
	case ModelIlluminance:
		return "illuminance"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// ParseModel parses a model name; the empty string selects ModelPhong
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "phong":
		return ModelPhong, nil
	case "illuminance":
		return ModelIlluminance, nil
	default:
		return 0, fmt.Errorf("unknown shading model %q", s)
	}
}

// Observer is the point the view direction V is computed towards
type Observer struct {
	Position math.Vec3
}

// Scene contains all the elements needed for one render call. A Scene
// returned by New is never mutated by the renderer and must not be mutated by
// callers while a render is in flight.
type Scene struct {
	Observer Observer
	Lights   []lights.PointLight // Ordered light sources
	Surfaces []geometry.Surface  // Ordered surfaces
	Material material.Phong      // kd, ks, n shared by every surface
	Model    Model
	Colored  bool // Per-channel output; grayscale when false
	Shadows  bool // Cast shadow rays towards each light
}

// New validates the description and returns an independent copy of it
func New(desc Scene) (*Scene, error) {
	s := desc
	s.Lights = append([]lights.PointLight(nil), desc.Lights...)
	s.Surfaces = append([]geometry.Surface(nil), desc.Surfaces...)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects configurations that would produce undefined numbers while rendering
func (s *Scene) Validate() error {
	if len(s.Surfaces) == 0 {
		return invalid("surfaces", "scene has no surfaces")
	}
	for i, surface := range s.Surfaces {
		if surface == nil {
			return invalid(fmt.Sprintf("surfaces[%d]", i), "surface is nil")
		}
		if err := surface.Validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("surfaces[%d] (%s)", i, surface.Kind()), Err: err}
		}
	}
	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("lights[%d]", i), Err: err}
		}
		for j, surface := range s.Surfaces {
			if surface.OnSurface(light.Position) {
				return invalid(fmt.Sprintf("lights[%d]", i), "light at %v lies on surfaces[%d]", light.Position, j)
			}
		}
	}
	if err := s.Material.Validate(); err != nil {
		return &ValidationError{Field: "material", Err: err}
	}
	if s.Model != ModelPhong && s.Model != ModelIlluminance {
		return invalid("model", "unknown shading model %d", int(s.Model))
	}
	return s.ValidateObserver(s.Observer.Position)
}

// ValidateObserver checks that an observer position neither coincides with a
// surface nor lies inside a sphere
func (s *Scene) ValidateObserver(p math.Vec3) error {
	if !p.IsFinite() {
		return invalid("observer", "position %v is not finite", p)
	}
	for i, surface := range s.Surfaces {
		if surface.OnSurface(p) {
			return invalid("observer", "observer at %v lies on surfaces[%d]", p, i)
		}
		if surface.Encloses(p) {
			return invalid("observer", "observer at %v lies inside surfaces[%d]", p, i)
		}
	}
	return nil
}

// Shader returns the shading evaluator selected by the scene's model
func (s *Scene) Shader() material.Shader {
	if s.Model == ModelIlluminance {
		return material.Illuminance{}
	}
	return s.Material
}
