package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-views/pkg/geometry"
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/material"
	mathpkg "github.com/df07/go-phong-views/pkg/math"
)

func validDescription() Scene {
	return Scene{
		Observer: Observer{Position: mathpkg.NewVec3(0, 0, 1000)},
		Lights:   []lights.PointLight{lights.NewPointLight(mathpkg.NewVec3(0, 0, 1000), 1000)},
		Surfaces: []geometry.Surface{geometry.NewSphere(mathpkg.NewVec3(0, 0, 0), 100, mathpkg.Gray(1))},
		Material: material.NewPhong(0.7, 0, 1),
		Shadows:  true,
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(s *Scene)
		expectErr bool
	}{
		{"valid", func(s *Scene) {}, false},
		{"no surfaces", func(s *Scene) { s.Surfaces = nil }, true},
		{"nil surface", func(s *Scene) { s.Surfaces = []geometry.Surface{nil} }, true},
		{"non-positive radius", func(s *Scene) {
			s.Surfaces = []geometry.Surface{geometry.NewSphere(mathpkg.NewVec3(0, 0, 0), 0, mathpkg.Gray(1))}
		}, true},
		{"negative intensity", func(s *Scene) {
			s.Lights = []lights.PointLight{lights.NewPointLight(mathpkg.NewVec3(0, 0, 1000), -5)}
		}, true},
		{"reflectance out of range", func(s *Scene) {
			s.Surfaces = []geometry.Surface{geometry.NewSphere(mathpkg.NewVec3(0, 0, 0), 100, mathpkg.NewVec3(2, 0, 0))}
		}, true},
		{"negative kd", func(s *Scene) { s.Material.Kd = -1 }, true},
		{"shininess below one", func(s *Scene) { s.Material.Shininess = 0 }, true},
		{"observer on sphere", func(s *Scene) { s.Observer.Position = mathpkg.NewVec3(0, 0, 100) }, true},
		{"observer inside sphere", func(s *Scene) { s.Observer.Position = mathpkg.NewVec3(0, 0, 0) }, true},
		{"observer near sphere interior", func(s *Scene) { s.Observer.Position = mathpkg.NewVec3(0, 0, 99) }, true},
		{"observer just outside sphere", func(s *Scene) { s.Observer.Position = mathpkg.NewVec3(0, 0, 101) }, false},
		{"observer not finite", func(s *Scene) { s.Observer.Position = mathpkg.NewVec3(math.NaN(), 0, 0) }, true},
		{"light on sphere", func(s *Scene) {
			s.Lights = []lights.PointLight{lights.NewPointLight(mathpkg.NewVec3(100, 0, 0), 10)}
		}, true},
		{"unknown model", func(s *Scene) { s.Model = Model(9) }, true},
		{"no lights is allowed", func(s *Scene) { s.Lights = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := validDescription()
			tt.modify(&desc)

			s, err := New(desc)
			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected validation error, got none")
				}
				if !errors.Is(err, ErrInvalidScene) {
					t.Errorf("Expected error to match ErrInvalidScene, got %v", err)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Field == "" {
					t.Errorf("Expected *ValidationError with a field, got %v", err)
				}
				if s != nil {
					t.Error("Expected nil scene on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestNew_CopiesSlices(t *testing.T) {
	desc := validDescription()
	s, err := New(desc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	desc.Lights[0] = lights.NewPointLight(mathpkg.NewVec3(5, 5, 5), 1)
	if s.Lights[0].Intensity != 1000 {
		t.Error("Scene must not share the caller's light slice")
	}
}

func TestScene_Shader(t *testing.T) {
	s, err := New(validDescription())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := s.Shader().(material.Phong); !ok {
		t.Errorf("Expected Phong shader, got %T", s.Shader())
	}

	desc := validDescription()
	desc.Model = ModelIlluminance
	s, err = New(desc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, ok := s.Shader().(material.Illuminance); !ok {
		t.Errorf("Expected Illuminance shader, got %T", s.Shader())
	}
}

func TestParseModel(t *testing.T) {
	for input, expected := range map[string]Model{"": ModelPhong, "Phong": ModelPhong, "illuminance": ModelIlluminance} {
		got, err := ParseModel(input)
		if err != nil || got != expected {
			t.Errorf("ParseModel(%q) = %v, %v; want %v", input, got, err, expected)
		}
	}
	if _, err := ParseModel("gouraud"); err == nil {
		t.Error("Expected error for unknown model")
	}
}

func TestScene_RadiancePole(t *testing.T) {
	s, err := New(validDescription())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	pole := mathpkg.NewVec3(0, 0, 100)
	got, err := s.Radiance(s.Surfaces[0], pole, s.Observer.Position)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if math.Abs(got.X-700) > 1e-9 {
		t.Errorf("Expected 0.7*1000*1 = 700 at the pole, got %f", got.X)
	}

	if _, err := s.Radiance(s.Surfaces[0], pole, pole); !errors.Is(err, mathpkg.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector when observer coincides with the point, got %v", err)
	}
}
