package lights

import (
	"fmt"
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

// PointLight is an isotropic point source with luminous intensity I0 (W/sr)
type PointLight struct {
	Position  math.Vec3
	Intensity float64   // I0, must be >= 0
	Color     math.Vec3 // RGB in [0,1]^3
}

// NewPointLight creates a white point light
func NewPointLight(position math.Vec3, intensity float64) PointLight {
	return NewColoredPointLight(position, intensity, math.Gray(1))
}

// NewColoredPointLight creates a point light with the given color
func NewColoredPointLight(position math.Vec3, intensity float64, color math.Vec3) PointLight {
	return PointLight{
		Position:  position,
		Intensity: intensity,
		Color:     color,
	}
}

// Validate checks intensity and color ranges
func (l PointLight) Validate() error {
	if !l.Position.IsFinite() {
		return fmt.Errorf("position %v is not finite", l.Position)
	}
	if !(l.Intensity >= 0) || stdmath.IsInf(l.Intensity, 0) {
		return fmt.Errorf("intensity must be non-negative and finite, got %g", l.Intensity)
	}
	if !l.Color.IsFinite() || !l.Color.InUnitRange() {
		return fmt.Errorf("color %v must lie in [0,1]", l.Color)
	}
	return nil
}

// DirectionFrom returns the unit direction from p towards the light and the distance
func (l PointLight) DirectionFrom(p math.Vec3) (math.Vec3, float64, error) {
	toLight := l.Position.Subtract(p)
	dir, err := toLight.TryNormalize()
	if err != nil {
		return math.Vec3{}, 0, err
	}
	return dir, toLight.Length(), nil
}

// Irradiance returns the illuminance the light produces at p on a surface with
// the given normal: E = I0 * cos²α / R². Surfaces facing away receive nothing.
func (l PointLight) Irradiance(p, normal math.Vec3) float64 {
	dir, dist, err := l.DirectionFrom(p)
	if err != nil {
		return 0
	}
	cosA := normal.Dot(dir)
	if cosA <= 0 {
		return 0
	}
	return l.Intensity * cosA * cosA / (dist * dist)
}
