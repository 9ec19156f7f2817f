package material

import (
	"fmt"
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/math"
)

// Phong is the diffuse plus Blinn-Phong specular local illumination model
type Phong struct {
	Kd        float64 // Diffuse coefficient
	Ks        float64 // Specular coefficient
	Shininess float64 // Specular exponent n
}

// NewPhong creates a new Phong material
func NewPhong(kd, ks, shininess float64) Phong {
	return Phong{Kd: kd, Ks: ks, Shininess: shininess}
}

// Validate checks the coefficient ranges
func (m Phong) Validate() error {
	if !(m.Kd >= 0) || stdmath.IsInf(m.Kd, 0) {
		return fmt.Errorf("kd must be non-negative and finite, got %g", m.Kd)
	}
	if !(m.Ks >= 0) || stdmath.IsInf(m.Ks, 0) {
		return fmt.Errorf("ks must be non-negative and finite, got %g", m.Ks)
	}
	if !(m.Shininess >= 1) || stdmath.IsInf(m.Shininess, 0) {
		return fmt.Errorf("shininess must be at least 1, got %g", m.Shininess)
	}
	return nil
}

// Shade sums the diffuse and specular contribution of every visible light
func (m Phong) Shade(sp ShadingPoint, ls []lights.PointLight, visible Visibility, colored bool) math.Vec3 {
	var total math.Vec3
	for _, light := range ls {
		if visible != nil && !visible(light) {
			continue
		}
		total = accumulate(total, light, sp, m.Radiance(sp, light), colored)
	}
	return total
}

// Radiance returns I0 * (kd*max(0,N·L) + ks*max(0,N·H)^n) for a single light.
// The specular term is only added when the surface faces the light.
func (m Phong) Radiance(sp ShadingPoint, light lights.PointLight) float64 {
	lightDir, _, err := light.DirectionFrom(sp.Point)
	if err != nil {
		return 0
	}

	cosTheta := sp.Normal.Dot(lightDir)
	if cosTheta <= 0 {
		return 0
	}
	diffuse := m.Kd * cosTheta

	specular := 0.0
	if half, err := lightDir.Add(sp.View).TryNormalize(); err == nil {
		specular = m.Ks * stdmath.Pow(max(0, sp.Normal.Dot(half)), m.Shininess)
	}

	return light.Intensity * (diffuse + specular)
}
