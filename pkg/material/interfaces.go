package material

import (
	"github.com/df07/go-phong-views/pkg/lights"
	"github.com/df07/go-phong-views/pkg/math"
)

// ShadingPoint holds the local geometry needed to evaluate a shading model
type ShadingPoint struct {
	Point       math.Vec3 // Surface point P
	Normal      math.Vec3 // Outward unit normal N
	View        math.Vec3 // Unit direction from P towards the observer V
	Reflectance math.Vec3 // Surface RGB reflectance
}

// Visibility reports whether a light reaches the shading point. A nil
// Visibility treats every light as visible.
type Visibility func(light lights.PointLight) bool

// Shader evaluates the raw radiance leaving a shading point.
// Colored shaders return per-channel radiance; otherwise all three channels
// carry the same scalar value.
type Shader interface {
	Shade(sp ShadingPoint, ls []lights.PointLight, visible Visibility, colored bool) math.Vec3
}

// accumulate adds one light's scalar contribution to the running total
func accumulate(total math.Vec3, light lights.PointLight, sp ShadingPoint, value float64, colored bool) math.Vec3 {
	if !colored {
		return total.Add(math.Gray(value))
	}
	return total.Add(light.Color.MultiplyVec(sp.Reflectance).Multiply(value))
}
