package geometry

import (
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

// ShadowEpsilon is the minimum ray parameter a shadow-ray hit must exceed to
// count as lying ahead of the ray origin.
const ShadowEpsilon = 1e-3

// RaySphereIntersects reports whether the ray origin + t*direction meets the
// sphere for some t > ShadowEpsilon. Only shadow rays use it; visible surfaces
// are found with SphereHeight.
func RaySphereIntersects(origin, direction, center math.Vec3, radius float64) bool {
	oc := origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := direction.Dot(direction)
	b := 2 * oc.Dot(direction)
	c := oc.Dot(oc) - radius*radius
	if a == 0 {
		return false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return false
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return t1 > ShadowEpsilon || t2 > ShadowEpsilon
}

// SphereHeight returns the near-surface depth offset of a sphere of radius r at
// lateral offset (dx, dy) from its projected center, or false outside the silhouette.
func SphereHeight(dx, dy, r float64) (float64, bool) {
	d2 := dx*dx + dy*dy
	if d2 > r*r {
		return 0, false
	}
	return stdmath.Sqrt(r*r - d2), true
}
