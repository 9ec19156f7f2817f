package geometry

import (
	"fmt"
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center math.Vec3
	Radius float64
	Color  math.Vec3 // RGB reflectance
}

// NewSphere creates a new sphere
func NewSphere(center math.Vec3, radius float64, color math.Vec3) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Depth returns the depth of the sphere's near hemisphere at (u, v)
func (s *Sphere) Depth(axis Axis, u, v float64) (float64, bool) {
	cu, cv, cd := axis.Project(s.Center)
	h, ok := SphereHeight(u-cu, v-cv, s.Radius)
	if !ok {
		return 0, false
	}
	return cd + h, true
}

// NormalAt returns the outward normal (from center to point)
func (s *Sphere) NormalAt(p math.Vec3) math.Vec3 {
	return p.Subtract(s.Center).Normalize()
}

// Occludes tests the shadow ray against the sphere
func (s *Sphere) Occludes(ray math.Ray) bool {
	return RaySphereIntersects(ray.Origin, ray.Direction, s.Center, s.Radius)
}

// Reflectance returns the sphere color
func (s *Sphere) Reflectance() math.Vec3 {
	return s.Color
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() (AABB, bool) {
	radius := math.Gray(s.Radius)
	return NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// OnSurface reports whether p lies on the sphere
func (s *Sphere) OnSurface(p math.Vec3) bool {
	d := p.Subtract(s.Center).Length()
	return stdmath.Abs(d-s.Radius) <= onSurfaceTolerance*max(1, s.Radius)
}

// Encloses reports whether p lies inside the sphere
func (s *Sphere) Encloses(p math.Vec3) bool {
	return p.Subtract(s.Center).Length() < s.Radius
}

// ControlPoints returns the pole facing the observer and the four equator points
func (s *Sphere) ControlPoints(axis Axis) []ControlPoint {
	pole := ControlPoint{Name: "pole", Point: s.Center.Add(axis.Direction().Multiply(s.Radius))}
	return append([]ControlPoint{pole}, equatorPoints(axis, s.Center, s.Radius)...)
}

// Validate checks radius, center and color
func (s *Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("center %v is not finite", s.Center)
	}
	if !(s.Radius > 0) || stdmath.IsInf(s.Radius, 0) {
		return fmt.Errorf("radius must be positive and finite, got %g", s.Radius)
	}
	if !s.Color.IsFinite() || !s.Color.InUnitRange() {
		return fmt.Errorf("color %v must lie in [0,1]", s.Color)
	}
	return nil
}

// Kind returns "sphere"
func (s *Sphere) Kind() string {
	return "sphere"
}
