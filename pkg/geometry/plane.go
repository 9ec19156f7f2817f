package geometry

import (
	"fmt"
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

// Plane is the illuminated screen lying in z = 0 with its normal along +Z.
// A positive Radius clips it to a disc around Center; zero means infinite.
type Plane struct {
	Center math.Vec3 // Center of the clip circle (Z must be 0)
	Radius float64   // Clip radius, 0 for an infinite plane
	Color  math.Vec3 // RGB reflectance
}

// NewPlane creates an infinite screen
func NewPlane(color math.Vec3) *Plane {
	return &Plane{Color: color}
}

// NewDiscPlane creates a screen clipped to a circle of the given radius
func NewDiscPlane(center math.Vec3, radius float64, color math.Vec3) *Plane {
	return &Plane{Center: center, Radius: radius, Color: color}
}

func (p *Plane) inside(x, y float64) bool {
	if p.Radius == 0 {
		return true
	}
	dx, dy := x-p.Center.X, y-p.Center.Y
	return dx*dx+dy*dy <= p.Radius*p.Radius
}

// Depth returns 0 for pixels on the screen. The plane is seen edge-on from the
// X and Y axes and never covers a pixel there.
func (p *Plane) Depth(axis Axis, u, v float64) (float64, bool) {
	if axis != AxisZ || !p.inside(u, v) {
		return 0, false
	}
	return 0, true
}

// NormalAt returns +Z everywhere
func (p *Plane) NormalAt(math.Vec3) math.Vec3 {
	return math.NewVec3(0, 0, 1)
}

// Occludes reports whether the ray crosses z = 0 inside the clip circle
func (p *Plane) Occludes(ray math.Ray) bool {
	dz := ray.Direction.Z
	if stdmath.Abs(dz) < 1e-12 {
		return false
	}
	t := -ray.Origin.Z / dz
	if t <= ShadowEpsilon {
		return false
	}
	hit := ray.At(t)
	return p.inside(hit.X, hit.Y)
}

// Reflectance returns the screen color
func (p *Plane) Reflectance() math.Vec3 {
	return p.Color
}

// Bounds returns the box around the clip circle, or false for an infinite plane
func (p *Plane) Bounds() (AABB, bool) {
	if p.Radius == 0 {
		return AABB{}, false
	}
	r := math.NewVec3(p.Radius, p.Radius, 0)
	return NewAABB(p.Center.Subtract(r), p.Center.Add(r)), true
}

// OnSurface reports whether pt lies on the screen
func (p *Plane) OnSurface(pt math.Vec3) bool {
	return stdmath.Abs(pt.Z) <= onSurfaceTolerance && p.inside(pt.X, pt.Y)
}

// Encloses is always false; the screen has no interior
func (p *Plane) Encloses(pt math.Vec3) bool {
	return false
}

// ControlPoints returns the circle center and its four cardinal boundary points
func (p *Plane) ControlPoints(axis Axis) []ControlPoint {
	if axis != AxisZ {
		return nil
	}
	points := []ControlPoint{{Name: "center", Point: p.Center}}
	if p.Radius > 0 {
		points = append(points, equatorPoints(axis, p.Center, p.Radius)...)
	}
	return points
}

// Validate checks the clip circle and color
func (p *Plane) Validate() error {
	if !p.Center.IsFinite() || p.Center.Z != 0 {
		return fmt.Errorf("center %v must be finite and lie in z = 0", p.Center)
	}
	if p.Radius < 0 || stdmath.IsNaN(p.Radius) || stdmath.IsInf(p.Radius, 0) {
		return fmt.Errorf("clip radius must be zero or positive, got %g", p.Radius)
	}
	if !p.Color.IsFinite() || !p.Color.InUnitRange() {
		return fmt.Errorf("color %v must lie in [0,1]", p.Color)
	}
	return nil
}

// Kind returns "plane"
func (p *Plane) Kind() string {
	return "plane"
}
