package geometry

import "github.com/df07/go-phong-views/pkg/math"

// ControlPoint is a named scene point at which raw radiance is reported
type ControlPoint struct {
	Name  string
	Point math.Vec3
}

// Surface is a reflecting object that can be projected along an axis,
// shaded, and used as an occluder for shadow rays.
type Surface interface {
	// Depth performs the silhouette test for in-plane coordinates (u, v) of a
	// view along axis and returns the depth of the nearest surface point.
	Depth(axis Axis, u, v float64) (float64, bool)
	// NormalAt returns the outward unit normal at a point on the surface.
	NormalAt(p math.Vec3) math.Vec3
	// Occludes reports whether the ray meets the surface strictly ahead of its origin.
	Occludes(ray math.Ray) bool
	// Reflectance returns the surface's RGB reflectance in [0,1]^3.
	Reflectance() math.Vec3
	// Bounds returns the bounding box, or false for unbounded surfaces.
	Bounds() (AABB, bool)
	// OnSurface reports whether p lies on the surface.
	OnSurface(p math.Vec3) bool
	// Encloses reports whether p lies strictly inside a solid surface.
	Encloses(p math.Vec3) bool
	// ControlPoints returns the statistic sample points for a view along axis.
	ControlPoints(axis Axis) []ControlPoint
	// Validate checks the surface parameters.
	Validate() error
	// Kind returns a short name of the surface variant.
	Kind() string
}

// onSurfaceTolerance is the relative distance under which a point counts as lying on a surface
const onSurfaceTolerance = 1e-9

// equatorPoints returns the four points at distance r from center along the
// in-plane axes of a view, named after the scene axes they lie on.
func equatorPoints(axis Axis, center math.Vec3, r float64) []ControlPoint {
	uDir, vDir := axis.InPlaneAxes()
	uName, vName := axis.InPlaneNames()
	return []ControlPoint{
		{Name: uName + "+", Point: center.Add(uDir.Multiply(r))},
		{Name: uName + "-", Point: center.Subtract(uDir.Multiply(r))},
		{Name: vName + "+", Point: center.Add(vDir.Multiply(r))},
		{Name: vName + "-", Point: center.Subtract(vDir.Multiply(r))},
	}
}
