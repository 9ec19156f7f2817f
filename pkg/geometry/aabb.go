package geometry

import (
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min math.Vec3 // Minimum corner
	Max math.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max math.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...math.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = stdmath.Min(min.X, point.X)
		min.Y = stdmath.Min(min.Y, point.Y)
		min.Z = stdmath.Min(min.Z, point.Z)

		max.X = stdmath.Max(max.X, point.X)
		max.Y = stdmath.Max(max.Y, point.Y)
		max.Z = stdmath.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return NewAABBFromPoints(aabb.Min, aabb.Max, other.Min, other.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() math.Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() math.Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// InPlaneExtent returns the box's range along the in-plane axes of a view
func (aabb AABB) InPlaneExtent(axis Axis) (uMin, uMax, vMin, vMax float64) {
	uMin, vMin, _ = axis.Project(aabb.Min)
	uMax, vMax, _ = axis.Project(aabb.Max)
	return uMin, uMax, vMin, vMax
}
