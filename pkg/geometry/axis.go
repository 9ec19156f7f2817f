package geometry

import (
	"fmt"
	"strings"

	"github.com/df07/go-phong-views/pkg/math"
)

// Axis is the direction a view looks along. The observer sits on the positive
// side of the axis, so larger depth values are nearer to the observer.
type Axis int

const (
	AxisZ Axis = iota // image plane (x, y), depth z
	AxisY             // image plane (x, z), depth y
	AxisX             // image plane (y, z), depth x
)

// AllAxes lists the three orthogonal projections in render order
var AllAxes = []Axis{AxisZ, AxisY, AxisX}

// String returns the axis letter
func (a Axis) String() string {
	switch a {
	case AxisZ:
		return "Z"
	case AxisY:
		return "Y"
	case AxisX:
		return "X"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses an axis letter (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Z":
		return AxisZ, nil
	case "Y":
		return AxisY, nil
	case "X":
		return AxisX, nil
	default:
		return 0, fmt.Errorf("unknown projection axis %q (want Z, Y or X)", s)
	}
}

// ParseAxes parses a comma separated axis list such as "z,y,x"
func ParseAxes(s string) ([]Axis, error) {
	var axes []Axis
	seen := make(map[Axis]bool)
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		axis, err := ParseAxis(part)
		if err != nil {
			return nil, err
		}
		if seen[axis] {
			return nil, fmt.Errorf("projection axis %s requested twice", axis)
		}
		seen[axis] = true
		axes = append(axes, axis)
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("no projection axes in %q", s)
	}
	return axes, nil
}

// Direction returns the unit vector pointing from the scene towards the observer
func (a Axis) Direction() math.Vec3 {
	switch a {
	case AxisY:
		return math.NewVec3(0, 1, 0)
	case AxisX:
		return math.NewVec3(1, 0, 0)
	default:
		return math.NewVec3(0, 0, 1)
	}
}

// InPlaneAxes returns the unit vectors of the image's horizontal (u) and vertical (v) axes
func (a Axis) InPlaneAxes() (u, v math.Vec3) {
	switch a {
	case AxisY:
		return math.NewVec3(1, 0, 0), math.NewVec3(0, 0, 1)
	case AxisX:
		return math.NewVec3(0, 1, 0), math.NewVec3(0, 0, 1)
	default:
		return math.NewVec3(1, 0, 0), math.NewVec3(0, 1, 0)
	}
}

// InPlaneNames returns the scene axis letters of u and v
func (a Axis) InPlaneNames() (u, v string) {
	switch a {
	case AxisY:
		return "X", "Z"
	case AxisX:
		return "Y", "Z"
	default:
		return "X", "Y"
	}
}

// Project splits a scene point into in-plane coordinates and depth along the axis
func (a Axis) Project(p math.Vec3) (u, v, depth float64) {
	switch a {
	case AxisY:
		return p.X, p.Z, p.Y
	case AxisX:
		return p.Y, p.Z, p.X
	default:
		return p.X, p.Y, p.Z
	}
}

// Point is the inverse of Project
func (a Axis) Point(u, v, depth float64) math.Vec3 {
	switch a {
	case AxisY:
		return math.NewVec3(u, depth, v)
	case AxisX:
		return math.NewVec3(depth, u, v)
	default:
		return math.NewVec3(u, v, depth)
	}
}
