package geometry

import (
	"testing"

	mathpkg "github.com/df07/go-phong-views/pkg/math"
)

func TestPlane_Depth(t *testing.T) {
	infinite := NewPlane(mathpkg.Gray(1))
	disc := NewDiscPlane(mathpkg.NewVec3(0, 0, 0), 80, mathpkg.Gray(1))

	tests := []struct {
		name      string
		plane     *Plane
		axis      Axis
		u, v      float64
		expectHit bool
	}{
		{"infinite plane far away", infinite, AxisZ, 1e6, -1e6, true},
		{"disc center", disc, AxisZ, 0, 0, true},
		{"disc boundary", disc, AxisZ, 80, 0, true},
		{"outside disc", disc, AxisZ, 60, 60, false},
		{"edge-on from Y", infinite, AxisY, 0, 0, false},
		{"edge-on from X", disc, AxisX, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth, ok := tt.plane.Depth(tt.axis, tt.u, tt.v)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, ok)
			}
			if ok && depth != 0 {
				t.Errorf("Expected depth 0, got %f", depth)
			}
		})
	}
}

func TestPlane_Occludes(t *testing.T) {
	disc := NewDiscPlane(mathpkg.NewVec3(0, 0, 0), 50, mathpkg.Gray(1))

	tests := []struct {
		name     string
		ray      mathpkg.Ray
		expected bool
	}{
		{"down through disc", mathpkg.Ray{Origin: mathpkg.NewVec3(0, 0, 100), Direction: mathpkg.NewVec3(0, 0, -1)}, true},
		{"down beside disc", mathpkg.Ray{Origin: mathpkg.NewVec3(100, 0, 100), Direction: mathpkg.NewVec3(0, 0, -1)}, false},
		{"pointing away", mathpkg.Ray{Origin: mathpkg.NewVec3(0, 0, 100), Direction: mathpkg.NewVec3(0, 0, 1)}, false},
		{"parallel", mathpkg.Ray{Origin: mathpkg.NewVec3(0, 0, 100), Direction: mathpkg.NewVec3(1, 0, 0)}, false},
		{"origin on plane", mathpkg.Ray{Origin: mathpkg.NewVec3(0, 0, 0), Direction: mathpkg.NewVec3(0, 0, -1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := disc.Occludes(tt.ray); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}

func TestPlane_BoundsAndControlPoints(t *testing.T) {
	if _, ok := NewPlane(mathpkg.Gray(1)).Bounds(); ok {
		t.Error("Expected infinite plane to be unbounded")
	}

	disc := NewDiscPlane(mathpkg.NewVec3(10, -10, 0), 80, mathpkg.Gray(1))
	box, ok := disc.Bounds()
	if !ok {
		t.Fatal("Expected disc to be bounded")
	}
	if box.Min != mathpkg.NewVec3(-70, -90, 0) || box.Max != mathpkg.NewVec3(90, 70, 0) {
		t.Errorf("Unexpected bounds %v", box)
	}

	points := disc.ControlPoints(AxisZ)
	if len(points) != 5 {
		t.Fatalf("Expected center plus 4 boundary points, got %d", len(points))
	}
	if points[0].Name != "center" || points[1].Name != "X+" || points[1].Point != mathpkg.NewVec3(90, -10, 0) {
		t.Errorf("Unexpected control points %v", points)
	}
	if got := disc.ControlPoints(AxisY); got != nil {
		t.Errorf("Expected no control points for edge-on view, got %v", got)
	}
}

func TestPlane_Validate(t *testing.T) {
	if err := NewDiscPlane(mathpkg.NewVec3(0, 0, 5), 10, mathpkg.Gray(1)).Validate(); err == nil {
		t.Error("Expected error for plane center off z = 0")
	}
	if err := NewDiscPlane(mathpkg.NewVec3(0, 0, 0), -1, mathpkg.Gray(1)).Validate(); err == nil {
		t.Error("Expected error for negative clip radius")
	}
	if err := NewPlane(mathpkg.Gray(0.5)).Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}
