package geometry

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

const (
	DefaultBaseResolution = 400 // Pixel rows of a view
	DefaultViewMargin     = 25  // Padding on each side of fitted views (mm)

	MaxBaseResolution = 8192        // Largest accepted row count
	MaxPixels         = 4096 * 4096 // Largest accepted columns x rows
)

// ErrNoBoundedSurface is returned when a view cannot be fitted to the scene
var ErrNoBoundedSurface = errors.New("no bounded surface to fit the view to")

// ViewSpec describes one axis-aligned orthographic projection
type ViewSpec struct {
	Axis           Axis
	Width          float64    // Physical extent along u (mm)
	Height         float64    // Physical extent along v (mm)
	CenterU        float64    // Physical u at the image center
	CenterV        float64    // Physical v at the image center
	BaseResolution int        // Pixel rows; 0 uses DefaultBaseResolution
	Observer       *math.Vec3 // Overrides the scene observer when set
}

// NewViewSpec creates a view centered on the axis origin
func NewViewSpec(axis Axis, width, height float64) ViewSpec {
	return ViewSpec{
		Axis:           axis,
		Width:          width,
		Height:         height,
		BaseResolution: DefaultBaseResolution,
	}
}

// Resolution converts a physical size into pixel columns and rows. The height
// is the reference axis held at base; the width scales by the aspect ratio and
// is truncated toward zero.
func Resolution(width, height float64, base int) (cols, rows int) {
	aspect := width / height
	rows = base
	cols = int(float64(base) * aspect)
	return max(cols, 1), rows
}

// Resolution returns the pixel size of the view
func (vs ViewSpec) Resolution() (cols, rows int) {
	return Resolution(vs.Width, vs.Height, vs.base())
}

func (vs ViewSpec) base() int {
	if vs.BaseResolution <= 0 {
		return DefaultBaseResolution
	}
	return vs.BaseResolution
}

// Validate checks the physical extent and resolution
func (vs ViewSpec) Validate() error {
	if vs.Axis < AxisZ || vs.Axis > AxisX {
		return fmt.Errorf("invalid projection axis %d", int(vs.Axis))
	}
	if err := checkExtent(vs.Axis, "width", vs.Width); err != nil {
		return err
	}
	if err := checkExtent(vs.Axis, "height", vs.Height); err != nil {
		return err
	}
	if stdmath.IsNaN(vs.CenterU) || stdmath.IsNaN(vs.CenterV) {
		return fmt.Errorf("view %s: center is not a number", vs.Axis)
	}
	if vs.BaseResolution < 0 {
		return fmt.Errorf("view %s: base resolution must not be negative, got %d", vs.Axis, vs.BaseResolution)
	}
	if vs.BaseResolution > MaxBaseResolution {
		return fmt.Errorf("view %s: base resolution %d exceeds %d", vs.Axis, vs.BaseResolution, MaxBaseResolution)
	}
	// The column count is checked as a float so that it cannot overflow int
	base := float64(vs.base())
	if pixels := base * vs.Width / vs.Height * base; !(pixels <= MaxPixels) {
		return fmt.Errorf("view %s: %gx%g at base %d exceeds %d pixels", vs.Axis, vs.Width, vs.Height, vs.base(), MaxPixels)
	}
	if vs.Observer != nil && !vs.Observer.IsFinite() {
		return fmt.Errorf("view %s: observer %v is not finite", vs.Axis, *vs.Observer)
	}
	return nil
}

func checkExtent(axis Axis, name string, value float64) error {
	if !(value > 0) || stdmath.IsInf(value, 0) {
		return fmt.Errorf("view %s: %s must be positive and finite, got %g", axis, name, value)
	}
	return nil
}

// sceneBounds returns the union of the bounds of every bounded surface
func sceneBounds(surfaces []Surface) (AABB, bool) {
	var box AABB
	found := false
	for _, s := range surfaces {
		b, bounded := s.Bounds()
		if !bounded {
			continue
		}
		if !found {
			box, found = b, true
			continue
		}
		box = box.Union(b)
	}
	return box, found
}

// FitView sizes a view along axis so that every bounded surface is fully
// visible, padded by margin on each side.
func FitView(surfaces []Surface, axis Axis, margin float64, base int) (ViewSpec, error) {
	box, ok := sceneBounds(surfaces)
	if !ok {
		return ViewSpec{}, ErrNoBoundedSurface
	}
	width, height, _ := axis.Project(box.Size())
	centerU, centerV, _ := axis.Project(box.Center())
	return ViewSpec{
		Axis:           axis,
		Width:          width + 2*margin,
		Height:         height + 2*margin,
		CenterU:        centerU,
		CenterV:        centerV,
		BaseResolution: base,
	}, nil
}

// EnsureContains widens an explicit view around its center until every bounded
// surface fits, adding margin beyond the farthest surface edge.
func EnsureContains(spec ViewSpec, surfaces []Surface, margin float64) ViewSpec {
	for _, s := range surfaces {
		b, bounded := s.Bounds()
		if !bounded {
			continue
		}
		uMin, uMax, vMin, vMax := b.InPlaneExtent(spec.Axis)
		reachU := max(stdmath.Abs(uMax-spec.CenterU), stdmath.Abs(uMin-spec.CenterU))
		if spec.Width/2 < reachU {
			spec.Width = 2 * (reachU + margin)
		}
		reachV := max(stdmath.Abs(vMax-spec.CenterV), stdmath.Abs(vMin-spec.CenterV))
		if spec.Height/2 < reachV {
			spec.Height = 2 * (reachV + margin)
		}
	}
	return spec
}

// OrthogonalViews fits one view per axis and places an observer at distance
// along each view axis.
func OrthogonalViews(surfaces []Surface, axes []Axis, distance, margin float64, base int) ([]ViewSpec, error) {
	views := make([]ViewSpec, 0, len(axes))
	for _, axis := range axes {
		view, err := FitView(surfaces, axis, margin, base)
		if err != nil {
			return nil, fmt.Errorf("view %s: %w", axis, err)
		}
		observer := axis.Direction().Multiply(distance)
		view.Observer = &observer
		views = append(views, view)
	}
	return views, nil
}

// SelectViews keeps the views along axes, in the order of axes, and applies a
// positive base resolution to each. A nil axes list keeps every view.
func SelectViews(views []ViewSpec, axes []Axis, base int) ([]ViewSpec, error) {
	if base < 0 {
		return nil, fmt.Errorf("base resolution must not be negative, got %d", base)
	}

	selected := append([]ViewSpec(nil), views...)
	if axes != nil {
		selected = selected[:0:0]
		for _, axis := range axes {
			found := false
			for _, view := range views {
				if view.Axis == axis {
					selected = append(selected, view)
					found = true
				}
			}
			if !found {
				return nil, fmt.Errorf("no %s view to select", axis)
			}
		}
	}

	if base > 0 {
		for i := range selected {
			selected[i].BaseResolution = base
		}
	}
	return selected, nil
}
