package geometry

import stdmath "math"

// PixelGrid maps every pixel of a view to its physical in-plane coordinates.
// Pixels are row-major; row 0 holds the largest v (top of the image).
type PixelGrid struct {
	Axis   Axis
	Width  int       // Pixel columns
	Height int       // Pixel rows
	U      []float64 // Physical u per column, increasing left to right
	V      []float64 // Physical v per row, decreasing top to bottom
}

// NewPixelGrid creates the sampling grid for a view
func NewPixelGrid(spec ViewSpec) (*PixelGrid, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	cols, rows := spec.Resolution()
	return &PixelGrid{
		Axis:   spec.Axis,
		Width:  cols,
		Height: rows,
		U:      linspace(spec.CenterU-spec.Width/2, spec.CenterU+spec.Width/2, cols),
		V:      linspace(spec.CenterV+spec.Height/2, spec.CenterV-spec.Height/2, rows),
	}, nil
}

// At returns the physical coordinates of a pixel
func (g *PixelGrid) At(row, col int) (u, v float64) {
	return g.U[col], g.V[row]
}

// Index returns the row-major offset of a pixel
func (g *PixelGrid) Index(row, col int) int {
	return row*g.Width + col
}

// Nearest returns the pixel whose coordinates are closest to (u, v)
func (g *PixelGrid) Nearest(u, v float64) (row, col int) {
	return nearestIndex(g.V, v), nearestIndex(g.U, u)
}

// linspace returns n evenly spaced values from start to stop inclusive
func linspace(start, stop float64, n int) []float64 {
	values := make([]float64, n)
	if n == 1 {
		values[0] = start
		return values
	}
	step := (stop - start) / float64(n-1)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	values[n-1] = stop
	return values
}

func nearestIndex(values []float64, x float64) int {
	best := 0
	for i, value := range values {
		if stdmath.Abs(value-x) < stdmath.Abs(values[best]-x) {
			best = i
		}
	}
	return best
}
