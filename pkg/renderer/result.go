package renderer

import (
	"image"
	"image/color"
	stdmath "math"

	"github.com/df07/go-phong-views/pkg/math"
)

// NormalizationEpsilon replaces a non-positive maximum during normalization
const NormalizationEpsilon = 1e-12

// RenderResult holds the raw radiance samples and the depth buffer of a view.
// Both are row-major with row 0 at the top of the image.
type RenderResult struct {
	Width   int
	Height  int
	Colored bool
	Samples []math.Vec3 // Raw radiance, zero where no surface was hit
	Depth   []float64   // Depth along the view axis, -Inf where no surface was hit
}

// NewRenderResult allocates a zeroed result with an empty depth buffer
func NewRenderResult(width, height int, colored bool) *RenderResult {
	depth := make([]float64, width*height)
	for i := range depth {
		depth[i] = stdmath.Inf(-1)
	}
	return &RenderResult{
		Width:   width,
		Height:  height,
		Colored: colored,
		Samples: make([]math.Vec3, width*height),
		Depth:   depth,
	}
}

// At returns the raw sample of a pixel
func (r *RenderResult) At(row, col int) math.Vec3 {
	return r.Samples[row*r.Width+col]
}

// DepthAt returns the depth buffer value of a pixel
func (r *RenderResult) DepthAt(row, col int) float64 {
	return r.Depth[row*r.Width+col]
}

// Occupied reports whether a surface was drawn at the pixel
func (r *RenderResult) Occupied(row, col int) bool {
	return !stdmath.IsInf(r.DepthAt(row, col), -1)
}

// MaxSample returns the largest channel value over the whole image
func (r *RenderResult) MaxSample() float64 {
	maxValue := stdmath.Inf(-1)
	for _, s := range r.Samples {
		if c := s.MaxComponent(); c > maxValue || stdmath.IsNaN(c) {
			maxValue = c
			if stdmath.IsNaN(c) {
				break
			}
		}
	}
	return maxValue
}

// Profile returns the peak-channel raw values of one image row
func (r *RenderResult) Profile(row int) []float64 {
	values := make([]float64, r.Width)
	for col := range values {
		values[col] = r.At(row, col).MaxComponent()
	}
	return values
}

// Normalize divides every sample by the image maximum and quantizes to 0-255.
// Grayscale results give an *image.Gray, colored results an *image.RGBA.
// When the maximum is not positive NormalizationEpsilon is substituted and
// ErrDegenerateNormalization is returned along with the (black) image.
func (r *RenderResult) Normalize() (image.Image, error) {
	var err error
	maxValue := r.MaxSample()
	if !(maxValue > 0) {
		maxValue = NormalizationEpsilon
		err = ErrDegenerateNormalization
	}
	bounds := image.Rect(0, 0, r.Width, r.Height)

	if !r.Colored {
		img := image.NewGray(bounds)
		for i, s := range r.Samples {
			img.Pix[i] = quantize(s.X / maxValue * 255)
		}
		return img, err
	}

	img := image.NewRGBA(bounds)
	for i, s := range r.Samples {
		img.SetRGBA(i%r.Width, i/r.Width, color.RGBA{
			R: quantize(s.X / maxValue * 255),
			G: quantize(s.Y / maxValue * 255),
			B: quantize(s.Z / maxValue * 255),
			A: 255,
		})
	}
	return img, err
}

// quantize truncates a scaled sample to a byte, clamping out-of-range values
func quantize(v float64) uint8 {
	if stdmath.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
