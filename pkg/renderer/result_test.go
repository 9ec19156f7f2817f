package renderer

import (
	"errors"
	"fmt"
	"image"
	"math"
	"testing"

	mathpkg "github.com/df07/go-phong-views/pkg/math"
)

func TestRenderResult_NormalizeGray(t *testing.T) {
	result := NewRenderResult(3, 1, false)
	result.Samples[0] = mathpkg.Gray(0.5)
	result.Samples[1] = mathpkg.Gray(1.0)

	img, err := result.Normalize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("Expected *image.Gray, got %T", img)
	}

	expected := []uint8{127, 255, 0} // Truncation, not rounding
	for i, want := range expected {
		if got := gray.GrayAt(i, 0).Y; got != want {
			t.Errorf("Pixel %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestRenderResult_NormalizeColored(t *testing.T) {
	result := NewRenderResult(2, 1, true)
	result.Samples[0] = mathpkg.NewVec3(2, 1, 0)
	result.Samples[1] = mathpkg.NewVec3(0, 0, 0.5)

	img, err := result.Normalize()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("Expected *image.RGBA, got %T", img)
	}

	c := rgba.RGBAAt(0, 0)
	if c.R != 255 || c.G != 127 || c.B != 0 || c.A != 255 {
		t.Errorf("Pixel 0: expected (255,127,0,255), got %v", c)
	}
	c = rgba.RGBAAt(1, 0)
	if c.R != 0 || c.G != 0 || c.B != 63 {
		t.Errorf("Pixel 1: expected (0,0,63), got %v", c)
	}
}

func TestRenderResult_NormalizeMaximumIsWhite(t *testing.T) {
	for _, maxValue := range []float64{0.731, 0.3, 1.7, 49.9, 1e-7, 1234.567} {
		t.Run(fmt.Sprintf("max %g", maxValue), func(t *testing.T) {
			result := NewRenderResult(2, 1, false)
			result.Samples[0] = mathpkg.Gray(maxValue / 2)
			result.Samples[1] = mathpkg.Gray(maxValue)

			img, err := result.Normalize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := img.(*image.Gray).GrayAt(1, 0).Y; got != 255 {
				t.Errorf("Expected the brightest pixel to be 255, got %d", got)
			}

			colored := NewRenderResult(1, 1, true)
			colored.Samples[0] = mathpkg.NewVec3(maxValue/4, maxValue, 0)
			img, err = colored.Normalize()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := img.(*image.RGBA).RGBAAt(0, 0).G; got != 255 {
				t.Errorf("Expected the brightest channel to be 255, got %d", got)
			}
		})
	}
}

func TestRenderResult_NormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		sample float64
	}{
		{"all zero", 0},
		{"not a number", math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewRenderResult(2, 2, false)
			result.Samples[3] = mathpkg.Gray(tt.sample)

			img, err := result.Normalize()
			if !errors.Is(err, ErrDegenerateNormalization) {
				t.Fatalf("Expected ErrDegenerateNormalization, got %v", err)
			}
			if img == nil {
				t.Fatal("Expected an image alongside the degenerate normalization error")
			}
			gray := img.(*image.Gray)
			for i, p := range gray.Pix {
				if p != 0 {
					t.Errorf("Pixel %d: expected 0, got %d", i, p)
				}
			}
		})
	}
}

func TestRenderResult_EmptyDepth(t *testing.T) {
	result := NewRenderResult(4, 3, false)
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if result.Occupied(row, col) {
				t.Fatalf("Pixel (%d,%d) should start unoccupied", row, col)
			}
		}
	}

	result.Depth[result.Width+2] = 10
	if !result.Occupied(1, 2) {
		t.Error("Pixel (1,2) should be occupied after a depth write")
	}
}

func TestRenderResult_Profile(t *testing.T) {
	result := NewRenderResult(3, 2, true)
	result.Samples[3] = mathpkg.NewVec3(1, 4, 2)
	result.Samples[5] = mathpkg.NewVec3(0, 0, 7)

	profile := result.Profile(1)
	expected := []float64{4, 0, 7}
	for i, want := range expected {
		if profile[i] != want {
			t.Errorf("Profile[%d]: expected %g, got %g", i, want, profile[i])
		}
	}
}

func TestIsRecoverable(t *testing.T) {
	fatal := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"empty", ErrEmptyResult, true},
		{"joined markers", errors.Join(ErrEmptyResult, ErrDegenerateNormalization), true},
		{"wrapped marker", wrap("view z", ErrDegenerateNormalization), true},
		{"fatal", fatal, false},
		{"marker joined with fatal", errors.Join(ErrEmptyResult, fatal), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecoverable(tt.err); got != tt.want {
				t.Errorf("IsRecoverable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string { return e.msg + ": " + e.err.Error() }
func (e *wrappedError) Unwrap() error { return e.err }

func wrap(msg string, err error) error {
	return &wrappedError{msg: msg, err: err}
}
