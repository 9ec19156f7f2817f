package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"

	"github.com/df07/go-phong-views/pkg/math"
)

// ImageData contains loaded image data as a Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []math.Vec3 // Row-major, channels in [0, 1]
}

// At returns the color of a pixel
func (d *ImageData) At(x, y int) math.Vec3 {
	return d.Pixels[y*d.Width+x]
}

// SaveImage writes img as a PNG, creating parent directories as needed
func SaveImage(filename string, img image.Image) error {
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// LoadImage loads a PNG or JPEG image and converts it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return NewImageData(img), nil
}

// NewImageData converts an image to a Vec3 color array
func NewImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]math.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = math.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// MaxDifference returns the largest per-channel difference between two images
// of the same size
func (d *ImageData) MaxDifference(other *ImageData) (float64, error) {
	if d.Width != other.Width || d.Height != other.Height {
		return 0, fmt.Errorf("image size %dx%d does not match %dx%d", d.Width, d.Height, other.Width, other.Height)
	}
	diff := 0.0
	for i, p := range d.Pixels {
		diff = max(diff, p.Subtract(other.Pixels[i]).Abs().MaxComponent())
	}
	return diff, nil
}
