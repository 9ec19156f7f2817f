package renderer

import (
	stdmath "math"
	"time"

	"github.com/df07/go-phong-views/pkg/math"
)

// RenderStats contains statistics about one rendered view
type RenderStats struct {
	Columns        int           // Pixel columns
	Rows           int           // Pixel rows
	OccupiedPixels int           // Pixels covered by a surface
	MaxSample      float64       // Largest raw sample over occupied pixels (peak channel)
	MinSample      float64       // Smallest raw sample over occupied pixels (peak channel)
	MeanSample     float64       // Mean raw sample over occupied pixels (peak channel)
	Elapsed        time.Duration // Wall time of the render
	Workers        int           // Tile workers used
	ControlSamples []ControlSample
}

// ControlSample is the raw radiance at a named point of a surface
type ControlSample struct {
	Surface  int       // Index into Scene.Surfaces
	Kind     string    // Surface variant
	Name     string    // e.g. "pole", "X+"
	Point    math.Vec3 // Scene coordinates
	Radiance math.Vec3 // Raw radiance, before normalization
	Value    float64   // Peak channel of Radiance
}

// TotalPixels returns the number of pixels in the view
func (rs RenderStats) TotalPixels() int {
	return rs.Columns * rs.Rows
}

// Coverage returns the fraction of pixels covered by a surface
func (rs RenderStats) Coverage() float64 {
	if rs.TotalPixels() == 0 {
		return 0
	}
	return float64(rs.OccupiedPixels) / float64(rs.TotalPixels())
}

// collectSampleStats fills the sample statistics from the occupied pixels of a result
func collectSampleStats(result *RenderResult) RenderStats {
	stats := RenderStats{Columns: result.Width, Rows: result.Height}
	minValue, maxValue, sum := stdmath.Inf(1), stdmath.Inf(-1), 0.0
	for i, s := range result.Samples {
		if stdmath.IsInf(result.Depth[i], -1) {
			continue
		}
		value := s.MaxComponent()
		stats.OccupiedPixels++
		minValue = min(minValue, value)
		maxValue = max(maxValue, value)
		sum += value
	}
	if stats.OccupiedPixels > 0 {
		stats.MinSample = minValue
		stats.MaxSample = maxValue
		stats.MeanSample = sum / float64(stats.OccupiedPixels)
	}
	return stats
}
