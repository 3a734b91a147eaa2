package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	SamplesPerPixel int           // Samples accumulated into every pixel
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera samples traced
	Workers         int           // Number of parallel workers
	Duration        time.Duration // Wall time of the render
}

// SamplesPerSecond returns the camera sample throughput of the render
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}
