package renderer

import "time"

// RenderStats summarizes a completed render pass
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	TotalSamples    int
	Workers         int
	Duration        time.Duration
}

// SamplesPerSecond returns the overall sampling throughput
func (s RenderStats) SamplesPerSecond() float64 {
	seconds := s.Duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / seconds
}
