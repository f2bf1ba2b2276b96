package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalSamples   int     // Total number of samples taken
	MaxSamples     int     // Samples requested per pixel
	AverageSamples float64 // Average samples per pixel
}

func newRenderStats(width, height, maxSamples int) RenderStats {
	return RenderStats{
		TotalPixels: width * height,
		MaxSamples:  maxSamples,
	}
}

// finalize calculates derived statistics after all rows are rendered
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
