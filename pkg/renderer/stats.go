package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	PrimaryRays     int           // Rays cast from the camera
	ReflectionRays  int           // Mirror bounces traced
	ShadowRays      int           // Occlusion tests toward lights
	MaxDepthReached int           // Deepest recursion level that hit a surface
	Elapsed         time.Duration // Wall time of the whole render
}

// Merge folds another set of counters into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.PrimaryRays += other.PrimaryRays
	s.ReflectionRays += other.ReflectionRays
	s.ShadowRays += other.ShadowRays
	s.MaxDepthReached = max(s.MaxDepthReached, other.MaxDepthReached)
	s.Elapsed = max(s.Elapsed, other.Elapsed)
}

// TotalRays returns every ray cast during the render
func (s RenderStats) TotalRays() int {
	return s.PrimaryRays + s.ReflectionRays + s.ShadowRays
}

// AverageSamples returns samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}
