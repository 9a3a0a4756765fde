package renderer

import "time"

// FrameStats reports timings for the most recent scene compile and the
// most recent frame draw.
type FrameStats struct {
	// BuildTime is how long the last LoadScene took to compile the BVH.
	BuildTime time.Duration

	// RenderTime is how long the last Draw took.
	RenderTime time.Duration

	// Workers is the dispatcher pool size used for the last Draw.
	Workers int

	// Triangles and Nodes describe the last compiled scene's size.
	Triangles int
	Nodes     int
}
