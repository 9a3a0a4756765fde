package renderer

// Options configures a Renderer at construction time. Frame dimensions
// are supplied later via Resize rather than here, matching the
// teacher's mutable-framebuffer design; sample-count and bounce knobs
// from the teacher's path tracer have no equivalent in this depth-cue
// shading model and are dropped.
type Options struct {
	// NumWorkers overrides the dispatcher's worker pool size. Zero
	// means runtime.NumCPU().
	NumWorkers int
}
