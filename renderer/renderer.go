package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/lumenray/core/log"
	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/scene/compiler"
	"github.com/lumenray/core/tracer"
)

var logger = log.New("renderer")

// Renderer owns the compiled scene (triangles, extensions, materials,
// camera and its BVH), the framebuffer it draws into, and the worker
// pool that dispatches pixels across it (§4.F, §5, §6).
type Renderer struct {
	mu sync.RWMutex

	opts Options
	fb   *Framebuffer
	sch  tracer.BlockScheduler

	sc    *scene.Scene
	nodes []scene.BvhNode

	stats FrameStats
}

// New returns a Renderer with no scene loaded and a zero-sized
// framebuffer; LoadScene and Resize must be called before Draw.
func New(opts Options) *Renderer {
	return &Renderer{
		opts: opts,
		fb:   NewFramebuffer(),
		sch:  tracer.NewStaticScheduler(),
	}
}

func (r *Renderer) numWorkers() int {
	if r.opts.NumWorkers > 0 {
		return r.opts.NumWorkers
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// Resize reallocates the framebuffer to (w, h). A pending resize is
// applied immediately; per §5 it is the caller's responsibility to only
// call Resize/LoadScene/SetCamera between frames, never concurrently
// with Draw.
func (r *Renderer) Resize(w, h uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fb.Resize(w, h)
}

// LoadScene compiles sc's BVH and replaces the renderer's current scene.
// A failed compile leaves the previously loaded scene (if any) in place.
func (r *Renderer) LoadScene(sc *scene.Scene) error {
	start := time.Now()
	nodes, err := compiler.Compile(sc)
	if err != nil {
		return err
	}
	buildTime := time.Since(start)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sc = sc
	r.nodes = nodes
	r.stats.BuildTime = buildTime
	r.stats.Triangles = len(sc.Triangles)
	r.stats.Nodes = len(nodes)

	return nil
}

// SetCamera replaces the loaded scene's camera. Returns ErrSceneNotDefined
// if no scene has been loaded yet.
func (r *Renderer) SetCamera(cam scene.Camera) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sc == nil {
		return ErrSceneNotDefined
	}
	r.sc.Camera = cam
	return nil
}

// Stats returns timings for the last LoadScene and Draw calls.
func (r *Renderer) Stats() FrameStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// Framebuffer returns the renderer's output buffer. Callers must not
// mutate it concurrently with Draw.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Draw renders one frame: every pixel is given a primary ray, traced
// against the current BVH, shaded, and packed into the framebuffer.
// Rows are statically partitioned across a fixed-size worker pool (§4.F,
// §5); draw itself never mutates the scene or BVH and is safe to call
// repeatedly for an unchanged scene with bit-identical output regardless
// of worker count.
func (r *Renderer) Draw() error {
	r.mu.RLock()
	sc := r.sc
	nodes := r.nodes
	fb := r.fb
	r.mu.RUnlock()

	if sc == nil {
		return ErrSceneNotDefined
	}
	if fb.Width == 0 || fb.Height == 0 {
		return ErrResizeZero
	}

	start := time.Now()

	numWorkers := r.numWorkers()
	if numWorkers > int(fb.Height) {
		numWorkers = int(fb.Height)
	}
	blocks := r.sch.Schedule(numWorkers, fb.Height)

	var wg sync.WaitGroup
	y := uint32(0)
	for _, blockH := range blocks {
		if blockH == 0 {
			continue
		}
		rowStart, rowEnd := y, y+blockH
		y = rowEnd

		wg.Add(1)
		go func(rowStart, rowEnd uint32) {
			defer wg.Done()
			drawRows(sc, nodes, fb, rowStart, rowEnd)
		}(rowStart, rowEnd)
	}
	wg.Wait()

	renderTime := time.Since(start)

	r.mu.Lock()
	r.stats.RenderTime = renderTime
	r.stats.Workers = len(blocks)
	r.mu.Unlock()

	logger.Debugf("drew frame %dx%d across %d workers in %s", fb.Width, fb.Height, len(blocks), renderTime)

	return nil
}

// drawRows renders the half-open row range [rowStart, rowEnd) of fb. It
// touches no shared mutable state other than its own disjoint slice of
// fb.Pixels, so concurrent calls for disjoint ranges never race (§5).
func drawRows(sc *scene.Scene, nodes []scene.BvhNode, fb *Framebuffer, rowStart, rowEnd uint32) {
	w, h := int(fb.Width), int(fb.Height)
	for y := int(rowStart); y < int(rowEnd); y++ {
		for x := 0; x < w; x++ {
			ray := tracer.PrimaryRay(sc.Camera, x, y, w, h)
			tracer.Trace(&ray, nodes, sc.Triangles)
			fb.Set(uint32(x), uint32(y), shade(sc, ray.Hit))
		}
	}
}
