package compiler

import (
	"errors"
	"time"

	"github.com/lumenray/core/log"
	"github.com/lumenray/core/scene"
)

// MaxPrimitives bounds how many triangles a single scene can contain,
// guarding the node pool's 2*N-1 cap (§6, §7 "capacity" errors) against a
// runaway scene load.
const MaxPrimitives = 1 << 20

var (
	// ErrEmptyScene is returned by Compile for a scene with no triangles.
	ErrEmptyScene = errors.New("compiler: scene has no triangles")

	// ErrSceneTooLarge is returned by Compile when the triangle count
	// exceeds MaxPrimitives.
	ErrSceneTooLarge = errors.New("compiler: primitive count exceeds configured bound")

	// ErrNodePoolExhausted is returned by Compile if the builder ever
	// produced more than the 2*N-1 nodes the node array is guaranteed to
	// fit (§3 invariants, §7 "Capacity"). Unreachable for this builder,
	// whose leaf/split decision can only ever bisect a range, but the
	// bound is checked at the boundary rather than trusted silently.
	ErrNodePoolExhausted = errors.New("compiler: bvh node pool exceeded 2*N-1 nodes")
)

var logger = log.New("compiler")

// Compile builds a BVH over the scene's triangle array, reordering
// Triangles/Exts in place (§3's "the builder may reorder the triangle
// array") and returning the resulting contiguous node array. A Compile that
// fails with ErrEmptyScene or ErrSceneTooLarge leaves the scene's triangle
// array untouched; the ErrNodePoolExhausted check runs after the build has
// already reordered it.
func Compile(sc *scene.Scene) ([]scene.BvhNode, error) {
	n := len(sc.Triangles)
	if n == 0 {
		return nil, ErrEmptyScene
	}
	if n > MaxPrimitives {
		return nil, ErrSceneTooLarge
	}

	start := time.Now()
	nodes := Build(sc)
	if len(nodes) > 2*n-1 {
		return nil, ErrNodePoolExhausted
	}
	logger.Noticef("compiled bvh: %d nodes over %d triangles in %d ms", len(nodes), n, time.Since(start).Nanoseconds()/1e6)

	return nodes, nil
}
