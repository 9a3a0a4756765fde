package compiler

import (
	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/types"
)

const (
	// Number of centroid bins evaluated per axis when scoring a split.
	// The spec leaves this open in the 4-16 range; 8 is its own "typical" pick.
	numBins = 8

	// The BVH builder will not attempt to evaluate splits along an axis
	// whose bbox side is below this length, mirroring the teacher's
	// minSideLength guard against degenerate thin boxes.
	minSideLength float32 = 1e-5

	// A node is forced into a leaf once it reaches this depth, which
	// keeps the traversal's fixed-depth-32 explicit stack from ever
	// overflowing (§4.D, §9).
	maxDepth = 31

	// Nodes with this many primitives or fewer are always leaves,
	// regardless of SAH score (§4.C "Termination").
	minLeafPrimitives = 2
)

type bin struct {
	bounds types.AABB
	count  int
}

// Build runs the top-down binned-SAH BVH build over sc's triangle array,
// permuting sc.Triangles and sc.Exts identically so primitive index i keeps
// referring to the same logical triangle (§4.B), and returns the resulting
// contiguous node array with nodes[0] as the root.
func Build(sc *scene.Scene) []scene.BvhNode {
	b := &builder{sc: sc, nodes: make([]scene.BvhNode, 1, 2*len(sc.Triangles)-1)}
	b.partition(0, 0, len(sc.Triangles), 0)
	logger.Debugf("bvh build: %d nodes, %d leaves, max depth %d", len(b.nodes), b.leaves, b.maxDepthSeen)
	return b.nodes
}

type builder struct {
	sc    *scene.Scene
	nodes []scene.BvhNode

	leaves       int
	maxDepthSeen int
}

// partition builds the subtree over the triangle range [start, end) into
// the already allocated slot b.nodes[nodeIndex].
func (b *builder) partition(nodeIndex uint32, start, end, depth int) {
	if depth > b.maxDepthSeen {
		b.maxDepthSeen = depth
	}

	bounds := types.EmptyAABB()
	for i := start; i < end; i++ {
		bounds = bounds.Union(b.sc.Triangles[i].BBox())
	}
	count := end - start

	if count <= minLeafPrimitives || depth >= maxDepth {
		b.setLeaf(nodeIndex, bounds, start, count)
		return
	}

	axis, boundary, bestCost := b.bestSplit(start, end, bounds)
	leafCost := bounds.SurfaceArea() * float32(count)
	if axis < 0 || bestCost >= leafCost {
		b.setLeaf(nodeIndex, bounds, start, count)
		return
	}

	mid := b.hoarePartition(start, end, axis, boundary)
	if mid == start || mid == end {
		// All centroids landed on one side; splitting would not
		// reduce the set, so leave this node as a leaf (§4.C tie-break).
		b.setLeaf(nodeIndex, bounds, start, count)
		return
	}

	// Both children are allocated before either subtree is built, so the
	// right child always sits at left+1.
	left := uint32(len(b.nodes))
	b.nodes = append(b.nodes, scene.BvhNode{}, scene.BvhNode{})
	b.nodes[nodeIndex] = scene.BvhNode{Bounds: bounds, Offset: left, Count: 0}

	b.partition(left, start, mid, depth+1)
	b.partition(left+1, mid, end, depth+1)
}

func (b *builder) setLeaf(nodeIndex uint32, bounds types.AABB, start, count int) {
	b.nodes[nodeIndex] = scene.BvhNode{
		Bounds: bounds,
		Offset: uint32(start),
		Count:  uint32(count),
	}
	b.leaves++
}

// bestSplit evaluates binned SAH splits along each of the 3 axes and
// returns the winning axis, its split boundary (a centroid coordinate) and
// its cost. Returns axis -1 if no axis produced a usable split.
func (b *builder) bestSplit(start, end int, bounds types.AABB) (int, float32, float32) {
	diag := bounds.Diagonal()

	bestAxis := -1
	var bestBoundary float32
	var bestCost float32 = types.InfHit

	for axis := 0; axis < 3; axis++ {
		if diag[axis] < minSideLength {
			continue
		}

		lo := bounds.Min[axis]
		binWidth := diag[axis] / float32(numBins)

		var bins [numBins]bin
		for i := range bins {
			bins[i].bounds = types.EmptyAABB()
		}

		for i := start; i < end; i++ {
			tri := b.sc.Triangles[i]
			idx := int((tri.Centroid[axis] - lo) / binWidth)
			if idx < 0 {
				idx = 0
			} else if idx >= numBins {
				idx = numBins - 1
			}
			bins[idx].bounds = bins[idx].bounds.Union(tri.BBox())
			bins[idx].count++
		}

		// Sweep the numBins-1 internal boundaries; boundary k separates
		// bins [0,k] from bins (k, numBins).
		for k := 0; k < numBins-1; k++ {
			leftBox := types.EmptyAABB()
			leftCount := 0
			for i := 0; i <= k; i++ {
				leftBox = leftBox.Union(bins[i].bounds)
				leftCount += bins[i].count
			}
			rightBox := types.EmptyAABB()
			rightCount := 0
			for i := k + 1; i < numBins; i++ {
				rightBox = rightBox.Union(bins[i].bounds)
				rightCount += bins[i].count
			}
			if leftCount == 0 || rightCount == 0 {
				continue
			}

			cost := leftBox.SurfaceArea()*float32(leftCount) + rightBox.SurfaceArea()*float32(rightCount)
			if cost < bestCost {
				bestCost = cost
				bestAxis = axis
				bestBoundary = lo + float32(k+1)*binWidth
			}
		}
	}

	return bestAxis, bestBoundary, bestCost
}

// hoarePartition reorders sc.Triangles[start:end] (and the aligned
// sc.Exts slice) so that every triangle with centroid[axis] < boundary
// precedes every triangle with centroid[axis] >= boundary, and returns the
// index of the first element of the right partition.
func (b *builder) hoarePartition(start, end, axis int, boundary float32) int {
	i, j := start, end-1
	for {
		for i <= j && b.sc.Triangles[i].Centroid[axis] < boundary {
			i++
		}
		for i <= j && b.sc.Triangles[j].Centroid[axis] >= boundary {
			j--
		}
		if i > j {
			break
		}
		b.swap(i, j)
		i++
		j--
	}
	return i
}

// swap exchanges triangle i and j along with their extension data so that
// index k continues to refer to the same logical primitive after a
// reorder (§4.B).
func (b *builder) swap(i, j int) {
	b.sc.Triangles[i], b.sc.Triangles[j] = b.sc.Triangles[j], b.sc.Triangles[i]
	b.sc.Exts[i], b.sc.Exts[j] = b.sc.Exts[j], b.sc.Exts[i]
}
