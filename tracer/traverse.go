package tracer

import (
	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/types"
)

// stackDepth is the fixed depth of the traversal's explicit stack (§4.D).
// The BVH builder caps recursion at a depth that guarantees this never
// overflows for any tree it can produce.
const stackDepth = 32

// parallelEpsilon is the |a| rejection threshold for a ray parallel to the
// triangle's plane in the Möller-Trumbore test (§4.D).
const parallelEpsilon float32 = 1e-5

// hitEpsilon is the minimum accepted t for a ray/triangle hit, keeping a
// ray from re-hitting the triangle it was just cast from.
const hitEpsilon float32 = 1e-4

// slabAABB performs the ray/AABB slab test. It returns the near
// intersection distance and true if the ray enters the box before
// ray.Hit.Depth and leaves it at a positive distance; the near distance
// is negative when the ray origin lies inside the box.
func slabAABB(ray types.Ray, box types.AABB) (float32, bool) {
	var tmin, tmax float32 = -types.InfHit, types.InfHit

	for axis := 0; axis < 3; axis++ {
		t1 := (box.Min[axis] - ray.Origin[axis]) * ray.InvDir[axis]
		t2 := (box.Max[axis] - ray.Origin[axis]) * ray.InvDir[axis]

		lo, hi := t1, t2
		if t1 > t2 {
			lo, hi = t2, t1
		}
		if lo > tmin {
			tmin = lo
		}
		if hi < tmax {
			tmax = hi
		}
	}

	if tmax >= tmin && tmax > 0 && tmin < ray.Hit.Depth {
		return tmin, true
	}
	return types.InfHit, false
}

// intersectTriangle performs a Möller-Trumbore ray/triangle test and, on a
// hit closer than the ray's current hit, updates ray.Hit in place.
func intersectTriangle(ray *types.Ray, tri scene.Triangle, primIndex int) {
	e1 := tri.Positions[1].Sub(tri.Positions[0])
	e2 := tri.Positions[2].Sub(tri.Positions[0])

	pvec := ray.Dir.Cross(e2)
	a := e1.Dot(pvec)
	if a > -parallelEpsilon && a < parallelEpsilon {
		return
	}
	f := 1.0 / a

	tvec := ray.Origin.Sub(tri.Positions[0])
	u := f * tvec.Dot(pvec)
	if u < 0 || u > 1 {
		return
	}

	qvec := tvec.Cross(e1)
	v := f * ray.Dir.Dot(qvec)
	if v < 0 || u+v > 1 {
		return
	}

	t := f * e2.Dot(qvec)
	if t <= hitEpsilon || t >= ray.Hit.Depth {
		return
	}

	ray.Hit.Depth = t
	ray.Hit.U = u
	ray.Hit.V = v
	ray.Hit.PrimitiveIndex = int32(primIndex)
}

// Trace walks the BVH front-to-back using an explicit stack, testing every
// triangle referenced by a visited leaf, and updates ray.Hit in place to
// reflect the closest intersection found (§4.D). Trace never reads beyond
// len(nodes) or len(triangles), is re-entrant, and allocates nothing on the
// heap: the stack lives on the Go call stack as a fixed-size array.
func Trace(ray *types.Ray, nodes []scene.BvhNode, triangles []scene.Triangle) {
	if len(nodes) == 0 {
		return
	}

	var stack [stackDepth]uint32
	sp := 0
	nodeIndex := uint32(0)

	for {
		node := nodes[nodeIndex]

		if node.IsLeaf() {
			first := int(node.Offset)
			for i := first; i < first+int(node.Count); i++ {
				intersectTriangle(ray, triangles[i], i)
			}
		} else {
			leftIdx := node.LeftChild()
			rightIdx := node.RightChild()

			leftT, leftHit := slabAABB(*ray, nodes[leftIdx].Bounds)
			rightT, rightHit := slabAABB(*ray, nodes[rightIdx].Bounds)

			if leftHit && rightHit {
				nearIdx, farIdx, farT := leftIdx, rightIdx, rightT
				if rightT < leftT {
					nearIdx, farIdx, farT = rightIdx, leftIdx, leftT
				}
				if farT <= ray.Hit.Depth && sp < stackDepth {
					stack[sp] = farIdx
					sp++
				}
				nodeIndex = nearIdx
				continue
			} else if leftHit {
				nodeIndex = leftIdx
				continue
			} else if rightHit {
				nodeIndex = rightIdx
				continue
			}
			// neither child hit: fall through to pop below
		}

		if sp == 0 {
			return
		}
		sp--
		nodeIndex = stack[sp]
	}
}
