package scene

import "github.com/lumenray/core/types"

// Triangle is the hot, build-and-traversal-time representation of a
// triangle primitive: three contiguous positions plus their precomputed
// centroid. Traversal and the BVH builder only ever touch this struct, not
// TriangleExt, keeping the inner loop's working set small.
type Triangle struct {
	Positions [3]types.Vec3
	Centroid  types.Vec3
}

// NewTriangle builds a Triangle from its three corner positions, clockwise
// or counter-clockwise (winding only matters for shading normals, computed
// separately in TriangleExt).
func NewTriangle(positions [3]types.Vec3) Triangle {
	centroid := positions[0].Add(positions[1]).Add(positions[2]).Mul(1.0 / 3.0)
	return Triangle{Positions: positions, Centroid: centroid}
}

// BBox returns the triangle's axis-aligned bounding box.
func (t Triangle) BBox() types.AABB {
	min := types.MinVec3(types.MinVec3(t.Positions[0], t.Positions[1]), t.Positions[2])
	max := types.MaxVec3(types.MaxVec3(t.Positions[0], t.Positions[1]), t.Positions[2])
	return types.AABB{Min: min.Vec4(0), Max: max.Vec4(0)}
}

// Degenerate reports whether the triangle's vertices are collinear (zero
// area), within a small tolerance; such a triangle can never be hit and
// its BBox may be degenerate (a plane or a point).
func (t Triangle) Degenerate() bool {
	e1 := t.Positions[1].Sub(t.Positions[0])
	e2 := t.Positions[2].Sub(t.Positions[0])
	return e1.Cross(e2).Len() < 1e-12
}

// TriangleExt holds the cold, per-vertex attributes of a triangle: shading
// normal, tangent, bitangent, vertex colour and uv for each of the three
// corners, plus the index of the material that shades it. Kept separate
// from Triangle so traversal never has to load it.
type TriangleExt struct {
	Normal    [3]types.Vec3
	Tangent   [3]types.Vec3
	Bitangent [3]types.Vec3
	Color     [3]types.Vec4
	UV        [3]types.Vec2

	MaterialIndex uint32
}
