package types

import "math"

// AABB is an axis-aligned bounding box stored as a pair of 4-component
// vectors for alignment; the W component is unused.
type AABB struct {
	Min Vec4
	Max Vec4
}

// EmptyAABB returns an AABB that contains nothing; unioning it with any
// box or point yields that box or point unchanged.
func EmptyAABB() AABB {
	return AABB{
		Min: Vec4{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32, 0},
		Max: Vec4{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32, 0},
	}
}

// Union returns the smallest AABB containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: MinVec4(a.Min, b.Min),
		Max: MaxVec4(a.Max, b.Max),
	}
}

// ExtendPoint grows the AABB so that it also contains p.
func (a AABB) ExtendPoint(p Vec3) AABB {
	pv := p.Vec4(0)
	return AABB{
		Min: MinVec4(a.Min, pv),
		Max: MaxVec4(a.Max, pv),
	}
}

// Diagonal returns Max - Min.
func (a AABB) Diagonal() Vec3 {
	return a.Max.Vec3().Sub(a.Min.Vec3())
}

// Centroid returns the midpoint of the box.
func (a AABB) Centroid() Vec3 {
	return a.Min.Vec3().Add(a.Max.Vec3()).Mul(0.5)
}

// SurfaceArea returns the total area of the box's six faces.
func (a AABB) SurfaceArea() float32 {
	d := a.Diagonal()
	return 2 * (d[0]*d[1] + d[1]*d[2] + d[0]*d[2])
}

// Contains reports whether b is fully enclosed by a, component-wise.
func (a AABB) Contains(b AABB) bool {
	return a.Min[0] <= b.Min[0] && a.Min[1] <= b.Min[1] && a.Min[2] <= b.Min[2] &&
		a.Max[0] >= b.Max[0] && a.Max[1] >= b.Max[1] && a.Max[2] >= b.Max[2]
}
