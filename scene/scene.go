package scene

import (
	"errors"

	"github.com/lumenray/core/types"
)

// ErrNoMaterial is returned by AddTriangle when the material index does
// not reference a material already added to the scene, mirroring the
// teacher's "material must be added before the primitive that uses it"
// ordering rule.
var ErrNoMaterial = errors.New("scene: triangle references unknown material; add the material to the scene first")

// ErrDegenerateTriangle is returned by AddTriangle for a triangle whose
// three vertices are collinear.
var ErrDegenerateTriangle = errors.New("scene: triangle vertices are collinear")

// Scene owns the primitive store (component B): the hot triangle array,
// its cold per-vertex extension array kept index-aligned with it, the
// material table, the camera and a background color. The BVH node array
// that indexes into Triangles/Exts is built separately (see the compiler
// package) and owned by the renderer alongside this scene.
type Scene struct {
	Triangles []Triangle
	Exts      []TriangleExt
	Materials []Material

	Camera Camera

	// Color returned for rays that hit nothing, generalizing §4.F's
	// hardcoded "otherwise colour = opaque black" to a scene-settable
	// background. The Vec4 zero value is transparent (A=0), not opaque
	// black, so NewScene sets this explicitly rather than relying on it.
	BgColor types.Vec4
}

// NewScene returns an empty scene with a default (identity) camera and an
// opaque black background, matching §4.F's miss colour unless overridden.
func NewScene() *Scene {
	return &Scene{
		Camera:  NewCamera(types.IdentTRS(), 1.0),
		BgColor: types.Vec4{0, 0, 0, 1},
	}
}

// AddMaterial appends a material to the scene's material table and
// returns its index.
func (s *Scene) AddMaterial(mat Material) uint32 {
	s.Materials = append(s.Materials, mat)
	return uint32(len(s.Materials) - 1)
}

// AddTriangle appends a triangle and its extension data to the primitive
// store, enforcing that ext.MaterialIndex already refers to a material in
// the scene (AddMaterial order requirement) and that the triangle is not
// degenerate.
func (s *Scene) AddTriangle(tri Triangle, ext TriangleExt) (int, error) {
	if int(ext.MaterialIndex) >= len(s.Materials) {
		return -1, ErrNoMaterial
	}
	if tri.Degenerate() {
		return -1, ErrDegenerateTriangle
	}
	s.Triangles = append(s.Triangles, tri)
	s.Exts = append(s.Exts, ext)
	return len(s.Triangles) - 1, nil
}

// Bounds returns the AABB of the whole scene, i.e. the union of every
// triangle's bounding box. Returns an empty AABB for a scene with no
// triangles.
func (s *Scene) Bounds() types.AABB {
	box := types.EmptyAABB()
	for _, t := range s.Triangles {
		box = box.Union(t.BBox())
	}
	return box
}
