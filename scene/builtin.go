package scene

import (
	"math"

	"github.com/lumenray/core/types"
)

// BuiltinTriangle returns a minimal scene containing a single triangle in
// the XY plane facing the default camera, shaded with a flat red
// material. It stands in for the excluded glTF/OBJ loader in tests and
// the demo CLI's default scene (§6 "Scene loader").
func BuiltinTriangle() *Scene {
	sc := NewScene()
	matIdx := sc.AddMaterial(NewMaterial(types.Vec4{0.8, 0.1, 0.1, 1}))

	tri := NewTriangle([3]types.Vec3{
		{-1, -1, 0},
		{1, -1, 0},
		{0, 1, 0},
	})
	ext := flatExt(matIdx)

	if _, err := sc.AddTriangle(tri, ext); err != nil {
		panic(err)
	}

	sc.Camera = NewCamera(
		types.TRS{Translation: types.Vec3{0, 0, 3}, Rotation: types.QuatIdent(), Scale: types.Vec3{1, 1, 1}},
		math.Pi/4,
	)
	return sc
}

// BuiltinCheckerboard returns a scene with two overlapping shapes, a
// nearer triangle "cube face" stand-in and a farther, larger triangle,
// each with its own material, used by tests and the demo CLI to exercise
// occlusion ordering. It is a triangle-soup analogue of the Rust
// original's procedural checkerboard-plane demo scene.
func BuiltinCheckerboard() *Scene {
	sc := NewScene()

	nearMat := sc.AddMaterial(NewMaterial(types.Vec4{0.1, 0.6, 0.9, 1}))
	farMat := sc.AddMaterial(NewMaterial(types.Vec4{0.9, 0.8, 0.1, 1}))

	near := NewTriangle([3]types.Vec3{
		{-0.5, -0.5, 1},
		{0.5, -0.5, 1},
		{0, 0.5, 1},
	})
	far := NewTriangle([3]types.Vec3{
		{-2, -2, -1},
		{2, -2, -1},
		{0, 2, -1},
	})

	if _, err := sc.AddTriangle(near, flatExt(nearMat)); err != nil {
		panic(err)
	}
	if _, err := sc.AddTriangle(far, flatExt(farMat)); err != nil {
		panic(err)
	}

	sc.Camera = NewCamera(
		types.TRS{Translation: types.Vec3{0, 0, 5}, Rotation: types.QuatIdent(), Scale: types.Vec3{1, 1, 1}},
		math.Pi/3,
	)
	return sc
}

// flatExt returns a TriangleExt with all three vertices sharing a flat
// +Z normal, zero tangent/bitangent/uv, opaque white vertex color and
// the given material index. Good enough for the diagnostic depth-cue
// shading this core implements, which never reads normals or uv.
func flatExt(matIdx uint32) TriangleExt {
	normal := types.Vec3{0, 0, 1}
	white := types.Vec4{1, 1, 1, 1}
	return TriangleExt{
		Normal:        [3]types.Vec3{normal, normal, normal},
		Color:         [3]types.Vec4{white, white, white},
		MaterialIndex: matIdx,
	}
}
