package renderer

import (
	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/types"
)

// shade implements the diagnostic depth-cue shading of §4.F: on a hit,
// the triangle's material base color divided by hit.depth/8; on a miss,
// the scene's background color (generalizing the spec's hardcoded opaque
// black). Components are clamped to [0,1] by the caller when packing.
func shade(sc *scene.Scene, hit types.Hit) types.Vec4 {
	if hit.Depth >= types.InfHit {
		return sc.BgColor
	}

	ext := sc.Exts[hit.PrimitiveIndex]
	mat := sc.Materials[ext.MaterialIndex]
	return mat.BaseColor.Mul(1 / (hit.Depth / 8))
}
