package tracer

import (
	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/types"
)

// PrimaryRay generates the primary ray for pixel (x, y) of a w×h
// framebuffer through cam, per §4.E's pixel-to-ray formula.
func PrimaryRay(cam scene.Camera, x, y, w, h int) types.Ray {
	fw, fh := float32(w), float32(h)

	u := (2*(float32(x)+0.5)/fw - 1) * cam.HalfAngle * (fw / fh)
	v := (1 - 2*(float32(y)+0.5)/fh) * cam.HalfAngle

	transform := cam.Transform.Mat4()

	origin := types.Mul4x1(transform, types.Vec4{0, 0, 0, 1})
	dir := types.Mul4x1(transform, types.Vec4{u, v, -1, 0})

	return types.NewRay(
		types.Vec3{origin[0], origin[1], origin[2]},
		types.Vec3{dir[0], dir[1], dir[2]},
	)
}
