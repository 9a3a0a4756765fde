package scene

import (
	"math"

	"github.com/lumenray/core/types"
)

// Camera is a world-from-camera transform plus the half-angle derived from
// the vertical field of view (§4.E). Unlike the teacher's frustum-corner
// precompute (used to amortize ray generation across an OpenCL kernel
// launch), rays here are generated directly from Transform per pixel, since
// there is no GPU dispatch to amortize the frustum corners over.
type Camera struct {
	Transform types.TRS
	HalfAngle float32
}

// NewCamera builds a camera from a transform and a vertical field of view,
// in radians.
func NewCamera(transform types.TRS, verticalFOV float32) Camera {
	return Camera{
		Transform: transform,
		HalfAngle: verticalFOV * 0.5,
	}
}

// defaultFrameFOV is the vertical field of view FrameBounds uses to frame
// a scene's bounds; chosen to leave visible margin around the bounds
// rather than crop them tight.
const defaultFrameFOV = float32(math.Pi) / 3

// FrameBounds returns a camera positioned so that bounds is entirely
// visible within its field of view, looking at bounds' centroid from an
// isometric-like angle (rayca-model::scene::Scene::bounds()'s consumer,
// §3 "used by the demo CLI to frame a default camera when one isn't
// supplied"). A degenerate (point) bounds has its radius clamped to a small
// minimum so the camera stays finite; an empty bounds is not special-cased.
func FrameBounds(bounds types.AABB) Camera {
	center := bounds.Centroid()
	radius := bounds.Diagonal().Len() * 0.5
	if radius < 1e-3 {
		radius = 1e-3
	}

	halfAngle := defaultFrameFOV * 0.5
	distance := radius / float32(math.Sin(float64(halfAngle)))

	eyeDir := types.Vec3{1, 1, 1}.Normalize()
	eye := center.Add(eyeDir.Mul(distance))

	forward := center.Sub(eye).Normalize()
	rotation := rotationBetween(types.Vec3{0, 0, -1}, forward)

	return NewCamera(types.TRS{Translation: eye, Rotation: rotation, Scale: types.Vec3{1, 1, 1}}, defaultFrameFOV)
}

// rotationBetween returns the quaternion that rotates the unit vector from
// onto the unit vector to, handling the parallel and anti-parallel cases
// where the rotation axis is otherwise undefined.
func rotationBetween(from, to types.Vec3) types.Quat {
	cosAngle := from.Dot(to)
	if cosAngle > 1-1e-6 {
		return types.QuatIdent()
	}

	axis := from.Cross(to)
	if cosAngle < -1+1e-6 {
		// Antiparallel: any axis perpendicular to from works.
		axis = types.Vec3{0, 1, 0}.Cross(from)
		if axis.Len() < 1e-6 {
			axis = types.Vec3{1, 0, 0}.Cross(from)
		}
		return types.QuatFromAxisAngle(axis.Normalize(), math.Pi)
	}

	if cosAngle > 1 {
		cosAngle = 1
	} else if cosAngle < -1 {
		cosAngle = -1
	}
	angle := float32(math.Acos(float64(cosAngle)))
	return types.QuatFromAxisAngle(axis.Normalize(), angle)
}
