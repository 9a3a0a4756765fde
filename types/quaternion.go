package types

import "github.com/go-gl/mathgl/mgl32"

// Quat and Mat4 are aliased straight from mathgl: the original quaternion
// math in this package was "taken from" that library anyway, and it already
// gives us the column-major Mat4 the camera transform (§4.E) needs, along
// with Ident4/Mul4x1.
type Quat = mgl32.Quat
type Mat4 = mgl32.Mat4

// Identity quaternion.
func QuatIdent() Quat {
	return mgl32.QuatIdent()
}

// Build a quaternion from an axis vector and an angle, in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	return mgl32.QuatRotate(angle, mgl32.Vec3(axis))
}

// Identity 4x4 matrix.
func Ident4() Mat4 {
	return mgl32.Ident4()
}

// Multiply a 4x4 matrix with a Vec4.
func Mul4x1(m Mat4, v Vec4) Vec4 {
	return Vec4(m.Mul4x1(mgl32.Vec4(v)))
}
