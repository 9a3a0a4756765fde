package types

// TRS is a translation-rotation-scale composite transform, evaluated to a
// Mat4 on demand rather than kept pre-flattened; scenes only re-evaluate it
// when a camera moves or an instance transform changes.
type TRS struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// IdentTRS returns the transform that leaves points and vectors unchanged.
func IdentTRS() TRS {
	return TRS{
		Translation: Vec3{0, 0, 0},
		Rotation:    QuatIdent(),
		Scale:       Vec3{1, 1, 1},
	}
}

// Mat4 flattens the TRS into a single column-major 4x4 matrix, applying
// scale first, then rotation, then translation, matching the order a
// camera or instance transform is expected to compose in.
func (t TRS) Mat4() Mat4 {
	scale := Mat4{
		t.Scale[0], 0, 0, 0,
		0, t.Scale[1], 0, 0,
		0, 0, t.Scale[2], 0,
		0, 0, 0, 1,
	}
	rot := t.Rotation.Mat4()
	translate := Ident4()
	translate[12] = t.Translation[0]
	translate[13] = t.Translation[1]
	translate[14] = t.Translation[2]

	return translate.Mul4(rot.Mul4(scale))
}
