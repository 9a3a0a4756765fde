package scene

import "github.com/lumenray/core/types"

// NoTexture marks a texture slot as unset.
const NoTexture int32 = -1

// Material is a scene material. The core only ever reads BaseColor when
// shading (§4.F); the texture indices and metallic/roughness scalars are
// carried through for completeness and for collaborators further up the
// pipeline (texture baking, a PBR integrator) that this core does not
// implement.
type Material struct {
	// Base color (RGBA), used directly by the core's diagnostic shading.
	BaseColor types.Vec4

	// Opaque texture handles; -1 (NoTexture) means unset. Never
	// dereferenced by the core - textures are opaque blobs per §6.
	AlbedoTex            int32
	NormalTex            int32
	MetallicRoughnessTex int32

	Metallic  float32
	Roughness float32
}

// NewMaterial returns a material with the given base color and no attached
// textures.
func NewMaterial(baseColor types.Vec4) Material {
	return Material{
		BaseColor:            baseColor,
		AlbedoTex:            NoTexture,
		NormalTex:            NoTexture,
		MetallicRoughnessTex: NoTexture,
	}
}
