// package shading evaluates final fragment color from interpolated geometry,
// resolved material channels, and a bounded list of dynamic lights.
//
// Two shading models coexist. The physically based path resolves a PBRFrag
// and accumulates Cook-Torrance radiance which is then tone mapped and gamma
// encoded. The analytic path resolves a BlinnFrag from a material list and
// accumulates ambient, diffuse, and specular terms with no tone mapping.
// Every evaluation is a pure function of its inputs; there is no state
// shared between fragments and no error path — anomalies are handled by
// inline clamping and silent fallbacks.
package shading

import (
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/go-gl/mathgl/mgl32"
)

// PBRFrag is the per-fragment resolved surface description for the
// physically based path.
type PBRFrag struct {
	// Albedo is the resolved base color.
	Albedo mgl32.Vec3
	// Normal is the resolved world-space shading normal.
	Normal mgl32.Vec3
	// Metallic is the resolved metallic factor.
	Metallic float32
	// Roughness is the resolved roughness factor.
	Roughness float32
}

// BlinnFrag is the per-fragment resolved surface description for the
// analytic path.
type BlinnFrag struct {
	// Ambient is the resolved ambient reflectance.
	Ambient mgl32.Vec3
	// Diffuse is the resolved diffuse reflectance.
	Diffuse mgl32.Vec3
	// Specular is the resolved specular reflectance.
	Specular mgl32.Vec3
	// Roughness is the resolved roughness factor.
	Roughness float32
}

// ResolvePBR resolves each material channel to either a sampled texel or the
// material's global value, selected independently per channel by the
// material's channel mask. Texture coordinates are sampled as-is, with no
// vertical flip. A selected channel whose texture is absent falls back to
// the global value rather than faulting.
//
// Parameters:
//   - m: the draw's physically based material
//   - uv: the fragment's texture coordinates
//   - normal: the interpolated world-space normal
//
// Returns:
//   - PBRFrag: the resolved surface description
func ResolvePBR(m material.Material, uv mgl32.Vec2, normal mgl32.Vec3) PBRFrag {
	frag := PBRFrag{
		Albedo:    m.Albedo(),
		Normal:    normal,
		Metallic:  m.Metallic(),
		Roughness: m.Roughness(),
	}

	channels := m.Channels()
	if channels.Has(material.UseAlbedoMap) && m.AlbedoTexture() != nil {
		frag.Albedo = m.AlbedoTexture().Sample(uv.X(), uv.Y()).Vec3()
	}
	if channels.Has(material.UseNormalMap) && m.NormalTexture() != nil {
		// Texel is stored remapped to [0, 1]; restore the signed vector.
		sampled := m.NormalTexture().Sample(uv.X(), uv.Y()).Vec3()
		n := sampled.Mul(2).Sub(mgl32.Vec3{1, 1, 1})
		if l := n.Len(); l > 0 {
			frag.Normal = n.Mul(1 / l)
		}
	}
	if channels.Has(material.UseMetallicMap) && m.MetallicTexture() != nil {
		frag.Metallic = m.MetallicTexture().Sample(uv.X(), uv.Y()).X()
	}
	if channels.Has(material.UseRoughnessMap) && m.RoughnessTexture() != nil {
		frag.Roughness = m.RoughnessTexture().Sample(uv.X(), uv.Y()).X()
	}

	return frag
}

// ResolveBlinn resolves the analytic material for a fragment by its flat
// material index. An index outside [0, count) resolves to the documented
// fallback material; out-of-range selection is never a fault.
//
// Parameters:
//   - materials: the draw's material list
//   - index: the fragment's flat material index
//
// Returns:
//   - BlinnFrag: the resolved surface description
func ResolveBlinn(materials *material.BlinnMaterialList, index int32) BlinnFrag {
	m := materials.Resolve(index)
	return BlinnFrag{
		Ambient:   m.Ambient,
		Diffuse:   m.Diffuse,
		Specular:  m.Specular,
		Roughness: m.Roughness,
	}
}
