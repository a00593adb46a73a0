package shading

import (
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/Carmen-Shannon/lumen-go/engine/vertex"
	"github.com/go-gl/mathgl/mgl32"
)

// ambientFactor is the fixed ambient fraction of albedo added after the
// light loop in the physically based path.
const ambientFactor = 0.03

// ShadingModel identifies which shading model a draw uses.
type ShadingModel int

const (
	// ShadingModelPBR selects the physically based Cook-Torrance path.
	ShadingModelPBR ShadingModel = iota
	// ShadingModelBlinn selects the analytic ambient/diffuse/specular path.
	ShadingModelBlinn
)

// PBRDraw is the per-draw data for the physically based path.
type PBRDraw struct {
	// Material is the draw's global material with its channel mask.
	Material material.Material
	// Lights is the draw's light list.
	Lights *light.LightList
}

// BlinnDraw is the per-draw data for the analytic path.
type BlinnDraw struct {
	// Materials is the draw's material list, selected by flat index.
	Materials *material.BlinnMaterialList
	// Colormap is the surface texture multiplied into the lighting sum.
	Colormap *texture.Texture2D
	// Lights is the draw's light list.
	Lights *light.BlinnLightList
}

// Draw is the tagged per-draw shading configuration. Exactly one of the
// variant fields matching Model is populated; the two models have disjoint
// data shapes and never share state.
type Draw struct {
	// Model selects the active shading model.
	Model ShadingModel
	// PBR holds the draw data when Model is ShadingModelPBR.
	PBR *PBRDraw
	// Blinn holds the draw data when Model is ShadingModelBlinn.
	Blinn *BlinnDraw
}

// Shade evaluates the final color for one fragment under the draw's shading
// model.
//
// Parameters:
//   - in: the fragment's interpolants
//
// Returns:
//   - mgl32.Vec4: the final RGBA color
func (d *Draw) Shade(in vertex.Interpolants) mgl32.Vec4 {
	switch d.Model {
	case ShadingModelBlinn:
		return ShadeBlinn(d.Blinn.Materials, d.Blinn.Colormap, in, d.Blinn.Lights)
	default:
		return ShadePBR(d.PBR.Material, in, d.PBR.Lights)
	}
}

// ShadePBR evaluates the full physically based fragment pipeline: channel
// resolution, per-light Cook-Torrance accumulation, the fixed ambient term,
// Reinhard tone mapping, and gamma encoding. With an empty light list the
// output reduces to the tone-mapped ambient term alone.
//
// Parameters:
//   - m: the draw's material
//   - in: the fragment's interpolants
//   - lights: the draw's light list
//
// Returns:
//   - mgl32.Vec4: the final RGBA color with alpha 1
func ShadePBR(m material.Material, in vertex.Interpolants, lights *light.LightList) mgl32.Vec4 {
	frag := ResolvePBR(m, in.UV, in.WorldNormal)
	radiance := AccumulateRadiance(frag, in.WorldPosition, in.ViewPosition, lights)
	color := frag.Albedo.Mul(ambientFactor).Add(radiance)
	color = GammaEncode(ToneMap(color))
	return color.Vec4(1)
}

// ShadeBlinn evaluates the full analytic fragment pipeline: material index
// resolution, per-light ambient/diffuse/specular accumulation, and
// modulation of the sampled colormap texel. The colormap is sampled with the
// vertical texture coordinate flipped, unlike the physically based path, and
// no tone mapping or gamma step is applied. With an empty light list the
// output is black.
//
// Parameters:
//   - materials: the draw's material list
//   - colormap: the surface texture
//   - in: the fragment's interpolants
//   - lights: the draw's light list
//
// Returns:
//   - mgl32.Vec4: the final RGBA color, alpha taken from the sampled texel
func ShadeBlinn(materials *material.BlinnMaterialList, colormap *texture.Texture2D, in vertex.Interpolants, lights *light.BlinnLightList) mgl32.Vec4 {
	frag := ResolveBlinn(materials, in.MaterialIndex)
	total := AccumulateBlinn(frag, in.WorldNormal, in.WorldPosition, in.ViewPosition, lights)

	texel := mgl32.Vec4{1, 1, 1, 1}
	if colormap != nil {
		texel = colormap.Sample(in.UV.X(), 1-in.UV.Y())
	}
	lit := mulVec3(texel.Vec3(), total)
	return lit.Vec4(texel.W())
}
