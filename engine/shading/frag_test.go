package shading

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/material"
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func solidTexture(r, g, b, a byte) *texture.Texture2D {
	return texture.NewTexture2D(common.TextureStagingData{
		Pixels: []byte{r, g, b, a},
		Width:  1,
		Height: 1,
	})
}

func TestResolvePBRSelectsChannelsIndependently(t *testing.T) {
	m := material.NewMaterial(
		material.WithAlbedo(mgl32.Vec3{0, 0, 1}),
		material.WithMetallic(0.9),
		material.WithRoughness(0.1),
		material.WithAlbedoTexture(solidTexture(255, 0, 0, 255)),
		material.WithMetallicTexture(solidTexture(0, 0, 0, 255)),
		// Only the albedo channel stays selected.
		material.WithChannels(material.UseAlbedoMap),
	)

	frag := ResolvePBR(m, mgl32.Vec2{0.5, 0.5}, mgl32.Vec3{0, 1, 0})
	assert.InDelta(t, 1, frag.Albedo.X(), 1e-3, "albedo comes from the texture")
	assert.InDelta(t, 0, frag.Albedo.Z(), 1e-3)
	assert.Equal(t, float32(0.9), frag.Metallic, "deselected metallic keeps the global value")
	assert.Equal(t, float32(0.1), frag.Roughness)
}

func TestResolvePBRSelectedChannelWithoutTextureFallsBack(t *testing.T) {
	m := material.NewMaterial(
		material.WithAlbedo(mgl32.Vec3{0.2, 0.4, 0.6}),
		material.WithChannels(material.UseAlbedoMap|material.UseNormalMap),
	)

	normal := mgl32.Vec3{0, 0, 1}
	frag := ResolvePBR(m, mgl32.Vec2{}, normal)
	assert.Equal(t, mgl32.Vec3{0.2, 0.4, 0.6}, frag.Albedo)
	assert.Equal(t, normal, frag.Normal)
}

func TestResolvePBRNormalMapRemapsAndNormalizes(t *testing.T) {
	// Texel (128, 128, 255) decodes to roughly (0, 0, 1).
	m := material.NewMaterial(
		material.WithNormalTexture(solidTexture(128, 128, 255, 255)),
	)

	frag := ResolvePBR(m, mgl32.Vec2{0.5, 0.5}, mgl32.Vec3{0, 1, 0})
	assert.InDelta(t, 0, frag.Normal.X(), 0.01)
	assert.InDelta(t, 0, frag.Normal.Y(), 0.01)
	assert.InDelta(t, 1, frag.Normal.Z(), 0.01)
	assert.InDelta(t, 1, frag.Normal.Len(), 1e-5)
}

func TestResolveBlinnOutOfRangeUsesFallback(t *testing.T) {
	materials := material.NewBlinnMaterialList()
	materials.Add(material.NewBlinnMaterial(mgl32.Vec3{1, 0, 0}, 0.2))

	fallback := material.FallbackBlinnMaterial()
	for _, index := range []int32{-1, 1, 5, 99} {
		frag := ResolveBlinn(materials, index)
		assert.Equal(t, fallback.Ambient, frag.Ambient, "index %d must resolve to the fallback", index)
		assert.Equal(t, fallback.Roughness, frag.Roughness)
	}

	inRange := ResolveBlinn(materials, 0)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, inRange.Diffuse)
}
