package material

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.Albedo())
	assert.Equal(t, float32(0), m.Metallic())
	assert.Equal(t, float32(1), m.Roughness())
	assert.Equal(t, ChannelMask(0), m.Channels())
	assert.Nil(t, m.AlbedoTexture())
}

func TestMaterialOptions(t *testing.T) {
	m := NewMaterial(
		WithName("brushed-steel"),
		WithAlbedo(mgl32.Vec3{0.6, 0.6, 0.65}),
		WithMetallic(1),
		WithRoughness(0.3),
	)
	assert.Equal(t, "brushed-steel", m.Name())
	assert.Equal(t, mgl32.Vec3{0.6, 0.6, 0.65}, m.Albedo())
	assert.Equal(t, float32(1), m.Metallic())
	assert.Equal(t, float32(0.3), m.Roughness())
}

func TestTextureOptionsSetChannelBits(t *testing.T) {
	tex := texture.NewTexture2D(common.TextureStagingData{
		Pixels: []byte{255, 255, 255, 255},
		Width:  1,
		Height: 1,
	})

	m := NewMaterial(
		WithAlbedoTexture(tex),
		WithRoughnessTexture(tex),
	)
	assert.True(t, m.Channels().Has(UseAlbedoMap))
	assert.True(t, m.Channels().Has(UseRoughnessMap))
	assert.False(t, m.Channels().Has(UseNormalMap))
	assert.False(t, m.Channels().Has(UseMetallicMap))
	assert.Same(t, tex, m.AlbedoTexture())
}

func TestWithChannelsOverridesMask(t *testing.T) {
	tex := texture.NewTexture2D(common.TextureStagingData{
		Pixels: []byte{0, 0, 0, 255},
		Width:  1,
		Height: 1,
	})

	// WithChannels after a texture option deselects the channel without
	// unbinding the texture.
	m := NewMaterial(
		WithAlbedoTexture(tex),
		WithChannels(0),
	)
	assert.Equal(t, ChannelMask(0), m.Channels())
	assert.NotNil(t, m.AlbedoTexture())
}

func TestChannelMaskBitsAreDistinct(t *testing.T) {
	bits := []ChannelMask{UseAlbedoMap, UseNormalMap, UseMetallicMap, UseRoughnessMap}
	var combined ChannelMask
	for _, b := range bits {
		assert.Zero(t, combined&b, "channel bits must not overlap")
		combined |= b
	}
}
