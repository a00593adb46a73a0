package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32At(t *testing.T, buf []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset : offset+4]))
}

func TestGPUMaterialMarshalLayout(t *testing.T) {
	g := GPUMaterial{
		Albedo:    [3]float32{0.25, 0.5, 0.75},
		Metallic:  1,
		Roughness: 0.125,
		Channels:  uint32(UseAlbedoMap | UseNormalMap),
	}
	buf := g.Marshal()
	require.Len(t, buf, 32)

	assert.Equal(t, float32(0.25), f32At(t, buf, 0))
	assert.Equal(t, float32(0.75), f32At(t, buf, 8))
	assert.Equal(t, float32(1), f32At(t, buf, 12))
	assert.Equal(t, float32(0.125), f32At(t, buf, 16))
	assert.Equal(t, uint32(UseAlbedoMap|UseNormalMap), binary.LittleEndian.Uint32(buf[20:24]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[24:28]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[28:32]))
}

func TestToGPUMaterial(t *testing.T) {
	m := NewMaterial(
		WithAlbedo(mgl32.Vec3{0.1, 0.2, 0.3}),
		WithMetallic(0.4),
		WithRoughness(0.5),
		WithChannels(UseMetallicMap),
	)
	g := ToGPUMaterial(m)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, g.Albedo)
	assert.Equal(t, float32(0.4), g.Metallic)
	assert.Equal(t, float32(0.5), g.Roughness)
	assert.Equal(t, uint32(UseMetallicMap), g.Channels)
}

func TestMarshalBlinnMaterialListLayout(t *testing.T) {
	l := NewBlinnMaterialList()
	l.Add(NewBlinnMaterial(mgl32.Vec3{1, 0, 0}, 0.25))

	buf := MarshalBlinnMaterialList(l)
	require.Len(t, buf, 16+MaxBlinnMaterials*64)

	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[0:4]))

	// Entry 0: ambient at 16, diffuse at 32, specular at 48, roughness at 64.
	assert.Equal(t, float32(1), f32At(t, buf, 16))
	assert.Equal(t, float32(1), f32At(t, buf, 32))
	assert.Equal(t, float32(1), f32At(t, buf, 48))
	assert.Equal(t, float32(0.25), f32At(t, buf, 64))

	// Slots past the count still carry the default material, not zeroes.
	entry1 := 16 + 64
	assert.Equal(t, float32(1), f32At(t, buf, entry1), "unused slot marshals the default filler")
	assert.Equal(t, float32(0.8), f32At(t, buf, entry1+48))
}

func TestGPUBlinnMaterialMarshalPadding(t *testing.T) {
	g := GPUBlinnMaterial{
		Ambient:   [3]float32{1, 2, 3},
		Diffuse:   [3]float32{4, 5, 6},
		Specular:  [3]float32{7, 8, 9},
		Roughness: 0.5,
	}
	buf := g.Marshal()
	require.Len(t, buf, 64)

	for _, off := range []int{12, 28, 44, 52, 56, 60} {
		assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[off:off+4]), "padding at offset %d", off)
	}
	assert.Equal(t, float32(6), f32At(t, buf, 24))
	assert.Equal(t, float32(9), f32At(t, buf, 40))
}
