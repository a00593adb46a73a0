package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBlinnMaterialListResolveFallback(t *testing.T) {
	l := NewBlinnMaterialList()
	l.Add(NewBlinnMaterial(mgl32.Vec3{1, 0, 0}, 0.2))
	l.Add(NewBlinnMaterial(mgl32.Vec3{0, 1, 0}, 0.4))

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.Resolve(0).Diffuse)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, l.Resolve(1).Diffuse)

	fallback := FallbackBlinnMaterial()
	// Index 2 is within capacity but past the count; it must not expose the
	// default slot filler.
	assert.Equal(t, fallback, l.Resolve(2))
	assert.Equal(t, fallback, l.Resolve(-1))
	assert.Equal(t, fallback, l.Resolve(MaxBlinnMaterials+5))
}

func TestBlinnMaterialListAddSaturates(t *testing.T) {
	l := NewBlinnMaterialList()
	for i := 0; i < MaxBlinnMaterials; i++ {
		assert.True(t, l.Add(NewBlinnMaterial(mgl32.Vec3{float32(i), 0, 0}, 0.5)))
	}
	assert.False(t, l.Add(DefaultBlinnMaterial()))
	assert.Equal(t, MaxBlinnMaterials, l.Count())
}

func TestBlinnMaterialListRemoveShiftsDown(t *testing.T) {
	l := NewBlinnMaterialList()
	l.Add(NewBlinnMaterial(mgl32.Vec3{1, 0, 0}, 0.1))
	l.Add(NewBlinnMaterial(mgl32.Vec3{0, 1, 0}, 0.2))
	l.Add(NewBlinnMaterial(mgl32.Vec3{0, 0, 1}, 0.3))

	removed, ok := l.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, removed.Diffuse)
	assert.Equal(t, 2, l.Count())
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, l.Resolve(0).Diffuse)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, l.Resolve(1).Diffuse, "later entries shift down")

	_, ok = l.Remove(2)
	assert.False(t, ok, "remove past the count is rejected")
	_, ok = l.Remove(-1)
	assert.False(t, ok)
}

func TestDefaultAndFallbackDiffer(t *testing.T) {
	d := DefaultBlinnMaterial()
	f := FallbackBlinnMaterial()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, d.Diffuse)
	assert.Equal(t, float32(0.8), d.Roughness)
	assert.Equal(t, float32(FallbackBrightness), f.Diffuse.X())
	assert.Equal(t, float32(FallbackRoughness), f.Roughness)
	assert.NotEqual(t, d, f)
}
