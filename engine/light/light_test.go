package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLightListAddSaturates(t *testing.T) {
	ll := &LightList{}
	for i := 0; i < MaxLights; i++ {
		assert.True(t, ll.Add(PointLight{Position: mgl32.Vec3{float32(i), 0, 0}}))
	}
	assert.Equal(t, MaxLights, ll.Count())

	assert.False(t, ll.Add(PointLight{}), "a full list drops further adds")
	assert.Equal(t, MaxLights, ll.Count())
	// The stored lights are untouched by the rejected add.
	assert.Equal(t, float32(MaxLights-1), ll.At(MaxLights-1).Position.X())
}

func TestLightListAtOutOfRangePanics(t *testing.T) {
	ll := &LightList{}
	ll.Add(PointLight{})

	assert.Panics(t, func() { ll.At(1) }, "index past the logical count is out of range even within capacity")
	assert.Panics(t, func() { ll.At(-1) })
	assert.NotPanics(t, func() { ll.At(0) })
}

func TestBlinnLightListAddSaturates(t *testing.T) {
	ll := &BlinnLightList{}
	for i := 0; i < MaxLights; i++ {
		assert.True(t, ll.Add(BlinnLight{AmbientIntensity: float32(i)}))
	}
	assert.False(t, ll.Add(BlinnLight{}))
	assert.Equal(t, MaxLights, ll.Count())
}

func TestBlinnLightListPreservesOrder(t *testing.T) {
	ll := &BlinnLightList{}
	ll.Add(BlinnLight{Color: mgl32.Vec3{1, 0, 0}})
	ll.Add(BlinnLight{Color: mgl32.Vec3{0, 1, 0}})
	ll.Add(BlinnLight{Color: mgl32.Vec3{0, 0, 1}})

	assert.Equal(t, mgl32.Vec3{1, 0, 0}, ll.At(0).Color)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, ll.At(1).Color)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, ll.At(2).Color)
}
