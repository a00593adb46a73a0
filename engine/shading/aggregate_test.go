package shading

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAccumulateRadianceEmptyListIsZero(t *testing.T) {
	frag := PBRFrag{
		Albedo:    mgl32.Vec3{1, 1, 1},
		Normal:    mgl32.Vec3{0, 1, 0},
		Roughness: 0.5,
	}
	got := AccumulateRadiance(frag, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, &light.LightList{})
	assert.Equal(t, mgl32.Vec3{}, got)
}

func TestAccumulateRadianceSumsPerLight(t *testing.T) {
	frag := PBRFrag{
		Albedo:    mgl32.Vec3{0.5, 0.5, 0.5},
		Normal:    mgl32.Vec3{0, 1, 0},
		Roughness: 0.7,
	}
	fragPos := mgl32.Vec3{}
	viewPos := mgl32.Vec3{0, 1, 1}

	a := light.PointLight{Position: mgl32.Vec3{0, 2, 0}, Color: mgl32.Vec3{1, 0, 0}}
	b := light.PointLight{Position: mgl32.Vec3{1, 1, 0}, Color: mgl32.Vec3{0, 0, 1}}

	lights := &light.LightList{}
	lights.Add(a)
	lights.Add(b)

	got := AccumulateRadiance(frag, fragPos, viewPos, lights)
	want := EvaluateBRDF(frag, fragPos, viewPos, a).Add(EvaluateBRDF(frag, fragPos, viewPos, b))
	assert.Equal(t, want, got, "accumulation iterates lights in ascending index order")
}

func TestAccumulateBlinnSumsPerLight(t *testing.T) {
	frag := BlinnFrag{
		Ambient: mgl32.Vec3{0.3, 0.3, 0.3},
		Diffuse: mgl32.Vec3{1, 1, 1},
	}
	normal := mgl32.Vec3{0, 1, 0}
	fragPos := mgl32.Vec3{}
	viewPos := mgl32.Vec3{0, 1, 2}

	a := light.BlinnLight{Position: mgl32.Vec3{0, 3, 0}, Color: mgl32.Vec3{1, 1, 1}, AmbientIntensity: 0.5, DiffuseIntensity: 1}
	b := light.BlinnLight{Position: mgl32.Vec3{2, 2, 2}, Color: mgl32.Vec3{0.5, 0.5, 0.5}, DiffuseIntensity: 0.5}

	lights := &light.BlinnLightList{}
	lights.Add(a)
	lights.Add(b)

	got := AccumulateBlinn(frag, normal, fragPos, viewPos, lights)
	want := EvaluateBlinn(frag, normal, fragPos, viewPos, a).Add(EvaluateBlinn(frag, normal, fragPos, viewPos, b))
	assert.Equal(t, want, got)
}

func TestAccumulateIgnoresSlotsBeyondCount(t *testing.T) {
	frag := PBRFrag{Albedo: mgl32.Vec3{1, 1, 1}, Normal: mgl32.Vec3{0, 1, 0}, Roughness: 1}

	one := &light.LightList{}
	one.Add(light.PointLight{Position: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec3{1, 1, 1}})

	got := AccumulateRadiance(frag, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, one)
	want := EvaluateBRDF(frag, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, one.At(0))
	assert.Equal(t, want, got, "only the first Count() slots contribute")
}
