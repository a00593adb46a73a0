package shading

import (
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/go-gl/mathgl/mgl32"
)

// AccumulateRadiance sums the Cook-Torrance radiance contribution of every
// active light in list order. Iteration is always ascending index; the order
// affects floating-point rounding only, never control flow. Tone mapping is
// not applied here.
//
// Parameters:
//   - frag: the resolved surface description
//   - fragPos: the world-space fragment position
//   - viewPos: the world-space camera position
//   - lights: the draw's light list
//
// Returns:
//   - mgl32.Vec3: the summed outgoing radiance
func AccumulateRadiance(frag PBRFrag, fragPos, viewPos mgl32.Vec3, lights *light.LightList) mgl32.Vec3 {
	var total mgl32.Vec3
	for i := 0; i < lights.Count(); i++ {
		total = total.Add(EvaluateBRDF(frag, fragPos, viewPos, lights.At(i)))
	}
	return total
}

// AccumulateBlinn sums the analytic ambient, diffuse, and specular
// contribution of every active light in list order.
//
// Parameters:
//   - frag: the resolved surface description
//   - normal: the interpolated world-space normal
//   - fragPos: the world-space fragment position
//   - viewPos: the world-space camera position
//   - lights: the draw's light list
//
// Returns:
//   - mgl32.Vec3: the summed lighting contribution
func AccumulateBlinn(frag BlinnFrag, normal, fragPos, viewPos mgl32.Vec3, lights *light.BlinnLightList) mgl32.Vec3 {
	var total mgl32.Vec3
	for i := 0; i < lights.Count(); i++ {
		total = total.Add(EvaluateBlinn(frag, normal, fragPos, viewPos, lights.At(i)))
	}
	return total
}
