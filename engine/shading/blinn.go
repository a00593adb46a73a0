package shading

import (
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// blinnSpecularExponent is the fixed shininess exponent of the analytic
// specular term. The material's roughness does not feed into it.
const blinnSpecularExponent = 32

// EvaluateBlinn computes one light's ambient, diffuse, and specular
// contribution for a fragment using the analytic shading model. There is no
// distance attenuation and no tone mapping in this path.
//
// Parameters:
//   - frag: the resolved surface description
//   - normal: the interpolated world-space normal
//   - fragPos: the world-space fragment position
//   - viewPos: the world-space camera position
//   - l: the light to evaluate
//
// Returns:
//   - mgl32.Vec3: the summed ambient, diffuse, and specular contribution
func EvaluateBlinn(frag BlinnFrag, normal, fragPos, viewPos mgl32.Vec3, l light.BlinnLight) mgl32.Vec3 {
	ambient := mulVec3(frag.Ambient, l.Color).Mul(l.AmbientIntensity)

	lDir := normalizeOrZero(l.Position.Sub(fragPos))
	diffuseFactor := math32.Max(normal.Dot(lDir), 0)
	diffuse := mulVec3(l.Color.Mul(l.DiffuseIntensity), frag.Diffuse).Mul(diffuseFactor)

	v := normalizeOrZero(viewPos.Sub(fragPos))
	r := reflect(lDir.Mul(-1), normal)
	specularFactor := math32.Pow(math32.Max(v.Dot(r), 0), blinnSpecularExponent)
	specular := frag.Specular.Mul(specularFactor * l.SpecularIntensity)

	return ambient.Add(diffuse).Add(specular)
}

// reflect mirrors the incident vector i about the normal n.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}
