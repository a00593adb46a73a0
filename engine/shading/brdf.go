package shading

import (
	"github.com/Carmen-Shannon/lumen-go/engine/light"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// specularFloor is the minimum specular denominator. It prevents division by
// zero at grazing angles and must stay at this exact value to match the
// reference output of the original shading programs.
const specularFloor = 0.001

// dielectricF0 is the base reflectance used for non-metallic surfaces.
var dielectricF0 = mgl32.Vec3{0.04, 0.04, 0.04}

// distributionGGX is the Trowbridge-Reitz normal distribution function with
// alpha = roughness².
func distributionGGX(nDotH, roughness float32) float32 {
	a := roughness * roughness
	a2 := a * a
	denom := nDotH*nDotH*(a2-1) + 1
	return a2 / (math32.Pi * denom * denom)
}

// geometrySchlickGGX is one Schlick-GGX visibility term with the direct
// lighting remap k = (roughness+1)²/8.
func geometrySchlickGGX(cosTheta, roughness float32) float32 {
	r := roughness + 1
	k := (r * r) / 8
	return cosTheta / (cosTheta*(1-k)+k)
}

// geometrySmith combines the view and light Schlick-GGX terms.
func geometrySmith(nDotV, nDotL, roughness float32) float32 {
	return geometrySchlickGGX(nDotV, roughness) * geometrySchlickGGX(nDotL, roughness)
}

// fresnelSchlick is the Schlick approximation of the Fresnel reflectance.
func fresnelSchlick(cosTheta float32, f0 mgl32.Vec3) mgl32.Vec3 {
	f := math32.Pow(1-cosTheta, 5)
	return f0.Add(mgl32.Vec3{1 - f0.X(), 1 - f0.Y(), 1 - f0.Z()}.Mul(f))
}

// EvaluateBRDF computes one light's outgoing radiance contribution for a
// fragment using the Cook-Torrance specular/diffuse split: GGX distribution,
// Smith geometry, Schlick Fresnel, energy-conserving diffuse, and
// inverse-square attenuation with no falloff clamp. A light facing away from
// the surface (N·L <= 0) contributes exactly zero.
//
// Parameters:
//   - frag: the resolved surface description
//   - fragPos: the world-space fragment position
//   - viewPos: the world-space camera position
//   - l: the light to evaluate
//
// Returns:
//   - mgl32.Vec3: the radiance contribution of this light
func EvaluateBRDF(frag PBRFrag, fragPos, viewPos mgl32.Vec3, l light.PointLight) mgl32.Vec3 {
	n := frag.Normal
	v := normalizeOrZero(viewPos.Sub(fragPos))

	toLight := l.Position.Sub(fragPos)
	dist := toLight.Len()
	lDir := normalizeOrZero(toLight)
	h := normalizeOrZero(v.Add(lDir))

	nDotL := math32.Max(n.Dot(lDir), 0)
	if nDotL == 0 {
		return mgl32.Vec3{}
	}
	nDotV := math32.Max(n.Dot(v), 0)
	nDotH := math32.Max(n.Dot(h), 0)
	hDotV := math32.Max(h.Dot(v), 0)

	f0 := lerpVec3(dielectricF0, frag.Albedo, frag.Metallic)

	d := distributionGGX(nDotH, frag.Roughness)
	g := geometrySmith(nDotV, nDotL, frag.Roughness)
	f := fresnelSchlick(hDotV, f0)

	denom := math32.Max(4*nDotV*nDotL, specularFloor)
	specular := f.Mul(d * g / denom)

	// Energy conservation: whatever is not reflected specularly refracts,
	// and metals have no diffuse term.
	kd := mgl32.Vec3{1 - f.X(), 1 - f.Y(), 1 - f.Z()}.Mul(1 - frag.Metallic)
	diffuse := mulVec3(kd, frag.Albedo).Mul(1 / math32.Pi)

	attenuation := float32(1) / (dist * dist)
	radiance := l.Color.Mul(attenuation)

	return mulVec3(diffuse.Add(specular), radiance).Mul(nDotL)
}

// lerpVec3 linearly interpolates between two vectors.
func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// mulVec3 multiplies two vectors componentwise.
func mulVec3(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// normalizeOrZero normalizes a vector, returning zero for a zero-length input
// instead of NaN.
func normalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
