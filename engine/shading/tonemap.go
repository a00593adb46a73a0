package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// gammaExponent is the display gamma encoding exponent (1 / 2.2).
const gammaExponent = 1.0 / 2.2

// ToneMap applies Reinhard tone compression, mapping accumulated radiance of
// arbitrary magnitude into [0, 1) per channel. This stage belongs to the
// physically based path only; the analytic path emits its sum directly and
// must not be routed through it.
//
// Parameters:
//   - c: the accumulated linear radiance
//
// Returns:
//   - mgl32.Vec3: the compressed color
func ToneMap(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		c.X() / (c.X() + 1),
		c.Y() / (c.Y() + 1),
		c.Z() / (c.Z() + 1),
	}
}

// GammaEncode converts linear color to display-encoded color with exponent
// 1/2.2.
//
// Parameters:
//   - c: the linear color, expected in [0, 1]
//
// Returns:
//   - mgl32.Vec3: the gamma-encoded color
func GammaEncode(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Pow(c.X(), gammaExponent),
		math32.Pow(c.Y(), gammaExponent),
		math32.Pow(c.Z(), gammaExponent),
	}
}
