// package texture provides the CPU-side 2D texture used by the material
// resolution stage. Sampling is a pure read: the same pixel bytes staged for
// GPU upload are filtered here so a native evaluation produces the texels a
// GPU sampler would.
package texture

import (
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Texture2D is an RGBA8 texture with an associated sampler configuration.
// Pixels are stored row-major, 4 bytes per pixel, matching the staging
// layout uploaded to the GPU.
type Texture2D struct {
	pixels  []byte
	width   int
	height  int
	sampler common.SamplerStagingData
}

// Texture2DOption is a function that configures a Texture2D during construction.
type Texture2DOption func(*Texture2D)

// WithSampler is an option builder that sets the sampler configuration for the texture.
//
// Parameters:
//   - sampler: the sampler staging data describing addressing and filtering
//
// Returns:
//   - Texture2DOption: a function that applies the sampler option to a texture
func WithSampler(sampler common.SamplerStagingData) Texture2DOption {
	return func(t *Texture2D) {
		t.sampler = sampler
	}
}

// NewTexture2D creates a texture from staged RGBA pixel data.
// The sampler defaults to repeat addressing with linear filtering unless
// overridden by WithSampler.
//
// Parameters:
//   - staging: the pixel data and dimensions for the texture
//   - options: variadic list of Texture2DOption functions to configure the texture
//
// Returns:
//   - *Texture2D: the newly created texture
func NewTexture2D(staging common.TextureStagingData, options ...Texture2DOption) *Texture2D {
	t := &Texture2D{
		pixels:  staging.Pixels,
		width:   int(staging.Width),
		height:  int(staging.Height),
		sampler: common.DefaultSamplerStagingData(),
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// Width returns the texture width in pixels.
//
// Returns:
//   - int: the width in pixels
func (t *Texture2D) Width() int {
	return t.width
}

// Height returns the texture height in pixels.
//
// Returns:
//   - int: the height in pixels
func (t *Texture2D) Height() int {
	return t.height
}

// Sampler returns the sampler configuration associated with the texture.
//
// Returns:
//   - common.SamplerStagingData: the sampler configuration
func (t *Texture2D) Sampler() common.SamplerStagingData {
	return t.sampler
}

// Sample reads the texture at normalized coordinates (u, v) and returns the
// texel as normalized RGBA. Coordinates outside [0, 1] are remapped per the
// sampler's addressing mode; the magnification filter selects nearest or
// bilinear reconstruction. Bilinear neighbor indices are remapped per the
// addressing mode as well, so a sample at the wrap boundary blends across
// the wrap the way a GPU sampler does instead of clamping to the edge. A
// texture with no pixel data samples opaque white.
//
// Parameters:
//   - u: horizontal texture coordinate
//   - v: vertical texture coordinate
//
// Returns:
//   - mgl32.Vec4: the sampled color as (r, g, b, a) in [0, 1]
func (t *Texture2D) Sample(u, v float32) mgl32.Vec4 {
	if len(t.pixels) == 0 || t.width == 0 || t.height == 0 {
		return mgl32.Vec4{1, 1, 1, 1}
	}

	u = address(u, t.sampler.AddressModeU)
	v = address(v, t.sampler.AddressModeV)

	if t.sampler.MagFilter == wgpu.FilterModeNearest {
		x := texelIndex(u, t.width)
		y := texelIndex(v, t.height)
		return t.fetch(x, y)
	}

	// Bilinear: sample the four neighbors around the texel center.
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - math32.Floor(fx)
	ty := fy - math32.Floor(fy)

	xa := neighborIndex(x0, t.width, t.sampler.AddressModeU)
	xb := neighborIndex(x0+1, t.width, t.sampler.AddressModeU)
	ya := neighborIndex(y0, t.height, t.sampler.AddressModeV)
	yb := neighborIndex(y0+1, t.height, t.sampler.AddressModeV)

	c00 := t.fetch(xa, ya)
	c10 := t.fetch(xb, ya)
	c01 := t.fetch(xa, yb)
	c11 := t.fetch(xb, yb)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	return top.Mul(1 - ty).Add(bottom.Mul(ty))
}

// fetch reads the texel at integer coordinates without bounds remapping.
func (t *Texture2D) fetch(x, y int) mgl32.Vec4 {
	i := (y*t.width + x) * 4
	return mgl32.Vec4{
		float32(t.pixels[i]) / 255.0,
		float32(t.pixels[i+1]) / 255.0,
		float32(t.pixels[i+2]) / 255.0,
		float32(t.pixels[i+3]) / 255.0,
	}
}

// address remaps a texture coordinate per the sampler addressing mode.
func address(c float32, mode wgpu.AddressMode) float32 {
	switch mode {
	case wgpu.AddressModeClampToEdge:
		if c < 0 {
			return 0
		}
		if c > 1 {
			return 1
		}
		return c
	case wgpu.AddressModeMirrorRepeat:
		c = c * 0.5
		c = 2 * (c - math32.Floor(c))
		if c > 1 {
			c = 2 - c
		}
		return c
	default: // repeat
		c = c - math32.Floor(c)
		if c < 0 {
			c += 1.0
		}
		return c
	}
}

// neighborIndex remaps an integer texel index per the sampler addressing
// mode. Bilinear neighborhoods straddle the texture edge at wrap boundaries;
// the neighbor on the far side must wrap or mirror, not clamp.
func neighborIndex(i, extent int, mode wgpu.AddressMode) int {
	switch mode {
	case wgpu.AddressModeClampToEdge:
		return clampIndex(i, extent)
	case wgpu.AddressModeMirrorRepeat:
		period := 2 * extent
		i %= period
		if i < 0 {
			i += period
		}
		if i >= extent {
			i = period - 1 - i
		}
		return i
	default: // repeat
		i %= extent
		if i < 0 {
			i += extent
		}
		return i
	}
}

// texelIndex converts a normalized coordinate to a clamped texel index.
func texelIndex(c float32, extent int) int {
	i := int(c * float32(extent))
	return clampIndex(i, extent)
}

// clampIndex clamps a texel index to [0, extent).
func clampIndex(i, extent int) int {
	if i < 0 {
		return 0
	}
	if i >= extent {
		return extent - 1
	}
	return i
}
