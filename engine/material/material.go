// package material defines the surface descriptions consumed by the shading
// evaluators: a physically based material whose channels independently select
// between a bound texture and a global constant, and a fixed-capacity list of
// analytic Blinn materials selected per fragment by index.
package material

import (
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// ChannelMask is the per-channel texture selection bitmask for a physically
// based material. Each bit independently routes one channel to its bound
// texture; unset bits fall back to the material's global value. Channels are
// never resolved as an all-or-nothing switch.
type ChannelMask uint32

const (
	// UseAlbedoMap routes the albedo channel to the albedo texture.
	UseAlbedoMap ChannelMask = 1 << iota
	// UseNormalMap routes the normal channel to the normal texture.
	UseNormalMap
	// UseMetallicMap routes the metallic channel to the metallic texture.
	UseMetallicMap
	// UseRoughnessMap routes the roughness channel to the roughness texture.
	UseRoughnessMap
)

// Has reports whether the mask selects the given channel bit.
//
// Parameters:
//   - bit: the channel bit to test
//
// Returns:
//   - bool: true if the bit is set
func (m ChannelMask) Has(bit ChannelMask) bool {
	return m&bit != 0
}

// pbrMaterial is the implementation of the Material interface.
type pbrMaterial struct {
	name             string
	albedo           mgl32.Vec3
	metallic         float32
	roughness        float32
	channels         ChannelMask
	albedoTexture    *texture.Texture2D
	normalTexture    *texture.Texture2D
	metallicTexture  *texture.Texture2D
	roughnessTexture *texture.Texture2D
}

// Material defines the interface for a physically based render material.
//
// Surface properties are set at construction time and are read-only through
// this interface; a material is immutable for the duration of a draw. The
// channel mask decides, per channel, whether the shading stage samples the
// bound texture or uses the global value. Texture accessors may return nil
// for channels whose mask bit is unset.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Albedo retrieves the global albedo color of the material.
	//
	// Returns:
	//   - mgl32.Vec3: the albedo as RGB values
	Albedo() mgl32.Vec3

	// Metallic retrieves the global metallic factor of the material.
	// A value of 0.0 represents a dielectric surface, 1.0 represents a fully metallic surface.
	//
	// Returns:
	//   - float32: the metallic factor
	Metallic() float32

	// Roughness retrieves the global roughness factor of the material.
	// A value of 0.0 represents a perfectly smooth surface, 1.0 represents a fully rough surface.
	//
	// Returns:
	//   - float32: the roughness factor
	Roughness() float32

	// Channels retrieves the per-channel texture selection mask.
	//
	// Returns:
	//   - ChannelMask: the active channel bits
	Channels() ChannelMask

	// AlbedoTexture retrieves the albedo texture, or nil if none is bound.
	//
	// Returns:
	//   - *texture.Texture2D: the albedo texture, or nil
	AlbedoTexture() *texture.Texture2D

	// NormalTexture retrieves the normal map texture, or nil if none is bound.
	//
	// Returns:
	//   - *texture.Texture2D: the normal texture, or nil
	NormalTexture() *texture.Texture2D

	// MetallicTexture retrieves the metallic texture, or nil if none is bound.
	//
	// Returns:
	//   - *texture.Texture2D: the metallic texture, or nil
	MetallicTexture() *texture.Texture2D

	// RoughnessTexture retrieves the roughness texture, or nil if none is bound.
	//
	// Returns:
	//   - *texture.Texture2D: the roughness texture, or nil
	RoughnessTexture() *texture.Texture2D
}

var _ Material = &pbrMaterial{}

// NewMaterial creates a new Material instance configured with the provided options.
// Defaults: white albedo, metallic 0, roughness 1, no texture channels selected.
//
// Parameters:
//   - options: variadic list of MaterialOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialOption) Material {
	m := &pbrMaterial{
		albedo:    mgl32.Vec3{1, 1, 1},
		metallic:  0.0,
		roughness: 1.0,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *pbrMaterial) Name() string {
	return m.name
}

func (m *pbrMaterial) Albedo() mgl32.Vec3 {
	return m.albedo
}

func (m *pbrMaterial) Metallic() float32 {
	return m.metallic
}

func (m *pbrMaterial) Roughness() float32 {
	return m.roughness
}

func (m *pbrMaterial) Channels() ChannelMask {
	return m.channels
}

func (m *pbrMaterial) AlbedoTexture() *texture.Texture2D {
	return m.albedoTexture
}

func (m *pbrMaterial) NormalTexture() *texture.Texture2D {
	return m.normalTexture
}

func (m *pbrMaterial) MetallicTexture() *texture.Texture2D {
	return m.metallicTexture
}

func (m *pbrMaterial) RoughnessTexture() *texture.Texture2D {
	return m.roughnessTexture
}
