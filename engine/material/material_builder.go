package material

import (
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// MaterialOption is a function that configures a material instance during construction.
type MaterialOption func(*pbrMaterial)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialOption: a function that applies the name option to a material
func WithName(name string) MaterialOption {
	return func(m *pbrMaterial) {
		m.name = name
	}
}

// WithAlbedo is an option builder that sets the global albedo color of the material.
//
// Parameters:
//   - albedo: the albedo color as RGB float32 values
//
// Returns:
//   - MaterialOption: a function that applies the albedo option to a material
func WithAlbedo(albedo mgl32.Vec3) MaterialOption {
	return func(m *pbrMaterial) {
		m.albedo = albedo
	}
}

// WithMetallic is an option builder that sets the global metallic factor of the material.
//
// Parameters:
//   - metallic: the metallic factor (0.0 = dielectric, 1.0 = metal)
//
// Returns:
//   - MaterialOption: a function that applies the metallic option to a material
func WithMetallic(metallic float32) MaterialOption {
	return func(m *pbrMaterial) {
		m.metallic = metallic
	}
}

// WithRoughness is an option builder that sets the global roughness factor of the material.
//
// Parameters:
//   - roughness: the roughness factor (0.0 = smooth, 1.0 = rough)
//
// Returns:
//   - MaterialOption: a function that applies the roughness option to a material
func WithRoughness(roughness float32) MaterialOption {
	return func(m *pbrMaterial) {
		m.roughness = roughness
	}
}

// WithAlbedoTexture is an option builder that binds the albedo texture and
// selects its channel bit.
//
// Parameters:
//   - tex: the albedo texture
//
// Returns:
//   - MaterialOption: a function that applies the albedo texture option to a material
func WithAlbedoTexture(tex *texture.Texture2D) MaterialOption {
	return func(m *pbrMaterial) {
		m.albedoTexture = tex
		m.channels |= UseAlbedoMap
	}
}

// WithNormalTexture is an option builder that binds the normal map texture and
// selects its channel bit.
//
// Parameters:
//   - tex: the normal map texture
//
// Returns:
//   - MaterialOption: a function that applies the normal texture option to a material
func WithNormalTexture(tex *texture.Texture2D) MaterialOption {
	return func(m *pbrMaterial) {
		m.normalTexture = tex
		m.channels |= UseNormalMap
	}
}

// WithMetallicTexture is an option builder that binds the metallic texture and
// selects its channel bit.
//
// Parameters:
//   - tex: the metallic texture
//
// Returns:
//   - MaterialOption: a function that applies the metallic texture option to a material
func WithMetallicTexture(tex *texture.Texture2D) MaterialOption {
	return func(m *pbrMaterial) {
		m.metallicTexture = tex
		m.channels |= UseMetallicMap
	}
}

// WithRoughnessTexture is an option builder that binds the roughness texture and
// selects its channel bit.
//
// Parameters:
//   - tex: the roughness texture
//
// Returns:
//   - MaterialOption: a function that applies the roughness texture option to a material
func WithRoughnessTexture(tex *texture.Texture2D) MaterialOption {
	return func(m *pbrMaterial) {
		m.roughnessTexture = tex
		m.channels |= UseRoughnessMap
	}
}

// WithChannels is an option builder that overwrites the channel selection mask.
// Applied after the texture options it can deselect a bound texture without
// unbinding it, which is how the host toggles channels between draws.
//
// Parameters:
//   - channels: the channel mask to use
//
// Returns:
//   - MaterialOption: a function that applies the channel mask option to a material
func WithChannels(channels ChannelMask) MaterialOption {
	return func(m *pbrMaterial) {
		m.channels = channels
	}
}
