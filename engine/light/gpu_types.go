package light

import (
	"encoding/binary"
	"math"
)

// GPULight is the GPU-aligned representation of a single PointLight.
// Size: 32 bytes (std140 aligned: two vec3 fields each padded to 16 bytes).
type GPULight struct {
	Position [3]float32 // offset  0: world-space position
	_pad0    float32    // offset 12: vec3 alignment padding
	Color    [3]float32 // offset 16: RGB radiant color
	_pad1    float32    // offset 28: vec3 alignment padding
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	return buf
}

// GPUBlinnLight is the GPU-aligned representation of a single BlinnLight.
// Size: 48 bytes (std140 aligned).
//
// Layout:
//
//	vec3 position   (12 bytes, offset  0) + 4 padding
//	vec3 color      (12 bytes, offset 16) + 4 padding
//	f32  ambient    ( 4 bytes, offset 32)
//	f32  diffuse    ( 4 bytes, offset 36)
//	f32  specular   ( 4 bytes, offset 40) + 4 padding
type GPUBlinnLight struct {
	Position          [3]float32
	_pad0             float32
	Color             [3]float32
	_pad1             float32
	AmbientIntensity  float32
	DiffuseIntensity  float32
	SpecularIntensity float32
	_pad2             float32
}

// Marshal serializes the GPUBlinnLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload
func (g *GPUBlinnLight) Marshal() []byte {
	buf := make([]byte, 48)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], 0) // padding
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(g.AmbientIntensity))
	binary.LittleEndian.PutUint32(buf[36:40], math.Float32bits(g.DiffuseIntensity))
	binary.LittleEndian.PutUint32(buf[40:44], math.Float32bits(g.SpecularIntensity))
	binary.LittleEndian.PutUint32(buf[44:48], 0) // padding
	return buf
}

// MarshalLightList marshals a LightList into the count-prefixed uniform buffer
// layout consumed by the physically based fragment stage:
//
//	[count (4 bytes) + 12 padding] [GPULight × MaxLights (32 bytes each)]
//
// The full fixed-capacity array is always written; entries beyond the count
// are zeroed and never read by the shading loop.
//
// Parameters:
//   - ll: the light list to marshal
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalLightList(ll *LightList) []byte {
	buf := make([]byte, 16+MaxLights*32)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(ll.count))
	offset := 16
	for i := 0; i < int(ll.count); i++ {
		l := ll.lights[i]
		gpu := GPULight{Position: [3]float32(l.Position), Color: [3]float32(l.Color)}
		copy(buf[offset:offset+32], gpu.Marshal())
		offset += 32
	}
	return buf
}

// MarshalBlinnLightList marshals a BlinnLightList into the count-prefixed
// uniform buffer layout consumed by the analytic fragment stage:
//
//	[count (4 bytes) + 12 padding] [GPUBlinnLight × MaxLights (48 bytes each)]
//
// Parameters:
//   - ll: the light list to marshal
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalBlinnLightList(ll *BlinnLightList) []byte {
	buf := make([]byte, 16+MaxLights*48)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(ll.count))
	offset := 16
	for i := 0; i < int(ll.count); i++ {
		l := ll.lights[i]
		gpu := GPUBlinnLight{
			Position:          [3]float32(l.Position),
			Color:             [3]float32(l.Color),
			AmbientIntensity:  l.AmbientIntensity,
			DiffuseIntensity:  l.DiffuseIntensity,
			SpecularIntensity: l.SpecularIntensity,
		}
		copy(buf[offset:offset+48], gpu.Marshal())
		offset += 48
	}
	return buf
}
