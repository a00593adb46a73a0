package material

import (
	"encoding/binary"
	"math"
)

// GPUMaterial is the GPU-aligned representation of the global physically
// based material block.
// Size: 32 bytes (std140 aligned).
//
// Layout:
//
//	vec3 albedo     (12 bytes, offset  0)
//	f32  metallic   ( 4 bytes, offset 12)
//	f32  roughness  ( 4 bytes, offset 16)
//	u32  channels   ( 4 bytes, offset 20)
//	8 bytes padding (offset 24)
type GPUMaterial struct {
	Albedo    [3]float32
	Metallic  float32
	Roughness float32
	Channels  uint32
	_pad0     float32
	_pad1     float32
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Albedo[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Albedo[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Albedo[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Metallic))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Roughness))
	binary.LittleEndian.PutUint32(buf[20:24], g.Channels)
	binary.LittleEndian.PutUint32(buf[24:28], 0) // padding
	binary.LittleEndian.PutUint32(buf[28:32], 0) // padding
	return buf
}

// ToGPUMaterial converts a Material into the GPU-aligned GPUMaterial struct
// suitable for writing into the material uniform buffer.
//
// Parameters:
//   - m: the Material to convert
//
// Returns:
//   - GPUMaterial: the GPU-aligned representation
func ToGPUMaterial(m Material) GPUMaterial {
	return GPUMaterial{
		Albedo:    [3]float32(m.Albedo()),
		Metallic:  m.Metallic(),
		Roughness: m.Roughness(),
		Channels:  uint32(m.Channels()),
	}
}

// GPUBlinnMaterial is the GPU-aligned representation of a single analytic
// material list entry.
// Size: 64 bytes (std140 aligned: three vec3 fields each padded to 16 bytes,
// roughness padded to a 16-byte row).
type GPUBlinnMaterial struct {
	Ambient   [3]float32
	_pad0     float32
	Diffuse   [3]float32
	_pad1     float32
	Specular  [3]float32
	_pad2     float32
	Roughness float32
	_pad3     [3]float32
}

// Marshal serializes the GPUBlinnMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUBlinnMaterial) Marshal() []byte {
	buf := make([]byte, 64)
	writeVec3 := func(off int, v [3]float32) {
		binary.LittleEndian.PutUint32(buf[off:off+4], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(buf[off+4:off+8], math.Float32bits(v[1]))
		binary.LittleEndian.PutUint32(buf[off+8:off+12], math.Float32bits(v[2]))
	}
	writeVec3(0, g.Ambient)
	writeVec3(16, g.Diffuse)
	writeVec3(32, g.Specular)
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.Roughness))
	return buf
}

// MarshalBlinnMaterialList marshals a BlinnMaterialList into the
// count-prefixed uniform buffer layout consumed by the analytic fragment
// stage:
//
//	[count (4 bytes) + 12 padding] [GPUBlinnMaterial × MaxBlinnMaterials (64 bytes each)]
//
// The full fixed-capacity array is always written; slots beyond the count
// hold the default material and are never selected by a valid index.
//
// Parameters:
//   - l: the material list to marshal
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalBlinnMaterialList(l *BlinnMaterialList) []byte {
	buf := make([]byte, 16+MaxBlinnMaterials*64)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(l.count))
	offset := 16
	for i := 0; i < MaxBlinnMaterials; i++ {
		m := l.materials[i]
		gpu := GPUBlinnMaterial{
			Ambient:   [3]float32(m.Ambient),
			Diffuse:   [3]float32(m.Diffuse),
			Specular:  [3]float32(m.Specular),
			Roughness: m.Roughness,
		}
		copy(buf[offset:offset+64], gpu.Marshal())
		offset += 64
	}
	return buf
}
