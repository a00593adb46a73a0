package vertex

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUVertex is the GPU-aligned representation of a single mesh vertex.
// Size: 64 bytes.
//
// Layout (matches the vertex attribute bindings of the render pipeline):
//
//	vec3  position      (12 bytes, offset  0)
//	vec3  normal        (12 bytes, offset 12)
//	vec2  uv            ( 8 bytes, offset 24)
//	ivec4 bone_ids      (16 bytes, offset 32)
//	vec4  bone_weights  (16 bytes, offset 48)
type GPUVertex struct {
	Position    [3]float32
	Normal      [3]float32
	UV          [2]float32
	BoneIDs     [4]int32
	BoneWeights [4]float32
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 64)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Normal[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Normal[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Normal[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.UV[0]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.UV[1]))
	binary.LittleEndian.PutUint32(buf[32:36], uint32(g.BoneIDs[0]))
	binary.LittleEndian.PutUint32(buf[36:40], uint32(g.BoneIDs[1]))
	binary.LittleEndian.PutUint32(buf[40:44], uint32(g.BoneIDs[2]))
	binary.LittleEndian.PutUint32(buf[44:48], uint32(g.BoneIDs[3]))
	binary.LittleEndian.PutUint32(buf[48:52], math.Float32bits(g.BoneWeights[0]))
	binary.LittleEndian.PutUint32(buf[52:56], math.Float32bits(g.BoneWeights[1]))
	binary.LittleEndian.PutUint32(buf[56:60], math.Float32bits(g.BoneWeights[2]))
	binary.LittleEndian.PutUint32(buf[60:64], math.Float32bits(g.BoneWeights[3]))
	return buf
}

// ToGPUVertex converts a Vertex into the GPU-aligned GPUVertex struct
// suitable for writing into the vertex buffer.
//
// Parameters:
//   - v: the Vertex to convert
//
// Returns:
//   - GPUVertex: the GPU-aligned representation
func ToGPUVertex(v Vertex) GPUVertex {
	return GPUVertex{
		Position:    [3]float32(v.Position),
		Normal:      [3]float32(v.Normal),
		UV:          [2]float32(v.UV),
		BoneIDs:     v.BoneIDs,
		BoneWeights: v.BoneWeights,
	}
}

// GPUTransformBlock is the GPU-aligned representation of the per-draw
// transform uniform block.
// Size: 192 bytes (three mat4x4<f32>).
type GPUTransformBlock struct {
	Model      mgl32.Mat4 // offset   0: model-to-world transform
	View       mgl32.Mat4 // offset  64: world-to-camera transform
	Projection mgl32.Mat4 // offset 128: camera-to-clip transform
}

// Marshal serializes the GPUTransformBlock struct into a byte buffer suitable
// for GPU uniform upload or push-constant writes.
//
// Returns:
//   - []byte: 192-byte buffer ready for GPU upload
func (g *GPUTransformBlock) Marshal() []byte {
	// Three packed mat4x4<f32> with no padding between fields; the struct's
	// memory is the wire layout. The append copies, so the buffer does not
	// alias the block.
	buf := make([]byte, 0, 192)
	return append(buf, common.StructToBytes(g)...)
}
