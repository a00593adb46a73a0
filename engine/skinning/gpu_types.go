package skinning

import (
	"encoding/binary"

	"github.com/Carmen-Shannon/lumen-go/common"
)

// MarshalBoneList marshals a BoneList into the count-prefixed uniform buffer
// layout consumed by the skinned vertex stage:
//
//	[count (4 bytes) + 12 padding] [mat4x4<f32> × MaxBones (64 bytes each)]
//
// The full fixed-capacity array is always written; slots beyond the count
// hold identity and a bone id referencing them terminates blending.
//
// Parameters:
//   - l: the bone list to marshal
//
// Returns:
//   - []byte: the marshaled buffer ready for GPU upload
func MarshalBoneList(l *BoneList) []byte {
	buf := make([]byte, 16, 16+MaxBones*64)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(l.count))
	// Matrices are packed float32 with no padding; the array's memory is the
	// wire layout. The append copies, so the buffer does not alias the list.
	return append(buf, common.SliceToBytes(l.bones[:])...)
}
