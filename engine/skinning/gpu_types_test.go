package skinning

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBoneListLayout(t *testing.T) {
	l := NewBoneList()
	l.Add(mgl32.Translate3D(1, 2, 3))

	buf := MarshalBoneList(l)
	require.Len(t, buf, 16+MaxBones*64)

	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[0:4]), "count at offset 0")

	// First matrix starts at offset 16 after the count row; translation
	// components live in the last column of the column-major layout.
	tx := math.Float32frombits(binary.LittleEndian.Uint32(buf[16+12*4 : 16+13*4]))
	ty := math.Float32frombits(binary.LittleEndian.Uint32(buf[16+13*4 : 16+14*4]))
	tz := math.Float32frombits(binary.LittleEndian.Uint32(buf[16+14*4 : 16+15*4]))
	assert.Equal(t, float32(1), tx)
	assert.Equal(t, float32(2), ty)
	assert.Equal(t, float32(3), tz)

	// Unused slots marshal identity, not garbage.
	diag := math.Float32frombits(binary.LittleEndian.Uint32(buf[16+64 : 16+64+4]))
	assert.Equal(t, float32(1), diag)
}

func TestMarshalBoneListDoesNotAliasList(t *testing.T) {
	l := NewBoneList()
	l.Add(mgl32.Translate3D(1, 2, 3))
	buf := MarshalBoneList(l)

	l.Add(mgl32.Translate3D(7, 7, 7))
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(buf[0:4]), "the marshaled buffer must be a copy")
	tx := math.Float32frombits(binary.LittleEndian.Uint32(buf[16+64+12*4 : 16+64+13*4]))
	assert.Equal(t, float32(0), tx, "the second slot was identity when marshaled")
}
