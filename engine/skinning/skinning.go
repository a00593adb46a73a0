// package skinning blends per-vertex bone influences into a single effective
// transform for skeletal mesh deformation.
//
// Two blend strategies are provided. MultiplicativeBlend composes the
// weighted bone matrices by matrix multiplication, reproducing the behavior
// of the original shading programs bit for bit; because matrix products do
// not commute, the result is order-dependent and is not conventional
// skinning math. LinearBlend is standard linear blend skinning: the weighted
// sum of the bone matrices. Hosts targeting visual parity with the original
// pick MultiplicativeBlend; hosts targeting correct deformation pick
// LinearBlend.
package skinning

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxBones is the fixed capacity of a per-draw bone transform list. The
// logical count may be smaller; entries at index >= count are identity and a
// bone id referencing them terminates blending for the vertex.
const MaxBones = 100

// MaxInfluences is the number of bone slots carried per vertex.
const MaxInfluences = 4

// BoneList is the fixed-capacity ordered sequence of bone transforms for one
// draw. Accesses are bounds-checked against the logical count, never the
// capacity.
type BoneList struct {
	count int32
	bones [MaxBones]mgl32.Mat4
}

// NewBoneList creates an empty bone list with all slots set to identity.
//
// Returns:
//   - *BoneList: the empty list
func NewBoneList() *BoneList {
	l := &BoneList{}
	for i := range l.bones {
		l.bones[i] = mgl32.Ident4()
	}
	return l
}

// Add appends a bone transform to the list. When the list is at capacity the
// transform is silently dropped and the count is unchanged.
//
// Parameters:
//   - m: the bone transform to append
//
// Returns:
//   - bool: true if the transform was stored, false if the list was full
func (l *BoneList) Add(m mgl32.Mat4) bool {
	if l.count >= MaxBones {
		return false
	}
	l.bones[l.count] = m
	l.count++
	return true
}

// Count returns the number of active bone transforms in the list.
//
// Returns:
//   - int: the logical bone count
func (l *BoneList) Count() int {
	return int(l.count)
}

// At returns the bone transform at the given index. The index must be within
// [0, Count()).
//
// Parameters:
//   - i: the bone index
//
// Returns:
//   - mgl32.Mat4: the bone transform
func (l *BoneList) At(i int) mgl32.Mat4 {
	if i < 0 || i >= int(l.count) {
		panic("skinning: index out of range of active bone count")
	}
	return l.bones[i]
}

// Blender combines a vertex's bone influences into one effective transform.
//
// Implementations iterate the vertex's influence slots in order. A negative
// bone id skips its slot only; a bone id at or beyond the list's count
// terminates the loop, and later slots are not considered even if they are
// individually valid. There is no error path: defective influences reduce
// the blend, they never fault.
type Blender interface {
	// Blend computes the effective transform for one vertex.
	//
	// Parameters:
	//   - ids: the vertex's bone ids, one per influence slot
	//   - weights: the blend weight for each influence slot
	//   - bones: the per-draw bone transform list
	//
	// Returns:
	//   - mgl32.Mat4: the blended transform (identity if no slot contributed)
	Blend(ids [MaxInfluences]int32, weights [MaxInfluences]float32, bones *BoneList) mgl32.Mat4
}

// MultiplicativeBlend composes weighted bone matrices by matrix
// multiplication, matching the original shading programs. The accumulator
// starts at identity and each contributing slot right-multiplies it by
// (bone × weight).
type MultiplicativeBlend struct{}

var _ Blender = MultiplicativeBlend{}

// Blend implements Blender using order-dependent matrix-product composition.
//
// Parameters:
//   - ids: the vertex's bone ids, one per influence slot
//   - weights: the blend weight for each influence slot
//   - bones: the per-draw bone transform list
//
// Returns:
//   - mgl32.Mat4: the composed transform (identity if no slot contributed)
func (MultiplicativeBlend) Blend(ids [MaxInfluences]int32, weights [MaxInfluences]float32, bones *BoneList) mgl32.Mat4 {
	acc := mgl32.Ident4()
	for i := 0; i < MaxInfluences; i++ {
		id := ids[i]
		if id < 0 {
			continue
		}
		if id >= int32(bones.Count()) {
			break
		}
		acc = acc.Mul4(bones.At(int(id)).Mul(weights[i]))
	}
	return acc
}

// LinearBlend is standard linear blend skinning: the effective transform is
// the weighted sum of the bone matrices.
type LinearBlend struct{}

var _ Blender = LinearBlend{}

// Blend implements Blender using a weighted linear combination.
//
// Parameters:
//   - ids: the vertex's bone ids, one per influence slot
//   - weights: the blend weight for each influence slot
//   - bones: the per-draw bone transform list
//
// Returns:
//   - mgl32.Mat4: the summed transform (identity if no slot contributed)
func (LinearBlend) Blend(ids [MaxInfluences]int32, weights [MaxInfluences]float32, bones *BoneList) mgl32.Mat4 {
	var acc mgl32.Mat4
	contributed := false
	for i := 0; i < MaxInfluences; i++ {
		id := ids[i]
		if id < 0 {
			continue
		}
		if id >= int32(bones.Count()) {
			break
		}
		acc = acc.Add(bones.At(int(id)).Mul(weights[i]))
		contributed = true
	}
	if !contributed {
		return mgl32.Ident4()
	}
	return acc
}
