package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxBlinnMaterials is the fixed capacity of a per-draw analytic material
// list. The logical count may be smaller; entries at index >= count are
// defaults and are never selected by a valid material index.
const MaxBlinnMaterials = 20

// FallbackBrightness is the uniform ambient/diffuse/specular brightness of
// the material returned when a fragment's material index is out of range.
const FallbackBrightness = 0.8

// FallbackRoughness is the roughness of the out-of-range fallback material.
const FallbackRoughness = 0.6

// BlinnMaterial is a surface description for the analytic shading path:
// per-term reflectance colors plus a roughness scalar.
type BlinnMaterial struct {
	// Ambient is the RGB reflectance for the ambient term.
	Ambient mgl32.Vec3
	// Diffuse is the RGB reflectance for the diffuse term.
	Diffuse mgl32.Vec3
	// Specular is the RGB reflectance for the specular term.
	Specular mgl32.Vec3
	// Roughness is the surface roughness factor (0.0 = smooth, 1.0 = rough).
	Roughness float32
}

// NewBlinnMaterial creates a material with the same reflectance color for all
// three terms.
//
// Parameters:
//   - color: the RGB reflectance shared by ambient, diffuse, and specular
//   - roughness: the roughness factor
//
// Returns:
//   - BlinnMaterial: the material value
func NewBlinnMaterial(color mgl32.Vec3, roughness float32) BlinnMaterial {
	return BlinnMaterial{
		Ambient:   color,
		Diffuse:   color,
		Specular:  color,
		Roughness: roughness,
	}
}

// DefaultBlinnMaterial returns the material that fills unused list slots:
// white reflectance with roughness 0.8.
//
// Returns:
//   - BlinnMaterial: the slot-filler material
func DefaultBlinnMaterial() BlinnMaterial {
	return NewBlinnMaterial(mgl32.Vec3{1, 1, 1}, 0.8)
}

// FallbackBlinnMaterial returns the material resolved for fragments whose
// material index is outside [0, count): uniform FallbackBrightness
// reflectance with FallbackRoughness.
//
// Returns:
//   - BlinnMaterial: the out-of-range fallback material
func FallbackBlinnMaterial() BlinnMaterial {
	return BlinnMaterial{
		Ambient:   mgl32.Vec3{FallbackBrightness, FallbackBrightness, FallbackBrightness},
		Diffuse:   mgl32.Vec3{FallbackBrightness, FallbackBrightness, FallbackBrightness},
		Specular:  mgl32.Vec3{FallbackBrightness, FallbackBrightness, FallbackBrightness},
		Roughness: FallbackRoughness,
	}
}

// BlinnMaterialList is the fixed-capacity ordered sequence of BlinnMaterial
// records for one draw, selected per fragment by a flat material index.
// Accesses are bounds-checked against the logical count, never the capacity.
type BlinnMaterialList struct {
	count     int32
	materials [MaxBlinnMaterials]BlinnMaterial
}

// NewBlinnMaterialList creates an empty list with all slots pre-filled with
// the default material.
//
// Returns:
//   - *BlinnMaterialList: the empty list
func NewBlinnMaterialList() *BlinnMaterialList {
	l := &BlinnMaterialList{}
	for i := range l.materials {
		l.materials[i] = DefaultBlinnMaterial()
	}
	return l
}

// Add appends a material to the list. When the list is at capacity the
// material is silently dropped and the count is unchanged.
//
// Parameters:
//   - m: the material to append
//
// Returns:
//   - bool: true if the material was stored, false if the list was full
func (l *BlinnMaterialList) Add(m BlinnMaterial) bool {
	if l.count >= MaxBlinnMaterials {
		return false
	}
	l.materials[l.count] = m
	l.count++
	return true
}

// Remove deletes the material at the given index, shifting later entries down
// and refilling the vacated slot with the default material.
//
// Parameters:
//   - index: the list index to remove, must be within [0, Count())
//
// Returns:
//   - BlinnMaterial: the removed material
//   - bool: true if the index was valid and the material was removed
func (l *BlinnMaterialList) Remove(index int) (BlinnMaterial, bool) {
	if index < 0 || index >= int(l.count) {
		return BlinnMaterial{}, false
	}
	removed := l.materials[index]
	copy(l.materials[index:l.count-1], l.materials[index+1:l.count])
	l.count--
	l.materials[l.count] = DefaultBlinnMaterial()
	return removed, true
}

// Count returns the number of active materials in the list.
//
// Returns:
//   - int: the logical material count
func (l *BlinnMaterialList) Count() int {
	return int(l.count)
}

// Resolve returns the material at the given index, or the fallback material
// when the index is outside [0, Count()). Out-of-range selection is a silent
// fallback, never a fault.
//
// Parameters:
//   - index: the flat per-fragment material index
//
// Returns:
//   - BlinnMaterial: the selected or fallback material
func (l *BlinnMaterialList) Resolve(index int32) BlinnMaterial {
	if index < 0 || index >= l.count {
		return FallbackBlinnMaterial()
	}
	return l.materials[index]
}
