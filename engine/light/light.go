// package light defines the dynamic light records consumed by the shading
// evaluators and the fixed-capacity, count-prefixed lists they are stored in.
//
// Two record shapes exist, one per shading model. They are deliberately plain
// structs rather than implementations of a shared interface: the physically
// based and analytic paths have disjoint data and disjoint evaluation
// functions, and a draw selects one shape for its whole light list.
package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the fixed capacity of a per-draw light list. The logical count
// may be smaller; entries at index >= count are undefined and never read.
const MaxLights = 20

// PointLight is a dynamic light for the physically based shading path.
// The light has no separate intensity scalar; brightness is carried in the
// color components, which may exceed 1.0 for high-energy sources.
type PointLight struct {
	// Position is the world-space position of the light.
	Position mgl32.Vec3
	// Color is the RGB radiant color of the light.
	Color mgl32.Vec3
}

// BlinnLight is a dynamic light for the analytic Blinn shading path.
// Color is shared by all three terms; each term scales it by its own
// intensity.
type BlinnLight struct {
	// Position is the world-space position of the light.
	Position mgl32.Vec3
	// Color is the RGB color of the light.
	Color mgl32.Vec3
	// AmbientIntensity scales the ambient term contribution.
	AmbientIntensity float32
	// DiffuseIntensity scales the diffuse term contribution.
	DiffuseIntensity float32
	// SpecularIntensity scales the specular term contribution.
	SpecularIntensity float32
}

// LightList is the fixed-capacity ordered sequence of PointLight records for
// one draw. Accesses are bounds-checked against the logical count, never the
// capacity.
type LightList struct {
	count  int32
	lights [MaxLights]PointLight
}

// Add appends a light to the list. When the list is at capacity the light is
// silently dropped and the count is unchanged.
//
// Parameters:
//   - l: the light to append
//
// Returns:
//   - bool: true if the light was stored, false if the list was full
func (ll *LightList) Add(l PointLight) bool {
	if ll.count >= MaxLights {
		return false
	}
	ll.lights[ll.count] = l
	ll.count++
	return true
}

// Count returns the number of active lights in the list.
//
// Returns:
//   - int: the logical light count
func (ll *LightList) Count() int {
	return int(ll.count)
}

// At returns the light at the given index. The index must be within
// [0, Count()); out-of-range access panics as it indicates a host-side bug,
// not a recoverable condition.
//
// Parameters:
//   - i: the light index
//
// Returns:
//   - PointLight: the light record
func (ll *LightList) At(i int) PointLight {
	if i < 0 || i >= int(ll.count) {
		panic("light: index out of range of active light count")
	}
	return ll.lights[i]
}

// BlinnLightList is the fixed-capacity ordered sequence of BlinnLight records
// for one draw.
type BlinnLightList struct {
	count  int32
	lights [MaxLights]BlinnLight
}

// Add appends a light to the list. When the list is at capacity the light is
// silently dropped and the count is unchanged.
//
// Parameters:
//   - l: the light to append
//
// Returns:
//   - bool: true if the light was stored, false if the list was full
func (ll *BlinnLightList) Add(l BlinnLight) bool {
	if ll.count >= MaxLights {
		return false
	}
	ll.lights[ll.count] = l
	ll.count++
	return true
}

// Count returns the number of active lights in the list.
//
// Returns:
//   - int: the logical light count
func (ll *BlinnLightList) Count() int {
	return int(ll.count)
}

// At returns the light at the given index. The index must be within
// [0, Count()).
//
// Parameters:
//   - i: the light index
//
// Returns:
//   - BlinnLight: the light record
func (ll *BlinnLightList) At(i int) BlinnLight {
	if i < 0 || i >= int(ll.count) {
		panic("light: index out of range of active light count")
	}
	return ll.lights[i]
}
