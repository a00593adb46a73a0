// package vertex defines the mesh vertex layout and the projection stage that
// turns object-space attributes into clip-space position plus the world-space
// interpolants consumed by fragment shading.
package vertex

import (
	"github.com/Carmen-Shannon/lumen-go/engine/skinning"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single mesh vertex. Bone influence slots are always present;
// non-skinned meshes leave the ids at -1, which the blenders treat as empty.
type Vertex struct {
	// Position is the vertex position in object space.
	Position mgl32.Vec3
	// Normal is the vertex normal in object space.
	Normal mgl32.Vec3
	// UV is the texture coordinate.
	UV mgl32.Vec2
	// BoneIDs are the signed indices of up to 4 influencing bones. A negative
	// id marks an empty slot.
	BoneIDs [skinning.MaxInfluences]int32
	// BoneWeights are the blend weights parallel to BoneIDs.
	BoneWeights [skinning.MaxInfluences]float32
}

// Interpolants are the per-vertex outputs handed to rasterization. All vector
// quantities are world-space except ClipPosition. MaterialIndex is a flat
// value: it is forwarded per primitive without interpolation.
type Interpolants struct {
	// ClipPosition is the clip-space position (projection * view * local * position).
	ClipPosition mgl32.Vec4
	// WorldNormal is the world-space surface normal.
	WorldNormal mgl32.Vec3
	// WorldPosition is the world-space fragment position.
	WorldPosition mgl32.Vec3
	// ViewPosition is the world-space camera position, derived from the
	// inverse view matrix's translation column.
	ViewPosition mgl32.Vec3
	// UV is the texture coordinate.
	UV mgl32.Vec2
	// MaterialIndex selects the analytic material list entry for this draw.
	// Unused by the physically based path.
	MaterialIndex int32
}
