package vertex

import (
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/Carmen-Shannon/lumen-go/engine/skinning"
	"github.com/go-gl/mathgl/mgl32"
)

// projector is the implementation of the Projector interface.
type projector struct {
	model         mgl32.Mat4
	view          mgl32.Mat4
	projection    mgl32.Mat4
	viewPosition  mgl32.Vec3
	skinning      bool
	blender       skinning.Blender
	bones         *skinning.BoneList
	materialIndex int32
}

// Projector transforms object-space vertices into clip-space positions and
// world-space interpolants for one draw.
//
// The local transform is either the draw's model matrix or, when skinning is
// enabled, the vertex's blended bone transform — never a combination of the
// two. The camera's world position is derived once from the inverse view
// matrix and forwarded on every interpolant record.
type Projector interface {
	// Project computes the interpolants for a single vertex.
	//
	// Parameters:
	//   - v: the vertex to project
	//
	// Returns:
	//   - Interpolants: the clip-space position and world-space interpolants
	Project(v Vertex) Interpolants

	// ViewPosition retrieves the camera's world-space position for this draw.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	ViewPosition() mgl32.Vec3
}

var _ Projector = &projector{}

// ProjectorOption is a function that configures a projector instance during construction.
type ProjectorOption func(*projector)

// WithTransforms is an option builder that sets the draw's model, view, and
// projection matrices.
//
// Parameters:
//   - model: the model-to-world transform
//   - view: the world-to-camera transform
//   - projection: the camera-to-clip transform
//
// Returns:
//   - ProjectorOption: a function that applies the transform option to a projector
func WithTransforms(model, view, projection mgl32.Mat4) ProjectorOption {
	return func(p *projector) {
		p.model = model
		p.view = view
		p.projection = projection
	}
}

// WithSkinning is an option builder that enables bone-blended local
// transforms. When enabled the model matrix is not applied; the blended bone
// transform replaces it entirely.
//
// Parameters:
//   - blender: the blend strategy to apply per vertex
//   - bones: the per-draw bone transform list
//
// Returns:
//   - ProjectorOption: a function that applies the skinning option to a projector
func WithSkinning(blender skinning.Blender, bones *skinning.BoneList) ProjectorOption {
	return func(p *projector) {
		p.skinning = true
		p.blender = blender
		p.bones = bones
	}
}

// WithMaterialIndex is an option builder that sets the flat material index
// forwarded on every interpolant record for the analytic shading path.
//
// Parameters:
//   - index: the material list index for this draw
//
// Returns:
//   - ProjectorOption: a function that applies the material index option to a projector
func WithMaterialIndex(index int32) ProjectorOption {
	return func(p *projector) {
		p.materialIndex = index
	}
}

// NewProjector creates a projector configured with the provided options.
// All three transforms default to identity.
//
// Parameters:
//   - options: variadic list of ProjectorOption functions to configure the projector
//
// Returns:
//   - Projector: a new Projector instance
func NewProjector(options ...ProjectorOption) Projector {
	p := &projector{
		model:      mgl32.Ident4(),
		view:       mgl32.Ident4(),
		projection: mgl32.Ident4(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.viewPosition = common.TranslationOf(p.view.Inv())
	return p
}

func (p *projector) ViewPosition() mgl32.Vec3 {
	return p.viewPosition
}

func (p *projector) Project(v Vertex) Interpolants {
	local := p.model
	if p.skinning {
		local = p.blender.Blend(v.BoneIDs, v.BoneWeights, p.bones)
	}

	pos := v.Position.Vec4(1)
	worldPos := local.Mul4x1(pos)
	clip := p.projection.Mul4(p.view).Mul4x1(worldPos)

	normal := local.Mat3().Mul3x1(v.Normal)
	if l := normal.Len(); l > 0 {
		normal = normal.Mul(1 / l)
	}

	return Interpolants{
		ClipPosition:  clip,
		WorldNormal:   normal,
		WorldPosition: worldPos.Vec3(),
		ViewPosition:  p.viewPosition,
		UV:            v.UV,
		MaterialIndex: p.materialIndex,
	}
}
