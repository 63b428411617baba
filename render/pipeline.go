package render

import "github.com/gogpu/gputypes"

// Shader locations of the Vertex fields.
const (
	LocationPosition = 0
	LocationNormal   = 1
	LocationUV       = 2
	LocationColor    = 3

	LocationInstanceOffset = 4
	LocationInstanceSize   = 5
	LocationInstanceColor  = 6
)

// VertexLayout describes a buffer of encoded Vertex values. The text,
// line and mesh shaders all read from it; each uses a subset of the
// attributes.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: VertexSize,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: LocationNormal},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: LocationUV},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: LocationColor},
		},
	}
}

// InstanceLayout describes a buffer of encoded Instance values, stepped
// once per instance.
func InstanceLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: InstanceSize,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: LocationInstanceOffset},
			{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: LocationInstanceSize},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 24, ShaderLocation: LocationInstanceColor},
		},
	}
}

// TextPrimitive is the primitive state for glyph quads. Back faces are
// culled, so single-sided text is invisible from below.
func TextPrimitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  gputypes.CullModeBack,
	}
}

// MeshPrimitive is the primitive state for cube and sphere meshes.
func MeshPrimitive() gputypes.PrimitiveState {
	return TextPrimitive()
}

// LinePrimitive is the primitive state for line lists.
func LinePrimitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyLineList,
		CullMode: gputypes.CullModeNone,
	}
}
