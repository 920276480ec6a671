package rhi

// ShaderStage is a bitmask of shader stages a binding, push-constant
// range, or shader module entry point is visible to.
type ShaderStage uint32

const (
	StageVertex ShaderStage = 1 << iota
	StageFragment
	StageCompute
	StageRayGen
	StageClosestHit
	StageMiss
	StageAnyHit
	StageIntersection
)

// ShaderModule is a compiled-bytecode module loaded from SPIR-V. Shader
// front-end compilation (GLSL/HLSL/WGSL -> SPIR-V) is out of scope; this
// RHI only consumes already-compiled bytecode.
type ShaderModule interface {
	Destroy()
}

// ShaderStageEntry binds a ShaderModule + entry point name to a single
// pipeline stage.
type ShaderStageEntry struct {
	Stage      ShaderStage
	Module     ShaderModule
	EntryPoint string
}

// VertexFormat enumerates per-attribute vertex input formats.
type VertexFormat int

const (
	VertexFloat32 VertexFormat = iota
	VertexFloat32x2
	VertexFloat32x3
	VertexFloat32x4
	VertexUint32
	VertexUint32x2
	VertexUint32x4
)

// VertexAttribute describes one shader-visible vertex input.
type VertexAttribute struct {
	ShaderLocation uint32
	Format         VertexFormat
	Offset         uint32
}

// VertexBufferLayout groups the attributes sourced from a single vertex
// buffer binding.
type VertexBufferLayout struct {
	Stride     uint32
	Attributes []VertexAttribute
	// PerInstance marks this binding as stepping per instance rather than
	// per vertex.
	PerInstance bool
}

// Topology selects how vertices assemble into primitives.
type Topology int

const (
	TopologyTriangleList Topology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyPointList
)

// CullMode selects which triangle winding is discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

// FillMode selects solid vs. wireframe rasterization.
type FillMode int

const (
	FillSolid FillMode = iota
	FillWireframe
)

// RasterState configures the fixed-function rasterizer.
type RasterState struct {
	Topology        Topology
	Cull            CullMode
	Fill            FillMode
	FrontFaceCCW    bool
	DepthBias       float32
	DepthBiasSlope  float32
	DepthBiasClamp  float32
}

// StencilOp enumerates stencil update operations.
type StencilOp int

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilIncrementClamp
	StencilDecrementClamp
	StencilInvert
	StencilIncrementWrap
	StencilDecrementWrap
)

// StencilFaceState configures stencil testing for one polygon face.
type StencilFaceState struct {
	Compare     CompareOp
	FailOp      StencilOp
	DepthFailOp StencilOp
	PassOp      StencilOp
}

// DSState configures depth and stencil testing.
type DSState struct {
	DepthTestEnable  bool
	DepthWriteEnable bool
	DepthCompare     CompareOp

	StencilEnable    bool
	StencilReadMask  uint32
	StencilWriteMask uint32
	Front            StencilFaceState
	Back             StencilFaceState
}

// BlendFactor enumerates source/destination blend factors.
type BlendFactor int

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOp enumerates the arithmetic a blend stage applies.
type BlendOp int

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// ColorMask is a bitmask of color channels written by a blend attachment.
type ColorMask uint32

const (
	ColorMaskR ColorMask = 1 << iota
	ColorMaskG
	ColorMaskB
	ColorMaskA
	ColorMaskAll = ColorMaskR | ColorMaskG | ColorMaskB | ColorMaskA
)

// ColorBlendAttachment configures blending for a single color attachment.
type ColorBlendAttachment struct {
	Enable        bool
	SrcColor      BlendFactor
	DstColor      BlendFactor
	ColorOp       BlendOp
	SrcAlpha      BlendFactor
	DstAlpha      BlendFactor
	AlphaOp       BlendOp
	Write         ColorMask
}

// BlendState configures blending across all color attachments.
type BlendState struct {
	Attachments []ColorBlendAttachment
}

// GraphicsPipelineDescription configures a graphics (vertex/fragment)
// pipeline.
type GraphicsPipelineDescription struct {
	Name   string
	Layout PipelineLayoutHandle
	Stages []ShaderStageEntry

	VertexBuffers []VertexBufferLayout
	Raster        RasterState
	DepthStencil  DSState
	Blend         BlendState

	ColorFormats []PixelFmt
	DepthFormat  PixelFmt
	HasDepth     bool

	SampleCount uint32
}

// ComputePipelineDescription configures a compute pipeline.
type ComputePipelineDescription struct {
	Name   string
	Layout PipelineLayoutHandle
	Stage  ShaderStageEntry
}

// StridedRegion addresses a shader-binding-table region: a buffer device
// range plus the stride between consecutive records (§4.3).
type StridedRegion struct {
	Buffer BufferID
	Offset uint64
	Stride uint64
	Size   uint64
}

// ShaderBindingTable groups the four StridedRegions a ray-tracing
// dispatch indexes into.
type ShaderBindingTable struct {
	RayGen   StridedRegion
	Miss     StridedRegion
	HitGroup StridedRegion
	Callable StridedRegion
}

// RayTracingPipelineDescription configures a ray-tracing pipeline.
type RayTracingPipelineDescription struct {
	Name              string
	Layout            PipelineLayoutHandle
	Stages            []ShaderStageEntry
	MaxRecursionDepth uint32
}

// Pipeline is an opaque, cached compiled pipeline state object (§4.3).
// Pipelines of identical description share one backend object, keyed the
// same way render passes and framebuffers are (§8).
type Pipeline interface {
	ID() PipelineHandle
	BindPoint() PipelineBindPoint
	Destroy()
}

// PipelineBindPoint distinguishes which dispatch a Pipeline is valid for.
type PipelineBindPoint int

const (
	BindPointGraphics PipelineBindPoint = iota
	BindPointCompute
	BindPointRayTracing
)

// PipelineCache hands out a cached Pipeline for a given description,
// building one on first request (§8 "pipeline caching").
type PipelineCache interface {
	GetOrCreateGraphics(desc GraphicsPipelineDescription) (Pipeline, error)
	GetOrCreateCompute(desc ComputePipelineDescription) (Pipeline, error)
	GetOrCreateRayTracing(desc RayTracingPipelineDescription) (Pipeline, error)
}
