package rendergraph

import (
	"sync/atomic"

	"github.com/mizu-gfx/mizu/internal/fatal"
	"github.com/mizu-gfx/mizu/rhi"
)

// AccessKind enumerates how a pass touches a declared resource (§4.7
// step 1). The union of a resource's access kinds across its usage
// timeline determines the rhi.Usage bits it is created with.
type AccessKind int

const (
	AccessSampledRead AccessKind = iota
	AccessStorageRead
	AccessStorageWrite
	AccessAttachmentColor
	AccessAttachmentDepth
	AccessTransferSrc
	AccessTransferDst
	AccessIndirectBuild
)

// PassHint selects how the compiler and executor treat a pass (§3.3).
type PassHint int

const (
	HintRaster PassHint = iota
	HintCompute
	HintRayTracing
	// HintImmediate passes record into the command buffer in builder
	// order with no automatic transitions inserted around them.
	HintImmediate
)

func (h PassHint) String() string {
	switch h {
	case HintRaster:
		return "Raster"
	case HintCompute:
		return "Compute"
	case HintRayTracing:
		return "RayTracing"
	case HintImmediate:
		return "Immediate"
	default:
		return "PassHint(invalid)"
	}
}

// ResourceAccess declares one resource dependency of a pass.
type ResourceAccess struct {
	Ref     Ref
	Kind    AccessKind
	Binding uint32
}

// PassParams is the typed dependency block every pass declares (§3.3).
// Callers implement it (directly or via BasicParams) to enumerate every
// Ref their callback touches; the compiler only reasons about
// dependencies declared here, never about what the callback actually
// does.
type PassParams interface {
	ResourceAccesses() []ResourceAccess
}

// FramebufferAttacher is implemented by PassParams for Raster passes to
// name the framebuffer the pass renders into.
type FramebufferAttacher interface {
	Attachment() FramebufferRef
}

// ResourceGroupBinder is implemented by PassParams that bind resource
// groups at fixed set indices before the pass callback runs (§4.8 "bind
// descriptor sets in declared order").
type ResourceGroupBinder interface {
	ResourceGroups() map[uint32]ResourceGroupRef
}

// PipelineProvider is implemented by PassParams for Raster passes naming
// the graphics pipeline the compiler validates and creates through
// Environment.Pipelines at Compile time (§4.7 step 6). Execute does not
// bind that pipeline before the callback runs; only the pass's resource
// groups are bound for it.
type PipelineProvider interface {
	GraphicsPipeline() rhi.GraphicsPipelineDescription
}

// ComputePipelineProvider is the Compute-pass analog of PipelineProvider.
type ComputePipelineProvider interface {
	ComputePipeline() rhi.ComputePipelineDescription
}

// RayTracingPipelineProvider is the RayTracing-pass analog of
// PipelineProvider.
type RayTracingPipelineProvider interface {
	RayTracingPipeline() rhi.RayTracingPipelineDescription
}

// BasicParams is a ready-to-use PassParams a caller can embed or
// construct directly for passes whose dependency set is a flat list.
type BasicParams struct {
	Accesses    []ResourceAccess
	Framebuffer FramebufferRef
	Groups      map[uint32]ResourceGroupRef
}

func (p BasicParams) ResourceAccesses() []ResourceAccess          { return p.Accesses }
func (p BasicParams) Attachment() FramebufferRef                  { return p.Framebuffer }
func (p BasicParams) ResourceGroups() map[uint32]ResourceGroupRef { return p.Groups }

// Resources resolves the Refs a running pass declared into concrete rhi
// objects. It is only valid for the duration of a single callback
// invocation at execute time; resolving a Ref the pass's own PassParams
// never declared aborts with an UndeclaredDependency diagnostic (§7)
// since that mistake is only observable once the closure actually runs.
type Resources struct {
	g    *Graph
	pass *compiledPass
}

func (r *Resources) checkDeclared(ref Ref) {
	fatal.CheckPass(r.pass.allowed[ref], "UndeclaredDependency", r.pass.name,
		"rendergraph: pass %q resolved %s without declaring it in its PassParams", r.pass.name, ref)
}

func (r *Resources) Buffer(ref BufferRef) rhi.Buffer {
	r.checkDeclared(ref)
	return r.g.resolveBuffer(ref)
}

func (r *Resources) Image(ref ImageRef) rhi.Image {
	r.checkDeclared(ref)
	return r.g.resolveImage(ref)
}

func (r *Resources) View(ref Ref) rhi.ResourceView {
	r.checkDeclared(ref)
	return r.g.resolveView(ref)
}

func (r *Resources) ResourceGroup(ref ResourceGroupRef) rhi.DescriptorSetID {
	return r.g.resolveResourceGroup(ref)
}

// PassFunc is a pass callback: it drives draw/dispatch/trace calls on
// cmd and resolves its declared dependencies through res. It never sees
// the backend directly.
type PassFunc func(cmd rhi.CommandRecorder, res *Resources) error

type bufferDecl struct {
	desc     rhi.BufferDescription
	external bool
	extObj   rhi.Buffer
	extState rhi.ResourceState
}

type imageDecl struct {
	desc     rhi.ImageDescription
	external bool
	extObj   rhi.Image
	extState rhi.ResourceState
}

type accelDecl struct {
	desc     rhi.AccelStructDescription
	external bool
	extObj   rhi.AccelerationStructure
}

type viewDecl struct {
	owner Ref
	kind  rhi.ViewKind
	rng   rhi.ViewRange
}

type framebufferDecl struct {
	width, height uint32
	colorViews    []ImageViewRef
	depthView     ImageViewRef
}

type groupWrite struct {
	binding uint32
	typ     rhi.DescriptorType
	view    Ref
	sampler rhi.SamplerID
	accel   AccelStructRef
}

type resourceGroupDecl struct {
	layout rhi.DescriptorSetLayoutDescription
	writes []groupWrite
}

type uploadDecl struct {
	target BufferRef
	data   []byte
}

type passRecord struct {
	name   string
	hint   PassHint
	params PassParams
	fn     PassFunc
	scope  []string
}

var builderStamps atomic.Uint32

// Builder records resource declarations and passes for a single frame's
// worth of GPU work (§4.6). A Builder is single-use: call Compile to
// produce a Graph, then discard it.
type Builder struct {
	stamp uint32

	buffers       []bufferDecl
	images        []imageDecl
	cubemaps      []imageDecl
	accelStructs  []accelDecl
	views         []viewDecl
	framebuffers  []framebufferDecl
	resourceGroups []resourceGroupDecl
	uploads       []uploadDecl
	passes        []passRecord

	scopeStack []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{stamp: builderStamps.Add(1)}
}

func (b *Builder) ref(kind refKind, index int) Ref {
	return Ref{kind: kind, index: uint32(index), gen: b.stamp}
}

// RegisterExternalBuffer borrows an already-created rhi.Buffer for this
// frame. The graph promises not to alias or transition it outside
// currentState's contract (§4.6).
func (b *Builder) RegisterExternalBuffer(buf rhi.Buffer, currentState rhi.ResourceState) BufferRef {
	b.buffers = append(b.buffers, bufferDecl{external: true, extObj: buf, extState: currentState})
	return b.ref(refBuffer, len(b.buffers)-1)
}

// RegisterExternalImage borrows an already-created rhi.Image for this
// frame.
func (b *Builder) RegisterExternalImage(img rhi.Image, currentState rhi.ResourceState) ImageRef {
	b.images = append(b.images, imageDecl{external: true, extObj: img, extState: currentState})
	return b.ref(refImage, len(b.images)-1)
}

// RegisterExternalCubemap borrows an already-created cubemap rhi.Image.
func (b *Builder) RegisterExternalCubemap(img rhi.Image, currentState rhi.ResourceState) CubemapRef {
	b.cubemaps = append(b.cubemaps, imageDecl{external: true, extObj: img, extState: currentState})
	return b.ref(refCubemap, len(b.cubemaps)-1)
}

// RegisterExternalAccelerationStructure borrows an already-built
// acceleration structure. It is never placed in an alias group or
// destroyed by the graph (§4.7 step 3 "external resources never
// aliased").
func (b *Builder) RegisterExternalAccelerationStructure(as rhi.AccelerationStructure) AccelStructRef {
	b.accelStructs = append(b.accelStructs, accelDecl{external: true, extObj: as})
	return b.ref(refAccelStruct, len(b.accelStructs)-1)
}

// CreateBuffer declares a transient buffer: a candidate for aliased
// memory placement (§3.2, §4.7 step 3).
func (b *Builder) CreateBuffer(desc rhi.BufferDescription) BufferRef {
	b.buffers = append(b.buffers, bufferDecl{desc: desc})
	return b.ref(refBuffer, len(b.buffers)-1)
}

// CreateImage declares a transient image.
func (b *Builder) CreateImage(desc rhi.ImageDescription) ImageRef {
	b.images = append(b.images, imageDecl{desc: desc})
	return b.ref(refImage, len(b.images)-1)
}

// CreateCubemap declares a transient 6-layer cubemap image.
//
// It is a programmer error (panics) for desc.NumLayers to be anything
// other than 6, mirroring the rhi.ImageDescription cubemap invariant.
func (b *Builder) CreateCubemap(desc rhi.ImageDescription) CubemapRef {
	if desc.NumLayers != 6 {
		panic("rendergraph: cubemap image must declare NumLayers == 6")
	}
	desc.Type = rhi.ImageCubemap
	b.cubemaps = append(b.cubemaps, imageDecl{desc: desc})
	return b.ref(refCubemap, len(b.cubemaps)-1)
}

// CreateStorageBuffer declares a transient buffer sized to data and
// schedules an upload of data on the buffer's first use (§4.6).
func (b *Builder) CreateStorageBuffer(name string, data []byte) BufferRef {
	ref := b.CreateBuffer(rhi.BufferDescription{
		Name:  name,
		Size:  uint64(len(data)),
		Usage: rhi.UsageUnorderedAccess | rhi.UsageTransferDst | rhi.UsageHostVisible,
	})
	b.uploads = append(b.uploads, uploadDecl{target: ref, data: data})
	return ref
}

// CreateImageView declares a view over an image or cubemap declared
// earlier in this Builder.
func (b *Builder) CreateImageView(image ImageRef, kind rhi.ViewKind, rng rhi.ViewRange) ImageViewRef {
	b.views = append(b.views, viewDecl{owner: image, kind: kind, rng: rng})
	return b.ref(refImageView, len(b.views)-1)
}

// CreateBufferSRV declares a shader-resource-view over a buffer.
func (b *Builder) CreateBufferSRV(buf BufferRef) BufferViewRef {
	return b.createBufferView(buf, rhi.ViewSRV)
}

// CreateBufferUAV declares an unordered-access view over a buffer.
func (b *Builder) CreateBufferUAV(buf BufferRef) BufferViewRef {
	return b.createBufferView(buf, rhi.ViewUAV)
}

// CreateBufferCBV declares a constant-buffer view over a buffer.
func (b *Builder) CreateBufferCBV(buf BufferRef) BufferViewRef {
	return b.createBufferView(buf, rhi.ViewCBV)
}

func (b *Builder) createBufferView(buf BufferRef, kind rhi.ViewKind) BufferViewRef {
	b.views = append(b.views, viewDecl{owner: buf, kind: kind})
	return b.ref(refBufferView, len(b.views)-1)
}

// CreateFramebuffer declares a framebuffer over views created with
// CreateImageView (§4.6).
func (b *Builder) CreateFramebuffer(width, height uint32, colorViews []ImageViewRef, depthView ImageViewRef) FramebufferRef {
	b.framebuffers = append(b.framebuffers, framebufferDecl{
		width: width, height: height,
		colorViews: colorViews, depthView: depthView,
	})
	return b.ref(refFramebuffer, len(b.framebuffers)-1)
}

// CreateResourceGroup declares a descriptor set built against layout. Use
// WriteView/WriteSampler/WriteAccelerationStructure to populate its
// bindings before Compile; the compiler resolves each write's Ref into a
// concrete rhi view at materialization time and batches them through
// MergeWrites (§4.2 step 7).
func (b *Builder) CreateResourceGroup(layout rhi.DescriptorSetLayoutDescription) ResourceGroupRef {
	b.resourceGroups = append(b.resourceGroups, resourceGroupDecl{layout: layout})
	return b.ref(refResourceGroup, len(b.resourceGroups)-1)
}

// WriteView binds view (an ImageViewRef or BufferViewRef) at binding
// within group.
func (b *Builder) WriteView(group ResourceGroupRef, binding uint32, typ rhi.DescriptorType, view Ref) {
	g := &b.resourceGroups[group.index]
	g.writes = append(g.writes, groupWrite{binding: binding, typ: typ, view: view})
}

// WriteSampler binds a standalone sampler at binding within group.
func (b *Builder) WriteSampler(group ResourceGroupRef, binding uint32, sampler rhi.SamplerID) {
	g := &b.resourceGroups[group.index]
	g.writes = append(g.writes, groupWrite{binding: binding, typ: rhi.DescriptorSampler, sampler: sampler})
}

// WriteAccelerationStructure binds accel at binding within group.
func (b *Builder) WriteAccelerationStructure(group ResourceGroupRef, binding uint32, accel AccelStructRef) {
	g := &b.resourceGroups[group.index]
	g.writes = append(g.writes, groupWrite{binding: binding, typ: rhi.DescriptorAccelerationStructure, accel: accel})
}

// BeginGPUScope pushes a debug-marker scope; every pass added until the
// matching EndGPUScope is wrapped with begin/end GPU markers named name
// in addition to its own pass-name marker.
func (b *Builder) BeginGPUScope(name string) {
	b.scopeStack = append(b.scopeStack, name)
}

// EndGPUScope pops the innermost debug-marker scope.
func (b *Builder) EndGPUScope() {
	if len(b.scopeStack) == 0 {
		panic("rendergraph: EndGPUScope with no matching BeginGPUScope")
	}
	b.scopeStack = b.scopeStack[:len(b.scopeStack)-1]
}

// AddPass records a pass. Dependencies declared by params are what
// drives aliasing, transitions and load/store-op derivation — the
// compiler never inspects fn's body (§3.3).
func (b *Builder) AddPass(name string, hint PassHint, params PassParams, fn PassFunc) {
	scope := append([]string(nil), b.scopeStack...)
	b.passes = append(b.passes, passRecord{name: name, hint: hint, params: params, fn: fn, scope: scope})
}
