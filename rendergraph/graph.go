package rendergraph

import (
	"context"
	"fmt"

	"github.com/mizu-gfx/mizu/internal/fatal"
	"github.com/mizu-gfx/mizu/rhi"
)

// Environment bundles the live rhi.Device and the caches a compiled Graph
// draws pipelines, render passes, framebuffers and descriptor sets from
// (§4.7 step 6, §4.2). An application builds one Environment per Device
// and reuses it across every frame's Builder/Compile call, so caches
// stay warm frame to frame.
type Environment struct {
	Device            rhi.Device
	Pipelines         rhi.PipelineCache
	DescriptorLayouts rhi.DescriptorSetLayoutCache
	PipelineLayouts   rhi.PipelineLayoutCache
	RenderPasses      rhi.RenderPassCache
	Framebuffers      rhi.FramebufferCache
	Descriptors       rhi.DescriptorAllocator

	// NewDescriptorWriter returns a fresh rhi.DescriptorWriter for
	// batching the writes into one resource group (§4.2, §4.7 step 7).
	NewDescriptorWriter func() rhi.DescriptorWriter

	// NewAliasedAllocator returns a fresh rhi.AliasedAllocator for one
	// alias group (§4.7 step 3). Compile calls it once per group it
	// decides to place; the returned allocator is kept alive for the
	// Graph's lifetime.
	NewAliasedAllocator func() rhi.AliasedAllocator
}

// bufferViewAdapter stands in for rhi.ResourceView at descriptor-write
// time: buffers carry no view object of their own (§3.1 views exist only
// for images), so a BufferViewRef's "view" is just its ViewKind tag over
// the owning buffer.
type bufferViewAdapter struct {
	id    rhi.ViewID
	owner rhi.BufferID
	kind  rhi.ViewKind
}

func (v bufferViewAdapter) ID() rhi.ViewID       { return v.id }
func (v bufferViewAdapter) Kind() rhi.ViewKind   { return v.kind }
func (v bufferViewAdapter) Image() rhi.ImageID   { return rhi.ImageID{} }
func (v bufferViewAdapter) Range() rhi.ViewRange { return rhi.ViewRange{} }

type passKind int

const (
	passRaster passKind = iota
	passCompute
	passRayTracing
	passTransition
	passImmediate
)

// compiledPass is the sum type the executor dispatches over (§4.8),
// expressed as one struct with a kind tag rather than an interface: the
// fields a given kind reads are documented per kind below, mirroring the
// std::variant<RGRenderPass, RGComputePass, RGResourceTransitionPass> the
// render graph compiles down to in the source engine.
type compiledPass struct {
	kind  passKind
	name  string
	scope []string

	// Raster/Compute/RayTracing/Immediate.
	fn             PassFunc
	allowed        map[Ref]bool
	resourceGroups map[uint32]ResourceGroupRef
	framebuffer    int // index into Graph.framebuffers; -1 if none (Raster only)

	// Transition, synthetic passes inserted by Compile step 5.
	transImage         ImageRef
	transOld, transNew rhi.ResourceState
}

// Graph is the executable result of Compile (§4.7/§4.8): every declared
// resource has been created (or bound to its external object), every
// alias group has a finalized backing allocation, and every pass has its
// pipelines/framebuffers/resource groups resolved. Execute replays the
// compiled pass list once; a Graph is discarded after one Execute call
// the same way its Builder was discarded after Compile (§4.6).
type Graph struct {
	env Environment

	buffers  []rhi.Buffer
	images   []rhi.Image
	cubemaps []rhi.Image
	accels   []rhi.AccelerationStructure
	views    []rhi.ResourceView

	resourceGroups       []rhi.DescriptorSetID
	aliasAllocs          []rhi.AliasedAllocator
	compiledFramebuffers []rhi.Framebuffer

	passes []compiledPass
}

func (g *Graph) checkKind(ref Ref, want refKind) {
	fatal.Check(ref.kind == want, "InvalidHandle", "rendergraph: expected a %s ref, got %s", want, ref)
}

func (g *Graph) resolveBuffer(ref Ref) rhi.Buffer {
	g.checkKind(ref, refBuffer)
	fatal.Check(int(ref.index) < len(g.buffers), "InvalidHandle", "rendergraph: buffer ref %s out of range", ref)
	return g.buffers[ref.index]
}

func (g *Graph) resolveImage(ref Ref) rhi.Image {
	switch ref.kind {
	case refImage:
		fatal.Check(int(ref.index) < len(g.images), "InvalidHandle", "rendergraph: image ref %s out of range", ref)
		return g.images[ref.index]
	case refCubemap:
		fatal.Check(int(ref.index) < len(g.cubemaps), "InvalidHandle", "rendergraph: cubemap ref %s out of range", ref)
		return g.cubemaps[ref.index]
	default:
		fatal.Check(false, "InvalidHandle", "rendergraph: expected an image or cubemap ref, got %s", ref)
		return nil
	}
}

func (g *Graph) resolveView(ref Ref) rhi.ResourceView {
	switch ref.kind {
	case refImageView, refBufferView:
		fatal.Check(int(ref.index) < len(g.views), "InvalidHandle", "rendergraph: view ref %s out of range", ref)
		return g.views[ref.index]
	default:
		fatal.Check(false, "InvalidHandle", "rendergraph: expected a view ref, got %s", ref)
		return nil
	}
}

func (g *Graph) resolveResourceGroup(ref ResourceGroupRef) rhi.DescriptorSetID {
	g.checkKind(ref, refResourceGroup)
	fatal.Check(int(ref.index) < len(g.resourceGroups), "InvalidHandle", "rendergraph: resource group ref %s out of range", ref)
	return g.resourceGroups[ref.index]
}

// resourcesFor builds the Resources a single pass callback resolves its
// declared dependencies through, scoping UndeclaredDependency checks to
// exactly the Refs that pass's own PassParams named (§7).
func (g *Graph) resourcesFor(p *compiledPass) *Resources {
	return &Resources{g: g, pass: p}
}

// Execute replays the compiled pass list against cmd in order (§4.8):
// command_buffer.begin() -> per pass, push one debug marker per enclosing
// GPU scope (outermost first) plus one named after the pass, run a
// kind-dispatched body, and pop them all -> command_buffer.end() + submit. Execute never
// waits on the signal fence and never resets the transient descriptor
// pool; both are the caller's responsibility once info.SignalFence (if
// any) is known to have signalled (§4.8, §5).
func (g *Graph) Execute(ctx context.Context, cmd rhi.CommandRecorder, info rhi.SubmitInfo) error {
	if err := cmd.Begin(); err != nil {
		return fmt.Errorf("rendergraph: begin command recorder: %w", err)
	}

	for i := range g.passes {
		p := &g.passes[i]
		for _, s := range p.scope {
			cmd.BeginGPUMarker(s)
		}
		cmd.BeginGPUMarker(p.name)

		err := g.executePass(cmd, p)
		for n := 0; n <= len(p.scope); n++ {
			cmd.EndGPUMarker()
		}
		if err != nil {
			return fmt.Errorf("rendergraph: pass %q: %w", p.name, err)
		}
	}

	if err := cmd.End(); err != nil {
		return fmt.Errorf("rendergraph: end command recorder: %w", err)
	}
	return cmd.Submit(ctx, info)
}

func (g *Graph) executePass(cmd rhi.CommandRecorder, p *compiledPass) error {
	switch p.kind {
	case passTransition:
		cmd.TransitionResource(g.resolveImage(p.transImage).ID(), p.transOld, p.transNew, nil)
		return nil

	case passImmediate:
		return p.fn(cmd, g.resourcesFor(p))

	case passCompute, passRayTracing:
		for set, group := range p.resourceGroups {
			cmd.BindResourceGroup(g.resolveResourceGroup(group), set)
		}
		return p.fn(cmd, g.resourcesFor(p))

	case passRaster:
		fb := g.framebuffers()[p.framebuffer]
		cmd.BeginRenderPass(fb)
		for set, group := range p.resourceGroups {
			cmd.BindResourceGroup(g.resolveResourceGroup(group), set)
		}
		err := p.fn(cmd, g.resourcesFor(p))
		cmd.EndRenderPass()
		return err

	default:
		fatal.Check(false, "InvalidHandle", "rendergraph: compiledPass has unknown kind %d", p.kind)
		return nil
	}
}

func (g *Graph) framebuffers() []rhi.Framebuffer {
	return g.compiledFramebuffers
}
