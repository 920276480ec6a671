package rendergraph

import (
	"context"

	"github.com/mizu-gfx/mizu/rhi"
)

// fakeBuffer/fakeImage are minimal in-memory stand-ins for the rhi
// contracts, enough to exercise Compile's bookkeeping without a real
// backend.
type fakeBuffer struct {
	id   rhi.BufferID
	desc rhi.BufferDescription
	data []byte
}

func (b *fakeBuffer) ID() rhi.BufferID                  { return b.id }
func (b *fakeBuffer) Description() rhi.BufferDescription { return b.desc }
func (b *fakeBuffer) MemoryRequirements() rhi.MemoryRequirements {
	return rhi.MemoryRequirements{Size: b.desc.Size, Alignment: 16, TypeBits: 0x1}
}
func (b *fakeBuffer) IsHostVisible() bool         { return b.desc.Usage.Has(rhi.UsageHostVisible) }
func (b *fakeBuffer) SetData(data []byte, offset uint64) { b.data = append(b.data[:offset], data...) }
func (b *fakeBuffer) Destroy()                    {}

type fakeImage struct {
	id    rhi.ImageID
	desc  rhi.ImageDescription
	views rhi.ViewCache
}

func (img *fakeImage) ID() rhi.ImageID                 { return img.id }
func (img *fakeImage) Description() rhi.ImageDescription { return img.desc }
func (img *fakeImage) MemoryRequirements() rhi.MemoryRequirements {
	return rhi.MemoryRequirements{Size: uint64(img.desc.Width) * uint64(img.desc.Height) * 4, Alignment: 256, TypeBits: 0x1}
}
func (img *fakeImage) View(kind rhi.ViewKind, rng rhi.ViewRange) rhi.ResourceView {
	return img.views.GetOrCreate(img.id, kind, rng, func() any { return nil })
}
func (img *fakeImage) Destroy() {}

type fakeDevice struct {
	nextBuffer uint32
	nextImage  uint32
}

func (d *fakeDevice) API() rhi.GraphicsAPI   { return rhi.GraphicsAPIVulkan }
func (d *fakeDevice) Limits() rhi.Limits     { return rhi.Limits{} }
func (d *fakeDevice) Features() rhi.Features { return rhi.Features{} }

func (d *fakeDevice) CreateBuffer(desc rhi.BufferDescription) (rhi.Buffer, error) {
	b := &fakeBuffer{id: rhi.BufferID{}, desc: desc}
	d.nextBuffer++
	return b, nil
}
func (d *fakeDevice) CreateImage(desc rhi.ImageDescription) (rhi.Image, error) {
	img := &fakeImage{id: rhi.ImageID{}, desc: desc}
	d.nextImage++
	return img, nil
}
func (d *fakeDevice) CreateSampler(desc rhi.SamplerDescription) (rhi.SamplerState, error) {
	return nil, nil
}
func (d *fakeDevice) CreateAccelerationStructure(desc rhi.AccelStructDescription) (rhi.AccelerationStructure, error) {
	return nil, nil
}
func (d *fakeDevice) CreateSwapchain(desc rhi.SwapchainDescription) (rhi.Swapchain, error) {
	return nil, nil
}
func (d *fakeDevice) CreateFence(signalled bool) (rhi.Fence, error)  { return nil, nil }
func (d *fakeDevice) CreateSemaphore() (rhi.Semaphore, error)        { return nil, nil }
func (d *fakeDevice) NewCommandRecorder() (rhi.CommandRecorder, error) {
	return &fakeRecorder{}, nil
}
func (d *fakeDevice) Submit(ctx context.Context, cmds []rhi.CommandRecorder, wait, signal []rhi.SemaphoreID, fence rhi.Fence) error {
	return nil
}
func (d *fakeDevice) WaitIdle(ctx context.Context) error { return nil }
func (d *fakeDevice) Destroy()                           {}

// fakeRecorder records the calls executePass makes, for assertions.
type fakeRecorder struct {
	transitions []transitionCall
	markers     []string
	boundGroups []boundGroup
	beganPass   int
}

type transitionCall struct {
	old, new rhi.ResourceState
}
type boundGroup struct {
	set rhi.DescriptorSetID
	idx uint32
}

func (r *fakeRecorder) Kind() rhi.RecorderKind { return rhi.RecorderGraphics }
func (r *fakeRecorder) Begin() error           { return nil }
func (r *fakeRecorder) End() error             { return nil }
func (r *fakeRecorder) Submit(ctx context.Context, info rhi.SubmitInfo) error { return nil }
func (r *fakeRecorder) BindPipeline(p rhi.Pipeline)                          {}
func (r *fakeRecorder) BindResourceGroup(group rhi.DescriptorSetID, setIndex uint32) {
	r.boundGroups = append(r.boundGroups, boundGroup{set: group, idx: setIndex})
}
func (r *fakeRecorder) BindDescriptorSet(set rhi.DescriptorSetID, setIndex uint32) {}
func (r *fakeRecorder) PushConstants(data []byte)                                 {}
func (r *fakeRecorder) BeginRenderPass(fb rhi.Framebuffer)                        { r.beganPass++ }
func (r *fakeRecorder) EndRenderPass()                                            {}
func (r *fakeRecorder) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)          {}
func (r *fakeRecorder) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
}
func (r *fakeRecorder) Dispatch(x, y, z uint32)                                                       {}
func (r *fakeRecorder) TraceRays(sbt rhi.ShaderBindingTable, w, h, depth uint32)                      {}
func (r *fakeRecorder) TransitionResource(image rhi.ImageID, old, new rhi.ResourceState, rng *rhi.ViewRange) {
	r.transitions = append(r.transitions, transitionCall{old: old, new: new})
}
func (r *fakeRecorder) CopyBufferToBuffer(c rhi.BufferCopy) {}
func (r *fakeRecorder) CopyBufferToImage(c rhi.BufferImageCopy) {}
func (r *fakeRecorder) BuildBLAS(blas rhi.AccelerationStructureID, scratch rhi.BufferID) {}
func (r *fakeRecorder) BuildTLAS(tlas rhi.AccelerationStructureID, instances []rhi.TLASInstance, scratch rhi.BufferID, mode rhi.AccelStructBuildMode) {
}
func (r *fakeRecorder) BeginGPUMarker(label string) { r.markers = append(r.markers, "begin:"+label) }
func (r *fakeRecorder) EndGPUMarker()                { r.markers = append(r.markers, "end") }

// fakeRenderPassCache/fakeFramebufferCache dedup purely by map key equality
// over the comparable parts of their keys (the real caches hash/compare
// the same way; slices inside RenderPassKey/FramebufferDescription make
// neither directly comparable, so tests key on a derived string instead).
type fakeRenderPassCache struct {
	next   uint32
	byKey  map[string]rhi.RenderPassHandle
}

func renderPassKeyString(k rhi.RenderPassKey) string {
	s := ""
	for _, a := range k.ColorAttachments {
		s += attachmentOpString(a) + "|"
	}
	if k.HasDepth {
		s += "D:" + attachmentOpString(k.DepthAttachment)
	}
	return s
}

func attachmentOpString(a rhi.AttachmentDescription) string {
	return string(rune('0'+int(a.LoadOp))) + string(rune('0'+int(a.StoreOp))) +
		string(rune('0'+int(a.InitialLayout))) + string(rune('0'+int(a.FinalLayout))) + ";"
}

func (c *fakeRenderPassCache) GetOrCreate(key rhi.RenderPassKey) (rhi.RenderPassHandle, error) {
	if c.byKey == nil {
		c.byKey = map[string]rhi.RenderPassHandle{}
	}
	k := renderPassKeyString(key)
	if h, ok := c.byKey[k]; ok {
		return h, nil
	}
	c.next++
	var result rhi.RenderPassHandle
	c.byKey[k] = result
	return result, nil
}

type fakeFramebuffer struct {
	id   rhi.FramebufferID
	desc rhi.FramebufferDescription
}

func (fb *fakeFramebuffer) ID() rhi.FramebufferID                 { return fb.id }
func (fb *fakeFramebuffer) Description() rhi.FramebufferDescription { return fb.desc }
func (fb *fakeFramebuffer) Destroy()                               {}

type fakeFramebufferCache struct {
	next uint32
}

func (c *fakeFramebufferCache) GetOrCreate(pass rhi.RenderPassHandle, desc rhi.FramebufferDescription) (rhi.Framebuffer, error) {
	c.next++
	return &fakeFramebuffer{desc: desc}, nil
}

type fakeDescriptorLayoutCache struct{ next uint32 }

func (c *fakeDescriptorLayoutCache) GetOrCreate(desc rhi.DescriptorSetLayoutDescription) (rhi.DescriptorSetLayoutHandle, error) {
	c.next++
	return rhi.DescriptorSetLayoutHandle{}, nil
}

type fakePipelineLayoutCache struct{ next uint32 }

func (c *fakePipelineLayoutCache) GetOrCreate(desc rhi.PipelineLayoutDescription) (rhi.PipelineLayoutHandle, error) {
	c.next++
	return rhi.PipelineLayoutHandle{}, nil
}

type fakePipeline struct{ bp rhi.PipelineBindPoint }

func (p *fakePipeline) ID() rhi.PipelineHandle          { return rhi.PipelineHandle{} }
func (p *fakePipeline) BindPoint() rhi.PipelineBindPoint { return p.bp }
func (p *fakePipeline) Destroy()                         {}

type fakePipelineCache struct{}

func (c *fakePipelineCache) GetOrCreateGraphics(desc rhi.GraphicsPipelineDescription) (rhi.Pipeline, error) {
	return &fakePipeline{bp: rhi.BindPointGraphics}, nil
}
func (c *fakePipelineCache) GetOrCreateCompute(desc rhi.ComputePipelineDescription) (rhi.Pipeline, error) {
	return &fakePipeline{bp: rhi.BindPointCompute}, nil
}
func (c *fakePipelineCache) GetOrCreateRayTracing(desc rhi.RayTracingPipelineDescription) (rhi.Pipeline, error) {
	return &fakePipeline{bp: rhi.BindPointRayTracing}, nil
}

type fakeDescriptorAllocator struct{ next uint32 }

func (a *fakeDescriptorAllocator) Allocate(layout rhi.DescriptorSetLayoutHandle, allocType rhi.DescriptorAllocationType) (rhi.DescriptorSetID, error) {
	a.next++
	return rhi.DescriptorSetID{}, nil
}
func (a *fakeDescriptorAllocator) Free(set rhi.DescriptorSetID) {}
func (a *fakeDescriptorAllocator) ResetTransient()               {}

type fakeWriter struct{ writes []rhi.DescriptorWrite }

func (w *fakeWriter) Write(write rhi.DescriptorWrite) { w.writes = append(w.writes, write) }
func (w *fakeWriter) Submit(set rhi.DescriptorSetID) error { return nil }

func newFakeEnvironment() Environment {
	return Environment{
		Device:            &fakeDevice{},
		Pipelines:         &fakePipelineCache{},
		DescriptorLayouts: &fakeDescriptorLayoutCache{},
		PipelineLayouts:   &fakePipelineLayoutCache{},
		RenderPasses:      &fakeRenderPassCache{},
		Framebuffers:      &fakeFramebufferCache{},
		Descriptors:       &fakeDescriptorAllocator{},
		NewDescriptorWriter: func() rhi.DescriptorWriter {
			return &fakeWriter{}
		},
	}
}
