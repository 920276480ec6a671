package rhi

// LoadOp selects how an attachment's existing contents are treated at
// the start of a render pass (§4.5/§4.7).
type LoadOp int

const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
	LoadOpDontCare
)

// StoreOp selects whether an attachment's contents are preserved past
// the end of a render pass.
type StoreOp int

const (
	StoreOpStore StoreOp = iota
	StoreOpDontCare
)

// ClearValue is the clear color/depth-stencil value used when an
// attachment's LoadOp is LoadOpClear.
type ClearValue struct {
	Color        [4]float32
	Depth        float32
	Stencil      uint32
}

// AttachmentDescription describes one render-pass attachment slot. The
// render graph compiler derives LoadOp/StoreOp per §4.7 step 4; callers
// assembling a Framebuffer directly (outside the render graph) set them
// explicitly.
type AttachmentDescription struct {
	Format      PixelFmt
	SampleCount uint32
	LoadOp      LoadOp
	StoreOp     StoreOp
	// InitialLayout/FinalLayout name the resource states (rhi.ResourceState)
	// the attachment image is transitioned from/to around the pass.
	InitialLayout ResourceState
	FinalLayout   ResourceState
}

// RenderPassKey uniquely identifies a render-pass configuration, shared
// by every framebuffer with compatible attachments (§4.4 "render passes
// shared by layout, not by exact framebuffer").
type RenderPassKey struct {
	ColorAttachments []AttachmentDescription
	HasDepth         bool
	DepthAttachment  AttachmentDescription
}

// FramebufferDescription configures Framebuffer creation. ColorViews and
// DepthView are views created via Image.View; Width/Height are the
// common render area every attachment must agree on.
type FramebufferDescription struct {
	Name       string
	RenderPass RenderPassKey
	ColorViews []ResourceView
	DepthView  ResourceView
	Width      uint32
	Height     uint32
}

// Framebuffer is an opaque set of attachment bindings for a render pass
// of a given RenderPassKey.
type Framebuffer interface {
	ID() FramebufferID
	Description() FramebufferDescription
	Destroy()
}

// RenderPassCache hands out a stable RenderPassHandle per distinct
// RenderPassKey. Two passes with identical attachment layouts (formats,
// sample counts, load/store ops, initial/final states) but different
// concrete image views share one backend render-pass object.
type RenderPassCache interface {
	GetOrCreate(key RenderPassKey) (RenderPassHandle, error)
}

// FramebufferCache hands out a stable Framebuffer per distinct
// FramebufferDescription, scoped beneath a RenderPassHandle.
type FramebufferCache interface {
	GetOrCreate(pass RenderPassHandle, desc FramebufferDescription) (Framebuffer, error)
}
