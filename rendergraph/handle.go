// Package rendergraph builds, compiles and executes per-frame GPU work
// as a declarative graph of passes over rhi resources (spec.md §4.6-4.8).
// A Builder records resource declarations and passes; Compile turns that
// record into an executable Graph; Graph.Execute replays it against a
// rhi.CommandRecorder.
package rendergraph

import "fmt"

// refKind tags which resource table a Ref indexes into. Render-graph
// handles are a separate opaque space from rhi.ID[T] (spec.md §3.2): a
// Ref is only ever resolved by the Builder/Compiler/Executor that issued
// it, never passed to rhi directly.
type refKind uint8

const (
	refBuffer refKind = iota
	refImage
	refCubemap
	refAccelStruct
	refBufferView
	refImageView
	refFramebuffer
	refResourceGroup
)

// Ref is an opaque, generation-tagged reference into a Builder's
// resource table. The zero Ref is the reserved Invalid sentinel.
type Ref struct {
	kind  refKind
	index uint32
	gen   uint32
}

// Invalid is the reserved zero-value Ref. A Ref returned from a Builder
// constructor is never Invalid.
var Invalid = Ref{}

// IsValid reports whether r was returned by a Builder constructor.
func (r Ref) IsValid() bool { return r != Invalid }

func (r Ref) String() string {
	return fmt.Sprintf("Ref(%s,%d,%d)", r.kind, r.index, r.gen)
}

func (k refKind) String() string {
	switch k {
	case refBuffer:
		return "Buffer"
	case refImage:
		return "Image"
	case refCubemap:
		return "Cubemap"
	case refAccelStruct:
		return "AccelStruct"
	case refBufferView:
		return "BufferView"
	case refImageView:
		return "ImageView"
	case refFramebuffer:
		return "Framebuffer"
	case refResourceGroup:
		return "ResourceGroup"
	default:
		return "invalid"
	}
}

// BufferRef references a buffer (transient or external) declared with a
// Builder.
type BufferRef = Ref

// ImageRef references a 1D/2D/3D image declared with a Builder.
type ImageRef = Ref

// CubemapRef references a 6-layer cubemap image declared with a Builder.
type CubemapRef = Ref

// AccelStructRef references a BLAS or TLAS declared with a Builder.
type AccelStructRef = Ref

// BufferViewRef references an SRV/UAV/CBV created over a BufferRef.
type BufferViewRef = Ref

// ImageViewRef references a view created over an ImageRef/CubemapRef.
type ImageViewRef = Ref

// FramebufferRef references a framebuffer created with
// Builder.CreateFramebuffer.
type FramebufferRef = Ref

// ResourceGroupRef references a persistent descriptor set created with
// Builder.CreateResourceGroup.
type ResourceGroupRef = Ref
