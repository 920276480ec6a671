package rhi

// Usage is a bitmask of valid uses for a Buffer or Image (§3.1).
type Usage uint32

const (
	UsageVertex Usage = 1 << iota
	UsageIndex
	UsageConstant
	UsageUnorderedAccess
	UsageTransferSrc
	UsageTransferDst
	UsageHostVisible
	UsageAccelStructStorage
	UsageAccelStructInput
	UsageShaderBindingTable

	// Image-only usage bits.
	UsageAttachment
	UsageSampled
)

// Has reports whether all bits in want are set in u.
func (u Usage) Has(want Usage) bool { return u&want == want }

// MemoryRequirements describes the size and alignment a resource needs from
// a memory allocator (§4.1), plus the set of memory types (as a driver bit
// mask) capable of backing it.
type MemoryRequirements struct {
	Size      uint64
	Alignment uint64
	// TypeBits has bit i set if memory type i can back this resource.
	TypeBits uint32
}

// AliasedAllocator is the two-phase aliased memory allocator (§4.1): a
// backend-agnostic view over rhi/vulkan/memory.AliasedAllocator that lets
// rendergraph's compiler place virtual (Buffer/ImageDescription.Virtual)
// resources into a single backing allocation without importing a
// concrete backend package.
//
// Contract: the caller guarantees resources staged into one
// AliasedAllocator never have overlapping GPU lifetimes; the allocator
// does not verify this itself (rendergraph's compiler does, §4.7 step 3).
type AliasedAllocator interface {
	// Stage records a prospective placement and returns a token to pass
	// to BindBuffer/BindImage after Finalize.
	Stage(req MemoryRequirements) (token int)

	// Finalize computes the single backing allocation and its memory
	// type. Returns ErrNoCompatibleMemoryType if the staged requirements'
	// type-bit intersection is empty. A second call returns
	// ErrAllocatorAlreadyFinalized.
	Finalize() error

	// BindBuffer/BindImage bind a virtual resource at its staged token's
	// offset within the finalized backing allocation. Valid only after
	// Finalize.
	BindBuffer(token int, buf Buffer) error
	BindImage(token int, img Image) error
}

// BufferDescription configures Buffer creation.
type BufferDescription struct {
	Name    string
	Size    uint64
	Stride  uint32
	Usage   Usage
	// Virtual buffers have no memory bound at creation time; they are
	// placed later by an AliasedAllocator (§3.1, §4.1).
	Virtual bool
}

// Buffer is an opaque GPU buffer allocation.
//
// A non-virtual Buffer has exactly one backing allocation until destruction.
// A virtual Buffer has none until placed by an aliased allocator (§3.1).
type Buffer interface {
	ID() BufferID
	Description() BufferDescription

	// MemoryRequirements reports the size/alignment/type-bits needed to
	// back this buffer.
	MemoryRequirements() MemoryRequirements

	// IsHostVisible reports whether SetData is usable.
	IsHostVisible() bool

	// SetData uploads bytes at offset into host-visible memory. It is a
	// programmer error to call this on a non-host-visible buffer.
	SetData(data []byte, offset uint64)

	Destroy()
}

// ImageType enumerates the dimensionality of an Image (§3.1).
type ImageType int

const (
	Image1D ImageType = iota
	Image2D
	Image3D
	ImageCubemap
)

// ImageDescription configures Image creation.
//
// Invariant: if Type == ImageCubemap then NumLayers must equal 6 (§3.1).
type ImageDescription struct {
	Name      string
	Type      ImageType
	Format    PixelFmt
	Width     uint32
	Height    uint32
	Depth     uint32
	NumMips   uint32
	NumLayers uint32
	Usage     Usage
	Virtual   bool
}

// ViewRange selects a subresource range of an Image.
type ViewRange struct {
	MipBase    uint32
	MipCount   uint32
	LayerBase  uint32
	LayerCount uint32
	// OverrideFormat reinterprets the view's format when non-zero-value;
	// the zero value of PixelFmt (R32F) is a valid format, so a separate
	// flag distinguishes "no override" from "override to R32F".
	OverrideFormat       PixelFmt
	HasOverrideFormat bool
}

// ViewKind tags what a ResourceView is used as (§3.1).
type ViewKind int

const (
	ViewSRV ViewKind = iota
	ViewUAV
	ViewCBV
	ViewRTV
)

// Image is an opaque GPU image allocation.
type Image interface {
	ID() ImageID
	Description() ImageDescription
	MemoryRequirements() MemoryRequirements

	// View returns the cached ResourceView for (kind, range), creating one
	// on first request. Calling View twice with an identical (kind, range)
	// returns the identical view (§8 "view caching").
	View(kind ViewKind, rng ViewRange) ResourceView

	Destroy()
}
