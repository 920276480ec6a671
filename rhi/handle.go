// Package rhi defines the Rendering Hardware Interface: the backend-agnostic
// contracts for GPU resources, memory, descriptors, pipelines, framebuffers
// and command recording that the render graph (package rendergraph) builds
// on. A concrete implementation lives in rhi/vulkan.
package rhi

import "fmt"

// Index is the slot component of a resource ID.
type Index = uint32

// Generation is the bump component of a resource ID. It is incremented
// every time a slot is reused, so a stale ID from a destroyed resource
// never aliases a newly created one at the same slot.
type Generation = uint32

// RawID is the packed 64-bit representation of a resource identifier.
// Layout: lower 32 bits = index, upper 32 bits = generation.
type RawID uint64

// Zip packs an index and generation into a RawID.
func Zip(index Index, gen Generation) RawID {
	return RawID(index) | (RawID(gen) << 32)
}

// Unzip extracts the index and generation from a RawID.
func (id RawID) Unzip() (Index, Generation) {
	return Index(id & 0xFFFFFFFF), Generation(id >> 32)
}

// Marker distinguishes ID[T] instantiations at compile time.
type Marker interface {
	marker()
}

// ID is a type-safe, generation-tagged handle to a resource of kind T.
// The zero value is the reserved "invalid" sentinel (index 0, generation 0).
type ID[T Marker] struct {
	raw RawID
}

// NewID builds an ID from its index and generation components.
func NewID[T Marker](index Index, gen Generation) ID[T] {
	return ID[T]{raw: Zip(index, gen)}
}

// Raw returns the packed representation.
func (id ID[T]) Raw() RawID { return id.raw }

// Unzip extracts the index and generation.
func (id ID[T]) Unzip() (Index, Generation) { return id.raw.Unzip() }

// IsValid reports whether id is not the zero/invalid sentinel.
func (id ID[T]) IsValid() bool { return id.raw != 0 }

func (id ID[T]) String() string {
	idx, gen := id.Unzip()
	return fmt.Sprintf("%T(%d,%d)", *new(T), idx, gen)
}

type bufferMarker struct{}

func (bufferMarker) marker() {}

type imageMarker struct{}

func (imageMarker) marker() {}

type viewMarker struct{}

func (viewMarker) marker() {}

type samplerMarker struct{}

func (samplerMarker) marker() {}

type accelStructMarker struct{}

func (accelStructMarker) marker() {}

type fenceMarker struct{}

func (fenceMarker) marker() {}

type semaphoreMarker struct{}

func (semaphoreMarker) marker() {}

type descriptorSetLayoutMarker struct{}

func (descriptorSetLayoutMarker) marker() {}

type pipelineLayoutMarker struct{}

func (pipelineLayoutMarker) marker() {}

type pipelineMarker struct{}

func (pipelineMarker) marker() {}

type renderPassMarker struct{}

func (renderPassMarker) marker() {}

type framebufferMarker struct{}

func (framebufferMarker) marker() {}

type descriptorSetMarker struct{}

func (descriptorSetMarker) marker() {}

// BufferID identifies a Buffer.
type BufferID = ID[bufferMarker]

// NewBufferID builds a BufferID from its index and generation components.
func NewBufferID(index Index, gen Generation) BufferID { return NewID[bufferMarker](index, gen) }

// ImageID identifies an Image.
type ImageID = ID[imageMarker]

// NewImageID builds an ImageID from its index and generation components.
func NewImageID(index Index, gen Generation) ImageID { return NewID[imageMarker](index, gen) }

// ViewID identifies a ResourceView.
type ViewID = ID[viewMarker]

// NewViewID builds a ViewID from its index and generation components.
// Exposed so callers synthesizing a ResourceView outside a ViewCache
// (e.g. rendergraph's buffer-view adapter, since Buffer has no View
// method of its own) can still hand out a well-formed ViewID.
func NewViewID(index Index, gen Generation) ViewID { return NewID[viewMarker](index, gen) }

// SamplerID identifies a SamplerState.
type SamplerID = ID[samplerMarker]

// NewSamplerID builds a SamplerID from its index and generation components.
func NewSamplerID(index Index, gen Generation) SamplerID { return NewID[samplerMarker](index, gen) }

// AccelerationStructureID identifies an AccelerationStructure.
type AccelerationStructureID = ID[accelStructMarker]

// NewAccelerationStructureID builds an AccelerationStructureID from its
// index and generation components.
func NewAccelerationStructureID(index Index, gen Generation) AccelerationStructureID {
	return NewID[accelStructMarker](index, gen)
}

// FenceID identifies a Fence.
type FenceID = ID[fenceMarker]

// NewFenceID builds a FenceID from its index and generation components.
func NewFenceID(index Index, gen Generation) FenceID { return NewID[fenceMarker](index, gen) }

// SemaphoreID identifies a Semaphore.
type SemaphoreID = ID[semaphoreMarker]

// NewSemaphoreID builds a SemaphoreID from its index and generation components.
func NewSemaphoreID(index Index, gen Generation) SemaphoreID {
	return NewID[semaphoreMarker](index, gen)
}

// DescriptorSetLayoutHandle identifies a cached descriptor-set-layout.
// Handle zero is the reserved "empty set" layout (§4.2).
type DescriptorSetLayoutHandle = ID[descriptorSetLayoutMarker]

// NewDescriptorSetLayoutHandle builds a DescriptorSetLayoutHandle from its
// index and generation components.
func NewDescriptorSetLayoutHandle(index Index, gen Generation) DescriptorSetLayoutHandle {
	return NewID[descriptorSetLayoutMarker](index, gen)
}

// PipelineLayoutHandle identifies a cached pipeline layout.
type PipelineLayoutHandle = ID[pipelineLayoutMarker]

// NewPipelineLayoutHandle builds a PipelineLayoutHandle from its index and
// generation components.
func NewPipelineLayoutHandle(index Index, gen Generation) PipelineLayoutHandle {
	return NewID[pipelineLayoutMarker](index, gen)
}

// PipelineHandle identifies a cached pipeline (graphics, compute or ray tracing).
type PipelineHandle = ID[pipelineMarker]

// NewPipelineHandle builds a PipelineHandle from its index and generation components.
func NewPipelineHandle(index Index, gen Generation) PipelineHandle {
	return NewID[pipelineMarker](index, gen)
}

// RenderPassHandle identifies a cached render pass.
type RenderPassHandle = ID[renderPassMarker]

// NewRenderPassHandle builds a RenderPassHandle from its index and generation components.
func NewRenderPassHandle(index Index, gen Generation) RenderPassHandle {
	return NewID[renderPassMarker](index, gen)
}

// FramebufferID identifies a Framebuffer.
type FramebufferID = ID[framebufferMarker]

// NewFramebufferID builds a FramebufferID from its index and generation components.
func NewFramebufferID(index Index, gen Generation) FramebufferID {
	return NewID[framebufferMarker](index, gen)
}

// DescriptorSetID identifies an allocated descriptor set.
type DescriptorSetID = ID[descriptorSetMarker]

// NewDescriptorSetID builds a DescriptorSetID from its index and generation components.
func NewDescriptorSetID(index Index, gen Generation) DescriptorSetID {
	return NewID[descriptorSetMarker](index, gen)
}
