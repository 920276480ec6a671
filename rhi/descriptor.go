package rhi

import "sort"

// DescriptorType enumerates the kinds of resource a single binding slot
// can hold (§4.2).
type DescriptorType int

const (
	DescriptorSampler DescriptorType = iota
	DescriptorSampledImage
	DescriptorStorageImage
	DescriptorUniformBuffer
	DescriptorStorageBuffer
	DescriptorAccelerationStructure
)

// DescriptorAllocationType selects which of the three descriptor-set
// lifetime/growth policies (§4.2) a layout's sets are allocated from.
type DescriptorAllocationType int

const (
	// AllocationTransient sets live for exactly one frame and are freed
	// in bulk by resetting the owning pool, never individually.
	AllocationTransient DescriptorAllocationType = iota
	// AllocationPersistent sets are freed individually and may outlive
	// any single frame.
	AllocationPersistent
	// AllocationBindless sets use VARIABLE_DESCRIPTOR_COUNT,
	// PARTIALLY_BOUND and UPDATE_AFTER_BIND, and are sized by a declared
	// upper bound rather than an exact count.
	AllocationBindless
)

// BindingDescription describes one binding slot within a
// DescriptorSetLayoutDescription.
type BindingDescription struct {
	Binding  uint32
	Type     DescriptorType
	Count    uint32
	Stages   ShaderStage
	// BindlessCount, when non-zero, marks this binding as a variable-count
	// bindless array sized up to BindlessCount elements (AllocationBindless
	// layouts only).
	BindlessCount uint32
}

// DescriptorSetLayoutDescription is the hashable key for the
// descriptor-set-layout cache (§4.2). Two descriptions are equal (and
// therefore share a cached layout) regardless of the order Bindings were
// appended in, since CacheKey sorts by Binding before hashing.
type DescriptorSetLayoutDescription struct {
	Bindings []BindingDescription
	Type     DescriptorAllocationType
}

// CacheKey returns a comparable value that is equal for two descriptions
// differing only in binding insertion order (§8 "layout cache hash
// stability").
func (d DescriptorSetLayoutDescription) CacheKey() string {
	sorted := append([]BindingDescription(nil), d.Bindings...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Binding < sorted[j].Binding })

	key := make([]byte, 0, len(sorted)*12+1)
	key = append(key, byte(d.Type))
	for _, b := range sorted {
		key = appendUint32(key, b.Binding)
		key = append(key, byte(b.Type))
		key = appendUint32(key, b.Count)
		key = appendUint32(key, uint32(b.Stages))
		key = appendUint32(key, b.BindlessCount)
	}
	return string(key)
}

func appendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// RegisterSpace groups bindings the way HLSL register spaces do
// (b/t/u/s register classes), letting a single Vulkan descriptor set
// emulate several HLSL spaces via a per-class binding offset (§4.2).
type RegisterSpace int

const (
	RegisterSpaceConstant RegisterSpace = iota // HLSL 'b' registers
	RegisterSpaceTexture                       // HLSL 't' registers
	RegisterSpaceUnorderedAccess                // HLSL 'u' registers
	RegisterSpaceSampler                        // HLSL 's' registers
)

// BindingOffsets maps each register space to the binding index its first
// register starts at within the emulated descriptor set.
type BindingOffsets [4]uint32

// EffectiveBinding computes the true Vulkan binding number for a
// declared HLSL-style register within space, given offsets (§4.2). It is
// a pure function so rendergraph's compiler can resolve
// its UnknownBinding compile error without importing rhi/vulkan.
func EffectiveBinding(space RegisterSpace, declaredRegister uint32, offsets BindingOffsets) uint32 {
	return offsets[space] + declaredRegister
}

// DescriptorSetLayoutCache hands out a stable DescriptorSetLayoutHandle
// per distinct DescriptorSetLayoutDescription, so two passes that declare
// identical bindings share one backend layout object (§4.2, §8).
type DescriptorSetLayoutCache interface {
	GetOrCreate(desc DescriptorSetLayoutDescription) (DescriptorSetLayoutHandle, error)
}

// PipelineLayoutDescription is the hashable key for the pipeline-layout
// cache: an ordered list of set layouts plus an optional push-constant
// range.
type PipelineLayoutDescription struct {
	SetLayouts        []DescriptorSetLayoutHandle
	PushConstantBytes uint32
	PushConstantStages ShaderStage
}

// PipelineLayoutCache hands out a stable PipelineLayoutHandle per
// distinct PipelineLayoutDescription.
type PipelineLayoutCache interface {
	GetOrCreate(desc PipelineLayoutDescription) (PipelineLayoutHandle, error)
}

// DescriptorWrite describes one binding update within a DescriptorWriter
// batch.
type DescriptorWrite struct {
	Binding        uint32
	ArrayElement   uint32
	Type           DescriptorType
	BufferView     ResourceView
	ImageView      ResourceView
	Sampler        SamplerID
	AccelStruct    AccelerationStructureID
}

// DescriptorWriter batches descriptor updates for a single set. Writes
// are sorted by (Binding, ArrayElement) and merged into the minimum
// number of contiguous-array update calls before being submitted, so
// e.g. 4 consecutive array-element writes to the same binding become one
// write call instead of four (§8 "write merging").
type DescriptorWriter interface {
	Write(w DescriptorWrite)
	// Submit applies all batched writes to set and clears the batch.
	Submit(set DescriptorSetID) error
}

// MergeWrites sorts writes by (Binding, ArrayElement) and groups
// consecutive array elements of the same binding into runs, returning
// one run per contiguous group. Exposed standalone so both the Vulkan
// backend and tests can exercise the merge policy without a live device.
func MergeWrites(writes []DescriptorWrite) [][]DescriptorWrite {
	if len(writes) == 0 {
		return nil
	}
	sorted := append([]DescriptorWrite(nil), writes...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Binding != sorted[j].Binding {
			return sorted[i].Binding < sorted[j].Binding
		}
		return sorted[i].ArrayElement < sorted[j].ArrayElement
	})

	var runs [][]DescriptorWrite
	run := []DescriptorWrite{sorted[0]}
	for _, w := range sorted[1:] {
		last := run[len(run)-1]
		if w.Binding == last.Binding && w.ArrayElement == last.ArrayElement+1 {
			run = append(run, w)
			continue
		}
		runs = append(runs, run)
		run = []DescriptorWrite{w}
	}
	runs = append(runs, run)
	return runs
}

// DescriptorAllocator allocates and (for AllocationPersistent) frees
// descriptor sets from pools matching a DescriptorAllocationType policy
// (§4.2).
type DescriptorAllocator interface {
	Allocate(layout DescriptorSetLayoutHandle, allocType DescriptorAllocationType) (DescriptorSetID, error)
	// Free releases set. Valid only for AllocationPersistent sets; it is
	// a programmer error to call Free on a transient or bindless set.
	Free(set DescriptorSetID)
	// ResetTransient bulk-frees every AllocationTransient set allocated
	// since the last reset, for the executor to call once per frame.
	ResetTransient()
}
