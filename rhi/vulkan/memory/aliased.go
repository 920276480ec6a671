//go:build windows

package memory

import "errors"

// ErrNoCompatibleMemoryType indicates the staged requests' memory-type-bit
// intersection is empty, or no known memory type satisfies it.
var ErrNoCompatibleMemoryType = errors.New("memory: no compatible memory type for aliased allocation")

// ErrAlreadyFinalized indicates a second call to AliasedAllocator.Finalize.
var ErrAlreadyFinalized = errors.New("memory: aliased allocator already finalized")

// ErrNotFinalized indicates Offset was called before Finalize.
var ErrNotFinalized = errors.New("memory: aliased allocator not finalized")

// stagedRequest is one resource's staged placement request.
type stagedRequest struct {
	size      uint64
	alignment uint64
	typeBits  uint32
}

// AliasedAllocator computes a single backing allocation sized and laid out
// to hold every staged request at a non-overlapping offset. Unlike
// GpuAllocator it never frees individual placements: the whole backing
// block is released together when the owning resource generation is torn
// down, matching the two-phase stage/finalize contract rhi.AliasedAllocator
// exposes to rendergraph's compiler (rhi/resource.go).
type AliasedAllocator struct {
	selector *MemoryTypeSelector

	staged    []stagedRequest
	finalized bool

	typeIndex uint32
	offsets   []uint64
	size      uint64
}

// NewAliasedAllocator creates an allocator that resolves staged requests
// against the device memory types selector knows about.
func NewAliasedAllocator(selector *MemoryTypeSelector) *AliasedAllocator {
	return &AliasedAllocator{selector: selector}
}

// Stage records a prospective placement and returns a token to pass to
// Offset after Finalize.
func (a *AliasedAllocator) Stage(size, alignment uint64, typeBits uint32) int {
	if alignment == 0 {
		alignment = 1
	}
	a.staged = append(a.staged, stagedRequest{size: size, alignment: alignment, typeBits: typeBits})
	return len(a.staged) - 1
}

// Finalize lays out every staged request at an aligned, non-overlapping
// offset and selects the single memory type compatible with all of them.
// A second call returns ErrAlreadyFinalized.
func (a *AliasedAllocator) Finalize() error {
	if a.finalized {
		return ErrAlreadyFinalized
	}
	if len(a.staged) == 0 {
		a.finalized = true
		return nil
	}

	typeBits := ^uint32(0)
	offsets := make([]uint64, len(a.staged))
	var cursor uint64
	for i, s := range a.staged {
		if rem := cursor % s.alignment; rem != 0 {
			cursor += s.alignment - rem
		}
		offsets[i] = cursor
		cursor += s.size
		typeBits &= s.typeBits
	}
	if typeBits == 0 {
		return ErrNoCompatibleMemoryType
	}

	idx, ok := a.selector.SelectMemoryType(AllocationRequest{
		Size:           cursor,
		Usage:          UsageFastDeviceAccess,
		MemoryTypeBits: typeBits,
	})
	if !ok {
		return ErrNoCompatibleMemoryType
	}

	a.typeIndex = idx
	a.offsets = offsets
	a.size = cursor
	a.finalized = true
	return nil
}

// Size reports the total backing allocation size required after Finalize.
func (a *AliasedAllocator) Size() uint64 { return a.size }

// TypeIndex reports the memory type index Finalize selected.
func (a *AliasedAllocator) TypeIndex() uint32 { return a.typeIndex }

// Offset returns the byte offset token resolved to within the backing
// allocation. Valid only after Finalize.
func (a *AliasedAllocator) Offset(token int) (uint64, error) {
	if !a.finalized {
		return 0, ErrNotFinalized
	}
	if token < 0 || token >= len(a.offsets) {
		return 0, ErrInvalidBlock
	}
	return a.offsets[token], nil
}
