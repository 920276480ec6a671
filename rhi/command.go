package rhi

import (
	"context"

	"github.com/mizu-gfx/mizu/internal/fatal"
)

// ResourceState names an image's current synchronization/layout state
// (§4.5). Buffers do not have layouts; transition_resource on a buffer
// is a no-op on backends (like Vulkan) where buffer layout is not a
// concept.
type ResourceState int

const (
	StateUndefined ResourceState = iota
	StateUnorderedAccess
	StateTransferDst
	StateTransferSrc
	StateColorAttachment
	StateDepthStencilAttachment
	StateShaderReadOnly
	StatePresent
	// StateGeneral is the catch-all layout used for storage images that
	// are bound simultaneously as UAV and sampled (§4.1/§8 scenario 3);
	// it is the image-layout equivalent of StateUnorderedAccess.
	StateGeneral
)

func (s ResourceState) String() string {
	switch s {
	case StateUndefined:
		return "Undefined"
	case StateUnorderedAccess:
		return "UnorderedAccess"
	case StateTransferDst:
		return "TransferDst"
	case StateTransferSrc:
		return "TransferSrc"
	case StateColorAttachment:
		return "ColorAttachment"
	case StateDepthStencilAttachment:
		return "DepthStencilAttachment"
	case StateShaderReadOnly:
		return "ShaderReadOnly"
	case StatePresent:
		return "Present"
	case StateGeneral:
		return "General"
	default:
		return "ResourceState(invalid)"
	}
}

// PipelineStage is a coarse pipeline-stage mask used on both sides of a
// barrier (§4.5).
type PipelineStage uint32

const (
	StageTopOfPipe PipelineStage = 1 << iota
	StageBottomOfPipe
	StageTransferStage
	StageColorAttachOut
	StageEarlyFragTests
	StageLateFragTests
	StageFragmentStage
	StageComputeStage
	StageAllCommands
)

// AccessMask is a coarse memory-access mask used on both sides of a
// barrier (§4.5).
type AccessMask uint32

const (
	AccessNone AccessMask = 0
	AccessShaderRW AccessMask = 1 << iota
	AccessTransferWrite
	AccessColorWrite
	AccessShaderWrite
	AccessShaderRead
	AccessDepthStencilWrite
	AccessMemoryRW
	AccessMemoryRead
)

// TransitionRule is the resolved (stage, access) pair on each side of a
// barrier for one (from, to) ResourceState pair.
type TransitionRule struct {
	SrcStage  PipelineStage
	SrcAccess AccessMask
	DstStage  PipelineStage
	DstAccess AccessMask
}

type transitionKey struct {
	from, to ResourceState
}

// transitionTable is the fixed table from §4.5, built once at package
// init. Every (from, to) pair not present here is undefined and
// transition_resource must abort for it (§7 UndefinedTransition).
var transitionTable = map[transitionKey]TransitionRule{
	{StateUndefined, StateUnorderedAccess}: {
		SrcStage: StageTopOfPipe, SrcAccess: AccessNone,
		DstStage: StageAllCommands, DstAccess: AccessShaderRW,
	},
	{StateUndefined, StateTransferDst}: {
		SrcStage: StageTopOfPipe, SrcAccess: AccessNone,
		DstStage: StageTransferStage, DstAccess: AccessTransferWrite,
	},
	{StateUndefined, StateColorAttachment}: {
		SrcStage: StageTopOfPipe, SrcAccess: AccessNone,
		DstStage: StageColorAttachOut, DstAccess: AccessColorWrite,
	},
	{StateUndefined, StateDepthStencilAttachment}: {
		SrcStage: StageTopOfPipe, SrcAccess: AccessNone,
		DstStage: StageComputeStage | StageFragmentStage, DstAccess: AccessShaderWrite,
	},
	{StateUnorderedAccess, StateShaderReadOnly}: {
		SrcStage: StageAllCommands, SrcAccess: AccessShaderRW,
		DstStage: StageFragmentStage | StageComputeStage, DstAccess: AccessShaderRead,
	},
	{StateUnorderedAccess, StatePresent}: {
		SrcStage: StageAllCommands, SrcAccess: AccessMemoryRW,
		DstStage: StageBottomOfPipe, DstAccess: AccessNone,
	},
	{StateTransferDst, StateShaderReadOnly}: {
		SrcStage: StageTransferStage, SrcAccess: AccessTransferWrite,
		DstStage: StageFragmentStage | StageComputeStage, DstAccess: AccessShaderRead,
	},
	{StateShaderReadOnly, StateUnorderedAccess}: {
		SrcStage: StageFragmentStage, SrcAccess: AccessShaderRead,
		DstStage: StageAllCommands, DstAccess: AccessShaderRW,
	},
	{StateShaderReadOnly, StateDepthStencilAttachment}: {
		SrcStage: StageFragmentStage | StageComputeStage, SrcAccess: AccessShaderRead,
		DstStage: StageEarlyFragTests, DstAccess: AccessDepthStencilWrite,
	},
	{StateShaderReadOnly, StatePresent}: {
		SrcStage: StageFragmentStage, SrcAccess: AccessShaderRead,
		DstStage: StageBottomOfPipe, DstAccess: AccessMemoryRead,
	},
	{StateColorAttachment, StateShaderReadOnly}: {
		SrcStage: StageColorAttachOut, SrcAccess: AccessColorWrite,
		DstStage: StageFragmentStage | StageComputeStage, DstAccess: AccessShaderRead,
	},
	{StateColorAttachment, StatePresent}: {
		SrcStage: StageColorAttachOut, SrcAccess: AccessColorWrite,
		DstStage: StageBottomOfPipe, DstAccess: AccessMemoryRead,
	},
	{StateDepthStencilAttachment, StateShaderReadOnly}: {
		SrcStage: StageLateFragTests, SrcAccess: AccessDepthStencilWrite,
		DstStage: StageFragmentStage | StageComputeStage, DstAccess: AccessShaderRead,
	},
}

// LookupTransition returns the TransitionRule for (from, to) and true,
// or the zero rule and false if the pair is undefined.
func LookupTransition(from, to ResourceState) (TransitionRule, bool) {
	rule, ok := transitionTable[transitionKey{from, to}]
	return rule, ok
}

// RecorderKind selects the queue a CommandRecorder dispatches to.
type RecorderKind int

const (
	RecorderGraphics RecorderKind = iota
	RecorderCompute
	RecorderTransfer
)

// SubmitInfo bundles the semaphores/fence a CommandRecorder submission
// waits on and signals (§4.5).
type SubmitInfo struct {
	WaitSemaphores   []SemaphoreID
	SignalSemaphores []SemaphoreID
	SignalFence      Fence
}

// BufferCopy describes a buffer-to-buffer copy (§4.5).
type BufferCopy struct {
	Src, Dst         BufferID
	SrcOffset        uint64
	DstOffset        uint64
	Size             uint64
}

// BufferImageCopy describes a buffer-to-image copy. It always writes the
// whole image, all layers, mip 0 (§4.5 copy_buffer_to_image contract).
type BufferImageCopy struct {
	Src        BufferID
	SrcOffset  uint64
	Dst        ImageID
}

// AccelStructBuildMode selects whether build_tlas performs a full build
// or an incremental update.
type AccelStructBuildMode int

const (
	AccelStructBuildFull AccelStructBuildMode = iota
	AccelStructBuildUpdate
)

// TLASInstance is one record written into a top-level acceleration
// structure's instance buffer (§4.5 build_tlas contract).
type TLASInstance struct {
	Transform     [12]float32 // row-major 3x4
	CustomIndex   uint32
	Mask          uint8
	SBTOffset     uint32
	Flags         uint32
	BottomLevel   AccelerationStructureID
}

// CommandRecorder records GPU commands for later submission (§4.5).
// Lifetime: Begin -> record calls -> End -> Submit. A recorder is bound
// to the goroutine that requested it from Device.NewCommandRecorder and
// must not be shared across goroutines (§5).
type CommandRecorder interface {
	Kind() RecorderKind

	Begin() error
	End() error
	Submit(ctx context.Context, info SubmitInfo) error

	// BindPipeline stores pipeline and its bind point, clearing any
	// implicitly bound descriptor sets incompatible with the new
	// pipeline's layout.
	BindPipeline(p Pipeline)

	// BindResourceGroup binds a persistent, hash-deduplicated resource
	// group at setIndex. A group with the same content hash already
	// bound at setIndex is a no-op.
	BindResourceGroup(group DescriptorSetID, setIndex uint32)

	// BindDescriptorSet binds set at setIndex without hash
	// deduplication.
	BindDescriptorSet(set DescriptorSetID, setIndex uint32)

	// PushConstants uploads data as the bound pipeline's push-constant
	// range. len(data) must equal the range's declared size; mismatches
	// are a fatal programmer error (§7 PushConstantSizeMismatch).
	PushConstants(data []byte)

	BeginRenderPass(fb Framebuffer)
	EndRenderPass()

	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	Dispatch(groupCountX, groupCountY, groupCountZ uint32)
	TraceRays(sbt ShaderBindingTable, width, height, depth uint32)

	// TransitionResource looks up LookupTransition(old, new) and emits
	// exactly one barrier. It is a fatal programmer error
	// (UndefinedTransition) to request a pair absent from the table; a
	// same-state transition is a logged no-op.
	TransitionResource(image ImageID, old, new ResourceState, rng *ViewRange)

	CopyBufferToBuffer(c BufferCopy)
	CopyBufferToImage(c BufferImageCopy)

	BuildBLAS(blas AccelerationStructureID, scratch BufferID)
	BuildTLAS(tlas AccelerationStructureID, instances []TLASInstance, scratch BufferID, mode AccelStructBuildMode)

	BeginGPUMarker(label string)
	EndGPUMarker()
}

// CheckTransition aborts (via internal/fatal) if (from, to) is not a
// listed pair in the §4.5 transition table; same-state transitions are
// reported back as a no-op rather than aborting. Backend
// TransitionResource implementations call this before emitting a
// barrier.
func CheckTransition(from, to ResourceState) (rule TransitionRule, noop bool) {
	if from == to {
		Logger().Warn("transition_resource: same-state transition is a no-op", "state", from.String())
		return TransitionRule{}, true
	}
	rule, ok := LookupTransition(from, to)
	fatal.Check(ok, "UndefinedTransition", "rhi: no transition rule for %s -> %s", from, to)
	return rule, false
}
