package rendergraph

import "fmt"

// CompileErrorKind enumerates the recoverable ways a Builder's recorded
// graph can fail to compile (§7). These are returned as ordinary errors,
// never routed through internal/fatal: a malformed graph is caller error
// discoverable before any GPU work is submitted, not a runtime contract
// violation.
type CompileErrorKind int

const (
	// AttachmentAbsentUsage: a pass declares a framebuffer attachment
	// that never appears in that image's usage timeline.
	AttachmentAbsentUsage CompileErrorKind = iota
	// ConflictingUsagePerPass: a single pass uses the same resource in
	// two access kinds that cannot share one resource state (e.g. both
	// AttachmentColor and StorageWrite in the same pass).
	ConflictingUsagePerPass
	// UnknownBinding: a pass parameter references a binding not declared
	// by any BindingDescription reachable from its resource group.
	UnknownBinding
	// CyclicImmediate: two passes declare a direct dependency cycle
	// through their immediate (same-frame) resource usages.
	CyclicImmediate
	// IncompatibleFormat: two attachments sharing a render pass declare
	// different sample counts for the same slot.
	IncompatibleFormat
	// MissingShaderStage: a GraphicsPipelineDescription used by a raster
	// pass has no vertex stage.
	MissingShaderStage
	// UndeclaredDependency: a pass callback references a Ref the pass's
	// own parameter block never declared.
	UndeclaredDependency
	// DuplicateHandle: Builder.AddPass was called twice with passes that
	// both claim to be the sole writer of the same external resource in
	// the same frame.
	DuplicateHandle
	// InvalidHandle: a Ref from a different Builder (or the zero Ref)
	// was passed where a valid one was required.
	InvalidHandle
)

func (k CompileErrorKind) String() string {
	switch k {
	case AttachmentAbsentUsage:
		return "AttachmentAbsentUsage"
	case ConflictingUsagePerPass:
		return "ConflictingUsagePerPass"
	case UnknownBinding:
		return "UnknownBinding"
	case CyclicImmediate:
		return "CyclicImmediate"
	case IncompatibleFormat:
		return "IncompatibleFormat"
	case MissingShaderStage:
		return "MissingShaderStage"
	case UndeclaredDependency:
		return "UndeclaredDependency"
	case DuplicateHandle:
		return "DuplicateHandle"
	case InvalidHandle:
		return "InvalidHandle"
	default:
		return "CompileErrorKind(invalid)"
	}
}

// CompileError reports why Compile rejected a Builder's recorded graph.
type CompileError struct {
	Kind CompileErrorKind
	Pass string
	Ref  Ref
	Msg  string
}

func (e *CompileError) Error() string {
	if e.Pass != "" {
		return fmt.Sprintf("rendergraph: %s in pass %q: %s", e.Kind, e.Pass, e.Msg)
	}
	return fmt.Sprintf("rendergraph: %s: %s", e.Kind, e.Msg)
}
