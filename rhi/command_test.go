package rhi

import "testing"

func TestTransitionTableExhaustivePairs(t *testing.T) {
	listed := []struct {
		from, to ResourceState
	}{
		{StateUndefined, StateUnorderedAccess},
		{StateUndefined, StateTransferDst},
		{StateUndefined, StateColorAttachment},
		{StateUndefined, StateDepthStencilAttachment},
		{StateUnorderedAccess, StateShaderReadOnly},
		{StateUnorderedAccess, StatePresent},
		{StateTransferDst, StateShaderReadOnly},
		{StateShaderReadOnly, StateUnorderedAccess},
		{StateShaderReadOnly, StateDepthStencilAttachment},
		{StateShaderReadOnly, StatePresent},
		{StateColorAttachment, StateShaderReadOnly},
		{StateColorAttachment, StatePresent},
		{StateDepthStencilAttachment, StateShaderReadOnly},
	}
	for _, pair := range listed {
		if _, ok := LookupTransition(pair.from, pair.to); !ok {
			t.Fatalf("expected table entry for %s -> %s", pair.from, pair.to)
		}
	}

	if _, ok := LookupTransition(StateColorAttachment, StateUnorderedAccess); ok {
		t.Fatalf("unlisted pair ColorAttachment->UnorderedAccess must be absent from the table")
	}
	if _, ok := LookupTransition(StatePresent, StateUndefined); ok {
		t.Fatalf("unlisted pair Present->Undefined must be absent from the table")
	}
}

func TestCheckTransitionSameStateIsNoop(t *testing.T) {
	_, noop := CheckTransition(StateShaderReadOnly, StateShaderReadOnly)
	if !noop {
		t.Fatalf("same-state transition should report noop=true")
	}
}
