package rhi

import "testing"

func TestDescriptorSetLayoutCacheKeyOrderIndependent(t *testing.T) {
	a := DescriptorSetLayoutDescription{
		Bindings: []BindingDescription{
			{Binding: 0, Type: DescriptorUniformBuffer, Count: 1, Stages: StageVertex},
			{Binding: 1, Type: DescriptorSampledImage, Count: 1, Stages: StageFragment},
		},
	}
	b := DescriptorSetLayoutDescription{
		Bindings: []BindingDescription{
			{Binding: 1, Type: DescriptorSampledImage, Count: 1, Stages: StageFragment},
			{Binding: 0, Type: DescriptorUniformBuffer, Count: 1, Stages: StageVertex},
		},
	}

	if a.CacheKey() != b.CacheKey() {
		t.Fatalf("descriptions with identical bindings in different insertion order must hash equal")
	}

	c := DescriptorSetLayoutDescription{
		Bindings: []BindingDescription{
			{Binding: 0, Type: DescriptorUniformBuffer, Count: 1, Stages: StageVertex},
			{Binding: 1, Type: DescriptorStorageImage, Count: 1, Stages: StageFragment},
		},
	}
	if a.CacheKey() == c.CacheKey() {
		t.Fatalf("descriptions differing in binding type must hash differently")
	}
}

func TestEffectiveBindingAppliesSpaceOffset(t *testing.T) {
	offsets := BindingOffsets{
		RegisterSpaceConstant:      0,
		RegisterSpaceTexture:       8,
		RegisterSpaceUnorderedAccess: 16,
		RegisterSpaceSampler:        24,
	}

	if got := EffectiveBinding(RegisterSpaceTexture, 2, offsets); got != 10 {
		t.Fatalf("EffectiveBinding = %d, want 10", got)
	}
	if got := EffectiveBinding(RegisterSpaceConstant, 3, offsets); got != 3 {
		t.Fatalf("EffectiveBinding = %d, want 3", got)
	}
}

func TestMergeWritesGroupsContiguousRuns(t *testing.T) {
	writes := []DescriptorWrite{
		{Binding: 2, ArrayElement: 0},
		{Binding: 0, ArrayElement: 1},
		{Binding: 0, ArrayElement: 0},
		{Binding: 0, ArrayElement: 2},
		{Binding: 0, ArrayElement: 4}, // gap - starts a new run
	}

	runs := MergeWrites(writes)
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3 (binding0[0..2], binding0[4], binding2[0])", len(runs))
	}
	if len(runs[0]) != 3 {
		t.Fatalf("first run should merge 3 contiguous elements of binding 0, got %d", len(runs[0]))
	}
	if len(runs[1]) != 1 || runs[1][0].ArrayElement != 4 {
		t.Fatalf("second run should be the lone binding0[4] write")
	}
	if len(runs[2]) != 1 || runs[2][0].Binding != 2 {
		t.Fatalf("third run should be the lone binding2[0] write")
	}
}

func TestMergeWritesEmpty(t *testing.T) {
	if runs := MergeWrites(nil); runs != nil {
		t.Fatalf("MergeWrites(nil) = %v, want nil", runs)
	}
}
