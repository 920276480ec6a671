package shader

import (
	"fmt"
	"sort"

	"github.com/mizu-gfx/mizu/rhi"
)

// Layout is the descriptor-set-layout-cache-ready result of reflecting
// one pipeline's shader stages: one rhi.DescriptorSetLayoutDescription
// per referenced set number, plus the combined push-constant range every
// stage's push-constant block folds into (Vulkan exposes a single
// logical push-constant block per pipeline layout).
type Layout struct {
	// Sets is keyed by SPIR-V DescriptorSet number, which need not be
	// contiguous; a caller building a rhi.PipelineLayoutDescription
	// chooses how to order/compact these (e.g. via SetOrder).
	Sets map[uint32]rhi.DescriptorSetLayoutDescription

	PushConstantBytes  uint32
	PushConstantStages rhi.ShaderStage
}

// SetOrder returns the set numbers in Layout.Sets in ascending order,
// the order a PipelineLayoutDescription.SetLayouts slice is expected to
// follow (§4.2: bindings are addressed as set N -> rhi's Nth SetLayouts
// entry).
func (l Layout) SetOrder() []uint32 {
	order := make([]uint32, 0, len(l.Sets))
	for set := range l.Sets {
		order = append(order, set)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	return order
}

// Reflect merges the descriptor bindings and push-constant ranges
// declared across one pipeline's shader modules (typically one vertex +
// one fragment Module, or a single compute/ray-tracing Module) into a
// single Layout. A binding declared by more than one stage (the common
// case: a uniform buffer read by both vertex and fragment) is merged
// into one BindingDescription whose Stages is the union of every stage
// that declared it, after checking every declaration agrees on type and
// array arity.
func Reflect(modules ...*Module) (Layout, error) {
	layout := Layout{Sets: map[uint32]rhi.DescriptorSetLayoutDescription{}}

	type key struct{ set, binding uint32 }
	merged := map[key]*rhi.BindingDescription{}
	// setIndex remembers first-seen ordering isn't needed since CacheKey
	// sorts by Binding; allocationTypes just needs one entry per set.
	setSeen := map[uint32]bool{}

	for _, mod := range modules {
		if mod == nil {
			continue
		}
		stageMask := moduleStageMask(mod)

		for _, b := range mod.Bindings {
			k := key{b.Set, b.Binding}
			setSeen[b.Set] = true

			if existing, ok := merged[k]; ok {
				if err := checkCompatible(existing, b); err != nil {
					return Layout{}, fmt.Errorf("shader: set %d binding %d: %w", b.Set, b.Binding, err)
				}
				existing.Stages |= stageMask
				continue
			}

			merged[k] = &rhi.BindingDescription{
				Binding:       b.Binding,
				Type:          b.Type,
				Count:         maxUint32(b.Count, 1),
				BindlessCount: b.BindlessCount,
				Stages:        stageMask,
			}
		}

		for _, pc := range mod.PushConstants {
			if end := pc.Offset + pc.Size; end > layout.PushConstantBytes {
				layout.PushConstantBytes = end
			}
			layout.PushConstantStages |= stageMask
		}
	}

	bySet := map[uint32][]rhi.BindingDescription{}
	for k, b := range merged {
		bySet[k.set] = append(bySet[k.set], *b)
	}
	for set := range setSeen {
		bindings := bySet[set]
		sort.Slice(bindings, func(i, j int) bool { return bindings[i].Binding < bindings[j].Binding })
		layout.Sets[set] = rhi.DescriptorSetLayoutDescription{Bindings: bindings}
	}

	return layout, nil
}

func checkCompatible(existing *rhi.BindingDescription, b Binding) error {
	if existing.Type != b.Type {
		return fmt.Errorf("conflicting descriptor types %v vs %v across stages", existing.Type, b.Type)
	}
	if existing.Count != maxUint32(b.Count, 1) {
		return fmt.Errorf("conflicting array counts %d vs %d across stages", existing.Count, b.Count)
	}
	return nil
}

func moduleStageMask(mod *Module) rhi.ShaderStage {
	var mask rhi.ShaderStage
	for _, ep := range mod.EntryPoints {
		mask |= ep.Stage
	}
	return mask
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// PipelineLayout resolves layout's sets through cache (in ascending
// set-number order, so layout.Sets[0] becomes pld.SetLayouts[0] and so
// on) and returns the rhi.PipelineLayoutDescription a
// rhi.PipelineLayoutCache.GetOrCreate call consumes. Sets with gaps in
// their numbering (e.g. only set 0 and set 2 referenced) are rejected:
// Vulkan pipeline layouts require a dense, zero-based set index range.
func (l Layout) PipelineLayout(cache rhi.DescriptorSetLayoutCache) (rhi.PipelineLayoutDescription, error) {
	order := l.SetOrder()
	for i, set := range order {
		if uint32(i) != set {
			return rhi.PipelineLayoutDescription{}, fmt.Errorf("shader: descriptor set numbers must be dense starting at 0, got %v", order)
		}
	}

	handles := make([]rhi.DescriptorSetLayoutHandle, len(order))
	for i, set := range order {
		handle, err := cache.GetOrCreate(l.Sets[set])
		if err != nil {
			return rhi.PipelineLayoutDescription{}, fmt.Errorf("shader: set %d: %w", set, err)
		}
		handles[i] = handle
	}

	return rhi.PipelineLayoutDescription{
		SetLayouts:          handles,
		PushConstantBytes:   l.PushConstantBytes,
		PushConstantStages:  l.PushConstantStages,
	}, nil
}
