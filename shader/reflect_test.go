package shader

import (
	"encoding/binary"
	"testing"

	"github.com/mizu-gfx/mizu/rhi"
)

// spirvBuilder assembles a minimal, self-consistent SPIR-V module word by
// word. It does not produce a module a real SPIR-V validator would accept
// (no OpFunction/OpLabel/OpReturn bodies), only one Parse can walk the
// same way the real disassembler does: by opcode and declared word count.
type spirvBuilder struct {
	words []uint32
}

func newSPIRV() *spirvBuilder {
	return &spirvBuilder{words: []uint32{magicNumber, 0x00010300, 0, 0, 0}}
}

func (b *spirvBuilder) inst(opcode uint32, operands ...uint32) {
	wordCount := uint32(1 + len(operands))
	b.words = append(b.words, (wordCount<<16)|opcode)
	b.words = append(b.words, operands...)
}

// str packs s into the little-endian word encoding SPIR-V literal
// strings use: 4 bytes per word, NUL-terminated, padded to a word
// boundary.
func str(s string) []uint32 {
	b := append([]byte(s), 0)
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) | uint32(b[i*4+1])<<8 | uint32(b[i*4+2])<<16 | uint32(b[i*4+3])<<24
	}
	return words
}

func (b *spirvBuilder) bytes() []byte {
	out := make([]byte, len(b.words)*4)
	for i, w := range b.words {
		binary.LittleEndian.PutUint32(out[i*4:], w)
	}
	return out
}

func cat(groups ...[]uint32) []uint32 {
	var out []uint32
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// buildComputeModule constructs a compute shader declaring:
//   - a push-constant block { vec4 color @ offset 0 }
//   - a uniform buffer block { float a @0; float b @4 } at set 0 binding 0
//   - a storage image at set 0 binding 1
func buildComputeModule(t *testing.T) []byte {
	t.Helper()
	b := newSPIRV()

	b.inst(opName, cat([]uint32{5}, str("pc"))...)
	b.inst(opMemberName, cat([]uint32{3, 0}, str("color"))...)
	b.inst(opMemberDecorate, 3, 0, decorationOffset, 0)

	b.inst(opMemberName, cat([]uint32{6, 0}, str("a"))...)
	b.inst(opMemberName, cat([]uint32{6, 1}, str("b"))...)
	b.inst(opMemberDecorate, 6, 0, decorationOffset, 0)
	b.inst(opMemberDecorate, 6, 1, decorationOffset, 4)
	b.inst(opDecorate, 6, decorationBlock)
	b.inst(opName, cat([]uint32{8}, str("ubo"))...)
	b.inst(opDecorate, 8, decorationDescriptorSet, 0)
	b.inst(opDecorate, 8, decorationBinding, 0)

	b.inst(opName, cat([]uint32{11}, str("img"))...)
	b.inst(opDecorate, 11, decorationDescriptorSet, 0)
	b.inst(opDecorate, 11, decorationBinding, 1)

	b.inst(opTypeFloat, 1, 32)
	b.inst(opTypeVector, 2, 1, 4) // vec4
	b.inst(opTypeStruct, 3, 2)    // push constant block { vec4 }
	b.inst(opTypePointer, 4, storageClassPushConstant, 3)
	b.inst(opVariable, 4, 5, storageClassPushConstant)

	b.inst(opTypeStruct, 6, 1, 1) // ubo block { float, float }
	b.inst(opTypePointer, 7, storageClassUniform, 6)
	b.inst(opVariable, 7, 8, storageClassUniform)

	b.inst(opTypeImage, 9, 1, 1 /*Dim2D*/, 0, 0, 0, 2 /*Sampled=storage*/, 0)
	b.inst(opTypePointer, 10, storageClassUniformConstant, 9)
	b.inst(opVariable, 10, 11, storageClassUniformConstant)

	b.inst(opEntryPoint, cat([]uint32{executionModelGLCompute, 99}, str("main"))...)

	return b.bytes()
}

// buildVertexModule constructs a vertex shader declaring two Input
// interface variables: vec3 inPosition @location 0, vec2 inUV @location 1.
func buildVertexModule(t *testing.T) []byte {
	t.Helper()
	b := newSPIRV()

	b.inst(opName, cat([]uint32{5}, str("inPosition"))...)
	b.inst(opDecorate, 5, decorationLocation, 0)
	b.inst(opName, cat([]uint32{7}, str("inUV"))...)
	b.inst(opDecorate, 7, decorationLocation, 1)

	b.inst(opTypeFloat, 1, 32)
	b.inst(opTypeVector, 2, 1, 3) // vec3
	b.inst(opTypePointer, 4, storageClassInput, 2)
	b.inst(opVariable, 4, 5, storageClassInput)

	b.inst(opTypeVector, 3, 1, 2) // vec2
	b.inst(opTypePointer, 6, storageClassInput, 3)
	b.inst(opVariable, 6, 7, storageClassInput)

	b.inst(opEntryPoint, cat([]uint32{executionModelVertex, 99}, cat(str("main"), []uint32{5, 7}))...)

	return b.bytes()
}

func TestParseComputeBindingsAndPushConstants(t *testing.T) {
	mod, err := Parse(buildComputeModule(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(mod.EntryPoints) != 1 || mod.EntryPoints[0].Name != "main" || mod.EntryPoints[0].Stage != rhi.StageCompute {
		t.Fatalf("EntryPoints = %+v, want one GLCompute \"main\"", mod.EntryPoints)
	}

	if len(mod.PushConstants) != 1 {
		t.Fatalf("PushConstants = %+v, want 1 range", mod.PushConstants)
	}
	pc := mod.PushConstants[0]
	if pc.Name != "pc" || pc.Size != 16 {
		t.Errorf("push constant = %+v, want name=pc size=16 (one vec4)", pc)
	}
	if len(pc.Members) != 1 || pc.Members[0].Name != "color" || pc.Members[0].Type.String() != "float4" {
		t.Errorf("push constant members = %+v, want [color float4@0]", pc.Members)
	}

	if len(mod.Bindings) != 2 {
		t.Fatalf("Bindings = %+v, want 2", mod.Bindings)
	}
	var ubo, img *Binding
	for i := range mod.Bindings {
		switch mod.Bindings[i].Binding {
		case 0:
			ubo = &mod.Bindings[i]
		case 1:
			img = &mod.Bindings[i]
		}
	}
	if ubo == nil || ubo.Name != "ubo" || ubo.Type != rhi.DescriptorUniformBuffer || ubo.Set != 0 {
		t.Fatalf("ubo binding = %+v", ubo)
	}
	if ubo.TotalSize != 8 || len(ubo.Members) != 2 {
		t.Errorf("ubo members/size = %+v size=%d, want 2 members totalling 8 bytes", ubo.Members, ubo.TotalSize)
	}
	if img == nil || img.Name != "img" || img.Type != rhi.DescriptorStorageImage || img.Set != 0 {
		t.Fatalf("img binding = %+v", img)
	}
}

func TestParseVertexInputs(t *testing.T) {
	mod, err := Parse(buildVertexModule(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mod.EntryPoints) != 1 || mod.EntryPoints[0].Stage != rhi.StageVertex {
		t.Fatalf("EntryPoints = %+v, want one Vertex entry point", mod.EntryPoints)
	}
	inputs := mod.EntryPoints[0].Inputs
	if len(inputs) != 2 {
		t.Fatalf("Inputs = %+v, want 2", inputs)
	}
	byLoc := map[uint32]InputAttribute{}
	for _, in := range inputs {
		byLoc[in.Location] = in
	}
	if byLoc[0].Name != "inPosition" || byLoc[0].Type.String() != "float3" {
		t.Errorf("location 0 = %+v, want inPosition float3", byLoc[0])
	}
	if byLoc[1].Name != "inUV" || byLoc[1].Type.String() != "float2" {
		t.Errorf("location 1 = %+v, want inUV float2", byLoc[1])
	}
}

func TestReflectMergesComputeModuleIntoLayout(t *testing.T) {
	computeMod, err := Parse(buildComputeModule(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	layout, err := Reflect(computeMod)
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}

	if layout.PushConstantBytes != 16 || layout.PushConstantStages != rhi.StageCompute {
		t.Errorf("push constants = %d bytes stages=%v, want 16/Compute", layout.PushConstantBytes, layout.PushConstantStages)
	}

	set0, ok := layout.Sets[0]
	if !ok || len(set0.Bindings) != 2 {
		t.Fatalf("Sets[0] = %+v, want 2 bindings", set0)
	}
	for _, binding := range set0.Bindings {
		if binding.Stages != rhi.StageCompute {
			t.Errorf("binding %d stages = %v, want Compute only", binding.Binding, binding.Stages)
		}
	}

	cache := &fakeLayoutCache{}
	pld, err := layout.PipelineLayout(cache)
	if err != nil {
		t.Fatalf("PipelineLayout: %v", err)
	}
	if len(pld.SetLayouts) != 1 {
		t.Fatalf("SetLayouts = %v, want 1 entry for set 0", pld.SetLayouts)
	}
	if pld.PushConstantBytes != 16 {
		t.Errorf("PushConstantBytes = %d, want 16", pld.PushConstantBytes)
	}
}

// buildFragmentUBOModule constructs a fragment shader that redeclares the
// same uniform buffer block as buildComputeModule's ubo, at the same set 0
// binding 0 — the common case of a uniform buffer read by more than one
// stage of the same pipeline.
func buildFragmentUBOModule(t *testing.T) []byte {
	t.Helper()
	b := newSPIRV()

	b.inst(opMemberName, cat([]uint32{3, 0}, str("a"))...)
	b.inst(opMemberName, cat([]uint32{3, 1}, str("b"))...)
	b.inst(opMemberDecorate, 3, 0, decorationOffset, 0)
	b.inst(opMemberDecorate, 3, 1, decorationOffset, 4)
	b.inst(opDecorate, 3, decorationBlock)
	b.inst(opName, cat([]uint32{5}, str("ubo"))...)
	b.inst(opDecorate, 5, decorationDescriptorSet, 0)
	b.inst(opDecorate, 5, decorationBinding, 0)

	b.inst(opTypeFloat, 1, 32)
	b.inst(opTypeStruct, 3, 1, 1)
	b.inst(opTypePointer, 4, storageClassUniform, 3)
	b.inst(opVariable, 4, 5, storageClassUniform)

	b.inst(opEntryPoint, cat([]uint32{executionModelFragment, 99}, str("main"))...)

	return b.bytes()
}

// buildFragmentConflictingModule declares a storage image at the same set 0
// binding 0 the compute/fragment UBO modules use for a uniform buffer —
// Reflect must reject merging these rather than silently picking one.
func buildFragmentConflictingModule(t *testing.T) []byte {
	t.Helper()
	b := newSPIRV()

	b.inst(opName, cat([]uint32{5}, str("img"))...)
	b.inst(opDecorate, 5, decorationDescriptorSet, 0)
	b.inst(opDecorate, 5, decorationBinding, 0)

	b.inst(opTypeFloat, 1, 32)
	b.inst(opTypeImage, 2, 1, 1, 0, 0, 0, 2, 0)
	b.inst(opTypePointer, 4, storageClassUniformConstant, 2)
	b.inst(opVariable, 4, 5, storageClassUniformConstant)

	b.inst(opEntryPoint, cat([]uint32{executionModelFragment, 99}, str("main"))...)

	return b.bytes()
}

func TestReflectUnionsStagesForSharedBinding(t *testing.T) {
	computeMod, err := Parse(buildComputeModule(t))
	if err != nil {
		t.Fatalf("Parse(compute): %v", err)
	}
	fragMod, err := Parse(buildFragmentUBOModule(t))
	if err != nil {
		t.Fatalf("Parse(fragment): %v", err)
	}

	layout, err := Reflect(computeMod, fragMod)
	if err != nil {
		t.Fatalf("Reflect: %v", err)
	}

	set0, ok := layout.Sets[0]
	if !ok || len(set0.Bindings) != 2 {
		t.Fatalf("Sets[0] = %+v, want 2 bindings", set0)
	}
	for _, binding := range set0.Bindings {
		if binding.Binding != 0 {
			continue
		}
		if binding.Stages != rhi.StageCompute|rhi.StageFragment {
			t.Errorf("binding 0 stages = %v, want Compute|Fragment", binding.Stages)
		}
		if binding.Type != rhi.DescriptorUniformBuffer {
			t.Errorf("binding 0 type = %v, want UniformBuffer", binding.Type)
		}
	}
}

func TestReflectRejectsConflictingBindingType(t *testing.T) {
	computeMod, err := Parse(buildComputeModule(t))
	if err != nil {
		t.Fatalf("Parse(compute): %v", err)
	}
	conflictMod, err := Parse(buildFragmentConflictingModule(t))
	if err != nil {
		t.Fatalf("Parse(conflict): %v", err)
	}

	if _, err := Reflect(computeMod, conflictMod); err == nil {
		t.Fatal("Reflect: expected an error merging a storage image over a uniform buffer at set 0 binding 0")
	}
}

type fakeLayoutCache struct{ next uint32 }

func (c *fakeLayoutCache) GetOrCreate(desc rhi.DescriptorSetLayoutDescription) (rhi.DescriptorSetLayoutHandle, error) {
	c.next++
	return rhi.DescriptorSetLayoutHandle{}, nil
}
