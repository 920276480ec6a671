package rendergraph

import (
	"context"
	"testing"

	"github.com/mizu-gfx/mizu/rhi"
)

func TestCompileColorAttachmentThenSampleThenAttachmentAgain(t *testing.T) {
	b := NewBuilder()
	env := newFakeEnvironment()

	img := b.CreateImage(rhi.ImageDescription{
		Name: "A", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM,
		Width: 64, Height: 64, NumMips: 1, NumLayers: 1,
	})
	colorView := b.CreateImageView(img, rhi.ViewRTV, rhi.ViewRange{MipCount: 1, LayerCount: 1})
	fb := b.CreateFramebuffer(64, 64, []ImageViewRef{colorView}, Invalid)

	b.AddPass("P1", HintRaster, BasicParams{
		Accesses:    []ResourceAccess{{Ref: img, Kind: AccessAttachmentColor}},
		Framebuffer: fb,
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	b.AddPass("P2", HintCompute, BasicParams{
		Accesses: []ResourceAccess{{Ref: img, Kind: AccessSampledRead}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error {
		res.Image(img)
		return nil
	})

	b.AddPass("P3", HintRaster, BasicParams{
		Accesses:    []ResourceAccess{{Ref: img, Kind: AccessAttachmentColor}},
		Framebuffer: fb,
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	g, err := Compile(b, env)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	// No synthetic Transition pass should be inserted anywhere in this
	// scenario: both edges (P1->P2, P2->P3) touch an attachment access on
	// one side, so the transition is absorbed into that render pass's own
	// initial/final layout instead (§4.7 step 4/5).
	for _, p := range g.passes {
		if p.kind == passTransition {
			t.Fatalf("unexpected synthetic transition pass %+v", p)
		}
	}
	if len(g.passes) != 3 {
		t.Fatalf("want 3 compiled passes, got %d: %+v", len(g.passes), g.passes)
	}
	if g.passes[0].name != "P1" || g.passes[0].kind != passRaster {
		t.Fatalf("pass 0 = %+v, want Raster P1", g.passes[0])
	}
	if g.passes[1].name != "P2" || g.passes[1].kind != passCompute {
		t.Fatalf("pass 1 = %+v, want Compute P2", g.passes[1])
	}
	if g.passes[2].name != "P3" || g.passes[2].kind != passRaster {
		t.Fatalf("pass 2 = %+v, want Raster P3", g.passes[2])
	}

	if len(g.compiledFramebuffers) != 2 {
		t.Fatalf("want one materialized framebuffer per raster pass occurrence, got %d", len(g.compiledFramebuffers))
	}

	fb1 := g.compiledFramebuffers[g.passes[0].framebuffer].Description()
	if len(fb1.RenderPass.ColorAttachments) != 1 {
		t.Fatalf("P1 framebuffer has %d color attachments, want 1", len(fb1.RenderPass.ColorAttachments))
	}
	op1 := fb1.RenderPass.ColorAttachments[0]
	if op1.LoadOp != rhi.LoadOpClear {
		t.Errorf("P1 LoadOp = %v, want Clear (first use)", op1.LoadOp)
	}
	if op1.StoreOp != rhi.StoreOpStore {
		t.Errorf("P1 StoreOp = %v, want Store (image is sampled next)", op1.StoreOp)
	}
	if op1.InitialLayout != rhi.StateUndefined {
		t.Errorf("P1 InitialLayout = %v, want Undefined", op1.InitialLayout)
	}
	if op1.FinalLayout != rhi.StateShaderReadOnly {
		t.Errorf("P1 FinalLayout = %v, want ShaderReadOnly (next use is P2's sample)", op1.FinalLayout)
	}

	fb3 := g.compiledFramebuffers[g.passes[2].framebuffer].Description()
	op3 := fb3.RenderPass.ColorAttachments[0]
	if op3.LoadOp != rhi.LoadOpLoad {
		t.Errorf("P3 LoadOp = %v, want Load (image already holds data from its prior use)", op3.LoadOp)
	}
	if op3.InitialLayout != rhi.StateShaderReadOnly {
		t.Errorf("P3 InitialLayout = %v, want ShaderReadOnly (previous use was P2's sample)", op3.InitialLayout)
	}
	if op3.StoreOp != rhi.StoreOpDontCare {
		t.Errorf("P3 StoreOp = %v, want DontCare (no further use, not external)", op3.StoreOp)
	}
	if op3.FinalLayout != rhi.StateColorAttachment {
		t.Errorf("P3 FinalLayout = %v, want ColorAttachment (last use is this pass itself)", op3.FinalLayout)
	}
}

func TestCompileInsertsTransitionBetweenTwoNonAttachmentUses(t *testing.T) {
	b := NewBuilder()
	env := newFakeEnvironment()

	buf := b.CreateBuffer(rhi.BufferDescription{Name: "scratch", Size: 256})

	b.AddPass("Write", HintCompute, BasicParams{
		Accesses: []ResourceAccess{{Ref: buf, Kind: AccessStorageWrite}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	img := b.CreateImage(rhi.ImageDescription{
		Name: "T", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM,
		Width: 32, Height: 32, NumMips: 1, NumLayers: 1,
	})
	b.AddPass("Transfer", HintCompute, BasicParams{
		Accesses: []ResourceAccess{{Ref: img, Kind: AccessTransferDst}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })
	b.AddPass("Sample", HintCompute, BasicParams{
		Accesses: []ResourceAccess{{Ref: img, Kind: AccessSampledRead}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	g, err := Compile(b, env)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	found := false
	for _, p := range g.passes {
		if p.kind == passTransition && p.transOld == rhi.StateTransferDst && p.transNew == rhi.StateShaderReadOnly {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a TransferDst->ShaderReadOnly transition pass, got %+v", g.passes)
	}
}

func TestCompileInsertsInitialTransitionForFirstStorageUse(t *testing.T) {
	b := NewBuilder()
	env := newFakeEnvironment()

	img := b.CreateImage(rhi.ImageDescription{
		Name: "S", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM,
		Width: 16, Height: 16, NumMips: 1, NumLayers: 1,
	})
	b.AddPass("Write", HintCompute, BasicParams{
		Accesses: []ResourceAccess{{Ref: img, Kind: AccessStorageWrite}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	g, err := Compile(b, env)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	if len(g.passes) != 2 {
		t.Fatalf("want [transition, Write], got %d passes: %+v", len(g.passes), g.passes)
	}
	tp := g.passes[0]
	if tp.kind != passTransition || tp.transOld != rhi.StateUndefined || tp.transNew != rhi.StateGeneral {
		t.Fatalf("pass 0 = %+v, want Undefined->General transition before the first storage use", tp)
	}
	if g.passes[1].name != "Write" {
		t.Fatalf("pass 1 = %+v, want Write", g.passes[1])
	}
}

func TestCompileRejectsForeignBuilderRef(t *testing.T) {
	b1 := NewBuilder()
	img := b1.CreateImage(rhi.ImageDescription{Name: "A", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM, Width: 8, Height: 8, NumMips: 1, NumLayers: 1})

	b2 := NewBuilder()
	b2.AddPass("P", HintImmediate, BasicParams{
		Accesses: []ResourceAccess{{Ref: img, Kind: AccessSampledRead}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	_, err := Compile(b2, newFakeEnvironment())
	if err == nil {
		t.Fatal("expected Compile to reject a Ref from a different Builder")
	}
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("error is %T, want *CompileError", err)
	}
	if ce.Kind != InvalidHandle {
		t.Errorf("Kind = %v, want InvalidHandle", ce.Kind)
	}
}

func TestCompileRejectsAttachmentAbsentUsage(t *testing.T) {
	b := NewBuilder()
	img := b.CreateImage(rhi.ImageDescription{Name: "A", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM, Width: 8, Height: 8, NumMips: 1, NumLayers: 1})
	view := b.CreateImageView(img, rhi.ViewRTV, rhi.ViewRange{MipCount: 1, LayerCount: 1})
	fb := b.CreateFramebuffer(8, 8, []ImageViewRef{view}, Invalid)

	// Declares the framebuffer but never lists img as an attachment access.
	b.AddPass("P", HintRaster, BasicParams{Framebuffer: fb}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	_, err := Compile(b, newFakeEnvironment())
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("error is %T (%v), want *CompileError", err, err)
	}
	if ce.Kind != AttachmentAbsentUsage {
		t.Errorf("Kind = %v, want AttachmentAbsentUsage", ce.Kind)
	}
}

func TestCompileRejectsConflictingUsagePerPass(t *testing.T) {
	b := NewBuilder()
	img := b.CreateImage(rhi.ImageDescription{Name: "A", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM, Width: 8, Height: 8, NumMips: 1, NumLayers: 1})

	b.AddPass("P", HintCompute, BasicParams{
		Accesses: []ResourceAccess{
			{Ref: img, Kind: AccessAttachmentColor},
			{Ref: img, Kind: AccessStorageWrite},
		},
	}, func(cmd rhi.CommandRecorder, res *Resources) error { return nil })

	_, err := Compile(b, newFakeEnvironment())
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("error is %T (%v), want *CompileError", err, err)
	}
	if ce.Kind != ConflictingUsagePerPass {
		t.Errorf("Kind = %v, want ConflictingUsagePerPass", ce.Kind)
	}
}

func TestResourcesRejectsUndeclaredRef(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected resolving an undeclared Ref to abort")
		}
	}()

	b := NewBuilder()
	img := b.CreateImage(rhi.ImageDescription{Name: "A", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM, Width: 8, Height: 8, NumMips: 1, NumLayers: 1})
	other := b.CreateImage(rhi.ImageDescription{Name: "B", Type: rhi.Image2D, Format: rhi.R8G8B8A8_UNORM, Width: 8, Height: 8, NumMips: 1, NumLayers: 1})

	b.AddPass("P", HintImmediate, BasicParams{
		Accesses: []ResourceAccess{{Ref: img, Kind: AccessSampledRead}},
	}, func(cmd rhi.CommandRecorder, res *Resources) error {
		res.Image(other) // never declared by this pass's BasicParams
		return nil
	})

	env := newFakeEnvironment()
	g, err := Compile(b, env)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	cmd, err := env.Device.NewCommandRecorder()
	if err != nil {
		t.Fatalf("NewCommandRecorder: %v", err)
	}
	g.Execute(context.Background(), cmd, rhi.SubmitInfo{})
}
