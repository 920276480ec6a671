package rendergraph

import (
	"sort"

	"github.com/mizu-gfx/mizu/rhi"
)

// usageEvent is one (pass, access) entry in a resource's usage timeline
// (§4.7 step 1).
type usageEvent struct {
	pass    int
	kind    AccessKind
	binding uint32
}

// isAttachment reports whether kind is one of the two attachment access
// kinds, the only ones whose transitions are handled implicitly by a
// render pass's load/store ops rather than a synthetic transition pass.
func (k AccessKind) isAttachment() bool {
	return k == AccessAttachmentColor || k == AccessAttachmentDepth
}

// stateForAccess maps an access kind to the rhi.ResourceState an image
// must be in to satisfy it (§4.5, §4.7 step 4/5). Buffers have no
// concept of layout and never consult this.
func stateForAccess(kind AccessKind) rhi.ResourceState {
	switch kind {
	case AccessSampledRead:
		return rhi.StateShaderReadOnly
	case AccessStorageRead, AccessStorageWrite:
		// StateGeneral is the catch-all layout for images bound
		// simultaneously as UAV and sampled (§8 scenario 3), and also
		// covers the "depth-then-storage" case named in §4.7 step 4.
		return rhi.StateGeneral
	case AccessAttachmentColor:
		return rhi.StateColorAttachment
	case AccessAttachmentDepth:
		return rhi.StateDepthStencilAttachment
	case AccessTransferSrc:
		return rhi.StateTransferSrc
	case AccessTransferDst:
		return rhi.StateTransferDst
	case AccessIndirectBuild:
		return rhi.StateGeneral
	default:
		return rhi.StateUndefined
	}
}

// imageUsageBits unions the access kinds an image's timeline touches it
// with into the rhi.Usage bits its ImageDescription must declare (§4.7
// step 2).
func imageUsageBits(kinds map[AccessKind]bool) rhi.Usage {
	var u rhi.Usage
	if kinds[AccessSampledRead] {
		u |= rhi.UsageSampled
	}
	if kinds[AccessStorageRead] || kinds[AccessStorageWrite] {
		u |= rhi.UsageUnorderedAccess
	}
	if kinds[AccessAttachmentColor] || kinds[AccessAttachmentDepth] {
		u |= rhi.UsageAttachment
	}
	if kinds[AccessTransferSrc] {
		u |= rhi.UsageTransferSrc
	}
	if kinds[AccessTransferDst] {
		u |= rhi.UsageTransferDst
	}
	return u
}

// bufferUsageBits is the buffer analog of imageUsageBits.
func bufferUsageBits(kinds map[AccessKind]bool) rhi.Usage {
	var u rhi.Usage
	if kinds[AccessStorageRead] || kinds[AccessStorageWrite] {
		u |= rhi.UsageUnorderedAccess
	}
	if kinds[AccessTransferSrc] {
		u |= rhi.UsageTransferSrc
	}
	if kinds[AccessTransferDst] {
		u |= rhi.UsageTransferDst
	}
	if kinds[AccessIndirectBuild] {
		u |= rhi.UsageAccelStructInput
	}
	return u
}

// compilation is the mutable working state threaded through Compile's
// seven steps; it is discarded once Compile returns.
type compilation struct {
	b   *Builder
	env Environment

	// timelines maps every declared Ref to its ordered usage events
	// (step 1). Resources never accessed by any pass are absent.
	timelines map[Ref][]usageEvent

	touchedImmediate map[Ref]bool

	g *Graph
}

// Compile turns b's recorded declarations and passes into an executable
// Graph against env, or reports the first CompileError found. b is
// consumed: callers must not reuse it afterward (§4.6).
func Compile(b *Builder, env Environment) (*Graph, error) {
	if len(b.scopeStack) != 0 {
		return nil, &CompileError{Kind: InvalidHandle, Msg: "Builder has an unclosed BeginGPUScope at Compile time"}
	}

	c := &compilation{
		b:                b,
		env:              env,
		timelines:        map[Ref][]usageEvent{},
		touchedImmediate: map[Ref]bool{},
		g: &Graph{
			env:      env,
			buffers:  make([]rhi.Buffer, len(b.buffers)),
			images:   make([]rhi.Image, len(b.images)),
			cubemaps: make([]rhi.Image, len(b.cubemaps)),
			accels:   make([]rhi.AccelerationStructure, len(b.accelStructs)),
			views:    make([]rhi.ResourceView, len(b.views)),

			resourceGroups: make([]rhi.DescriptorSetID, len(b.resourceGroups)),
		},
	}

	if err := c.collectUsage(); err != nil {
		return nil, err
	}
	if err := c.materializeAccelStructs(); err != nil {
		return nil, err
	}
	if err := c.materializeBuffersAndImages(); err != nil {
		return nil, err
	}
	c.runUploads()
	if err := c.materializeViews(); err != nil {
		return nil, err
	}
	if err := c.materializeResourceGroups(); err != nil {
		return nil, err
	}
	passes, err := c.buildPasses()
	if err != nil {
		return nil, err
	}
	c.g.passes = passes

	return c.g, nil
}

// collectUsage implements §4.7 step 1 (usage-timeline collection) and
// validates ConflictingUsagePerPass/InvalidHandle mistakes
// that are only detectable from the declared access list itself.
func (c *compilation) collectUsage() error {
	for i, p := range c.b.passes {
		seenThisPass := map[Ref]AccessKind{}
		for _, acc := range p.params.ResourceAccesses() {
			if !acc.Ref.IsValid() {
				return &CompileError{Kind: InvalidHandle, Pass: p.name, Msg: "ResourceAccess names the zero Ref"}
			}
			if acc.Ref.gen != c.b.stamp {
				return &CompileError{Kind: InvalidHandle, Pass: p.name, Ref: acc.Ref, Msg: "Ref was issued by a different Builder"}
			}
			if prior, ok := seenThisPass[acc.Ref]; ok && !compatibleInSamePass(prior, acc.Kind) {
				return &CompileError{Kind: ConflictingUsagePerPass, Pass: p.name, Ref: acc.Ref,
					Msg: "resource used as both " + accessKindName(prior) + " and " + accessKindName(acc.Kind) + " in one pass"}
			}
			seenThisPass[acc.Ref] = acc.Kind

			c.timelines[acc.Ref] = append(c.timelines[acc.Ref], usageEvent{pass: i, kind: acc.Kind, binding: acc.Binding})
			if p.hint == HintImmediate {
				c.touchedImmediate[acc.Ref] = true
			}
		}

		if fa, ok := p.params.(FramebufferAttacher); ok && p.hint == HintRaster {
			fb := fa.Attachment()
			if !fb.IsValid() {
				return &CompileError{Kind: InvalidHandle, Pass: p.name, Msg: "Raster pass declared no framebuffer"}
			}
			if err := c.checkAttachmentUsageDeclared(i, p.name, fb); err != nil {
				return err
			}
		}
	}
	return nil
}

// compatibleInSamePass reports whether two access kinds on the same Ref
// within one pass can coexist: repeating the same kind is fine, and any
// two non-attachment kinds (e.g. sampled read plus storage write) are
// accepted; an attachment kind combined with any other kind (e.g. color
// attachment plus storage write, or depth attachment plus sampled read)
// is rejected.
func compatibleInSamePass(a, b AccessKind) bool {
	if a == b {
		return true
	}
	attachment := func(k AccessKind) bool { return k.isAttachment() }
	if attachment(a) || attachment(b) {
		return false
	}
	return true
}

func accessKindName(k AccessKind) string {
	switch k {
	case AccessSampledRead:
		return "SampledRead"
	case AccessStorageRead:
		return "StorageRead"
	case AccessStorageWrite:
		return "StorageWrite"
	case AccessAttachmentColor:
		return "AttachmentColor"
	case AccessAttachmentDepth:
		return "AttachmentDepth"
	case AccessTransferSrc:
		return "TransferSrc"
	case AccessTransferDst:
		return "TransferDst"
	case AccessIndirectBuild:
		return "IndirectBuild"
	default:
		return "AccessKind(invalid)"
	}
}

// checkAttachmentUsageDeclared enforces AttachmentAbsentUsage: a Raster
// pass's framebuffer is only valid if every one of its image attachments
// is declared in that same pass's ResourceAccesses as an attachment
// access (§7).
func (c *compilation) checkAttachmentUsageDeclared(passIdx int, passName string, fb FramebufferRef) error {
	if fb.kind != refFramebuffer || int(fb.index) >= len(c.b.framebuffers) {
		return &CompileError{Kind: InvalidHandle, Pass: passName, Ref: fb, Msg: "not a valid framebuffer ref"}
	}
	decl := c.b.framebuffers[fb.index]

	attached := map[Ref]bool{}
	for _, cv := range decl.colorViews {
		attached[c.b.views[cv.index].owner] = true
	}
	if decl.depthView.IsValid() {
		attached[c.b.views[decl.depthView.index].owner] = true
	}

	for ref := range attached {
		found := false
		for _, ev := range c.timelines[ref] {
			if ev.pass == passIdx && ev.kind.isAttachment() {
				found = true
				break
			}
		}
		if !found {
			return &CompileError{Kind: AttachmentAbsentUsage, Pass: passName, Ref: ref,
				Msg: "framebuffer attachment never appears as an attachment access in this pass's ResourceAccesses"}
		}
	}
	return nil
}

func (c *compilation) materializeAccelStructs() error {
	for i, decl := range c.b.accelStructs {
		if decl.external {
			c.g.accels[i] = decl.extObj
			continue
		}
		as, err := c.env.Device.CreateAccelerationStructure(decl.desc)
		if err != nil {
			return err
		}
		c.g.accels[i] = as
	}
	return nil
}

// materializeBuffersAndImages implements §4.7 steps 2 and 3: usage-flag
// computation, then aliased-memory assignment for every transient
// resource whose timeline permits it.
func (c *compilation) materializeBuffersAndImages() error {
	type placeable struct {
		ref   Ref
		size  uint64
		start int
		end   int
	}
	var groups [][]placeable
	var openEnds []int // parallel to groups: the last padded end assigned to that group so far

	place := func(p placeable) {
		for gi, end := range openEnds {
			if end < p.start {
				groups[gi] = append(groups[gi], p)
				openEnds[gi] = p.end
				return
			}
		}
		groups = append(groups, []placeable{p})
		openEnds = append(openEnds, p.end)
	}

	numPasses := len(c.b.passes)
	clampPad := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	var candidates []placeable

	// Buffers.
	for i, decl := range c.b.buffers {
		ref := c.g_refBuffer(i)
		if decl.external {
			c.g.buffers[i] = decl.extObj
			continue
		}
		timeline := c.timelines[ref]
		if len(timeline) == 0 {
			rhi.Logger().Warn("rendergraph: transient buffer has an empty usage timeline, skipping creation", "name", decl.desc.Name)
			continue
		}
		kinds := map[AccessKind]bool{}
		first, last := timeline[0].pass, timeline[0].pass
		for _, ev := range timeline {
			kinds[ev.kind] = true
			if ev.pass < first {
				first = ev.pass
			}
			if ev.pass > last {
				last = ev.pass
			}
		}
		desc := decl.desc
		desc.Usage |= bufferUsageBits(kinds)

		if c.touchedImmediate[ref] {
			buf, err := c.env.Device.CreateBuffer(desc)
			if err != nil {
				return err
			}
			c.g.buffers[i] = buf
			continue
		}

		desc.Virtual = true
		buf, err := c.env.Device.CreateBuffer(desc)
		if err != nil {
			return err
		}
		c.g.buffers[i] = buf
		candidates = append(candidates, placeable{
			ref:   ref,
			size:  buf.MemoryRequirements().Size,
			start: clampPad(first-1, 0, numPasses-1),
			end:   clampPad(last+1, 0, numPasses-1),
		})
	}

	// Images and cubemaps share the same placement logic.
	placeImages := func(decls []imageDecl, objs []rhi.Image, kindRef func(int) Ref) error {
		for i, decl := range decls {
			ref := kindRef(i)
			if decl.external {
				objs[i] = decl.extObj
				continue
			}
			timeline := c.timelines[ref]
			if len(timeline) == 0 {
				rhi.Logger().Warn("rendergraph: transient image has an empty usage timeline, skipping creation", "name", decl.desc.Name)
				continue
			}
			kinds := map[AccessKind]bool{}
			first, last := timeline[0].pass, timeline[0].pass
			for _, ev := range timeline {
				kinds[ev.kind] = true
				if ev.pass < first {
					first = ev.pass
				}
				if ev.pass > last {
					last = ev.pass
				}
			}
			desc := decl.desc
			desc.Usage |= imageUsageBits(kinds)

			if c.touchedImmediate[ref] {
				img, err := c.env.Device.CreateImage(desc)
				if err != nil {
					return err
				}
				objs[i] = img
				continue
			}

			desc.Virtual = true
			img, err := c.env.Device.CreateImage(desc)
			if err != nil {
				return err
			}
			objs[i] = img
			candidates = append(candidates, placeable{
				ref:   ref,
				size:  img.MemoryRequirements().Size,
				start: clampPad(first-1, 0, numPasses-1),
				end:   clampPad(last+1, 0, numPasses-1),
			})
		}
		return nil
	}
	if err := placeImages(c.b.images, c.g.images, func(i int) Ref { return c.g_refImage(i) }); err != nil {
		return err
	}
	if err := placeImages(c.b.cubemaps, c.g.cubemaps, func(i int) Ref { return c.g_refCubemap(i) }); err != nil {
		return err
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].start < candidates[j].start })
	for _, p := range candidates {
		place(p)
	}

	if c.env.NewAliasedAllocator == nil {
		// No aliasing backend wired: the transient resources created
		// above with Virtual set are left as-is and are never bound to
		// any backing memory. Only resources touched by an Immediate
		// pass (created without Virtual) have memory of their own.
		return nil
	}

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		alloc := c.env.NewAliasedAllocator()
		tokens := make([]int, len(group))
		for gi, p := range group {
			var req rhi.MemoryRequirements
			switch p.ref.kind {
			case refBuffer:
				req = c.g.buffers[p.ref.index].MemoryRequirements()
			default:
				req = c.resolveImageObj(p.ref).MemoryRequirements()
			}
			tokens[gi] = alloc.Stage(req)
		}
		if err := alloc.Finalize(); err != nil {
			return err
		}
		for gi, p := range group {
			var err error
			switch p.ref.kind {
			case refBuffer:
				err = alloc.BindBuffer(tokens[gi], c.g.buffers[p.ref.index])
			default:
				err = alloc.BindImage(tokens[gi], c.resolveImageObj(p.ref))
			}
			if err != nil {
				return err
			}
		}
		c.g.aliasAllocs = append(c.g.aliasAllocs, alloc)
	}
	return nil
}

func (c *compilation) resolveImageObj(ref Ref) rhi.Image {
	if ref.kind == refCubemap {
		return c.g.cubemaps[ref.index]
	}
	return c.g.images[ref.index]
}

func (c *compilation) g_refBuffer(i int) Ref  { return Ref{kind: refBuffer, index: uint32(i), gen: c.b.stamp} }
func (c *compilation) g_refImage(i int) Ref   { return Ref{kind: refImage, index: uint32(i), gen: c.b.stamp} }
func (c *compilation) g_refCubemap(i int) Ref { return Ref{kind: refCubemap, index: uint32(i), gen: c.b.stamp} }

func (c *compilation) runUploads() {
	for _, u := range c.b.uploads {
		buf := c.g.buffers[u.target.index]
		if buf == nil || !buf.IsHostVisible() {
			continue
		}
		buf.SetData(u.data, 0)
	}
}

func (c *compilation) materializeViews() error {
	for i, decl := range c.b.views {
		switch decl.kind {
		case rhi.ViewSRV, rhi.ViewUAV, rhi.ViewCBV:
			if decl.owner.kind == refBuffer {
				buf := c.g.buffers[decl.owner.index]
				c.g.views[i] = bufferViewAdapter{
					id:    rhi.NewViewID(uint32(i)+1, 0),
					owner: buf.ID(),
					kind:  decl.kind,
				}
				continue
			}
			fallthrough
		default:
			img := c.resolveImageObj(decl.owner)
			c.g.views[i] = img.View(decl.kind, decl.rng)
		}
	}
	return nil
}

// materializeResourceGroups implements §4.7 step 7: descriptor-set
// allocation for every declared group, then its writes batched through
// MergeWrites before a single Submit.
func (c *compilation) materializeResourceGroups() error {
	for i, decl := range c.b.resourceGroups {
		layoutHandle, err := c.env.DescriptorLayouts.GetOrCreate(decl.layout)
		if err != nil {
			return err
		}
		set, err := c.env.Descriptors.Allocate(layoutHandle, decl.layout.Type)
		if err != nil {
			return err
		}
		c.g.resourceGroups[i] = set

		if len(decl.writes) == 0 {
			continue
		}
		writes := make([]rhi.DescriptorWrite, 0, len(decl.writes))
		for _, w := range decl.writes {
			dw := rhi.DescriptorWrite{Binding: w.binding, Type: w.typ, Sampler: w.sampler}
			if w.view.IsValid() {
				view := c.g.views[w.view.index]
				if w.view.kind == refBufferView {
					dw.BufferView = view
				} else {
					dw.ImageView = view
				}
			}
			if w.accel.IsValid() {
				dw.AccelStruct = c.g.accels[w.accel.index].ID()
			}
			writes = append(writes, dw)
		}

		writer := c.env.NewDescriptorWriter()
		for _, run := range rhi.MergeWrites(writes) {
			for _, w := range run {
				writer.Write(w)
			}
		}
		if err := writer.Submit(set); err != nil {
			return err
		}
	}
	return nil
}

func (c *compilation) isExternalRef(ref Ref) bool {
	switch ref.kind {
	case refBuffer:
		return c.b.buffers[ref.index].external
	case refImage:
		return c.b.images[ref.index].external
	case refCubemap:
		return c.b.cubemaps[ref.index].external
	}
	return false
}

// attachmentOp computes the load/store ops and initial/final states for
// one pass's use of ref as a framebuffer attachment (§4.7 step 4).
func (c *compilation) attachmentOp(ref Ref, passIdx int, kind AccessKind) rhi.AttachmentDescription {
	timeline := c.timelines[ref]
	pos := -1
	for i, ev := range timeline {
		if ev.pass == passIdx && ev.kind == kind {
			pos = i
			break
		}
	}

	var prev, next *usageEvent
	if pos > 0 {
		prev = &timeline[pos-1]
	}
	if pos >= 0 && pos < len(timeline)-1 {
		next = &timeline[pos+1]
	}
	external := c.isExternalRef(ref)

	op := rhi.AttachmentDescription{}
	if prev != nil {
		// Any prior usage — not just a prior attachment write — left
		// real data behind; only the very first touch needs a clear.
		op.LoadOp = rhi.LoadOpLoad
	} else {
		op.LoadOp = rhi.LoadOpClear
	}

	switch {
	case next != nil:
		op.StoreOp = rhi.StoreOpStore
	case external:
		op.StoreOp = rhi.StoreOpStore
	default:
		op.StoreOp = rhi.StoreOpDontCare
	}

	if prev == nil {
		op.InitialLayout = rhi.StateUndefined
	} else {
		op.InitialLayout = stateForAccess(prev.kind)
	}

	switch {
	case external && next == nil:
		op.FinalLayout = rhi.StateShaderReadOnly
		op.StoreOp = rhi.StoreOpStore
	case next != nil:
		op.FinalLayout = stateForAccess(next.kind)
	default:
		op.FinalLayout = stateForAccess(kind)
	}

	img := c.resolveImageObj(ref)
	op.Format = img.Description().Format
	op.SampleCount = 1
	return op
}

// buildPasses implements §4.7 steps 4-6: attachment op derivation,
// explicit transition insertion between adjacent usages whose required
// states differ, and pipeline/framebuffer materialization, producing the
// final linear pass list the executor replays.
func (c *compilation) buildPasses() ([]compiledPass, error) {
	pending := map[int][]compiledPass{}
	immediate := func(pass int) bool { return c.b.passes[pass].hint == HintImmediate }

	for ref, timeline := range c.timelines {
		if ref.kind == refBuffer || len(timeline) == 0 {
			continue
		}

		// A resource whose very first usage is a storage read/write needs
		// an explicit Undefined->General transition before that pass runs:
		// an image starts life in StateUndefined and nothing else performs
		// this transition the way a render pass's own InitialLayout does
		// for an attachment first-use (original engine's "creating initial
		// transition" case, SPEC_FULL.md §C.2).
		if first := timeline[0]; !first.kind.isAttachment() && !c.isExternalRef(ref) && !immediate(first.pass) {
			if st := stateForAccess(first.kind); st == rhi.StateGeneral {
				pending[first.pass] = append(pending[first.pass], compiledPass{
					kind: passTransition, name: "transition_resource",
					transImage: ref, transOld: rhi.StateUndefined, transNew: st,
				})
			}
		}

		for i := 1; i < len(timeline); i++ {
			prev, next := timeline[i-1], timeline[i]
			// Either side being a render-pass attachment access means
			// this edge's transition is already performed implicitly by
			// that render pass's own initial/final layout (§4.7 step 4);
			// a synthetic Transition pass is only needed between two
			// non-attachment usages. No transition is inserted on an edge
			// that touches an Immediate pass.
			if prev.kind.isAttachment() || next.kind.isAttachment() || immediate(prev.pass) || immediate(next.pass) {
				continue
			}
			prevState, nextState := stateForAccess(prev.kind), stateForAccess(next.kind)
			if prevState == nextState {
				continue
			}
			pending[next.pass] = append(pending[next.pass], compiledPass{
				kind: passTransition, name: "transition_resource",
				transImage: ref, transOld: prevState, transNew: nextState,
			})
		}
	}

	var out []compiledPass
	for i, p := range c.b.passes {
		out = append(out, pending[i]...)

		cp := compiledPass{
			name:        p.name,
			scope:       p.scope,
			fn:          p.fn,
			allowed:     map[Ref]bool{},
			framebuffer: -1,
		}
		for _, acc := range p.params.ResourceAccesses() {
			cp.allowed[acc.Ref] = true
		}
		if binder, ok := p.params.(ResourceGroupBinder); ok {
			cp.resourceGroups = binder.ResourceGroups()
		}

		switch p.hint {
		case HintImmediate:
			cp.kind = passImmediate
		case HintCompute:
			cp.kind = passCompute
			if provider, ok := p.params.(ComputePipelineProvider); ok {
				if _, err := c.env.Pipelines.GetOrCreateCompute(provider.ComputePipeline()); err != nil {
					return nil, err
				}
			}
		case HintRayTracing:
			cp.kind = passRayTracing
			if provider, ok := p.params.(RayTracingPipelineProvider); ok {
				if _, err := c.env.Pipelines.GetOrCreateRayTracing(provider.RayTracingPipeline()); err != nil {
					return nil, err
				}
			}
		default:
			cp.kind = passRaster
			fa := p.params.(FramebufferAttacher)
			fbIdx, err := c.materializeFramebuffer(i, p.name, fa.Attachment())
			if err != nil {
				return nil, err
			}
			cp.framebuffer = fbIdx

			if provider, ok := p.params.(PipelineProvider); ok {
				desc := provider.GraphicsPipeline()
				hasVertex := false
				for _, s := range desc.Stages {
					if s.Stage&rhi.StageVertex != 0 {
						hasVertex = true
						break
					}
				}
				if !hasVertex {
					return nil, &CompileError{Kind: MissingShaderStage, Pass: p.name, Msg: "GraphicsPipelineDescription has no vertex stage"}
				}
				if _, err := c.env.Pipelines.GetOrCreateGraphics(desc); err != nil {
					return nil, err
				}
			}
		}

		out = append(out, cp)
	}
	return out, nil
}

// materializeFramebuffer builds the RenderPassKey/FramebufferDescription
// for passIdx's occurrence of fbRef and returns its index into
// Graph.compiledFramebuffers (§4.7 step 6).
func (c *compilation) materializeFramebuffer(passIdx int, passName string, fbRef FramebufferRef) (int, error) {
	if fbRef.kind != refFramebuffer || int(fbRef.index) >= len(c.b.framebuffers) {
		return -1, &CompileError{Kind: InvalidHandle, Pass: passName, Ref: fbRef, Msg: "not a valid framebuffer ref"}
	}
	decl := c.b.framebuffers[fbRef.index]

	key := rhi.RenderPassKey{}
	var colorViews []rhi.ResourceView
	for _, cv := range decl.colorViews {
		vd := c.b.views[cv.index]
		key.ColorAttachments = append(key.ColorAttachments, c.attachmentOp(vd.owner, passIdx, AccessAttachmentColor))
		colorViews = append(colorViews, c.g.views[cv.index])
	}
	var depthView rhi.ResourceView
	if decl.depthView.IsValid() {
		vd := c.b.views[decl.depthView.index]
		key.HasDepth = true
		key.DepthAttachment = c.attachmentOp(vd.owner, passIdx, AccessAttachmentDepth)
		depthView = c.g.views[decl.depthView.index]
	}

	passHandle, err := c.env.RenderPasses.GetOrCreate(key)
	if err != nil {
		return -1, err
	}
	fb, err := c.env.Framebuffers.GetOrCreate(passHandle, rhi.FramebufferDescription{
		RenderPass: key,
		ColorViews: colorViews,
		DepthView:  depthView,
		Width:      decl.width,
		Height:     decl.height,
	})
	if err != nil {
		return -1, err
	}
	c.g.compiledFramebuffers = append(c.g.compiledFramebuffers, fb)
	return len(c.g.compiledFramebuffers) - 1, nil
}
