// Package shader reflects compiled SPIR-V bytecode into the descriptor
// binding layout rendergraph and rhi need: entry points, descriptor
// bindings (set/binding/type/count) and push-constant ranges. It never
// compiles a shading language to SPIR-V; that front end is out of scope
// (spec §1 Non-goals).
package shader

import (
	"encoding/binary"
	"fmt"

	"github.com/mizu-gfx/mizu/rhi"
)

const magicNumber = 0x07230203

// SPIR-V opcodes this reflector understands. Unlisted opcodes are simply
// skipped by word count.
const (
	opName                          = 5
	opMemberName                    = 6
	opEntryPoint                    = 15
	opTypeBool                      = 20
	opTypeInt                       = 21
	opTypeFloat                     = 22
	opTypeVector                    = 23
	opTypeMatrix                    = 24
	opTypeImage                     = 25
	opTypeSampler                   = 26
	opTypeSampledImage              = 27
	opTypeArray                     = 28
	opTypeRuntimeArray              = 29
	opTypeStruct                    = 30
	opTypePointer                   = 32
	opConstant                      = 43
	opVariable                      = 59
	opDecorate                      = 71
	opMemberDecorate                = 72
	opTypeAccelerationStructureKHR  = 5341
)

const (
	decorationBlock         = 2
	decorationBufferBlock   = 3
	decorationRowMajor      = 4
	decorationColMajor      = 5
	decorationMatrixStride  = 7
	decorationLocation      = 30
	decorationOffset        = 35
	decorationBinding       = 33
	decorationDescriptorSet = 34
)

const (
	storageClassUniformConstant = 0
	storageClassInput           = 1
	storageClassUniform         = 2
	storageClassOutput          = 3
	storageClassPushConstant    = 9
	storageClassStorageBuffer   = 12
)

const (
	executionModelVertex                 = 0
	executionModelFragment               = 4
	executionModelGLCompute              = 5
	executionModelRayGenerationKHR       = 5313
	executionModelIntersectionKHR        = 5314
	executionModelAnyHitKHR              = 5315
	executionModelClosestHitKHR          = 5316
	executionModelMissKHR                = 5317
)

func executionModelStage(model uint32) (rhi.ShaderStage, bool) {
	switch model {
	case executionModelVertex:
		return rhi.StageVertex, true
	case executionModelFragment:
		return rhi.StageFragment, true
	case executionModelGLCompute:
		return rhi.StageCompute, true
	case executionModelRayGenerationKHR:
		return rhi.StageRayGen, true
	case executionModelClosestHitKHR:
		return rhi.StageClosestHit, true
	case executionModelMissKHR:
		return rhi.StageMiss, true
	case executionModelAnyHitKHR:
		return rhi.StageAnyHit, true
	case executionModelIntersectionKHR:
		return rhi.StageIntersection, true
	default:
		return 0, false
	}
}

// ValueKind classifies the scalar component of a reflected type.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindBool
	KindInt
	KindUInt
	KindFloat
	KindStruct
)

// ValueType is a minimal description of a SPIR-V type: a scalar, a
// vector of up to 4 scalars, or a matrix of up to 4 such columns.
type ValueType struct {
	Kind    ValueKind
	Width   uint32 // bits, e.g. 32 for float/int
	Rows    uint32 // vector component count; 1 for a scalar
	Columns uint32 // matrix column count; 1 for a non-matrix
}

// Size returns the type's byte size ignoring any std140/std430 padding
// a containing struct may apply (Member.Offset already reflects that).
func (t ValueType) Size() uint32 {
	rows, cols := t.Rows, t.Columns
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}
	return (t.Width / 8) * rows * cols
}

func (t ValueType) String() string {
	base := "?"
	switch t.Kind {
	case KindBool:
		base = "bool"
	case KindInt:
		base = "int"
	case KindUInt:
		base = "uint"
	case KindFloat:
		base = "float"
	case KindStruct:
		return "struct"
	}
	if t.Columns > 1 {
		return fmt.Sprintf("mat%dx%d", t.Columns, t.Rows)
	}
	if t.Rows > 1 {
		return fmt.Sprintf("%s%d", base, t.Rows)
	}
	return base
}

// Member is one field of a reflected uniform/storage buffer block or
// push-constant block.
type Member struct {
	Name   string
	Type   ValueType
	Offset uint32
}

// InputAttribute is one Input-storage-class interface variable of a
// vertex entry point.
type InputAttribute struct {
	Name     string
	Location uint32
	Type     ValueType
}

// EntryPoint is one OpEntryPoint declared by the module.
type EntryPoint struct {
	Name   string
	Stage  rhi.ShaderStage
	Inputs []InputAttribute // populated only for Stage == rhi.StageVertex
}

// Binding is one descriptor binding declared by a UniformConstant,
// Uniform or StorageBuffer storage-class variable.
type Binding struct {
	Name    string
	Set     uint32
	Binding uint32
	Type    rhi.DescriptorType
	// Count is the fixed array size (1 for a scalar binding).
	// BindlessCount is non-zero instead when the binding is an
	// unbounded (runtime) array.
	Count         uint32
	BindlessCount uint32
	Stages        rhi.ShaderStage

	// Members is populated for DescriptorUniformBuffer/DescriptorStorageBuffer
	// bindings whose type is an OpTypeStruct.
	Members   []Member
	TotalSize uint32
}

// PushConstantRange is one PushConstant-storage-class variable.
type PushConstantRange struct {
	Name    string
	Offset  uint32
	Size    uint32
	Stages  rhi.ShaderStage
	Members []Member
}

// Module is the result of reflecting one SPIR-V binary. A real Vulkan
// pipeline is usually built from several Modules (one per stage); see
// Reflect in registry.go for merging several into one layout.
type Module struct {
	EntryPoints   []EntryPoint
	Bindings      []Binding
	PushConstants []PushConstantRange
}

type typeInfo struct {
	op uint32

	// Int/Float
	width uint32

	// Vector/Matrix
	compType uint32 // result id of the component type
	compCount uint32

	// Pointer
	storageClass uint32
	pointee       uint32

	// Array/RuntimeArray
	elemType uint32
	length   uint32 // resolved constant value; 0 for RuntimeArray

	// Struct
	members []uint32 // member type ids, in declaration order

	// Image
	imageSampled uint32 // 0 = unknown, 1 = sampled, 2 = storage
}

type memberKey struct {
	structID uint32
	member   uint32
}

type parser struct {
	words []uint32

	names       map[uint32]string
	memberNames map[memberKey]string

	decorations       map[uint32]map[uint32]uint32
	memberDecorations map[memberKey]map[uint32]uint32

	types     map[uint32]*typeInfo
	constants map[uint32]uint32 // resolved unsigned integer constants

	// variable result id -> its OpVariable's result-type id (a pointer).
	variables map[uint32]uint32
}

// Parse reflects a single SPIR-V binary module. data must be a whole
// SPIR-V binary including the 5-word header; either byte order is
// accepted, detected from the magic number.
func Parse(data []byte) (*Module, error) {
	words, err := toWords(data)
	if err != nil {
		return nil, err
	}
	if len(words) < 5 {
		return nil, fmt.Errorf("shader: SPIR-V binary too short (%d words)", len(words))
	}
	if words[0] != magicNumber {
		return nil, fmt.Errorf("shader: bad SPIR-V magic number %#x", words[0])
	}

	p := &parser{
		words:             words,
		names:             map[uint32]string{},
		memberNames:       map[memberKey]string{},
		decorations:       map[uint32]map[uint32]uint32{},
		memberDecorations: map[memberKey]map[uint32]uint32{},
		types:             map[uint32]*typeInfo{},
		constants:         map[uint32]uint32{},
		variables:         map[uint32]uint32{},
	}
	p.collectAnnotations()
	return p.reflect()
}

// toWords decodes data into 32-bit words, detecting SPIR-V's byte order
// from the magic number the same way the reference disassembler does.
func toWords(data []byte) ([]uint32, error) {
	if len(data) < 20 || len(data)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V binary length %d is not a whole word stream", len(data))
	}
	order := binary.ByteOrder(binary.LittleEndian)
	if binary.LittleEndian.Uint32(data[:4]) != magicNumber {
		order = binary.BigEndian
		if binary.BigEndian.Uint32(data[:4]) != magicNumber {
			return nil, fmt.Errorf("shader: not a SPIR-V binary (bad magic number)")
		}
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = order.Uint32(data[i*4 : i*4+4])
	}
	return words, nil
}

// collectAnnotations does a first pass over the instruction stream
// recording every OpName/OpMemberName/OpDecorate/OpMemberDecorate,
// independent of where in the module they appear relative to the
// types/variables they describe.
func (p *parser) collectAnnotations() {
	p.walk(func(opcode uint32, operands []uint32) {
		switch opcode {
		case opName:
			target := operands[0]
			name, _ := decodeString(operands[1:])
			p.names[target] = name
		case opMemberName:
			target, member := operands[0], operands[1]
			name, _ := decodeString(operands[2:])
			p.memberNames[memberKey{target, member}] = name
		case opDecorate:
			target, decoration := operands[0], operands[1]
			var value uint32
			if len(operands) > 2 {
				value = operands[2]
			}
			if p.decorations[target] == nil {
				p.decorations[target] = map[uint32]uint32{}
			}
			p.decorations[target][decoration] = value
		case opMemberDecorate:
			target, member, decoration := operands[0], operands[1], operands[2]
			var value uint32
			if len(operands) > 3 {
				value = operands[3]
			}
			key := memberKey{target, member}
			if p.memberDecorations[key] == nil {
				p.memberDecorations[key] = map[uint32]uint32{}
			}
			p.memberDecorations[key][decoration] = value
		}
	})
}

// walk invokes fn once per instruction with its opcode and the operand
// words following the opcode/wordcount header word. Which operand (if
// any) is a result id varies by opcode, so fn itself indexes into
// operands rather than walk guessing on its behalf.
func (p *parser) walk(fn func(opcode uint32, operands []uint32)) {
	i := 5
	for i < len(p.words) {
		head := p.words[i]
		wordCount := head >> 16
		opcode := head & 0xffff
		if wordCount == 0 || int(i)+int(wordCount) > len(p.words) {
			return
		}
		operands := p.words[i+1 : i+int(wordCount)]
		fn(opcode, operands)
		i += int(wordCount)
	}
}

func decodeString(words []uint32) (string, int) {
	var b []byte
	consumed := 0
	for _, w := range words {
		consumed++
		bytes4 := [4]byte{byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24)}
		stop := -1
		for i, c := range bytes4 {
			if c == 0 {
				stop = i
				break
			}
		}
		if stop >= 0 {
			b = append(b, bytes4[:stop]...)
			return string(b), consumed
		}
		b = append(b, bytes4[:]...)
	}
	return string(b), consumed
}

func (p *parser) reflect() (*Module, error) {
	mod := &Module{}

	// Second pass: types, constants, variables and entry points. Types
	// and constants must be recorded before OpVariable/OpEntryPoint are
	// resolved into Bindings/EntryPoints, so this single pass resolves
	// a variable's binding the moment it is seen (every id a variable
	// or entry point can reference was declared earlier in the module
	// per the SPIR-V logical-layout rules).
	var entryPointInstrs [][]uint32

	i := 5
	for i < len(p.words) {
		head := p.words[i]
		wordCount := int(head >> 16)
		opcode := head & 0xffff
		if wordCount == 0 || i+wordCount > len(p.words) {
			break
		}
		ops := p.words[i+1 : i+wordCount]

		switch opcode {
		case opTypeBool:
			p.types[ops[0]] = &typeInfo{op: opTypeBool, width: 1}
		case opTypeInt:
			// compCount is reused here to carry OpTypeInt's Signedness
			// operand (0 = unsigned, 1 = signed); vectors/matrices never
			// overwrite it for a scalar int type.
			p.types[ops[0]] = &typeInfo{op: opTypeInt, width: ops[1], compCount: ops[2]}
		case opTypeFloat:
			p.types[ops[0]] = &typeInfo{op: opTypeFloat, width: ops[1]}
		case opTypeVector:
			p.types[ops[0]] = &typeInfo{op: opTypeVector, compType: ops[1], compCount: ops[2]}
		case opTypeMatrix:
			p.types[ops[0]] = &typeInfo{op: opTypeMatrix, compType: ops[1], compCount: ops[2]}
		case opTypeImage:
			sampled := uint32(0)
			if len(ops) > 6 {
				sampled = ops[6]
			}
			p.types[ops[0]] = &typeInfo{op: opTypeImage, imageSampled: sampled}
		case opTypeSampler:
			p.types[ops[0]] = &typeInfo{op: opTypeSampler}
		case opTypeSampledImage:
			p.types[ops[0]] = &typeInfo{op: opTypeSampledImage, elemType: ops[1]}
		case opTypeArray:
			length := p.constants[ops[2]]
			p.types[ops[0]] = &typeInfo{op: opTypeArray, elemType: ops[1], length: length}
		case opTypeRuntimeArray:
			p.types[ops[0]] = &typeInfo{op: opTypeRuntimeArray, elemType: ops[1]}
		case opTypeStruct:
			members := append([]uint32(nil), ops[1:]...)
			p.types[ops[0]] = &typeInfo{op: opTypeStruct, members: members}
		case opTypePointer:
			p.types[ops[0]] = &typeInfo{op: opTypePointer, storageClass: ops[1], pointee: ops[2]}
		case opTypeAccelerationStructureKHR:
			p.types[ops[0]] = &typeInfo{op: opTypeAccelerationStructureKHR}
		case opConstant:
			if len(ops) >= 3 {
				p.constants[ops[1]] = ops[2]
			}
		case opVariable:
			resultType, resultID := ops[0], ops[1]
			p.variables[resultID] = resultType
			if err := p.recordVariable(mod, resultID, resultType); err != nil {
				return nil, err
			}
		case opEntryPoint:
			entryPointInstrs = append(entryPointInstrs, append([]uint32(nil), ops...))
		}

		i += wordCount
	}

	for _, ops := range entryPointInstrs {
		ep, ok := p.buildEntryPoint(ops)
		if ok {
			mod.EntryPoints = append(mod.EntryPoints, ep)
		}
	}

	return mod, nil
}

func (p *parser) buildEntryPoint(ops []uint32) (EntryPoint, bool) {
	if len(ops) < 2 {
		return EntryPoint{}, false
	}
	model, fnID := ops[0], ops[1]
	stage, ok := executionModelStage(model)
	if !ok {
		return EntryPoint{}, false
	}
	name, consumed := decodeString(ops[2:])
	ifaceIDs := ops[2+consumed:]

	ep := EntryPoint{Name: name, Stage: stage}
	if stage != rhi.StageVertex {
		_ = fnID
		return ep, true
	}
	for _, id := range ifaceIDs {
		ptrType, ok := p.variables[id]
		if !ok {
			continue
		}
		pt := p.types[ptrType]
		if pt == nil || pt.op != opTypePointer || pt.storageClass != storageClassInput {
			continue
		}
		loc, hasLoc := p.decorationValue(id, decorationLocation)
		if !hasLoc {
			continue
		}
		ep.Inputs = append(ep.Inputs, InputAttribute{
			Name:     p.names[id],
			Location: loc,
			Type:     p.resolveValueType(pt.pointee),
		})
	}
	return ep, true
}

func (p *parser) decorationValue(id, decoration uint32) (uint32, bool) {
	m := p.decorations[id]
	if m == nil {
		return 0, false
	}
	v, ok := m[decoration]
	return v, ok
}

func (p *parser) resolveValueType(typeID uint32) ValueType {
	t := p.types[typeID]
	if t == nil {
		return ValueType{Kind: KindUnknown}
	}
	switch t.op {
	case opTypeBool:
		return ValueType{Kind: KindBool, Width: 32, Rows: 1, Columns: 1}
	case opTypeInt:
		kind := KindInt
		if t.compCount == 0 {
			kind = KindUInt
		}
		return ValueType{Kind: kind, Width: t.width, Rows: 1, Columns: 1}
	case opTypeFloat:
		return ValueType{Kind: KindFloat, Width: t.width, Rows: 1, Columns: 1}
	case opTypeVector:
		comp := p.resolveValueType(t.compType)
		comp.Rows = t.compCount
		return comp
	case opTypeMatrix:
		col := p.resolveValueType(t.compType)
		col.Columns = t.compCount
		return col
	case opTypeStruct:
		return ValueType{Kind: KindStruct}
	default:
		return ValueType{Kind: KindUnknown}
	}
}

// recordVariable classifies a module-scope OpVariable as a descriptor
// binding or push-constant range and appends it to mod, ignoring
// variables in storage classes this reflector does not track
// (Input/Output/Private/Function local variables never reach here since
// those never appear at module scope with a Binding/DescriptorSet
// decoration).
func (p *parser) recordVariable(mod *Module, id, resultType uint32) error {
	ptr := p.types[resultType]
	if ptr == nil || ptr.op != opTypePointer {
		return nil
	}

	switch ptr.storageClass {
	case storageClassPushConstant:
		members, size := p.resolveMembers(ptr.pointee)
		mod.PushConstants = append(mod.PushConstants, PushConstantRange{
			Name:    p.names[id],
			Offset:  0,
			Size:    size,
			Members: members,
		})
		return nil

	case storageClassUniformConstant, storageClassUniform, storageClassStorageBuffer:
		set, hasSet := p.decorationValue(id, decorationDescriptorSet)
		binding, hasBinding := p.decorationValue(id, decorationBinding)
		if !hasSet || !hasBinding {
			return nil
		}

		descType, count, bindlessCount, members, size, err := p.classifyBinding(ptr)
		if err != nil {
			return fmt.Errorf("shader: variable %q (id %d): %w", p.names[id], id, err)
		}

		mod.Bindings = append(mod.Bindings, Binding{
			Name:          p.names[id],
			Set:           set,
			Binding:       binding,
			Type:          descType,
			Count:         count,
			BindlessCount: bindlessCount,
			Members:       members,
			TotalSize:     size,
		})
		return nil

	default:
		return nil
	}
}

// classifyBinding resolves a UniformConstant/Uniform/StorageBuffer
// pointer's pointee type into a descriptor type, its array arity, and
// (for buffer blocks) its member layout.
func (p *parser) classifyBinding(ptr *typeInfo) (rhi.DescriptorType, uint32, uint32, []Member, uint32, error) {
	pointee := ptr.pointee
	count, bindlessCount := uint32(1), uint32(0)

	underlying := pointee
	if t := p.types[pointee]; t != nil && t.op == opTypeArray {
		underlying = t.elemType
		count = t.length
	} else if t != nil && t.op == opTypeRuntimeArray {
		underlying = t.elemType
		count = 0
		bindlessCount = ^uint32(0) // unbounded; caller overrides with its own upper bound
	}

	t := p.types[underlying]
	if t == nil {
		return 0, 0, 0, nil, 0, fmt.Errorf("unresolved binding type %d", underlying)
	}

	switch ptr.storageClass {
	case storageClassUniformConstant:
		switch t.op {
		case opTypeSampler:
			return rhi.DescriptorSampler, count, bindlessCount, nil, 0, nil
		case opTypeSampledImage:
			return rhi.DescriptorSampledImage, count, bindlessCount, nil, 0, nil
		case opTypeImage:
			if t.imageSampled == 2 {
				return rhi.DescriptorStorageImage, count, bindlessCount, nil, 0, nil
			}
			return rhi.DescriptorSampledImage, count, bindlessCount, nil, 0, nil
		case opTypeAccelerationStructureKHR:
			return rhi.DescriptorAccelerationStructure, count, bindlessCount, nil, 0, nil
		default:
			return 0, 0, 0, nil, 0, fmt.Errorf("UniformConstant variable has unsupported type op %d", t.op)
		}

	case storageClassUniform:
		if t.op != opTypeStruct {
			return 0, 0, 0, nil, 0, fmt.Errorf("Uniform variable pointee is not a struct (op %d)", t.op)
		}
		members, size := p.structMembers(underlying, t)
		if _, isBufferBlock := p.decorations[underlying][decorationBufferBlock]; isBufferBlock {
			return rhi.DescriptorStorageBuffer, count, bindlessCount, members, size, nil
		}
		return rhi.DescriptorUniformBuffer, count, bindlessCount, members, size, nil

	case storageClassStorageBuffer:
		if t.op != opTypeStruct {
			return 0, 0, 0, nil, 0, fmt.Errorf("StorageBuffer variable pointee is not a struct (op %d)", t.op)
		}
		members, size := p.structMembers(underlying, t)
		return rhi.DescriptorStorageBuffer, count, bindlessCount, members, size, nil

	default:
		return 0, 0, 0, nil, 0, fmt.Errorf("unsupported storage class %d", ptr.storageClass)
	}
}

// resolveMembers is classifyBinding's counterpart for push-constant
// blocks, which point directly at a struct type rather than through a
// UniformConstant/Uniform indirection.
func (p *parser) resolveMembers(structID uint32) ([]Member, uint32) {
	t := p.types[structID]
	if t == nil || t.op != opTypeStruct {
		return nil, 0
	}
	return p.structMembers(structID, t)
}

func (p *parser) structMembers(structID uint32, t *typeInfo) ([]Member, uint32) {
	members := make([]Member, 0, len(t.members))
	var total uint32
	for idx, memberTypeID := range t.members {
		key := memberKey{structID, uint32(idx)}
		offset := p.memberDecorations[key][decorationOffset]
		vt := p.resolveValueType(memberTypeID)
		members = append(members, Member{
			Name:   p.memberNames[key],
			Type:   vt,
			Offset: offset,
		})
		if end := offset + vt.Size(); end > total {
			total = end
		}
	}
	return members, total
}
