package rhi

// AccelStructKind distinguishes the two acceleration-structure levels
// (§3.1).
type AccelStructKind int

const (
	// AccelStructBottomLevel holds geometry (triangles or AABBs).
	AccelStructBottomLevel AccelStructKind = iota
	// AccelStructTopLevel holds instances of bottom-level structures.
	AccelStructTopLevel
)

// GeometryTriangles describes a triangle-mesh geometry entry for a
// bottom-level acceleration structure build.
type GeometryTriangles struct {
	VertexBuffer BufferID
	VertexFormat PixelFmt
	VertexStride uint32
	MaxVertex    uint32

	IndexBuffer BufferID
	// IndexCount is 0 when this geometry is non-indexed.
	IndexCount uint32

	TransformBuffer BufferID
	Opaque          bool
}

// GeometryInstances describes the instance-buffer input for a top-level
// acceleration structure build. Each instance references a bottom-level
// AccelerationStructure by device address, held indirectly here as an ID
// so the RHI can resolve addresses at build time.
type GeometryInstances struct {
	InstanceBuffer BufferID
	InstanceCount  uint32
}

// AccelStructBuildSizes reports the scratch and result-buffer sizes a
// backend computes for a prospective build, mirroring
// vkGetAccelerationStructureBuildSizesKHR (§3.1 "build_sizes").
type AccelStructBuildSizes struct {
	AccelerationStructureSize uint64
	BuildScratchSize          uint64
	UpdateScratchSize         uint64
}

// AccelStructDescription configures AccelerationStructure creation.
//
// Exactly one of Triangles or Instances is populated depending on Kind.
type AccelStructDescription struct {
	Name string
	Kind AccelStructKind

	Triangles []GeometryTriangles
	Instances *GeometryInstances

	AllowUpdate bool
}

// AccelerationStructure is an opaque ray-tracing acceleration structure
// (§3.1). BottomLevel structures hold geometry; TopLevel structures hold
// instances of BottomLevel structures via an internal instance buffer
// that the backend manages on Build.
type AccelerationStructure interface {
	ID() AccelerationStructureID
	Description() AccelStructDescription
	BuildSizes() AccelStructBuildSizes
	Destroy()
}
