package rhi

// Limits reports device capability bounds a caller can query before
// building resources that approach them (§6).
type Limits struct {
	MaxBoundDescriptorSets   uint32
	MaxDescriptorsPerSet     uint32
	MaxBindlessDescriptors   uint32
	MaxColorAttachments      uint32
	MaxPushConstantSize      uint32
	MaxComputeWorkgroupSize  [3]uint32
	MinUniformBufferOffsetAlignment uint64
	MinStorageBufferOffsetAlignment uint64
	MaxFramebufferWidth      uint32
	MaxFramebufferHeight     uint32
}

// Features reports optional GPU capabilities a device may or may not
// expose; requesting a resource that needs a disabled feature returns
// ErrFeatureNotAvailable (§7).
type Features struct {
	RayTracing      bool
	BindlessResources bool
	MeshShaders     bool
}
