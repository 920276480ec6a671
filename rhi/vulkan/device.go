// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"context"
	"fmt"
	"syscall"
	"unsafe"

	"github.com/mizu-gfx/mizu/rhi"
	"github.com/mizu-gfx/mizu/rhi/vulkan/memory"
	"github.com/mizu-gfx/mizu/rhi/vulkan/vk"
)

// Device implements rhi.Device for Vulkan.
type Device struct {
	handle         vk.Device
	physicalDevice vk.PhysicalDevice
	instance       *Instance
	graphicsFamily uint32
	allocator      *memory.GpuAllocator
	cmds           *vk.Commands
	commandPool    vk.CommandPool // primary pool backing NewCommandRecorder

	limits   rhi.Limits
	features rhi.Features

	ids idAllocator

	semaphores map[rhi.SemaphoreID]*Semaphore
	fences     map[rhi.FenceID]*Fence
}

func (d *Device) API() rhi.GraphicsAPI { return rhi.GraphicsAPIVulkan }
func (d *Device) Limits() rhi.Limits   { return d.limits }
func (d *Device) Features() rhi.Features { return d.features }

// initAllocator sets up the GPU memory allocator from the physical
// device's memory properties.
func (d *Device) initAllocator() error {
	var vkProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(&d.instance.cmds, d.physicalDevice, &vkProps)

	props := memory.DeviceMemoryProperties{
		MemoryTypes: make([]memory.MemoryType, vkProps.MemoryTypeCount),
		MemoryHeaps: make([]memory.MemoryHeap, vkProps.MemoryHeapCount),
	}
	for i := uint32(0); i < vkProps.MemoryTypeCount; i++ {
		props.MemoryTypes[i] = memory.MemoryType{
			PropertyFlags: vkProps.MemoryTypes[i].PropertyFlags,
			HeapIndex:     vkProps.MemoryTypes[i].HeapIndex,
		}
	}
	for i := uint32(0); i < vkProps.MemoryHeapCount; i++ {
		props.MemoryHeaps[i] = memory.MemoryHeap{
			Size:  uint64(vkProps.MemoryHeaps[i].Size),
			Flags: vkProps.MemoryHeaps[i].Flags,
		}
	}

	allocator, err := memory.NewGpuAllocator(d.handle, props, memory.DefaultConfig())
	if err != nil {
		return fmt.Errorf("vulkan: failed to create memory allocator: %w", err)
	}
	d.allocator = allocator
	vk.SetDeviceCommands(d.cmds)
	return nil
}

// CreateBuffer creates a GPU buffer and binds freshly allocated device
// memory to it.
func (d *Device) CreateBuffer(desc rhi.BufferDescription) (rhi.Buffer, error) {
	if desc.Size == 0 {
		return nil, fmt.Errorf("vulkan: buffer size must be > 0")
	}

	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       bufferUsageToVk(desc.Usage),
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	result := vk.CreateBuffer(d.handle, &createInfo, nil, &buffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateBuffer failed: %d", result)
	}

	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(d.handle, buffer, &memReqs)

	memUsage := memory.UsageFastDeviceAccess
	if desc.Usage.Has(rhi.UsageHostVisible) {
		memUsage = memory.UsageHostAccess | memory.UsageUpload | memory.UsageDownload
	}

	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memUsage,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate buffer memory: %w", err)
	}

	result = vk.BindBufferMemory(d.handle, buffer, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: vkBindBufferMemory failed: %d", result)
	}

	return &Buffer{
		handle: buffer,
		memory: memBlock,
		id:     rhi.NewBufferID(d.ids.alloc(), 0),
		desc:   desc,
		reqs: rhi.MemoryRequirements{
			Size:      uint64(memReqs.Size),
			Alignment: uint64(memReqs.Alignment),
			TypeBits:  memReqs.MemoryTypeBits,
		},
		device: d,
	}, nil
}

// CreateImage creates a GPU image and binds freshly allocated
// device-local memory to it.
func (d *Device) CreateImage(desc rhi.ImageDescription) (rhi.Image, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("vulkan: image dimensions must be > 0")
	}

	depth := desc.Depth
	if depth == 0 {
		depth = 1
	}
	mipLevels := desc.NumMips
	if mipLevels == 0 {
		mipLevels = 1
	}
	arrayLayers := desc.NumLayers
	if arrayLayers == 0 {
		arrayLayers = 1
	}
	if desc.Type == rhi.ImageCubemap && arrayLayers < 6 {
		arrayLayers = 6
	}

	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		ImageType: imageTypeToVk(desc.Type),
		Format:    pixelFmtToVk(desc.Format),
		Extent: vk.Extent3D{
			Width:  desc.Width,
			Height: desc.Height,
			Depth:  depth,
		},
		MipLevels:     mipLevels,
		ArrayLayers:   arrayLayers,
		Samples:       vk.SampleCountFlagBits(vk.SampleCount1Bit),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         imageAttachmentUsageToVk(desc.Format, desc.Usage),
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var image vk.Image
	result := vk.CreateImage(d.handle, &createInfo, nil, &image)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImage failed: %d", result)
	}

	var memReqs vk.MemoryRequirements
	vk.GetImageMemoryRequirements(d.handle, image, &memReqs)

	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate image memory: %w", err)
	}

	result = vk.BindImageMemory(d.handle, image, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: vkBindImageMemory failed: %d", result)
	}

	return &Image{
		handle: image,
		memory: memBlock,
		id:     rhi.NewImageID(d.ids.alloc(), 0),
		desc:   desc,
		reqs: rhi.MemoryRequirements{
			Size:      uint64(memReqs.Size),
			Alignment: uint64(memReqs.Alignment),
			TypeBits:  memReqs.MemoryTypeBits,
		},
		device: d,
	}, nil
}

// createImageView creates (and never caches; img.views does that) a
// VkImageView for the given view kind and subresource range.
func (d *Device) createImageView(img *Image, kind rhi.ViewKind, rng rhi.ViewRange) (vk.ImageView, error) {
	format := pixelFmtToVk(img.desc.Format)
	if rng.HasOverrideFormat {
		format = pixelFmtToVk(rng.OverrideFormat)
	}

	aspect := vk.ImageAspectColorBit
	if img.desc.Format.IsDepthFormat() {
		aspect = vk.ImageAspectDepthBit
	}

	viewType := vk.ImageViewType2d
	switch img.desc.Type {
	case rhi.Image1D:
		viewType = vk.ImageViewType1d
	case rhi.Image3D:
		viewType = vk.ImageViewType3d
	case rhi.ImageCubemap:
		viewType = vk.ImageViewTypeCube
	}

	mipCount := rng.MipCount
	if mipCount == 0 {
		mipCount = img.desc.NumMips
		if mipCount == 0 {
			mipCount = 1
		}
	}
	layerCount := rng.LayerCount
	if layerCount == 0 {
		layerCount = img.desc.NumLayers
		if layerCount == 0 {
			layerCount = 1
		}
	}

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    img.handle,
		ViewType: viewType,
		Format:   format,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(aspect),
			BaseMipLevel:   rng.MipBase,
			LevelCount:     mipCount,
			BaseArrayLayer: rng.LayerBase,
			LayerCount:     layerCount,
		},
	}

	var view vk.ImageView
	result := vkCreateImageView(d.cmds, d.handle, &createInfo, nil, &view)
	if result != vk.Success {
		return 0, fmt.Errorf("vulkan: vkCreateImageView failed: %d", result)
	}
	return view, nil
}

// CreateSampler creates a VkSampler.
func (d *Device) CreateSampler(desc rhi.SamplerDescription) (rhi.SamplerState, error) {
	createInfo := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        filterToVk(desc.MagFilter),
		MinFilter:        filterToVk(desc.MinFilter),
		MipmapMode:       mipmapModeToVk(desc.MipFilter),
		AddressModeU:     addressModeToVk(desc.AddressU),
		AddressModeV:     addressModeToVk(desc.AddressV),
		AddressModeW:     addressModeToVk(desc.AddressW),
		AnisotropyEnable: boolToVkBool(desc.MaxAnisotropy > 1),
		MaxAnisotropy:    desc.MaxAnisotropy,
		CompareEnable:    boolToVkBool(desc.CompareEnable),
		CompareOp:        compareOpToVk(desc.Compare),
		MinLod:           desc.MinLOD,
		MaxLod:           desc.MaxLOD,
		BorderColor:      borderColorToVk(desc.Border),
	}

	var sampler vk.Sampler
	result := vkCreateSampler(d.cmds, d.handle, &createInfo, nil, &sampler)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateSampler failed: %d", result)
	}

	return &Sampler{
		handle: sampler,
		id:     rhi.NewSamplerID(d.ids.alloc(), 0),
		desc:   desc,
		device: d,
	}, nil
}

// CreateAccelerationStructure is not yet implemented: it requires the
// VK_KHR_acceleration_structure loader entry points, which commands.go
// does not yet resolve.
func (d *Device) CreateAccelerationStructure(desc rhi.AccelStructDescription) (rhi.AccelerationStructure, error) {
	return nil, fmt.Errorf("vulkan: CreateAccelerationStructure not yet implemented")
}

// CreateSwapchain is not yet implemented: it depends on the
// swapchain.go/descriptor.go rewrite landing first.
func (d *Device) CreateSwapchain(desc rhi.SwapchainDescription) (rhi.Swapchain, error) {
	return nil, fmt.Errorf("vulkan: CreateSwapchain not yet implemented")
}

// CreateFence creates a VkFence, optionally pre-signalled.
func (d *Device) CreateFence(signalled bool) (rhi.Fence, error) {
	var flags uint32
	if signalled {
		flags = fenceCreateSignaledBit
	}
	createInfo := vk.FenceCreateInfo{
		SType: vk.StructureTypeFenceCreateInfo,
		Flags: flags,
	}

	var handle vk.Fence
	result := vkCreateFence(d.cmds, d.handle, &createInfo, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateFence failed: %d", result)
	}

	f := &Fence{handle: handle, id: rhi.NewFenceID(d.ids.alloc(), 0), device: d}
	d.fences[f.id] = f
	return f, nil
}

// CreateSemaphore creates a binary VkSemaphore.
func (d *Device) CreateSemaphore() (rhi.Semaphore, error) {
	createInfo := vk.SemaphoreCreateInfo{SType: vk.StructureTypeSemaphoreCreateInfo}

	var handle vk.Semaphore
	result := vkCreateSemaphore(d.cmds, d.handle, &createInfo, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateSemaphore failed: %d", result)
	}

	s := &Semaphore{handle: handle, id: rhi.NewSemaphoreID(d.ids.alloc(), 0), device: d}
	d.semaphores[s.id] = s
	return s, nil
}

// NewCommandRecorder is not yet implemented: it depends on the
// command.go rewrite (rhi.CommandRecorder has no Vulkan implementation
// yet) landing first.
func (d *Device) NewCommandRecorder() (rhi.CommandRecorder, error) {
	return nil, fmt.Errorf("vulkan: NewCommandRecorder not yet implemented")
}

// Submit is not yet implemented: it depends on NewCommandRecorder.
func (d *Device) Submit(ctx context.Context, cmds []rhi.CommandRecorder, waitSemaphores, signalSemaphores []rhi.SemaphoreID, fence rhi.Fence) error {
	return fmt.Errorf("vulkan: Submit not yet implemented")
}

// WaitIdle blocks until every queue on the device has drained.
func (d *Device) WaitIdle(ctx context.Context) error {
	if d.handle == 0 {
		return nil
	}
	done := make(chan vk.Result, 1)
	go func() {
		done <- vkDeviceWaitIdle(d.cmds, d.handle)
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case result := <-done:
		switch result {
		case vk.Success:
			return nil
		case vk.ErrorDeviceLost:
			return rhi.ErrDeviceLost
		default:
			return fmt.Errorf("vulkan: vkDeviceWaitIdle failed: %d", result)
		}
	}
}

// initCommandPool lazily creates the device's primary command pool.
func (d *Device) initCommandPool() error {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}

	var pool vk.CommandPool
	result := vkCreateCommandPool(d.cmds, d.handle, &createInfo, nil, &pool)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkCreateCommandPool failed: %d", result)
	}
	d.commandPool = pool
	return nil
}

// Destroy releases the device. Callers must have already destroyed every resource created through the
// device (buffers, images, fences, semaphores, ...); Destroy only tears
// down device-owned infrastructure (command pool, allocator, VkDevice).
func (d *Device) Destroy() {
	if d.commandPool != 0 {
		vkDestroyCommandPool(d.cmds, d.handle, d.commandPool, nil)
		d.commandPool = 0
	}
	if d.allocator != nil {
		d.allocator.Destroy()
		d.allocator = nil
	}
	if d.handle != 0 {
		vkDestroyDevice(d.handle, nil)
		d.handle = 0
	}
}

// --- raw Vulkan wrappers ---

func vkDestroyDevice(device vk.Device, allocator unsafe.Pointer) {
	proc := vk.GetInstanceProcAddr(0, "vkDestroyDevice")
	if proc == 0 {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(proc, uintptr(device), uintptr(allocator))
}

func vkCreateCommandPool(cmds *vk.Commands, device vk.Device, createInfo *vk.CommandPoolCreateInfo, allocator unsafe.Pointer, pool *vk.CommandPool) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateCommandPool(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(pool)))
	return vk.Result(ret)
}

func vkDestroyCommandPool(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyCommandPool(),
		uintptr(device),
		uintptr(pool),
		uintptr(allocator))
}

func vkAllocateCommandBuffers(cmds *vk.Commands, device vk.Device, allocInfo *vk.CommandBufferAllocateInfo, cmdBuffers *vk.CommandBuffer) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.AllocateCommandBuffers(),
		uintptr(device),
		uintptr(unsafe.Pointer(allocInfo)),
		uintptr(unsafe.Pointer(cmdBuffers)))
	return vk.Result(ret)
}

func vkCreateImageView(cmds *vk.Commands, device vk.Device, createInfo *vk.ImageViewCreateInfo, allocator unsafe.Pointer, view *vk.ImageView) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateImageView(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(view)))
	return vk.Result(ret)
}

func vkDestroyImageView(cmds *vk.Commands, device vk.Device, view vk.ImageView, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyImageView(), uintptr(device), uintptr(view), uintptr(allocator))
}

func vkCreateSampler(cmds *vk.Commands, device vk.Device, createInfo *vk.SamplerCreateInfo, allocator unsafe.Pointer, sampler *vk.Sampler) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateSampler(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(sampler)))
	return vk.Result(ret)
}

func vkDestroySampler(cmds *vk.Commands, device vk.Device, sampler vk.Sampler, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroySampler(), uintptr(device), uintptr(sampler), uintptr(allocator))
}

func vkDestroyShaderModule(cmds *vk.Commands, device vk.Device, module vk.ShaderModule, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyShaderModule(), uintptr(device), uintptr(module), uintptr(allocator))
}

func vkDeviceWaitIdle(cmds *vk.Commands, device vk.Device) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.DeviceWaitIdle(), uintptr(device))
	return vk.Result(ret)
}
