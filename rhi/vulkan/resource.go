// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"github.com/mizu-gfx/mizu/rhi"
	"github.com/mizu-gfx/mizu/rhi/vulkan/memory"
	"github.com/mizu-gfx/mizu/rhi/vulkan/vk"
)

// idAllocator hands out monotonically increasing slot indices for resources
// created by a Device. Generations stay 0: this backend never recycles a
// slot across a Destroy, it simply stops tracking it, so staleness
// detection is left to callers that keep an ID after Destroy.
type idAllocator struct {
	next uint32
}

func (a *idAllocator) alloc() uint32 {
	a.next++
	return a.next
}

// Buffer implements rhi.Buffer for Vulkan.
type Buffer struct {
	handle vk.Buffer
	memory *memory.MemoryBlock
	id     rhi.BufferID
	desc   rhi.BufferDescription
	reqs   rhi.MemoryRequirements
	device *Device
}

func (b *Buffer) ID() rhi.BufferID                         { return b.id }
func (b *Buffer) Description() rhi.BufferDescription       { return b.desc }
func (b *Buffer) MemoryRequirements() rhi.MemoryRequirements { return b.reqs }
func (b *Buffer) IsHostVisible() bool                      { return b.desc.Usage.Has(rhi.UsageHostVisible) }

// SetData copies data into the buffer's backing memory at offset. Only
// host-visible buffers support this directly; device-local buffers without
// UsageHostVisible require a staging upload, which rendergraph's transfer
// pass performs through CommandRecorder.CopyBufferToBuffer instead.
func (b *Buffer) SetData(data []byte, offset uint64) {
	if b.memory == nil || len(data) == 0 {
		return
	}
	if !b.IsHostVisible() {
		rhi.Logger().Warn("vulkan: SetData on non-host-visible buffer ignored", "buffer", b.desc.Name)
		return
	}

	if b.memory.MappedPtr != 0 {
		copyToMappedMemory(b.memory.MappedPtr, offset, data)
		return
	}

	var ptr uintptr
	result := vk.MapMemory(b.device.handle, b.memory.Memory, b.memory.Offset+offset, uint64(len(data)), 0, &ptr)
	if result != vk.Success {
		rhi.Logger().Error("vulkan: vkMapMemory failed", "result", int32(result))
		return
	}
	copyToMappedMemory(ptr, 0, data)
	vk.UnmapMemory(b.device.handle, b.memory.Memory)
}

// Destroy releases the buffer and its backing memory.
func (b *Buffer) Destroy() {
	if b.device == nil {
		return
	}
	if b.handle != 0 {
		vk.DestroyBuffer(b.device.handle, b.handle, nil)
		b.handle = 0
	}
	if b.memory != nil {
		_ = b.device.allocator.Free(b.memory)
		b.memory = nil
	}
	b.device = nil
}

// Image implements rhi.Image for Vulkan.
type Image struct {
	handle   vk.Image
	memory   *memory.MemoryBlock
	id       rhi.ImageID
	desc     rhi.ImageDescription
	reqs     rhi.MemoryRequirements
	device   *Device
	external bool // true for swapchain-owned images: memory is not ours to free
	views    rhi.ViewCache
}

func (img *Image) ID() rhi.ImageID                         { return img.id }
func (img *Image) Description() rhi.ImageDescription       { return img.desc }
func (img *Image) MemoryRequirements() rhi.MemoryRequirements { return img.reqs }

// View returns a cached image view, creating a VkImageView on first request
// for a given (kind, range) pair.
func (img *Image) View(kind rhi.ViewKind, rng rhi.ViewRange) rhi.ResourceView {
	return img.views.GetOrCreate(img.id, kind, rng, func() any {
		handle, err := img.device.createImageView(img, kind, rng)
		if err != nil {
			rhi.Logger().Error("vulkan: CreateImageView failed", "image", img.desc.Name, "err", err)
			return vk.ImageView(0)
		}
		return handle
	})
}

// Destroy releases the image and its backing memory.
func (img *Image) Destroy() {
	if img.device == nil {
		return
	}
	if img.handle != 0 && !img.external {
		vk.DestroyImage(img.device.handle, img.handle, nil)
	}
	img.handle = 0
	if img.memory != nil {
		_ = img.device.allocator.Free(img.memory)
		img.memory = nil
	}
	img.device = nil
}

// Sampler implements rhi.SamplerState for Vulkan.
type Sampler struct {
	handle vk.Sampler
	id     rhi.SamplerID
	desc   rhi.SamplerDescription
	device *Device
}

func (s *Sampler) ID() rhi.SamplerID               { return s.id }
func (s *Sampler) Description() rhi.SamplerDescription { return s.desc }

// Destroy releases the sampler.
func (s *Sampler) Destroy() {
	if s.device != nil && s.handle != 0 {
		vkDestroySampler(s.device.cmds, s.device.handle, s.handle, nil)
	}
	s.handle = 0
	s.device = nil
}

// ShaderModule implements rhi.ShaderModule for Vulkan.
type ShaderModule struct {
	handle vk.ShaderModule
	device *Device
}

// Destroy releases the shader module.
func (m *ShaderModule) Destroy() {
	if m.device != nil && m.handle != 0 {
		vkDestroyShaderModule(m.device.cmds, m.device.handle, m.handle, nil)
	}
	m.handle = 0
	m.device = nil
}
