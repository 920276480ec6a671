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
	"github.com/mizu-gfx/mizu/rhi/vulkan/vk"
)

const fenceCreateSignaledBit uint32 = 0x00000001

// Fence implements rhi.Fence as a single binary VkFence. Unlike the
// internal fencePool (which recycles fences and is not used by Device), a
// Fence is explicitly owned and reset by the caller.
type Fence struct {
	handle vk.Fence
	id     rhi.FenceID
	device *Device
}

func (f *Fence) ID() rhi.FenceID { return f.id }

// Wait blocks until the fence is signalled, ctx is cancelled, or the
// driver call itself times out.
func (f *Fence) Wait(ctx context.Context) error {
	if f.device == nil {
		return fmt.Errorf("vulkan: fence already destroyed")
	}

	done := make(chan vk.Result, 1)
	go func() {
		done <- vkWaitForFences(f.device.cmds, f.device.handle, 1, &f.handle, vk.True, vk.Timeout)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case result := <-done:
		switch result {
		case vk.Success:
			return nil
		case vk.ResultTimeout:
			return rhi.ErrTimeout
		case vk.ErrorDeviceLost:
			return rhi.ErrDeviceLost
		default:
			return fmt.Errorf("vulkan: vkWaitForFences failed: %d", result)
		}
	}
}

// IsSignalled reports the fence's current state without blocking.
func (f *Fence) IsSignalled() bool {
	if f.device == nil {
		return false
	}
	return vkGetFenceStatus(f.device.cmds, f.device.handle, f.handle) == vk.Success
}

// Reset returns the fence to the unsignalled state. It is a programmer
// error to reset a fence still pending on the GPU (rhi.Fence contract);
// Vulkan itself would simply leave the fence unsignalled in that case.
func (f *Fence) Reset() {
	if f.device == nil {
		return
	}
	_ = vkResetFences(f.device.cmds, f.device.handle, 1, &f.handle)
}

// Destroy releases the fence.
func (f *Fence) Destroy() {
	if f.device != nil && f.handle != 0 {
		vkDestroyFence(f.device.cmds, f.device.handle, f.handle)
	}
	f.handle = 0
	f.device = nil
}

// Semaphore implements rhi.Semaphore as a binary VkSemaphore used to order
// queue submissions (e.g. swapchain acquire -> render -> present) without
// CPU involvement.
type Semaphore struct {
	handle vk.Semaphore
	id     rhi.SemaphoreID
	device *Device
}

func (s *Semaphore) ID() rhi.SemaphoreID { return s.id }

// Destroy releases the semaphore.
func (s *Semaphore) Destroy() {
	if s.device != nil && s.handle != 0 {
		vkDestroySemaphore(s.device.cmds, s.device.handle, s.handle)
	}
	s.handle = 0
	s.device = nil
}

// --- raw Vulkan wrappers ---

func vkCreateSemaphore(cmds *vk.Commands, device vk.Device, createInfo *vk.SemaphoreCreateInfo, sem *vk.Semaphore) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateSemaphore(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		0,
		uintptr(unsafe.Pointer(sem)))
	return vk.Result(ret)
}

func vkDestroySemaphore(cmds *vk.Commands, device vk.Device, sem vk.Semaphore) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroySemaphore(), uintptr(device), uintptr(sem), 0)
}
