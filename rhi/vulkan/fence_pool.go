// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/mizu-gfx/mizu/rhi"
	"github.com/mizu-gfx/mizu/rhi/vulkan/vk"
)

// fencePool manages binary VkFences for drivers without timeline semaphore
// support. Mirrors Rust wgpu-hal's FencePool pattern.
//
// Instead of a fixed 2-slot ring buffer, fencePool tracks per-submission fences
// with monotonic values. This enables fine-grained synchronization: the caller
// can wait for any specific submission rather than just the latest two frames.
//
// Fences are recycled into a free list after GPU completion to avoid repeated
// vkCreateFence/vkDestroyFence calls.
type fencePool struct {
	// active contains submitted fences awaiting GPU completion,
	// ordered by ascending value.
	active []fenceEntry

	// free contains recycled fences ready for reuse.
	free []vk.Fence

	// lastCompleted is the high watermark: largest submission value
	// known to be completed by the GPU.
	lastCompleted uint64
}

// fenceEntry pairs a monotonic submission value with the binary fence
// signaled on that submission.
type fenceEntry struct {
	value uint64   // Monotonic submission value
	fence vk.Fence // Binary fence signaled on this submission
}

// maintain performs a non-blocking poll of active fences, moving signaled
// fences to the free list and updating lastCompleted.
func (p *fencePool) maintain(cmds *vk.Commands, device vk.Device) {
	n := 0
	for _, entry := range p.active {
		status := vkGetFenceStatus(cmds, device, entry.fence)
		if status == vk.Success {
			_ = vkResetFences(cmds, device, 1, &entry.fence)
			p.free = append(p.free, entry.fence)
			if entry.value > p.lastCompleted {
				p.lastCompleted = entry.value
			}
		} else {
			p.active[n] = entry
			n++
		}
	}
	p.active = p.active[:n]
}

// signal returns a fence to be passed to vkQueueSubmit for the given
// submission value. The fence is taken from the free list if available,
// otherwise a new one is created.
func (p *fencePool) signal(cmds *vk.Commands, device vk.Device, value uint64) (vk.Fence, error) {
	var fence vk.Fence

	if n := len(p.free); n > 0 {
		fence = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		createInfo := vk.FenceCreateInfo{
			SType: vk.StructureTypeFenceCreateInfo,
		}
		result := vkCreateFence(cmds, device, &createInfo, &fence)
		if result != vk.Success {
			return 0, fmt.Errorf("vulkan: fencePool: vkCreateFence failed: %d", result)
		}
	}

	p.active = append(p.active, fenceEntry{value: value, fence: fence})
	return fence, nil
}

// wait blocks until the GPU completes the submission with the given value.
// Returns immediately if the value is already known to be completed.
func (p *fencePool) wait(cmds *vk.Commands, device vk.Device, value uint64, timeoutNs uint64) error {
	if value <= p.lastCompleted {
		return nil
	}
	if value == 0 {
		return nil
	}

	p.maintain(cmds, device)
	if value <= p.lastCompleted {
		return nil
	}

	var targetFence vk.Fence
	targetIdx := -1
	for i, entry := range p.active {
		if entry.value == value {
			targetFence = entry.fence
			targetIdx = i
			break
		}
		if entry.value > value && (targetFence == 0 || entry.value < p.active[targetIdx].value) {
			targetFence = entry.fence
			targetIdx = i
		}
	}

	if targetFence == 0 {
		// No active fence covers this value: it must have already completed
		// but lastCompleted was not updated (race with maintain).
		return nil
	}

	result := vkWaitForFences(cmds, device, 1, &targetFence, vk.True, timeoutNs)
	switch result {
	case vk.Success:
		_ = vkResetFences(cmds, device, 1, &targetFence)
		completedValue := p.active[targetIdx].value
		if completedValue > p.lastCompleted {
			p.lastCompleted = completedValue
		}

		last := len(p.active) - 1
		p.active[targetIdx] = p.active[last]
		p.active = p.active[:last]

		p.maintain(cmds, device)
		return nil
	case vk.ResultTimeout:
		return fmt.Errorf("vulkan: fencePool: wait timed out (value=%d)", value)
	case vk.ErrorDeviceLost:
		return rhi.ErrDeviceLost
	default:
		return fmt.Errorf("vulkan: fencePool: vkWaitForFences failed: %d", result)
	}
}

// waitForLatest blocks until the GPU completes the highest active submission.
func (p *fencePool) waitForLatest(cmds *vk.Commands, device vk.Device, timeoutNs uint64) error {
	if len(p.active) == 0 {
		return nil
	}

	var maxValue uint64
	for _, entry := range p.active {
		if entry.value > maxValue {
			maxValue = entry.value
		}
	}

	return p.wait(cmds, device, maxValue, timeoutNs)
}

// destroy releases all fences (both active and free) via vkDestroyFence.
// Must be called only after the GPU is idle.
func (p *fencePool) destroy(cmds *vk.Commands, device vk.Device) {
	for _, entry := range p.active {
		vkDestroyFence(cmds, device, entry.fence)
	}
	p.active = nil

	for _, fence := range p.free {
		vkDestroyFence(cmds, device, fence)
	}
	p.free = nil

	p.lastCompleted = 0
}

// --- raw Vulkan wrappers ---

func vkCreateFence(cmds *vk.Commands, device vk.Device, createInfo *vk.FenceCreateInfo, fence *vk.Fence) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateFence(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		0,
		uintptr(unsafe.Pointer(fence)))
	return vk.Result(ret)
}

func vkDestroyFence(cmds *vk.Commands, device vk.Device, fence vk.Fence) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyFence(), uintptr(device), uintptr(fence), 0)
}

func vkGetFenceStatus(cmds *vk.Commands, device vk.Device, fence vk.Fence) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.GetFenceStatus(), uintptr(device), uintptr(fence))
	return vk.Result(ret)
}

func vkResetFences(cmds *vk.Commands, device vk.Device, count uint32, fences *vk.Fence) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.ResetFences(),
		uintptr(device),
		uintptr(count),
		uintptr(unsafe.Pointer(fences)))
	return vk.Result(ret)
}

func vkWaitForFences(cmds *vk.Commands, device vk.Device, count uint32, fences *vk.Fence, waitAll vk.Bool32, timeout uint64) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.WaitForFences(),
		uintptr(device),
		uintptr(count),
		uintptr(unsafe.Pointer(fences)),
		uintptr(waitAll),
		uintptr(timeout))
	return vk.Result(ret)
}
