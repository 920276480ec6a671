// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vk

// Further getter methods for Commands function pointers, covering the
// device, pipeline, descriptor, render pass and swapchain surface that
// commands_ext.go's original set did not expose.

// AcquireNextImageKHR returns the vkAcquireNextImageKHR function pointer.
func (c *Commands) AcquireNextImageKHR() uintptr { return c.acquireNextImageKHR }

// AllocateDescriptorSets returns the vkAllocateDescriptorSets function pointer.
func (c *Commands) AllocateDescriptorSets() uintptr { return c.allocateDescriptorSets }

// CmdBeginQuery returns the vkCmdBeginQuery function pointer.
func (c *Commands) CmdBeginQuery() uintptr { return c.cmdBeginQuery }

// CmdEndQuery returns the vkCmdEndQuery function pointer.
func (c *Commands) CmdEndQuery() uintptr { return c.cmdEndQuery }

// CmdResetQueryPool returns the vkCmdResetQueryPool function pointer.
func (c *Commands) CmdResetQueryPool() uintptr { return c.cmdResetQueryPool }

// CmdResolveImage returns the vkCmdResolveImage function pointer.
func (c *Commands) CmdResolveImage() uintptr { return c.cmdResolveImage }

// CmdSetDepthBounds returns the vkCmdSetDepthBounds function pointer.
func (c *Commands) CmdSetDepthBounds() uintptr { return c.cmdSetDepthBounds }

// CmdSetLineWidth returns the vkCmdSetLineWidth function pointer.
func (c *Commands) CmdSetLineWidth() uintptr { return c.cmdSetLineWidth }

// CmdSetStencilCompareMask returns the vkCmdSetStencilCompareMask function pointer.
func (c *Commands) CmdSetStencilCompareMask() uintptr { return c.cmdSetStencilCompareMask }

// CmdSetStencilWriteMask returns the vkCmdSetStencilWriteMask function pointer.
func (c *Commands) CmdSetStencilWriteMask() uintptr { return c.cmdSetStencilWriteMask }

// CmdUpdateBuffer returns the vkCmdUpdateBuffer function pointer.
func (c *Commands) CmdUpdateBuffer() uintptr { return c.cmdUpdateBuffer }

// CreateBufferView returns the vkCreateBufferView function pointer.
func (c *Commands) CreateBufferView() uintptr { return c.createBufferView }

// CreateComputePipelines returns the vkCreateComputePipelines function pointer.
func (c *Commands) CreateComputePipelines() uintptr { return c.createComputePipelines }

// CreateDescriptorPool returns the vkCreateDescriptorPool function pointer.
func (c *Commands) CreateDescriptorPool() uintptr { return c.createDescriptorPool }

// CreateDescriptorSetLayout returns the vkCreateDescriptorSetLayout function pointer.
func (c *Commands) CreateDescriptorSetLayout() uintptr { return c.createDescriptorSetLayout }

// CreateEvent returns the vkCreateEvent function pointer.
func (c *Commands) CreateEvent() uintptr { return c.createEvent }

// CreateFence returns the vkCreateFence function pointer.
func (c *Commands) CreateFence() uintptr { return c.createFence }

// CreateFramebuffer returns the vkCreateFramebuffer function pointer.
func (c *Commands) CreateFramebuffer() uintptr { return c.createFramebuffer }

// CreateGraphicsPipelines returns the vkCreateGraphicsPipelines function pointer.
func (c *Commands) CreateGraphicsPipelines() uintptr { return c.createGraphicsPipelines }

// CreateImageView returns the vkCreateImageView function pointer.
func (c *Commands) CreateImageView() uintptr { return c.createImageView }

// CreatePipelineCache returns the vkCreatePipelineCache function pointer.
func (c *Commands) CreatePipelineCache() uintptr { return c.createPipelineCache }

// CreatePipelineLayout returns the vkCreatePipelineLayout function pointer.
func (c *Commands) CreatePipelineLayout() uintptr { return c.createPipelineLayout }

// CreateQueryPool returns the vkCreateQueryPool function pointer.
func (c *Commands) CreateQueryPool() uintptr { return c.createQueryPool }

// CreateRenderPass returns the vkCreateRenderPass function pointer.
func (c *Commands) CreateRenderPass() uintptr { return c.createRenderPass }

// CreateSampler returns the vkCreateSampler function pointer.
func (c *Commands) CreateSampler() uintptr { return c.createSampler }

// CreateSemaphore returns the vkCreateSemaphore function pointer.
func (c *Commands) CreateSemaphore() uintptr { return c.createSemaphore }

// CreateShaderModule returns the vkCreateShaderModule function pointer.
func (c *Commands) CreateShaderModule() uintptr { return c.createShaderModule }

// CreateSwapchainKHR returns the vkCreateSwapchainKHR function pointer.
func (c *Commands) CreateSwapchainKHR() uintptr { return c.createSwapchainKHR }

// CreateWin32SurfaceKHR returns the vkCreateWin32SurfaceKHR function pointer.
func (c *Commands) CreateWin32SurfaceKHR() uintptr { return c.createWin32SurfaceKHR }

// DestroyBufferView returns the vkDestroyBufferView function pointer.
func (c *Commands) DestroyBufferView() uintptr { return c.destroyBufferView }

// DestroyDescriptorPool returns the vkDestroyDescriptorPool function pointer.
func (c *Commands) DestroyDescriptorPool() uintptr { return c.destroyDescriptorPool }

// DestroyDescriptorSetLayout returns the vkDestroyDescriptorSetLayout function pointer.
func (c *Commands) DestroyDescriptorSetLayout() uintptr { return c.destroyDescriptorSetLayout }

// DestroyEvent returns the vkDestroyEvent function pointer.
func (c *Commands) DestroyEvent() uintptr { return c.destroyEvent }

// DestroyFence returns the vkDestroyFence function pointer.
func (c *Commands) DestroyFence() uintptr { return c.destroyFence }

// DestroyFramebuffer returns the vkDestroyFramebuffer function pointer.
func (c *Commands) DestroyFramebuffer() uintptr { return c.destroyFramebuffer }

// DestroyImageView returns the vkDestroyImageView function pointer.
func (c *Commands) DestroyImageView() uintptr { return c.destroyImageView }

// DestroyPipeline returns the vkDestroyPipeline function pointer.
func (c *Commands) DestroyPipeline() uintptr { return c.destroyPipeline }

// DestroyPipelineCache returns the vkDestroyPipelineCache function pointer.
func (c *Commands) DestroyPipelineCache() uintptr { return c.destroyPipelineCache }

// DestroyPipelineLayout returns the vkDestroyPipelineLayout function pointer.
func (c *Commands) DestroyPipelineLayout() uintptr { return c.destroyPipelineLayout }

// DestroyQueryPool returns the vkDestroyQueryPool function pointer.
func (c *Commands) DestroyQueryPool() uintptr { return c.destroyQueryPool }

// DestroyRenderPass returns the vkDestroyRenderPass function pointer.
func (c *Commands) DestroyRenderPass() uintptr { return c.destroyRenderPass }

// DestroySampler returns the vkDestroySampler function pointer.
func (c *Commands) DestroySampler() uintptr { return c.destroySampler }

// DestroySemaphore returns the vkDestroySemaphore function pointer.
func (c *Commands) DestroySemaphore() uintptr { return c.destroySemaphore }

// DestroyShaderModule returns the vkDestroyShaderModule function pointer.
func (c *Commands) DestroyShaderModule() uintptr { return c.destroyShaderModule }

// DestroySurfaceKHR returns the vkDestroySurfaceKHR function pointer.
func (c *Commands) DestroySurfaceKHR() uintptr { return c.destroySurfaceKHR }

// DestroySwapchainKHR returns the vkDestroySwapchainKHR function pointer.
func (c *Commands) DestroySwapchainKHR() uintptr { return c.destroySwapchainKHR }

// DeviceWaitIdle returns the vkDeviceWaitIdle function pointer.
func (c *Commands) DeviceWaitIdle() uintptr { return c.deviceWaitIdle }

// EnumerateDeviceExtensionProperties returns the vkEnumerateDeviceExtensionProperties function pointer.
func (c *Commands) EnumerateDeviceExtensionProperties() uintptr { return c.enumerateDeviceExtensionProperties }

// EnumerateDeviceLayerProperties returns the vkEnumerateDeviceLayerProperties function pointer.
func (c *Commands) EnumerateDeviceLayerProperties() uintptr { return c.enumerateDeviceLayerProperties }

// FreeDescriptorSets returns the vkFreeDescriptorSets function pointer.
func (c *Commands) FreeDescriptorSets() uintptr { return c.freeDescriptorSets }

// GetDeviceMemoryCommitment returns the vkGetDeviceMemoryCommitment function pointer.
func (c *Commands) GetDeviceMemoryCommitment() uintptr { return c.getDeviceMemoryCommitment }

// GetDeviceProcAddr returns the vkGetDeviceProcAddr function pointer.
func (c *Commands) GetDeviceProcAddr() uintptr { return c.getDeviceProcAddr }

// GetEventStatus returns the vkGetEventStatus function pointer.
func (c *Commands) GetEventStatus() uintptr { return c.getEventStatus }

// GetFenceStatus returns the vkGetFenceStatus function pointer.
func (c *Commands) GetFenceStatus() uintptr { return c.getFenceStatus }

// GetImageSparseMemoryRequirements returns the vkGetImageSparseMemoryRequirements function pointer.
func (c *Commands) GetImageSparseMemoryRequirements() uintptr { return c.getImageSparseMemoryRequirements }

// GetImageSubresourceLayout returns the vkGetImageSubresourceLayout function pointer.
func (c *Commands) GetImageSubresourceLayout() uintptr { return c.getImageSubresourceLayout }

// GetPhysicalDeviceFeatures2 returns the vkGetPhysicalDeviceFeatures2 function pointer.
func (c *Commands) GetPhysicalDeviceFeatures2() uintptr { return c.getPhysicalDeviceFeatures2 }

// GetPhysicalDeviceFormatProperties returns the vkGetPhysicalDeviceFormatProperties function pointer.
func (c *Commands) GetPhysicalDeviceFormatProperties() uintptr { return c.getPhysicalDeviceFormatProperties }

// GetPhysicalDeviceImageFormatProperties returns the vkGetPhysicalDeviceImageFormatProperties function pointer.
func (c *Commands) GetPhysicalDeviceImageFormatProperties() uintptr { return c.getPhysicalDeviceImageFormatProperties }

// GetPhysicalDeviceProperties2 returns the vkGetPhysicalDeviceProperties2 function pointer.
func (c *Commands) GetPhysicalDeviceProperties2() uintptr { return c.getPhysicalDeviceProperties2 }

// GetPhysicalDeviceSparseImageFormatProperties returns the vkGetPhysicalDeviceSparseImageFormatProperties function pointer.
func (c *Commands) GetPhysicalDeviceSparseImageFormatProperties() uintptr { return c.getPhysicalDeviceSparseImageFormatProperties }

// GetPhysicalDeviceSurfaceCapabilitiesKHR returns the vkGetPhysicalDeviceSurfaceCapabilitiesKHR function pointer.
func (c *Commands) GetPhysicalDeviceSurfaceCapabilitiesKHR() uintptr { return c.getPhysicalDeviceSurfaceCapabilitiesKHR }

// GetPhysicalDeviceSurfaceFormatsKHR returns the vkGetPhysicalDeviceSurfaceFormatsKHR function pointer.
func (c *Commands) GetPhysicalDeviceSurfaceFormatsKHR() uintptr { return c.getPhysicalDeviceSurfaceFormatsKHR }

// GetPhysicalDeviceSurfacePresentModesKHR returns the vkGetPhysicalDeviceSurfacePresentModesKHR function pointer.
func (c *Commands) GetPhysicalDeviceSurfacePresentModesKHR() uintptr { return c.getPhysicalDeviceSurfacePresentModesKHR }

// GetPhysicalDeviceSurfaceSupportKHR returns the vkGetPhysicalDeviceSurfaceSupportKHR function pointer.
func (c *Commands) GetPhysicalDeviceSurfaceSupportKHR() uintptr { return c.getPhysicalDeviceSurfaceSupportKHR }

// GetPipelineCacheData returns the vkGetPipelineCacheData function pointer.
func (c *Commands) GetPipelineCacheData() uintptr { return c.getPipelineCacheData }

// GetQueryPoolResults returns the vkGetQueryPoolResults function pointer.
func (c *Commands) GetQueryPoolResults() uintptr { return c.getQueryPoolResults }

// GetRenderAreaGranularity returns the vkGetRenderAreaGranularity function pointer.
func (c *Commands) GetRenderAreaGranularity() uintptr { return c.getRenderAreaGranularity }

// GetSemaphoreCounterValue returns the vkGetSemaphoreCounterValue function pointer.
func (c *Commands) GetSemaphoreCounterValue() uintptr { return c.getSemaphoreCounterValue }

// GetSwapchainImagesKHR returns the vkGetSwapchainImagesKHR function pointer.
func (c *Commands) GetSwapchainImagesKHR() uintptr { return c.getSwapchainImagesKHR }

// MergePipelineCaches returns the vkMergePipelineCaches function pointer.
func (c *Commands) MergePipelineCaches() uintptr { return c.mergePipelineCaches }

// QueueBindSparse returns the vkQueueBindSparse function pointer.
func (c *Commands) QueueBindSparse() uintptr { return c.queueBindSparse }

// QueuePresentKHR returns the vkQueuePresentKHR function pointer.
func (c *Commands) QueuePresentKHR() uintptr { return c.queuePresentKHR }

// QueueSubmit returns the vkQueueSubmit function pointer.
func (c *Commands) QueueSubmit() uintptr { return c.queueSubmit }

// QueueWaitIdle returns the vkQueueWaitIdle function pointer.
func (c *Commands) QueueWaitIdle() uintptr { return c.queueWaitIdle }

// ResetDescriptorPool returns the vkResetDescriptorPool function pointer.
func (c *Commands) ResetDescriptorPool() uintptr { return c.resetDescriptorPool }

// ResetEvent returns the vkResetEvent function pointer.
func (c *Commands) ResetEvent() uintptr { return c.resetEvent }

// ResetFences returns the vkResetFences function pointer.
func (c *Commands) ResetFences() uintptr { return c.resetFences }

// ResetQueryPool returns the vkResetQueryPool function pointer.
func (c *Commands) ResetQueryPool() uintptr { return c.resetQueryPool }

// SetEvent returns the vkSetEvent function pointer.
func (c *Commands) SetEvent() uintptr { return c.setEvent }

// SignalSemaphore returns the vkSignalSemaphore function pointer.
func (c *Commands) SignalSemaphore() uintptr { return c.signalSemaphore }

// UpdateDescriptorSets returns the vkUpdateDescriptorSets function pointer.
func (c *Commands) UpdateDescriptorSets() uintptr { return c.updateDescriptorSets }

// WaitForFences returns the vkWaitForFences function pointer.
func (c *Commands) WaitForFences() uintptr { return c.waitForFences }

