// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Commands holds every Vulkan function pointer loaded by LoadGlobal,
// LoadInstance and LoadDevice (commands.go). Each field is the raw address
// returned by vkGetInstanceProcAddr/vkGetDeviceProcAddr, stored as uintptr
// so it can be passed straight to syscall.SyscallN: zero until loaded,
// non-zero once the corresponding Load* call succeeds. commands_manual.go
// converts the handful it calls through goffi back to unsafe.Pointer at
// the call site, since that API takes the callee address that way.
type Commands struct {
	// Global (pre-instance)
	createInstance                        uintptr
	enumerateInstanceVersion              uintptr
	enumerateInstanceLayerProperties      uintptr
	enumerateInstanceExtensionProperties  uintptr

	// Instance-level
	destroyInstance                              uintptr
	enumeratePhysicalDevices                     uintptr
	getPhysicalDeviceProperties                   uintptr
	getPhysicalDeviceQueueFamilyProperties        uintptr
	getPhysicalDeviceMemoryProperties              uintptr
	getPhysicalDeviceFeatures                     uintptr
	getPhysicalDeviceFormatProperties              uintptr
	getPhysicalDeviceImageFormatProperties          uintptr
	createDevice                                  uintptr
	getDeviceProcAddr                             uintptr
	enumerateDeviceLayerProperties                 uintptr
	enumerateDeviceExtensionProperties              uintptr
	getPhysicalDeviceSparseImageFormatProperties     uintptr

	// WSI (instance level)
	destroySurfaceKHR                         uintptr
	getPhysicalDeviceSurfaceSupportKHR         uintptr
	getPhysicalDeviceSurfaceCapabilitiesKHR    uintptr
	getPhysicalDeviceSurfaceFormatsKHR         uintptr
	getPhysicalDeviceSurfacePresentModesKHR    uintptr
	createWin32SurfaceKHR                      uintptr

	// Vulkan 1.1+ instance functions
	getPhysicalDeviceFeatures2   uintptr
	getPhysicalDeviceProperties2 uintptr

	// Device-level: queues, synchronization
	destroyDevice  uintptr
	getDeviceQueue uintptr
	queueSubmit    uintptr
	queueWaitIdle  uintptr
	deviceWaitIdle uintptr

	// Memory
	allocateMemory                uintptr
	freeMemory                    uintptr
	mapMemory                     uintptr
	unmapMemory                   uintptr
	flushMappedMemoryRanges       uintptr
	invalidateMappedMemoryRanges  uintptr
	getDeviceMemoryCommitment     uintptr
	getBufferMemoryRequirements   uintptr
	bindBufferMemory              uintptr
	getImageMemoryRequirements    uintptr
	bindImageMemory               uintptr
	getImageSparseMemoryRequirements uintptr
	queueBindSparse               uintptr

	// Fences, semaphores, events, query pools
	createFence         uintptr
	destroyFence        uintptr
	resetFences         uintptr
	getFenceStatus      uintptr
	waitForFences       uintptr
	createSemaphore     uintptr
	destroySemaphore    uintptr
	createEvent         uintptr
	destroyEvent        uintptr
	getEventStatus      uintptr
	setEvent            uintptr
	resetEvent          uintptr
	createQueryPool     uintptr
	destroyQueryPool    uintptr
	getQueryPoolResults uintptr
	resetQueryPool      uintptr

	// Buffers and images
	createBuffer               uintptr
	destroyBuffer              uintptr
	createBufferView           uintptr
	destroyBufferView          uintptr
	createImage                uintptr
	destroyImage               uintptr
	getImageSubresourceLayout  uintptr
	createImageView            uintptr
	destroyImageView           uintptr
	createShaderModule         uintptr
	destroyShaderModule        uintptr

	// Pipelines
	createPipelineCache     uintptr
	destroyPipelineCache    uintptr
	getPipelineCacheData    uintptr
	mergePipelineCaches     uintptr
	createGraphicsPipelines uintptr
	createComputePipelines  uintptr
	destroyPipeline         uintptr
	createPipelineLayout    uintptr
	destroyPipelineLayout   uintptr
	createSampler           uintptr
	destroySampler          uintptr

	// Descriptor sets
	createDescriptorSetLayout  uintptr
	destroyDescriptorSetLayout uintptr
	createDescriptorPool       uintptr
	destroyDescriptorPool      uintptr
	resetDescriptorPool        uintptr
	allocateDescriptorSets     uintptr
	freeDescriptorSets         uintptr
	updateDescriptorSets       uintptr

	// Framebuffers and render passes
	createFramebuffer        uintptr
	destroyFramebuffer       uintptr
	createRenderPass         uintptr
	destroyRenderPass        uintptr
	getRenderAreaGranularity uintptr

	// Command pools and buffers
	createCommandPool      uintptr
	destroyCommandPool     uintptr
	resetCommandPool       uintptr
	allocateCommandBuffers uintptr
	freeCommandBuffers     uintptr
	beginCommandBuffer     uintptr
	endCommandBuffer       uintptr
	resetCommandBuffer     uintptr

	// Command recording
	cmdBindPipeline           uintptr
	cmdSetViewport            uintptr
	cmdSetScissor             uintptr
	cmdSetLineWidth           uintptr
	cmdSetDepthBias           uintptr
	cmdSetBlendConstants      uintptr
	cmdSetDepthBounds         uintptr
	cmdSetStencilCompareMask  uintptr
	cmdSetStencilWriteMask    uintptr
	cmdSetStencilReference    uintptr
	cmdBindDescriptorSets     uintptr
	cmdBindIndexBuffer        uintptr
	cmdBindVertexBuffers      uintptr
	cmdDraw                   uintptr
	cmdDrawIndexed            uintptr
	cmdDrawIndirect           uintptr
	cmdDrawIndexedIndirect    uintptr
	cmdDispatch               uintptr
	cmdDispatchIndirect       uintptr
	cmdCopyBuffer             uintptr
	cmdCopyImage              uintptr
	cmdBlitImage              uintptr
	cmdCopyBufferToImage      uintptr
	cmdCopyImageToBuffer      uintptr
	cmdUpdateBuffer           uintptr
	cmdFillBuffer             uintptr
	cmdClearColorImage        uintptr
	cmdClearDepthStencilImage uintptr
	cmdClearAttachments       uintptr
	cmdResolveImage           uintptr
	cmdSetEvent               uintptr
	cmdResetEvent             uintptr
	cmdWaitEvents             uintptr
	cmdPipelineBarrier        uintptr
	cmdPipelineBarrier2       uintptr
	cmdBeginQuery             uintptr
	cmdEndQuery               uintptr
	cmdResetQueryPool         uintptr
	cmdWriteTimestamp         uintptr
	cmdCopyQueryPoolResults   uintptr
	cmdPushConstants          uintptr
	cmdBeginRenderPass        uintptr
	cmdNextSubpass            uintptr
	cmdEndRenderPass          uintptr
	cmdBeginRendering         uintptr
	cmdEndRendering           uintptr
	cmdExecuteCommands        uintptr

	// Vulkan 1.2+ timeline semaphores
	getSemaphoreCounterValue uintptr
	waitSemaphores           uintptr
	signalSemaphore          uintptr

	// Swapchain (WSI)
	createSwapchainKHR    uintptr
	destroySwapchainKHR   uintptr
	getSwapchainImagesKHR uintptr
	acquireNextImageKHR   uintptr
	queuePresentKHR       uintptr
}
