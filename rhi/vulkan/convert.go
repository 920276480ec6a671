// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"github.com/mizu-gfx/mizu/rhi"
	"github.com/mizu-gfx/mizu/rhi/vulkan/vk"
)

// bufferUsageToVk converts an rhi.Usage bitmask to Vulkan buffer usage
// flags. Every buffer the backend creates gets TransferSrc|TransferDst
// on top of the caller's bits so rendergraph's transfer pass can stage
// into or read back from it regardless of the resource's declared use.
func bufferUsageToVk(usage rhi.Usage) vk.BufferUsageFlags {
	flags := vk.BufferUsageFlags(vk.BufferUsageTransferSrcBit | vk.BufferUsageTransferDstBit)

	if usage.Has(rhi.UsageVertex) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit)
	}
	if usage.Has(rhi.UsageIndex) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit)
	}
	if usage.Has(rhi.UsageConstant) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit)
	}
	if usage.Has(rhi.UsageUnorderedAccess) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageStorageBufferBit)
	}
	if usage.Has(rhi.UsageAccelStructStorage) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageAccelerationStructureStorageBitKhr)
	}
	if usage.Has(rhi.UsageAccelStructInput) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageAccelerationStructureBuildInputReadOnlyBitKhr |
			vk.BufferUsageShaderDeviceAddressBit)
	}
	if usage.Has(rhi.UsageShaderBindingTable) {
		flags |= vk.BufferUsageFlags(vk.BufferUsageShaderBindingTableBitKhr | vk.BufferUsageShaderDeviceAddressBit)
	}

	return flags
}

// imageAttachmentUsageToVk converts an rhi.Usage bitmask to Vulkan image
// usage flags, picking the attachment usage bit
// appropriate for format: depth/stencil images get
// DepthStencilAttachmentBit instead of ColorAttachmentBit.
func imageAttachmentUsageToVk(format rhi.PixelFmt, usage rhi.Usage) vk.ImageUsageFlags {
	flags := vk.ImageUsageFlags(vk.ImageUsageTransferSrcBit | vk.ImageUsageTransferDstBit)

	if usage.Has(rhi.UsageSampled) {
		flags |= vk.ImageUsageFlags(vk.ImageUsageSampledBit)
	}
	if usage.Has(rhi.UsageUnorderedAccess) {
		flags |= vk.ImageUsageFlags(vk.ImageUsageStorageBit)
	}
	if usage.Has(rhi.UsageAttachment) {
		if format.IsDepthFormat() {
			flags |= vk.ImageUsageFlags(vk.ImageUsageDepthStencilAttachmentBit)
		} else {
			flags |= vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit)
		}
	}

	return flags
}

// imageTypeToVk converts an rhi.ImageType to a Vulkan image type.
// ImageCubemap is a 2D image array of 6 layers at the Vulkan level; the
// cube-ness is expressed on the VkImageView, not VkImage, so it maps to
// ImageType2d here.
func imageTypeToVk(t rhi.ImageType) vk.ImageType {
	switch t {
	case rhi.Image1D:
		return vk.ImageType1d
	case rhi.Image3D:
		return vk.ImageType3d
	default: // Image2D, ImageCubemap
		return vk.ImageType2d
	}
}

// pixelFmtToVk converts an rhi.PixelFmt to its Vulkan equivalent.
func pixelFmtToVk(format rhi.PixelFmt) vk.Format {
	if f, ok := pixelFmtMap[format]; ok {
		return f
	}
	return vk.FormatUndefined
}

var pixelFmtMap = map[rhi.PixelFmt]vk.Format{
	rhi.R32F:          vk.FormatR32Sfloat,
	rhi.R16G16F:       vk.FormatR16g16Sfloat,
	rhi.R32G32F:       vk.FormatR32g32Sfloat,
	rhi.R32G32B32F:    vk.FormatR32g32b32Sfloat,
	rhi.R8G8B8A8_SRGB:  vk.FormatR8g8b8a8Srgb,
	rhi.R8G8B8A8_UNORM: vk.FormatR8g8b8a8Unorm,
	rhi.R16G16B16A16F: vk.FormatR16g16b16a16Sfloat,
	rhi.R32G32B32A32F: vk.FormatR32g32b32a32Sfloat,
	rhi.B8G8R8A8_SRGB:  vk.FormatB8g8r8a8Srgb,
	rhi.B8G8R8A8_UNORM: vk.FormatB8g8r8a8Unorm,
	rhi.D32F:          vk.FormatD32Sfloat,
}

// filterToVk converts an rhi.Filter to its Vulkan equivalent.
func filterToVk(f rhi.Filter) vk.Filter {
	if f == rhi.FilterLinear {
		return vk.FilterLinear
	}
	return vk.FilterNearest
}

// mipmapModeToVk converts an rhi.Filter used as a mip filter to the
// corresponding Vulkan sampler mipmap mode.
func mipmapModeToVk(f rhi.Filter) vk.SamplerMipmapMode {
	if f == rhi.FilterLinear {
		return vk.SamplerMipmapModeLinear
	}
	return vk.SamplerMipmapModeNearest
}

// addressModeToVk converts an rhi.AddressMode to its Vulkan equivalent.
func addressModeToVk(a rhi.AddressMode) vk.SamplerAddressMode {
	switch a {
	case rhi.AddressMirroredRepeat:
		return vk.SamplerAddressModeMirroredRepeat
	case rhi.AddressClampToEdge:
		return vk.SamplerAddressModeClampToEdge
	case rhi.AddressClampToBorder:
		return vk.SamplerAddressModeClampToBorder
	default: // AddressRepeat
		return vk.SamplerAddressModeRepeat
	}
}

// compareOpToVk converts an rhi.CompareOp to its Vulkan equivalent.
func compareOpToVk(c rhi.CompareOp) vk.CompareOp {
	switch c {
	case rhi.CompareLess:
		return vk.CompareOpLess
	case rhi.CompareEqual:
		return vk.CompareOpEqual
	case rhi.CompareLessOrEqual:
		return vk.CompareOpLessOrEqual
	case rhi.CompareGreater:
		return vk.CompareOpGreater
	case rhi.CompareNotEqual:
		return vk.CompareOpNotEqual
	case rhi.CompareGreaterOrEqual:
		return vk.CompareOpGreaterOrEqual
	case rhi.CompareAlways:
		return vk.CompareOpAlways
	default: // CompareNever
		return vk.CompareOpNever
	}
}

// borderColorToVk converts an rhi.BorderColor to its Vulkan equivalent.
// rendergraph only ever asks for the opaque float variants; the
// transparent-black default covers callers that leave Border unset.
func borderColorToVk(b rhi.BorderColor) vk.BorderColor {
	switch b {
	case rhi.BorderOpaqueBlack:
		return vk.BorderColorFloatOpaqueBlack
	case rhi.BorderOpaqueWhite:
		return vk.BorderColorFloatOpaqueWhite
	default: // BorderTransparentBlack
		return vk.BorderColorFloatTransparentBlack
	}
}

// boolToVkBool converts a Go bool to a Vulkan Bool32.
func boolToVkBool(b bool) vk.Bool32 {
	if b {
		return vk.True
	}
	return vk.False
}

// vkFormatSize returns the byte size of one texel of format, used to
// compute subresource layout/copy sizes. Only the formats in
// pixelFmtMap are ever produced by pixelFmtToVk, so this table mirrors
// it exactly.
func vkFormatSize(format rhi.PixelFmt) uint32 {
	switch format {
	case rhi.R32F, rhi.D32F:
		return 4
	case rhi.R16G16F:
		return 4
	case rhi.R32G32F:
		return 8
	case rhi.R32G32B32F:
		return 12
	case rhi.R8G8B8A8_SRGB, rhi.R8G8B8A8_UNORM, rhi.B8G8R8A8_SRGB, rhi.B8G8R8A8_UNORM:
		return 4
	case rhi.R16G16B16A16F:
		return 8
	case rhi.R32G32B32A32F:
		return 16
	default:
		return 4
	}
}
