package rhi

import "context"

// GraphicsAPI selects the backend a Device implements (§6). Only
// GraphicsAPIVulkan is implemented; other values round-trip through
// DeviceCreationDescription for forward compatibility but CreateDevice
// returns ErrFeatureNotAvailable for them.
type GraphicsAPI int

const (
	GraphicsAPIVulkan GraphicsAPI = iota
	GraphicsAPID3D12
	GraphicsAPIMetal
)

// VulkanConfig is the GraphicsAPIVulkan variant of
// DeviceCreationDescription.SpecificConfig.
type VulkanConfig struct {
	ApplicationName    string
	EnableValidation   bool
	// PreferredDeviceIndex selects a physical device by enumeration order;
	// -1 lets the backend choose.
	PreferredDeviceIndex int
}

// DeviceCreationDescription configures Device creation (§6). There is no
// persisted configuration file or environment-derived state (§A.3):
// every field here is supplied by the caller at CreateDevice time.
type DeviceCreationDescription struct {
	API GraphicsAPI

	// SpecificConfig must be the variant matching API (e.g. VulkanConfig
	// for GraphicsAPIVulkan) or nil to accept backend defaults. A mismatch
	// returns ErrApiMismatch.
	SpecificConfig any

	RequiredFeatures Features
}

// Device is the entry point into a single GPU: it creates every other RHI
// resource type and owns the queues commands are submitted through.
type Device interface {
	API() GraphicsAPI
	Limits() Limits
	Features() Features

	CreateBuffer(desc BufferDescription) (Buffer, error)
	CreateImage(desc ImageDescription) (Image, error)
	CreateSampler(desc SamplerDescription) (SamplerState, error)
	CreateAccelerationStructure(desc AccelStructDescription) (AccelerationStructure, error)
	CreateSwapchain(desc SwapchainDescription) (Swapchain, error)

	CreateFence(signalled bool) (Fence, error)
	CreateSemaphore() (Semaphore, error)

	// NewCommandRecorder returns a recorder bound to the calling
	// goroutine's per-thread command pool slot (§5); recorders must not be
	// shared across goroutines.
	NewCommandRecorder() (CommandRecorder, error)

	// Submit enqueues recorded command buffers for execution, waiting on
	// waitSemaphores before starting and signalling signalSemaphores and
	// fence (if non-nil) on completion.
	Submit(ctx context.Context, cmds []CommandRecorder, waitSemaphores, signalSemaphores []SemaphoreID, fence Fence) error

	// WaitIdle blocks until all submitted work has completed. Render graph
	// teardown does not call this implicitly (SPEC_FULL.md §C.5); callers
	// that need a synchronization point must call it explicitly.
	WaitIdle(ctx context.Context) error

	Destroy()
}

// CreateDevice constructs a Device for desc.API, validating
// desc.SpecificConfig against desc.API before delegating to a backend
// constructor registered via RegisterBackend.
func CreateDevice(desc DeviceCreationDescription) (Device, error) {
	if desc.SpecificConfig != nil {
		switch desc.SpecificConfig.(type) {
		case VulkanConfig, *VulkanConfig:
			if desc.API != GraphicsAPIVulkan {
				return nil, ErrApiMismatch
			}
		default:
			return nil, ErrApiMismatch
		}
	}
	ctor, ok := backends[desc.API]
	if !ok {
		return nil, ErrFeatureNotAvailable
	}
	return ctor(desc)
}

// BackendConstructor builds a Device for a single GraphicsAPI. Backends
// register themselves via RegisterBackend from an init function, so the
// rhi package itself never imports a concrete backend (keeping rhi/vulkan
// a one-way dependency on rhi, not the reverse).
type BackendConstructor func(DeviceCreationDescription) (Device, error)

var backends = map[GraphicsAPI]BackendConstructor{}

// RegisterBackend registers ctor as the constructor for api. Called from
// backend package init functions (e.g. rhi/vulkan).
func RegisterBackend(api GraphicsAPI, ctor BackendConstructor) {
	backends[api] = ctor
}
