package rhi

import "errors"

// Resource-creation errors (§7).
var (
	// ErrOutOfDeviceMemory indicates the GPU has exhausted its memory.
	ErrOutOfDeviceMemory = errors.New("rhi: out of device memory")

	// ErrNoCompatibleMemoryType indicates a memory allocator could not find
	// a memory type whose bits satisfy the intersection of its staged
	// requirements (§4.1).
	ErrNoCompatibleMemoryType = errors.New("rhi: no compatible memory type")

	// ErrFeatureNotAvailable indicates an optional GPU feature (e.g. ray
	// tracing) was requested on a device that does not support it.
	ErrFeatureNotAvailable = errors.New("rhi: feature not available")

	// ErrAllocatorAlreadyFinalized indicates AliasedAllocator.Finalize was
	// called a second time on the same allocator (§4.1).
	ErrAllocatorAlreadyFinalized = errors.New("rhi: aliased allocator already finalized")

	// ErrApiMismatch indicates DeviceCreationDescription.SpecificConfig
	// does not match the requested GraphicsAPI (§6).
	ErrApiMismatch = errors.New("rhi: specific_config variant does not match requested graphics api")
)

// Submission / device errors (§7). These propagate to callers as ordinary
// errors; DeviceLost is fatal at the application boundary but is not
// itself routed through internal/fatal, since the caller may choose to
// attempt device re-creation (§7).
var (
	// ErrQueueSubmitFailed indicates the driver rejected a submission.
	ErrQueueSubmitFailed = errors.New("rhi: queue submit failed")

	// ErrDeviceLost indicates the GPU device was lost (driver crash, TDR,
	// hardware disconnection). The device cannot be recovered.
	ErrDeviceLost = errors.New("rhi: device lost")

	// ErrTimeout indicates a Fence.Wait timed out before the GPU signalled.
	ErrTimeout = errors.New("rhi: wait timed out")
)
