package rhi

import "context"

// PresentMode selects the swapchain's presentation timing (§3.1).
type PresentMode int

const (
	PresentModeFIFO PresentMode = iota
	PresentModeMailbox
	PresentModeImmediate
)

// SwapchainDescription configures Swapchain creation (§6).
type SwapchainDescription struct {
	Name        string
	Width       uint32
	Height      uint32
	Format      PixelFmt
	ImageCount  uint32
	PresentMode PresentMode
}

// AcquiredImage identifies the swapchain image acquired for the current
// frame along with the semaphore the presentation engine signals once it
// is safe to render into.
type AcquiredImage struct {
	Image         ImageID
	ImageIndex    uint32
	AcquireSignal SemaphoreID
}

// Swapchain presents rendered images to a platform surface. Resizing is
// modeled as Destroy + re-create rather than an in-place resize, matching
// the RHI's "no hidden resource mutation" posture (§5).
type Swapchain interface {
	Description() SwapchainDescription

	// AcquireNext blocks until an image is available for rendering or ctx
	// is cancelled. Returns ErrDeviceLost if the surface is no longer
	// presentable (e.g. window closed, out-of-date).
	AcquireNext(ctx context.Context) (AcquiredImage, error)

	// Present submits ImageIndex for display after waitSemaphores are
	// signalled.
	Present(ctx context.Context, imageIndex uint32, waitSemaphores []SemaphoreID) error

	Destroy()
}
