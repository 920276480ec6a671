package rhi

// PixelFmt enumerates the image formats the RHI recognizes (§3.1).
type PixelFmt int

const (
	R32F PixelFmt = iota
	R16G16F
	R32G32F
	R32G32B32F
	R8G8B8A8_SRGB
	R8G8B8A8_UNORM
	R16G16B16A16F
	R32G32B32A32F
	B8G8R8A8_SRGB
	B8G8R8A8_UNORM
	D32F
)

func (f PixelFmt) String() string {
	switch f {
	case R32F:
		return "R32F"
	case R16G16F:
		return "R16G16F"
	case R32G32F:
		return "R32G32F"
	case R32G32B32F:
		return "R32G32B32F"
	case R8G8B8A8_SRGB:
		return "R8G8B8A8_SRGB"
	case R8G8B8A8_UNORM:
		return "R8G8B8A8_UNORM"
	case R16G16B16A16F:
		return "R16G16B16A16F"
	case R32G32B32A32F:
		return "R32G32B32A32F"
	case B8G8R8A8_SRGB:
		return "B8G8R8A8_SRGB"
	case B8G8R8A8_UNORM:
		return "B8G8R8A8_UNORM"
	case D32F:
		return "D32F"
	default:
		return "PixelFmt(invalid)"
	}
}

// IsDepthFormat reports whether f is a depth (or depth-stencil) format.
// Only D32F is defined in this RHI (§3.1 carries no combined depth/stencil
// format), so this is currently a single-value check, kept as a function
// rather than an inline comparison so framebuffer/compiler code reads as
// intent rather than magic equality.
func (f PixelFmt) IsDepthFormat() bool {
	return f == D32F
}

// IsColorFormat reports whether f is usable as a color attachment.
func (f PixelFmt) IsColorFormat() bool {
	return !f.IsDepthFormat()
}
