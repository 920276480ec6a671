package rhi

// Filter selects the interpolation used for minification/magnification
// and mip selection (§3.1).
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// AddressMode selects how texture coordinates outside [0,1] are resolved.
type AddressMode int

const (
	AddressRepeat AddressMode = iota
	AddressMirroredRepeat
	AddressClampToEdge
	AddressClampToBorder
)

// CompareOp is the comparison function used for depth-compare samplers
// and depth-stencil tests (§4.3).
type CompareOp int

const (
	CompareNever CompareOp = iota
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
	CompareAlways
)

// BorderColor selects the fixed color returned by AddressClampToBorder.
type BorderColor int

const (
	BorderTransparentBlack BorderColor = iota
	BorderOpaqueBlack
	BorderOpaqueWhite
)

// SamplerDescription configures SamplerState creation (§3.1).
type SamplerDescription struct {
	Name string

	MinFilter  Filter
	MagFilter  Filter
	MipFilter  Filter
	AddressU   AddressMode
	AddressV   AddressMode
	AddressW   AddressMode
	Border     BorderColor

	// MaxAnisotropy disables anisotropic filtering when 0.
	MaxAnisotropy float32

	// CompareEnable turns this into a depth-compare (shadow) sampler; Compare
	// is ignored otherwise.
	CompareEnable bool
	Compare       CompareOp

	MinLOD float32
	MaxLOD float32
}

// SamplerState is an opaque, immutable sampling configuration bound to
// shader stages alongside a ResourceView.
type SamplerState interface {
	ID() SamplerID
	Description() SamplerDescription
	Destroy()
}
