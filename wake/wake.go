// Package wake defines the shared function-variant contracts for the
// pluggable wake submodel families: velocity deficit, deflection,
// turbulence-added, and combination.
//
// Each family is a named variant resolved once at load time rather than
// dispatched by string on every sample point. Concrete variants live in
// the velocity/, deflection/, turbulence/ and combination/ subpackages,
// each exposing a constructor that closes over its own parameters and
// returns one of the function types below.
package wake

// VelocityDeficitInputs describes one upstream turbine's contribution to
// the inflow at a set of downstream sample points, in the wind-aligned
// frame.
type VelocityDeficitInputs struct {
	Ct               float64 // upstream turbine's thrust coefficient
	AxialInduction   float64
	YawRad           float64
	TI               float64 // turbulence intensity at the upstream turbine
	RotorDiameter    float64
	UpstreamVelocity float64 // rotor-averaged inflow at the upstream turbine

	// DX, DY, DZ are the downstream sample points' offsets from the
	// upstream turbine, in the wind-aligned frame (DX > 0 downstream).
	DX, DY, DZ []float64

	// DeflectionY, DeflectionZ are the wake-centreline offsets at each
	// sample point, from a DeflectionFunc.
	DeflectionY, DeflectionZ []float64
}

// VelocityDeficitFunc returns a non-negative velocity-deficit value
// (m/s) for each input sample point.
type VelocityDeficitFunc func(in VelocityDeficitInputs) []float64

// DeflectionInputs describes the upstream turbine state needed to compute
// wake-centreline deflection.
type DeflectionInputs struct {
	Ct, YawRad, TiltRad, TI float64
	RotorDiameter           float64
	DX                      []float64
}

// DeflectionOutputs holds the lateral (Y) and vertical (Z) wake-centre
// offsets at each of DeflectionInputs.DX.
type DeflectionOutputs struct {
	DY, DZ []float64
}

// DeflectionFunc computes wake-centreline deflection.
type DeflectionFunc func(in DeflectionInputs) DeflectionOutputs

// TurbulenceInputs describes the upstream turbine state needed to compute
// turbulence addition.
type TurbulenceInputs struct {
	AxialInduction, TI float64
	RotorDiameter      float64
	DX                 []float64
}

// TurbulenceFunc returns the added turbulence intensity at each of
// TurbulenceInputs.DX; it must be >= 0 for DX > 0 and 0 for DX <= 0.
type TurbulenceFunc func(in TurbulenceInputs) []float64

// CombinationFunc combines an existing deficit fraction with a newly
// computed one.
type CombinationFunc func(existing, fresh []float64) []float64
