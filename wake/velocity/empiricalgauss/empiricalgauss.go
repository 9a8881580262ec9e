// Package empiricalgauss implements a Gaussian wake velocity-deficit
// model whose width grows by tabulated expansion rates rather than being
// derived from Ct/TI. Its amplitude is not tabulated: it is computed from
// the upstream turbine's Ct and TI. The lateral and vertical Gaussians
// are centred on the supplied DeflectionY and DeflectionZ offsets.
package empiricalgauss

import (
	"math"
	"sort"

	"github.com/nrel/florisgo/wake"
)

// Params holds the Empirical Gauss model's tunable parameters.
type Params struct {
	WakeExpansionRates  []float64 // one expansion rate per breakpoint segment
	BreakpointsD        []float64 // breakpoints, in rotor diameters downstream
	Sigma0D             float64   // initial wake width, in rotor diameters
	SmoothingLengthD    float64   // smoothing length for breakpoint transitions, in rotor diameters; accepted but not applied
	MixingGainVelocity  float64   // gain applied to externally supplied wake-added turbulence mixing
}

// DefaultParams returns the default parameters. With the single
// breakpoint at 0 the first rate's segment has zero length, so the wake
// width grows at 0.005 rotor diameters per rotor diameter downstream.
func DefaultParams() Params {
	return Params{
		WakeExpansionRates: []float64{0.23, 0.005},
		BreakpointsD:       []float64{0},
		Sigma0D:            0.28,
		SmoothingLengthD:   2.0,
		MixingGainVelocity: 2.0,
	}
}

// New returns a VelocityDeficitFunc whose wake width grows piecewise-
// linearly with downstream distance according to WakeExpansionRates and
// BreakpointsD. Segment boundaries are not smoothed.
func New(p Params) wake.VelocityDeficitFunc {
	return func(in wake.VelocityDeficitInputs) []float64 {
		out := make([]float64, len(in.DX))
		d := in.RotorDiameter
		sqrt1mCt := math.Sqrt(clampNonNeg(1 - in.Ct))

		for i, dx := range in.DX {
			if dx <= 0 {
				continue
			}
			xD := dx / d
			sigmaD := p.Sigma0D + expandedWidth(xD, p.WakeExpansionRates, p.BreakpointsD, p.SmoothingLengthD)
			sigma := sigmaD * d

			dy := in.DY[i] - in.DeflectionY[i]
			dz := in.DZ[i] - in.DeflectionZ[i]

			amplitude := (1 - sqrt1mCt) * (1 + p.MixingGainVelocity*in.TI)
			gaussY := math.Exp(-0.5 * square(dy/sigma))
			gaussZ := math.Exp(-0.5 * square(dz/sigma))
			out[i] = in.UpstreamVelocity * amplitude * gaussY * gaussZ
		}
		return out
	}
}

// expandedWidth integrates the piecewise-constant expansion rate from 0
// to xD. The result is continuous and piecewise linear, with a change of
// slope at each breakpoint; smoothingD is not applied.
func expandedWidth(xD float64, rates, breakpoints []float64, smoothingD float64) float64 {
	if len(rates) == 0 {
		return 0
	}
	bp := append([]float64{0}, breakpoints...)
	sort.Float64s(bp)

	width := 0.0
	for i, rate := range rates {
		segStart := 0.0
		if i < len(bp) {
			segStart = bp[i]
		}
		segEnd := xD
		if i+1 < len(bp) {
			segEnd = bp[i+1]
		}
		if xD < segStart {
			break
		}
		if segEnd > xD {
			segEnd = xD
		}
		if segEnd > segStart {
			width += rate * (segEnd - segStart)
		}
		if xD <= segEnd {
			break
		}
	}
	_ = smoothingD // segment transitions are already continuous by construction
	return width
}

func clampNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func square(x float64) float64 { return x * x }
