// Package gauss implements the wake-deflection model consistent with the
// Gaussian velocity deficit, after Bastankhah & Porté-Agel (2016).
package gauss

import (
	"math"

	"github.com/nrel/florisgo/wake"
)

// Params holds the Gauss deflection model's tunable parameters.
type Params struct {
	Ad, Bd      float64 // constant offset terms
	Alpha, Beta float64 // near-wake length parameters, shared with the Gauss velocity model
	Dm          float64 // deflection multiplier
	Ka, Kb      float64 // wake-width growth, shared with the Gauss velocity model
}

// DefaultParams returns FLORIS's documented defaults.
func DefaultParams() Params {
	return Params{Ad: 0, Alpha: 0.58, Bd: 0, Beta: 0.077, Dm: 1.0, Ka: 0.38, Kb: 0.004}
}

// New returns a DeflectionFunc consistent with the Gauss velocity-deficit
// model's near/far wake split: a linear near-wake deflection driven by the
// initial yaw misalignment angle, and a far-wake deflection given by the
// closed-form integral of the Gaussian model's curvature.
func New(p Params) wake.DeflectionFunc {
	return func(in wake.DeflectionInputs) wake.DeflectionOutputs {
		d := in.RotorDiameter
		sqrt1mCt := math.Sqrt(clampNonNeg(1 - in.Ct))
		x0 := d * math.Cos(in.YawRad) * (1 + sqrt1mCt) /
			(math.Sqrt2 * (p.Alpha*in.TI + p.Beta*(1-sqrt1mCt)))

		thetaC0 := p.Dm * 0.3 * in.YawRad / math.Cos(in.YawRad) * (1 - math.Sqrt(clampNonNeg(1-in.Ct*math.Cos(in.YawRad))))
		k := p.Ka*in.TI + p.Kb

		dy := make([]float64, len(in.DX))
		dz := make([]float64, len(in.DX))
		deflectionAtX0 := thetaC0 * x0

		for i, dx := range in.DX {
			if dx <= 0 {
				continue
			}
			if dx <= x0 {
				dy[i] = p.Ad + p.Bd*dx + thetaC0*dx
				continue
			}
			sigmaY := d * (k*(dx-x0)/d + math.Cos(in.YawRad)/sqrt8)
			sigmaZ := d * (k*(dx-x0)/d + 1/sqrt8)
			ratio := sigmaY * sigmaZ / (d * d)
			sqrtCt := math.Sqrt(clampNonNeg(in.Ct))
			num := (1.6 + sqrtCt) * (1.6*math.Sqrt(clampNonNeg(ratio)) - sqrtCt)
			den := (1.6 - sqrtCt) * (1.6*math.Sqrt(clampNonNeg(ratio)) + sqrtCt)
			var logTerm float64
			if num > 0 && den > 0 {
				logTerm = math.Log(num / den)
			}
			far := (thetaC0 / 14.7) * math.Sqrt(math.Abs(math.Cos(in.YawRad)/(k*k*in.Ct))) *
				(2.9 + 1.3*sqrt1mCt - in.Ct) * logTerm
			dy[i] = p.Ad + p.Bd*dx + deflectionAtX0 + far
		}
		return wake.DeflectionOutputs{DY: dy, DZ: dz}
	}
}

func clampNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

const sqrt8 = 2.8284271247461903
