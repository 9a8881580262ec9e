// Package gauss implements the self-similar Gaussian wake velocity-deficit
// model with a near-wake/far-wake transition, after Bastankhah &
// Porté-Agel (2016).
package gauss

import (
	"math"

	"github.com/nrel/florisgo/wake"
)

// Params holds the Gauss model's tunable parameters.
type Params struct {
	Alpha, Beta float64 // near-wake length parameters
	Ka, Kb      float64 // wake-width growth: k = ka*TI + kb
}

// DefaultParams returns FLORIS's documented defaults.
func DefaultParams() Params { return Params{Alpha: 0.58, Beta: 0.077, Ka: 0.38, Kb: 0.004} }

const sqrt8 = 2.8284271247461903

// NearWakeLength returns x0(Ct, TI, yaw, alpha, beta): the streamwise
// distance to the end of the wake's potential core.
func NearWakeLength(ct, ti, yawRad, alpha, beta, rotorDiameter float64) float64 {
	sqrt1mCt := math.Sqrt(clampNonNeg(1 - ct))
	denom := math.Sqrt2 * (alpha*ti + beta*(1-sqrt1mCt))
	if denom < 1e-9 {
		denom = 1e-9
	}
	return rotorDiameter * math.Cos(yawRad) * (1 + sqrt1mCt) / denom
}

// New returns a VelocityDeficitFunc implementing the Gaussian far-wake
// profile, with a constant-deficit potential core for x < x0.
func New(p Params) wake.VelocityDeficitFunc {
	return func(in wake.VelocityDeficitInputs) []float64 {
		out := make([]float64, len(in.DX))
		d := in.RotorDiameter
		x0 := NearWakeLength(in.Ct, in.TI, in.YawRad, p.Alpha, p.Beta, d)
		k := p.Ka*in.TI + p.Kb
		sqrt1mCt := math.Sqrt(clampNonNeg(1 - in.Ct))

		for i, dx := range in.DX {
			if dx <= 0 {
				continue
			}
			dy := in.DY[i] - in.DeflectionY[i]
			dz := in.DZ[i] - in.DeflectionZ[i]

			if dx < x0 {
				// Potential core: uniform deficit inside the rotor radius
				// D/2 of the wake centre. coreRadius narrows linearly to 0
				// at x0, and with the 0.5*d*dx/x0 term the bound is D/2
				// at every dx < x0.
				coreRadius := 0.5 * d * (1 - dx/x0)
				if math.Hypot(dy, dz) > coreRadius+0.5*d*dx/x0 {
					continue
				}
				out[i] = in.UpstreamVelocity * (1 - sqrt1mCt)
				continue
			}

			sigmaY := d * (k*(dx-x0)/d + math.Cos(in.YawRad)/sqrt8)
			sigmaZ := d * (k*(dx-x0)/d + 1/sqrt8)
			if sigmaY <= 0 || sigmaZ <= 0 {
				continue
			}
			radicand := 1 - in.Ct*math.Cos(in.YawRad)/(8*sigmaY*sigmaZ/(d*d))
			c := 1 - math.Sqrt(clampNonNeg(radicand))
			gaussY := math.Exp(-0.5 * square(dy/sigmaY))
			gaussZ := math.Exp(-0.5 * square(dz/sigmaZ))
			out[i] = in.UpstreamVelocity * c * gaussY * gaussZ
		}
		return out
	}
}

func clampNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

func square(x float64) float64 { return x * x }
