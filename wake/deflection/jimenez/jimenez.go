// Package jimenez implements the Jiménez analytic wake-deflection model.
package jimenez

import (
	"math"

	"github.com/nrel/florisgo/wake"
)

// Params holds the Jimenez model's tunable parameters.
type Params struct {
	Ad, Bd float64 // lateral offset terms: Ad constant, Bd per metre of Δx
	Kd     float64 // wake spreading rate
}

// DefaultParams returns FLORIS's documented defaults.
func DefaultParams() Params { return Params{Ad: 0, Bd: 0, Kd: 0.05} }

// New returns a DeflectionFunc implementing the Jimenez model: the
// initial deflection angle is proportional to Ct*sin(yaw)*cos(yaw)^2,
// and is integrated over Δx assuming the wake's angular deflection decays
// as 1/(1+kd*Δx/R) while the wake itself expands at rate kd, producing a
// logarithmic lateral offset that asymptotically flattens downstream.
// Tilt is not used: the vertical offset DZ is always zero.
func New(p Params) wake.DeflectionFunc {
	return func(in wake.DeflectionInputs) wake.DeflectionOutputs {
		r := 0.5 * in.RotorDiameter
		thetaYaw := 0.5 * in.Ct * math.Sin(in.YawRad) * square(math.Cos(in.YawRad))

		dy := make([]float64, len(in.DX))
		dz := make([]float64, len(in.DX))
		for i, dx := range in.DX {
			if dx <= 0 {
				continue
			}
			dy[i] = p.Ad + p.Bd*dx + integratedOffset(thetaYaw, p.Kd, r, dx)
		}
		return wake.DeflectionOutputs{DY: dy, DZ: dz}
	}
}

// integratedOffset computes theta*R/kd * ln(1 + kd*Δx/R), the closed form
// of ∫ theta/(1+kd*s/R) ds from 0 to Δx, falling back to a linear
// integral (theta*Δx) when kd is ~0.
func integratedOffset(theta, kd, r, dx float64) float64 {
	if math.Abs(kd) < 1e-9 || r <= 0 {
		return theta * dx
	}
	return theta * r / kd * math.Log(1+kd*dx/r)
}

func square(x float64) float64 { return x * x }
