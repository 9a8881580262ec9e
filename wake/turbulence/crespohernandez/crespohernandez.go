// Package crespohernandez implements the Crespo-Hernández added-turbulence
// model.
package crespohernandez

import (
	"math"

	"github.com/nrel/florisgo/wake"
)

// Params holds the Crespo-Hernández model's tunable parameters.
type Params struct {
	Initial    float64
	Constant   float64
	Ai         float64
	Downstream float64
}

// DefaultParams returns FLORIS's documented defaults.
func DefaultParams() Params {
	return Params{Initial: 0.1, Constant: 0.5, Ai: 0.8, Downstream: -0.32}
}

// New returns a TurbulenceFunc implementing
// TI_added = constant * a^ai * TI^initial * (Δx/D)^downstream for Δx > 0,
// else 0.
func New(p Params) wake.TurbulenceFunc {
	return func(in wake.TurbulenceInputs) []float64 {
		out := make([]float64, len(in.DX))
		for i, dx := range in.DX {
			if dx <= 0 {
				continue
			}
			out[i] = p.Constant * math.Pow(in.AxialInduction, p.Ai) *
				math.Pow(in.TI, p.Initial) * math.Pow(dx/in.RotorDiameter, p.Downstream)
		}
		return out
	}
}
