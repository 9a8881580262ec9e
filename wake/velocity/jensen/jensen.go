// Package jensen implements the classic top-hat wake velocity-deficit
// model.
package jensen

import (
	"math"

	"github.com/nrel/florisgo/wake"
)

// Params holds the Jensen model's single tunable parameter.
type Params struct {
	// We is the wake expansion rate, which doubles as the tangent of the
	// top-hat cone's half-angle.
	We float64
}

// DefaultParams returns FLORIS's documented default.
func DefaultParams() Params { return Params{We: 0.05} }

// New returns a VelocityDeficitFunc implementing the Jensen top-hat model:
// deficit = UpstreamVelocity * 2a * (D / (D + 2*we*Δx))^2 (m/s) inside a
// cone of half-angle we,
// zero outside it and zero upstream (Δx <= 0).
func New(p Params) wake.VelocityDeficitFunc {
	we := p.We
	return func(in wake.VelocityDeficitInputs) []float64 {
		out := make([]float64, len(in.DX))
		r := 0.5 * in.RotorDiameter
		for i, dx := range in.DX {
			if dx <= 0 {
				continue
			}
			wakeRadius := r + we*dx
			dy := in.DY[i] - in.DeflectionY[i]
			dz := in.DZ[i] - in.DeflectionZ[i]
			radial := math.Hypot(dy, dz)
			if radial > wakeRadius {
				continue
			}
			frac := 2 * in.AxialInduction * square(in.RotorDiameter/(in.RotorDiameter+2*we*dx))
			out[i] = frac * in.UpstreamVelocity
		}
		return out
	}
}

func square(x float64) float64 { return x * x }
