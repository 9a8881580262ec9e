// Package sosfs implements sum-of-squares-freestream-scaled deficit
// combination.
package sosfs

import (
	"math"

	"github.com/nrel/florisgo/wake"
)

// New returns a CombinationFunc implementing
// Δu_total = sqrt(Δu_existing^2 + Δu_new^2), with the radicand clamped at
// 0 from below.
func New() wake.CombinationFunc {
	return func(existing, fresh []float64) []float64 {
		out := make([]float64, len(existing))
		for i := range existing {
			radicand := existing[i]*existing[i] + fresh[i]*fresh[i]
			if radicand < 0 {
				radicand = 0
			}
			out[i] = math.Sqrt(radicand)
		}
		return out
	}
}
