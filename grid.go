package floris

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
)

// Grid holds the rotated per-turbine rotor sampling points for every wind
// direction, plus the sort/unsort permutations that put turbines in
// upstream-to-downstream order for each direction.
type Grid struct {
	D, S, T, G int

	X, Y, Z *tensor5

	// SortedIndices[d][k] is the original turbine index of the k-th
	// turbine in rotated-upstream order for direction d.
	SortedIndices [][]int
	// UnsortedIndices[d] is the inverse permutation of SortedIndices[d].
	UnsortedIndices [][]int
}

// deviationDeg computes the per-direction rotation angle that aligns wind
// direction windDirection with the +x1 axis: θ_d = -((wd_d - 270) mod 360).
func deviationDeg(windDirection float64) float64 {
	m := math.Mod(windDirection-270, 360)
	if m < 0 {
		m += 360
	}
	return -m
}

// NewTurbineGrid builds a turbine-grid Grid: for each wind direction, a
// GxG square disc of sample points on every turbine's rotor plane,
// rotated so the direction's wind aligns with +x1, and sorted so
// turbine index order is upstream-to-downstream.
func NewTurbineGrid(farm *Farm, windDirections []float64, numSpeeds, g int) *Grid {
	d := len(windDirections)
	t := farm.numTurbines()
	grid := &Grid{
		D: d, S: numSpeeds, T: t, G: g,
		X:               newTensor5(d, numSpeeds, t, g),
		Y:               newTensor5(d, numSpeeds, t, g),
		Z:               newTensor5(d, numSpeeds, t, g),
		SortedIndices:   make([][]int, d),
		UnsortedIndices: make([][]int, d),
	}

	for di, wd := range windDirections {
		theta := deviationDeg(wd)
		rotated := farm.rotatedLayout(theta)

		order := argsortStable(rotated)
		grid.SortedIndices[di] = order
		grid.UnsortedIndices[di] = invertPermutation(order)

		for k, origIdx := range order {
			p := rotated[origIdx]
			spec := farm.Specs[origIdx]
			r := 0.5 * spec.RotorDiameter
			for si := 0; si < numSpeeds; si++ {
				for gi := 0; gi < g; gi++ {
					var yOff float64
					if g > 1 {
						yOff = -r + 2*r*float64(gi)/float64(g-1)
					}
					for gj := 0; gj < g; gj++ {
						var zOff float64
						if g > 1 {
							zOff = -r + 2*r*float64(gj)/float64(g-1)
						}
						grid.X.set(di, si, k, gi, gj, p.X)
						grid.Y.set(di, si, k, gi, gj, p.Y+yOff)
						grid.Z.set(di, si, k, gi, gj, spec.HubHeight+zOff)
					}
				}
			}
		}
	}
	return grid
}

// argsortStable returns the permutation of indices 0..len(points) that
// sorts points by X ascending, breaking ties by original index (a stable
// sort).
func argsortStable(points []geom.Point) []int {
	idx := make([]int, len(points))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return points[idx[a]].X < points[idx[b]].X
	})
	return idx
}

func invertPermutation(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}
