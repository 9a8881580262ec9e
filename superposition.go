package floris

import (
	"math"
	"runtime"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/nrel/florisgo/wake"
)

// turbineState is a sorted-order turbine's resolved aerodynamic state for
// one (d,s) pair.
type turbineState struct {
	velocity float64
	ct       float64
	a        float64
	ti       float64
	yawRad   float64
	tiltRad  float64
}

// solveDirSpeed runs the sequential single-pass wake superposition
// algorithm for one (wind direction, wind speed) pair, mutating
// FlowField.U and FlowField.TI in place and returning each turbine's
// resolved state in sorted (upstream-to-downstream) order.
func (s *Solver) solveDirSpeed(di, si int) []turbineState {
	grid := s.grid
	ff := s.flowField
	farm := s.farm
	wm := s.wakeModels
	t := grid.T

	states := make([]turbineState, t)
	order := grid.SortedIndices[di]

	for k := 0; k < t; k++ {
		origIdx := order[k]
		spec := farm.Specs[origIdx]

		u := rotorAverage(ff.U.turbinePoints(di, si, k))
		yawRad := degToRad(farm.Yaw.at(di, si, origIdx))
		tiltRad := degToRad(farm.Tilt.at(di, si, origIdx))
		ti := meanOf(ff.TI.turbinePoints(di, si, k))

		states[k] = turbineState{
			velocity: u,
			ct:       turbineCt(u, yawRad, tiltRad, spec),
			a:        axialInduction(u, yawRad, tiltRad, spec),
			ti:       ti,
			yawRad:   yawRad,
			tiltRad:  tiltRad,
		}

		if wm.NoWake {
			continue
		}

		xi, yi, zi := turbineCenter(grid, di, si, k)
		for j := k + 1; j < t; j++ {
			xs := grid.X.turbinePoints(di, si, j)
			ys := grid.Y.turbinePoints(di, si, j)
			zs := grid.Z.turbinePoints(di, si, j)
			dx := make([]float64, len(xs))
			dy := make([]float64, len(xs))
			dz := make([]float64, len(xs))
			for p := range xs {
				dx[p] = xs[p] - xi
				dy[p] = ys[p] - yi
				dz[p] = zs[p] - zi
			}

			defl := wm.Deflection(wake.DeflectionInputs{
				Ct: states[k].ct, YawRad: states[k].yawRad, TiltRad: states[k].tiltRad,
				TI: states[k].ti, RotorDiameter: spec.RotorDiameter, DX: dx,
			})
			deficit := wm.Velocity(wake.VelocityDeficitInputs{
				Ct: states[k].ct, AxialInduction: states[k].a, YawRad: states[k].yawRad,
				TI: states[k].ti, RotorDiameter: spec.RotorDiameter, UpstreamVelocity: states[k].velocity,
				DX: dx, DY: dy, DZ: dz, DeflectionY: defl.DY, DeflectionZ: defl.DZ,
			})
			tiAdded := wm.Turbulence(wake.TurbulenceInputs{
				AxialInduction: states[k].a, TI: states[k].ti, RotorDiameter: spec.RotorDiameter, DX: dx,
			})

			s.applyWakeToTurbine(di, si, j, deficit, tiAdded)
		}
	}
	return states
}

// applyWakeToTurbine combines an upstream turbine's deficit and added
// turbulence into turbine j's points, per-sample-point, applying the
// numerical guards that keep the result physically bounded.
func (s *Solver) applyWakeToTurbine(di, si, j int, deficit, tiAdded []float64) {
	ff := s.flowField
	uPts := ff.U.turbinePoints(di, si, j)
	uInitPts := ff.Uinit.turbinePoints(di, si, j)
	tiPts := ff.TI.turbinePoints(di, si, j)

	existing := make([]float64, len(uPts))
	fresh := make([]float64, len(uPts))
	for p := range uPts {
		uinit := math.Max(uInitPts[p], epsilon)
		existing[p] = 1 - uPts[p]/uinit
		fresh[p] = deficit[p] / uinit
	}
	combined := s.wakeModels.Combination(existing, fresh)

	for p := range uPts {
		uinit := uInitPts[p]
		c := combined[p]
		if c < 0 {
			s.logClamp("combination", "combined deficit fraction below 0, clamped")
			c = 0
		}
		uPts[p] = uinit * (1 - c)

		rss := math.Sqrt(math.Max(tiPts[p]*tiPts[p]+tiAdded[p]*tiAdded[p], 0))
		if rss > tiPts[p] {
			tiPts[p] = rss
		}
	}
}

// turbineCenter returns the streamwise/lateral/vertical coordinates of
// turbine k's hub in the wind-aligned frame for (d,s): the mean of its
// GxG sample points, which by the symmetric construction in NewTurbineGrid
// equals the rotated turbine position and hub height.
func turbineCenter(grid *Grid, di, si, k int) (x, y, z float64) {
	xs := grid.X.turbinePoints(di, si, k)
	ys := grid.Y.turbinePoints(di, si, k)
	zs := grid.Z.turbinePoints(di, si, k)
	return xs[0], meanOf(ys), meanOf(zs)
}

func meanOf(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Sum(x) / float64(len(x))
}

// Solve runs the superposition engine across every (wind direction, wind
// speed) pair. The outer (D,S) dimensions are data-parallel; the T loop
// inside each is sequential. RSS combination is commutative, so the
// result is bit-deterministic regardless of how the (d,s) pairs are
// scheduled across goroutines.
func (s *Solver) Solve() (*Solver, error) {
	if err := s.flowField.requireState(StateInitialized); err != nil {
		return nil, err
	}
	s.flowField.state = StateSolving

	grid := s.grid
	sortedStates := make([][]turbineState, grid.D*grid.S)

	nprocs := runtime.GOMAXPROCS(0)
	sem := make(chan struct{}, nprocs)
	var wg sync.WaitGroup

	start := time.Now()
	for di := 0; di < grid.D; di++ {
		for si := 0; si < grid.S; si++ {
			di, si := di, si
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				sortedStates[di*grid.S+si] = s.solveDirSpeed(di, si)
				s.logChunk(di, si, grid.T, start)
			}()
		}
	}
	wg.Wait()

	s.assembleResults(sortedStates)
	s.flowField.state = StateUsed
	return s, nil
}
