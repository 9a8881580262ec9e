package floris

import (
	"github.com/ctessum/geom"

	"github.com/nrel/florisgo/wake"
)

// PlaneSpec describes a horizontal cut plane to sample through the flow
// field. The grid/rotation machinery below reuses NewTurbineGrid's
// wind-aligned frame rather than a separate sampling algorithm.
type PlaneSpec struct {
	// Coordinate is the fixed height (Z) at which the plane is sampled, in
	// metres.
	Coordinate float64
	// XBounds, YBounds are the [min, max] extent of the sampled plane in
	// the wind-aligned streamwise (X) and lateral (Y) directions.
	XBounds, YBounds [2]float64
	// Resolution is the number of sample points along each axis.
	Resolution int
}

// DefaultPlaneSpec returns a horizontal plane at a typical hub height
// spanning a generous margin downstream of the origin, suitable when a
// caller has no specific plane in mind.
func DefaultPlaneSpec() PlaneSpec {
	return PlaneSpec{
		Coordinate: 90,
		XBounds:    [2]float64{-500, 2500},
		YBounds:    [2]float64{-500, 500},
		Resolution: 50,
	}
}

// Plane holds one (direction, speed) pair's sampled velocity field over a
// PlaneSpec's grid, in the wind-aligned frame for that direction (the same
// frame Grid uses: +X downstream, +Y lateral).
type Plane struct {
	Spec          PlaneSpec
	WindDirection float64
	WindSpeed     float64
	X, Y          []float64 // length Resolution*Resolution, row-major
	Velocity      []float64 // streamwise speed at each (x,y)
}

// SamplePlane solves s (if it has not already been solved) and returns one
// Plane per (wind direction, wind speed) combination in s's configuration.
// Each plane point's velocity is the shear-profile background inflow
// reduced by every upstream turbine's resolved velocity-deficit
// contribution, evaluated at a single point rather than a rotor-averaged
// disc.
func SamplePlane(s *Solver, spec PlaneSpec) ([]*Plane, error) {
	if s.flowField.state == StateInitialized {
		if _, err := s.Solve(); err != nil {
			return nil, err
		}
	}
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	if spec.Resolution < 1 {
		return nil, &ConfigError{Field: "sample_plane.resolution", Reason: "must be >= 1"}
	}

	planes := make([]*Plane, 0, s.grid.D*s.grid.S)
	for di, wd := range s.config.FlowField.WindDirections {
		theta := deviationDeg(wd)
		centers := s.farm.rotatedLayout(theta)
		for si, ws := range s.config.FlowField.WindSpeeds {
			planes = append(planes, s.samplePlaneAt(di, si, wd, ws, centers, spec))
		}
	}
	return planes, nil
}

func (s *Solver) samplePlaneAt(di, si int, wd, ws float64, centers []geom.Point, spec PlaneSpec) *Plane {
	n := spec.Resolution
	p := &Plane{
		Spec: spec, WindDirection: wd, WindSpeed: ws,
		X: make([]float64, n*n), Y: make([]float64, n*n), Velocity: make([]float64, n*n),
	}

	z := spec.Coordinate
	cfg := s.flowField.cfg
	u0 := shearProfile(ws, z, cfg.ReferenceWindHeight, cfg.WindShear)

	for i := 0; i < n; i++ {
		x := lerp(spec.XBounds[0], spec.XBounds[1], i, n)
		for j := 0; j < n; j++ {
			y := lerp(spec.YBounds[0], spec.YBounds[1], j, n)
			idx := i*n + j
			p.X[idx] = x
			p.Y[idx] = y
			p.Velocity[idx] = s.wakedVelocityAt(di, si, x, y, z, u0, centers)
		}
	}
	return p
}

// wakedVelocityAt evaluates the combined deficit of every upstream turbine
// at a single point, reusing each turbine's already-resolved Ct/velocity/TI
// state from Solve() rather than re-running the sequential wake loop: a
// sample plane is a read-only diagnostic over a completed solve, not a
// second solve pass.
func (s *Solver) wakedVelocityAt(di, si int, x, y, z, u0 float64, centers []geom.Point) float64 {
	var existing float64
	grid := s.grid
	for origIdx := 0; origIdx < grid.T; origIdx++ {
		spec := s.farm.Specs[origIdx]
		center := centers[origIdx]

		dx := x - center.X
		if dx <= 0 {
			continue
		}
		dy := y - center.Y
		dz := z - spec.HubHeight

		velocity := s.results.velocity.at(di, si, origIdx)
		ct := s.results.ct.at(di, si, origIdx)
		a := s.results.a.at(di, si, origIdx)
		ti := s.results.ti.at(di, si, origIdx)
		yawRad := degToRad(s.farm.Yaw.at(di, si, origIdx))
		tiltRad := degToRad(s.farm.Tilt.at(di, si, origIdx))

		defl := s.wakeModels.Deflection(wake.DeflectionInputs{
			Ct: ct, YawRad: yawRad, TiltRad: tiltRad, TI: ti,
			RotorDiameter: spec.RotorDiameter, DX: []float64{dx},
		})
		deficit := s.wakeModels.Velocity(wake.VelocityDeficitInputs{
			Ct: ct, AxialInduction: a, YawRad: yawRad, TI: ti,
			RotorDiameter: spec.RotorDiameter, UpstreamVelocity: velocity,
			DX: []float64{dx}, DY: []float64{dy}, DZ: []float64{dz},
			DeflectionY: defl.DY, DeflectionZ: defl.DZ,
		})
		if len(deficit) == 0 {
			continue
		}
		fresh := deficit[0] / maxf(u0, epsilon)
		existing = s.wakeModels.Combination([]float64{existing}, []float64{fresh})[0]
	}
	if existing < 0 {
		existing = 0
	}
	return u0 * (1 - existing)
}

func lerp(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
