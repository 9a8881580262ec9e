package floris

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// rotorAverage computes the power-preserving (cube-root-of-mean-cube)
// average of the velocities sampled across a turbine's G x G rotor grid.
func rotorAverage(u []float64) float64 {
	if len(u) == 0 {
		return 0
	}
	cubes := make([]float64, len(u))
	for i, v := range u {
		cubes[i] = v * v * v
	}
	mean := floats.Sum(cubes) / float64(len(cubes))
	return math.Cbrt(mean)
}

// turbineCt returns the thrust coefficient at the given rotor-averaged
// inflow, corrected for yaw and tilt, clamped into (0, 1).
func turbineCt(v, yawRad, tiltRad float64, spec *TurbineSpec) float64 {
	ct := spec.ctAt(v) * square(math.Cos(yawRad)) * square(math.Cos(tiltRad))
	return clamp(ct, ctFloor, ctCeiling)
}

const (
	ctFloor   = 1e-6
	ctCeiling = 1 - 1e-6
)

// axialInduction derives the axial induction factor a from Ct. Ct is
// clamped below 1 before taking the square root to satisfy the
// numerical guard.
func axialInduction(v, yawRad, tiltRad float64, spec *TurbineSpec) float64 {
	ct := turbineCt(v, yawRad, tiltRad, spec)
	cosYaw, cosTilt := math.Cos(yawRad), math.Cos(tiltRad)
	denom := cosYaw * cosTilt
	if math.Abs(denom) < epsilon {
		denom = math.Copysign(epsilon, denom)
	}
	radicand := 1 - ct*cosYaw*cosTilt
	if radicand < 0 {
		radicand = 0
	}
	return 0.5 * (1 - math.Sqrt(radicand)) / denom
}

// turbinePower returns the electrical power output at inflow v, correcting
// for yaw, tilt and air-density. Below the table's lowest tabulated wind
// speed (cut-in) power is zero.
func turbinePower(rho, v, yawRad, tiltRad float64, spec *TurbineSpec) float64 {
	if v <= spec.WindSpeeds[0] || v <= 0 {
		return 0
	}
	cp := spec.cpAt(v)
	area := math.Pi / 4 * spec.RotorDiameter * spec.RotorDiameter
	refDensity := spec.RefDensity
	if refDensity <= 0 {
		refDensity = rho
	}
	p := 0.5 * rho * area * cp * v * v * v
	p *= math.Pow(math.Cos(yawRad), spec.PP)
	p *= math.Pow(math.Cos(tiltRad), spec.PT)
	p *= rho / refDensity
	return p
}

func square(x float64) float64 { return x * x }

// epsilon is the numerical floor used wherever a division by the local
// freestream velocity or by cos(yaw)*cos(tilt) could otherwise divide by
// zero.
const epsilon = 1e-6
