package floris

import "math"

// FlowFieldConfig carries the frozen atmospheric condition shared by every
// turbine and wind-direction/speed combination.
type FlowFieldConfig struct {
	WindDirections []float64 // degrees, length D
	WindSpeeds     []float64 // m/s, length S

	WindShear float64 // power-law exponent, >= 0
	WindVeer  float64 // degrees of rotation per metre of height

	ReferenceWindHeight float64 // m
	AirDensity          float64 // kg/m^3

	// TurbulenceIntensity is either a single scalar (broadcast to every
	// (d,s)) or exactly D*S values in row-major [D,S] order.
	TurbulenceIntensity []float64
}

func (c *FlowFieldConfig) validate() error {
	var errs ConfigErrors
	if c.WindShear < 0 {
		errs = append(errs, &ConfigError{Field: "flow_field.wind_shear", Reason: "must be >= 0"})
	}
	for _, v := range c.WindSpeeds {
		if v <= 0 {
			errs = append(errs, &ConfigError{Field: "flow_field.wind_speeds", Reason: "must be > 0"})
			break
		}
	}
	n := len(c.TurbulenceIntensity)
	if n != 1 && n != len(c.WindDirections)*len(c.WindSpeeds) {
		errs = append(errs, &ConfigError{Field: "flow_field.turbulence_intensity", Reason: "must be a scalar or shaped [D,S]"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c *FlowFieldConfig) turbulenceIntensityAt(di, si, numSpeeds int) float64 {
	if len(c.TurbulenceIntensity) == 1 {
		return c.TurbulenceIntensity[0]
	}
	return c.TurbulenceIntensity[di*numSpeeds+si]
}

// FlowField holds the mutable background/wake-superposed velocity tensor
// sampled at every Grid point, plus its lifecycle state.
type FlowField struct {
	grid *Grid
	cfg  *FlowFieldConfig

	U, V, W *tensor5 // current velocity, mutated in place during solve
	Uinit   *tensor5 // undisturbed shear-profile inflow, read-only after init

	TI *tensor5 // turbulence-intensity field, monotonically non-decreasing during a solve

	state FlowFieldState
}

// NewFlowField initialises U from the shear profile, W=0, V=0 unless
// WindVeer is non-zero (then V = u0*sin(veer*z)), and the
// turbulence-intensity field from the scalar/[D,S] configuration value.
// The resulting FlowField is in StateInitialized.
func NewFlowField(grid *Grid, cfg *FlowFieldConfig) *FlowField {
	ff := &FlowField{
		grid:  grid,
		cfg:   cfg,
		U:     newTensor5(grid.D, grid.S, grid.T, grid.G),
		V:     newTensor5(grid.D, grid.S, grid.T, grid.G),
		W:     newTensor5(grid.D, grid.S, grid.T, grid.G),
		Uinit: newTensor5(grid.D, grid.S, grid.T, grid.G),
		TI:    newTensor5(grid.D, grid.S, grid.T, grid.G),
		state: StateInitialized,
	}

	veerRad := degToRad(cfg.WindVeer)
	for di := 0; di < grid.D; di++ {
		for si := 0; si < grid.S; si++ {
			vRef := cfg.WindSpeeds[si]
			ti := cfg.turbulenceIntensityAt(di, si, grid.S)
			for ti3 := 0; ti3 < grid.T; ti3++ {
				zs := grid.Z.turbinePoints(di, si, ti3)
				us := ff.U.turbinePoints(di, si, ti3)
				uis := ff.Uinit.turbinePoints(di, si, ti3)
				vs := ff.V.turbinePoints(di, si, ti3)
				tis := ff.TI.turbinePoints(di, si, ti3)
				for i, z := range zs {
					u0 := shearProfile(vRef, z, cfg.ReferenceWindHeight, cfg.WindShear)
					us[i] = u0
					uis[i] = u0
					// A uniform veer rotates the horizontal wind vector
					// per unit height; only the streamwise/lateral split
					// changes, the along-axis speed (u) is unaffected in
					// this simplified frozen representation so V stays 0
					// unless veer is non-zero.
					if veerRad != 0 {
						vs[i] = u0 * math.Sin(veerRad*z)
					}
					tis[i] = ti
				}
			}
		}
	}
	return ff
}

// shearProfile evaluates the power-law inflow profile u0(z) = vRef *
// (z/zRef)^shear.
func shearProfile(vRef, z, zRef, shear float64) float64 {
	if zRef <= 0 {
		zRef = 1
	}
	return vRef * math.Pow(z/zRef, shear)
}

// freestreamAt returns the locally undisturbed inflow at a sample point,
// the "freestream" reference used to scale deficits, not the scalar wind
// speed.
func (ff *FlowField) freestreamAt(di, si, ti, gi, gj int) float64 {
	return ff.Uinit.at(di, si, ti, gi, gj)
}

func (ff *FlowField) requireState(want FlowFieldState) error {
	if ff.state != want {
		return &StateError{Wanted: want, Got: ff.state}
	}
	return nil
}
