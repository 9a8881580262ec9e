// Package floris implements the steady-state wake solver at the heart of
// a wind-farm flow model: given a farm layout, a set of atmospheric
// conditions, and turbine performance curves, it computes rotor-averaged
// inflow, thrust coefficient, axial induction and power at every turbine
// for every combination of wind direction and wind speed.
package floris

import (
	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"
)

// Solver is the top-level value that exclusively owns a solve's Grid,
// FlowField, Farm, WakeModels and TurbineSpec table.
type Solver struct {
	config     *Config
	farm       *Farm
	grid       *Grid
	flowField  *FlowField
	wakeModels *WakeModels
	turbines   map[string]*TurbineSpec

	results *solverResults

	logger *logrus.Logger
}

// TurbineLibrary resolves a turbine_type name from a configuration
// document to a fully-specified *TurbineSpec. The turbinelibrary package
// provides the on-disk YAML/TOML implementation; tests and callers that
// already hold specs in memory can implement this directly (see
// staticLibrary, used by Reset).
type TurbineLibrary interface {
	Lookup(name string) (*TurbineSpec, error)
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a logrus.Logger that receives solve-progress and
// numerical-guard diagnostics (see log.go).
func WithLogger(l *logrus.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// Load reads a configuration document and turbine library, validates it,
// and returns a ready-to-solve Solver. turbineLibrary resolves a
// turbine_type name to a *TurbineSpec.
func Load(configPath string, turbineLibrary TurbineLibrary, opts ...Option) (*Solver, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, err
	}
	return newSolverFromConfig(cfg, turbineLibrary, opts...)
}

// NewSolver builds a Solver from an already-parsed Config, for callers
// that construct configuration in memory rather than loading it from
// disk (tests, the web server, programmatic scenario sweeps).
func NewSolver(cfg *Config, turbineLibrary TurbineLibrary, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newSolverFromConfig(cfg, turbineLibrary, opts...)
}

func newSolverFromConfig(cfg *Config, lib TurbineLibrary, opts ...Option) (*Solver, error) {
	s := &Solver{config: cfg, logger: newDiscardLogger()}
	for _, o := range opts {
		o(s)
	}

	turbineTypeFor := func(i int) string {
		if len(cfg.Farm.TurbineType) == 1 {
			return cfg.Farm.TurbineType[0]
		}
		return cfg.Farm.TurbineType[i]
	}

	t := len(cfg.Farm.LayoutX)
	specs := make([]*TurbineSpec, t)
	seen := map[string]*TurbineSpec{}
	var errs ConfigErrors
	for i := 0; i < t; i++ {
		name := turbineTypeFor(i)
		spec, ok := seen[name]
		if !ok {
			var err error
			spec, err = lib.Lookup(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if err := spec.Validate(); err != nil {
				errs = append(errs, err)
				continue
			}
			spec.BuildInterpolators()
			seen[name] = spec
		}
		specs[i] = spec
	}
	if len(errs) > 0 {
		return nil, errs
	}

	layout := make([]geom.Point, t)
	for i := range layout {
		layout[i] = geom.Point{X: cfg.Farm.LayoutX[i], Y: cfg.Farm.LayoutY[i]}
	}

	d, numSpeeds := len(cfg.FlowField.WindDirections), len(cfg.FlowField.WindSpeeds)
	yaw := newTensor3(d, numSpeeds, t)
	tilt := newTensor3(d, numSpeeds, t)

	farm := &Farm{Layout: layout, Specs: specs, Yaw: yaw, Tilt: tilt}
	if err := farm.validate(); err != nil {
		return nil, err
	}

	ffCfg := &FlowFieldConfig{
		WindDirections:      cfg.FlowField.WindDirections,
		WindSpeeds:          cfg.FlowField.WindSpeeds,
		WindShear:           cfg.FlowField.WindShear,
		WindVeer:            cfg.FlowField.WindVeer,
		ReferenceWindHeight: cfg.FlowField.ReferenceWindHeight,
		AirDensity:          cfg.FlowField.AirDensity,
		TurbulenceIntensity: cfg.FlowField.TurbulenceIntensity,
	}
	if err := ffCfg.validate(); err != nil {
		return nil, err
	}

	wakeModels, err := resolveWakeModels(cfg.Wake)
	if err != nil {
		return nil, err
	}

	grid := NewTurbineGrid(farm, cfg.FlowField.WindDirections, numSpeeds, cfg.Solver.TurbineGridPoints)
	flowField := NewFlowField(grid, ffCfg)

	s.farm = farm
	s.grid = grid
	s.flowField = flowField
	s.wakeModels = wakeModels
	s.turbines = seen
	return s, nil
}

// Reset rebuilds Grid and FlowField from a set of overrides, leaving
// model parameters untouched. A nil field in overrides leaves the
// corresponding current value unchanged.
func (s *Solver) Reset(overrides ResetOverrides) (*Solver, error) {
	cfg := *s.config
	if overrides.LayoutX != nil {
		cfg.Farm.LayoutX = overrides.LayoutX
	}
	if overrides.LayoutY != nil {
		cfg.Farm.LayoutY = overrides.LayoutY
	}
	if overrides.WindDirections != nil {
		cfg.FlowField.WindDirections = overrides.WindDirections
	}
	if overrides.WindSpeeds != nil {
		cfg.FlowField.WindSpeeds = overrides.WindSpeeds
	}
	if overrides.Yaw != nil {
		// validated below once the new Farm tensor shape is known
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	next, err := newSolverFromConfigReusingTurbines(&cfg, s)
	if err != nil {
		return nil, err
	}
	sameShape := next.farm.Yaw.d == s.farm.Yaw.d && next.farm.Yaw.s == s.farm.Yaw.s && next.farm.Yaw.t == s.farm.Yaw.t
	if overrides.Yaw != nil {
		copy(next.farm.Yaw.data, overrides.Yaw)
	} else if sameShape {
		copy(next.farm.Yaw.data, s.farm.Yaw.data)
	}
	if overrides.Tilt != nil {
		copy(next.farm.Tilt.data, overrides.Tilt)
	} else if sameShape {
		copy(next.farm.Tilt.data, s.farm.Tilt.data)
	}
	if err := next.farm.validate(); err != nil {
		return nil, err
	}
	next.logger = s.logger
	return next, nil
}

// ResetOverrides names the fields reset() may override; unset (nil)
// fields keep their current value. Yaw and Tilt keep their current values
// only while the [D,S,T] shape is unchanged; after a change of shape an
// unset Yaw or Tilt is all zeros.
type ResetOverrides struct {
	LayoutX, LayoutY           []float64
	WindDirections, WindSpeeds []float64
	Yaw, Tilt                  []float64 // flattened [D,S,T], row-major
}

// newSolverFromConfigReusingTurbines rebuilds the Solver the way
// newSolverFromConfig does, but reuses already-validated *TurbineSpec
// values instead of calling the turbine library again, since reset()
// never changes turbine types.
func newSolverFromConfigReusingTurbines(cfg *Config, prev *Solver) (*Solver, error) {
	lib := staticLibrary(prev.turbines)
	return newSolverFromConfig(cfg, lib)
}

// staticLibrary adapts an already-resolved turbine map into a
// TurbineLibrary, for use by Reset.
type staticLibrary map[string]*TurbineSpec

func (m staticLibrary) Lookup(name string) (*TurbineSpec, error) {
	if spec, ok := m[name]; ok {
		return spec, nil
	}
	return nil, &ConfigError{Field: "farm.turbine_type", Reason: "unknown turbine type " + name}
}
