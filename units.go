package floris

import "github.com/ctessum/unit"

// powerDims and velocityDims tag a raw float64 with its SI dimensions
// using unit.Unit, so a caller serializing results for another tool's
// consumption doesn't have to hard-code a unit convention alongside the
// plain Tensor3 values.
var (
	powerDims    = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: 2, unit.TimeDim: -3}
	velocityDims = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}
)

// TurbinePower returns the electrical power output of one turbine under
// one wind condition as a dimension-tagged *unit.Unit (watts), for
// callers that need to combine it with other physical quantities without
// losing track of units.
func (s *Solver) TurbinePower(di, si, ti int) (*unit.Unit, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return unit.New(s.results.power.at(di, si, ti), powerDims), nil
}

// RotorAveragedVelocityAt returns one turbine's rotor-averaged inflow
// under one wind condition as a dimension-tagged *unit.Unit (m/s).
func (s *Solver) RotorAveragedVelocityAt(di, si, ti int) (*unit.Unit, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return unit.New(s.results.velocity.at(di, si, ti), velocityDims), nil
}
