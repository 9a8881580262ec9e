package floris

// solverResults holds the public, unsorted-order [D,S,T] result tensors
// produced by Solve().
type solverResults struct {
	velocity *tensor3
	ct       *tensor3
	a        *tensor3
	ti       *tensor3
	power    *tensor3
}

// assembleResults unsorts each (d,s) chunk's upstream-to-downstream
// turbineState slice back into original layout order via
// Grid.UnsortedIndices, and computes power from the resolved aerodynamic
// state.
func (s *Solver) assembleResults(sortedStates [][]turbineState) {
	grid := s.grid
	d, numSpeeds, t := grid.D, grid.S, grid.T

	res := &solverResults{
		velocity: newTensor3(d, numSpeeds, t),
		ct:       newTensor3(d, numSpeeds, t),
		a:        newTensor3(d, numSpeeds, t),
		ti:       newTensor3(d, numSpeeds, t),
		power:    newTensor3(d, numSpeeds, t),
	}

	for di := 0; di < d; di++ {
		unsort := grid.UnsortedIndices[di]
		for si := 0; si < numSpeeds; si++ {
			states := sortedStates[di*numSpeeds+si]
			for origIdx := 0; origIdx < t; origIdx++ {
				k := unsort[origIdx]
				st := states[k]
				spec := s.farm.Specs[origIdx]

				res.velocity.set(di, si, origIdx, st.velocity)
				res.ct.set(di, si, origIdx, st.ct)
				res.a.set(di, si, origIdx, st.a)
				res.ti.set(di, si, origIdx, st.ti)
				res.power.set(di, si, origIdx, turbinePower(s.flowField.cfg.AirDensity, st.velocity, st.yawRad, st.tiltRad, spec))
			}
		}
	}
	s.results = res
}

// requireUsed enforces StateError: result accessors only return a value
// once a solve has completed.
func (s *Solver) requireUsed() error {
	return s.flowField.requireState(StateUsed)
}

// RotorAveragedVelocity returns the rotor-averaged inflow velocity at
// every turbine, shaped [D,S,T] in original layout order.
func (s *Solver) RotorAveragedVelocity() (*Tensor3, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return publicTensor3(s.results.velocity), nil
}

// TurbineCts returns each turbine's resolved thrust coefficient, shaped
// [D,S,T].
func (s *Solver) TurbineCts() (*Tensor3, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return publicTensor3(s.results.ct), nil
}

// AxialInductions returns each turbine's resolved axial induction factor,
// shaped [D,S,T].
func (s *Solver) AxialInductions() (*Tensor3, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return publicTensor3(s.results.a), nil
}

// TurbinePowers returns each turbine's electrical power output in watts,
// shaped [D,S,T].
func (s *Solver) TurbinePowers() (*Tensor3, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return publicTensor3(s.results.power), nil
}

// TurbulenceIntensities returns the resolved local turbulence intensity
// at every turbine, shaped [D,S,T].
func (s *Solver) TurbulenceIntensities() (*Tensor3, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	return publicTensor3(s.results.ti), nil
}

// FarmPower returns the summed electrical power output of the farm,
// shaped [D,S].
func (s *Solver) FarmPower() ([]float64, error) {
	if err := s.requireUsed(); err != nil {
		return nil, err
	}
	grid := s.grid
	out := make([]float64, grid.D*grid.S)
	p := s.results.power
	for di := 0; di < grid.D; di++ {
		for si := 0; si < grid.S; si++ {
			var sum float64
			for ti := 0; ti < grid.T; ti++ {
				sum += p.at(di, si, ti)
			}
			out[di*grid.S+si] = sum
		}
	}
	return out, nil
}
