package floris

import "testing"

func TestConfigFromMapInheritsDefaults(t *testing.T) {
	cfg, err := ConfigFromMap(map[string]interface{}{
		"wake": map[string]interface{}{"no_wake": true},
	})
	if err != nil {
		t.Fatalf("ConfigFromMap: %v", err)
	}
	if !cfg.Wake.NoWake {
		t.Error("expected no_wake override to apply")
	}
	if cfg.Wake.ModelStrings.VelocityModel != DefaultInputs.Wake.ModelStrings.VelocityModel {
		t.Errorf("expected velocity_model to inherit default %q, got %q",
			DefaultInputs.Wake.ModelStrings.VelocityModel, cfg.Wake.ModelStrings.VelocityModel)
	}
	if len(cfg.Farm.LayoutX) != len(DefaultInputs.Farm.LayoutX) {
		t.Error("expected farm section to inherit defaults when omitted")
	}
}

func TestConfigFromMapRejectsUnknownTopLevelKey(t *testing.T) {
	_, err := ConfigFromMap(map[string]interface{}{"not_a_real_section": 1})
	if err == nil {
		t.Error("expected an error for an unrecognized top-level key")
	}
}

func TestConfigValidateRejectsMismatchedLayout(t *testing.T) {
	cfg := DefaultInputs
	cfg.Farm.LayoutX = []float64{0, 100, 200}
	cfg.Farm.LayoutY = []float64{0, 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected a validation error for mismatched layout_x/layout_y lengths")
	}
}

func TestConfigValidateRejectsBadSolverType(t *testing.T) {
	cfg := DefaultInputs
	cfg.Solver.Type = "not_a_grid_type"
	if err := cfg.Validate(); err == nil {
		t.Error("expected a validation error for an unrecognized solver.type")
	}
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	cfg := DefaultInputs
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultInputs should validate cleanly: %v", err)
	}
}
