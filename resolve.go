package floris

import (
	"fmt"

	"github.com/nrel/florisgo/wake"
	"github.com/nrel/florisgo/wake/combination/sosfs"
	deflectiongauss "github.com/nrel/florisgo/wake/deflection/gauss"
	"github.com/nrel/florisgo/wake/deflection/jimenez"
	"github.com/nrel/florisgo/wake/turbulence/crespohernandez"
	velocityempiricalgauss "github.com/nrel/florisgo/wake/velocity/empiricalgauss"
	velocitygauss "github.com/nrel/florisgo/wake/velocity/gauss"
	"github.com/nrel/florisgo/wake/velocity/jensen"
)

// WakeModels holds the resolved, ready-to-call submodel functions for one
// solve, selected once at load by name, rather than re-dispatched per call.
type WakeModels struct {
	Velocity    wake.VelocityDeficitFunc
	Deflection  wake.DeflectionFunc
	Turbulence  wake.TurbulenceFunc
	Combination wake.CombinationFunc

	NoWake                     bool
	EnableSecondarySteering    bool
	EnableYawAddedRecovery     bool
	EnableTransverseVelocities bool
}

// resolveWakeModels builds the WakeModels for a WakeConfig, returning a
// ConfigError if any named model is unrecognized.
func resolveWakeModels(cfg WakeConfig) (*WakeModels, error) {
	var errs ConfigErrors

	velocityFn, err := resolveVelocity(cfg.ModelStrings.VelocityModel, cfg.VelocityParameters, cfg.VelocityArrayParameters)
	if err != nil {
		errs = append(errs, err)
	}
	deflectionFn, err := resolveDeflection(cfg.ModelStrings.DeflectionModel, cfg.DeflectionParameters)
	if err != nil {
		errs = append(errs, err)
	}
	turbulenceFn, err := resolveTurbulence(cfg.ModelStrings.TurbulenceModel, cfg.TurbulenceParameters)
	if err != nil {
		errs = append(errs, err)
	}
	combinationFn, err := resolveCombination(cfg.ModelStrings.CombinationModel)
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	return &WakeModels{
		Velocity:                   velocityFn,
		Deflection:                 deflectionFn,
		Turbulence:                 turbulenceFn,
		Combination:                combinationFn,
		NoWake:                     cfg.NoWake,
		EnableSecondarySteering:    cfg.EnableSecondarySteering,
		EnableYawAddedRecovery:     cfg.EnableYawAddedRecovery,
		EnableTransverseVelocities: cfg.EnableTransverseVelocities,
	}, nil
}

func resolveVelocity(name string, params map[string]map[string]float64, arrayParams map[string]map[string][]float64) (wake.VelocityDeficitFunc, error) {
	switch name {
	case "jensen":
		p := jensen.DefaultParams()
		if v, ok := params["jensen"]["we"]; ok {
			p.We = v
		}
		return jensen.New(p), nil
	case "gauss":
		p := velocitygauss.DefaultParams()
		applyScalar(params["gauss"], map[string]*float64{"alpha": &p.Alpha, "beta": &p.Beta, "ka": &p.Ka, "kb": &p.Kb})
		return velocitygauss.New(p), nil
	case "empirical_gauss":
		p := velocityempiricalgauss.DefaultParams()
		if a := arrayParams["empirical_gauss"]["wake_expansion_rates"]; len(a) > 0 {
			p.WakeExpansionRates = a
		}
		if a := arrayParams["empirical_gauss"]["breakpoints_D"]; len(a) > 0 {
			p.BreakpointsD = a
		}
		applyScalar(params["empirical_gauss"], map[string]*float64{
			"sigma_0_D": &p.Sigma0D, "smoothing_length_D": &p.SmoothingLengthD, "mixing_gain_velocity": &p.MixingGainVelocity,
		})
		return velocityempiricalgauss.New(p), nil
	default:
		return nil, &ConfigError{Field: "wake.model_strings.velocity_model", Reason: fmt.Sprintf("unrecognized model %q", name)}
	}
}

func resolveDeflection(name string, params map[string]map[string]float64) (wake.DeflectionFunc, error) {
	switch name {
	case "jimenez":
		p := jimenez.DefaultParams()
		applyScalar(params["jimenez"], map[string]*float64{"ad": &p.Ad, "bd": &p.Bd, "kd": &p.Kd})
		return jimenez.New(p), nil
	case "gauss":
		p := deflectiongauss.DefaultParams()
		applyScalar(params["gauss"], map[string]*float64{
			"ad": &p.Ad, "alpha": &p.Alpha, "bd": &p.Bd, "beta": &p.Beta, "dm": &p.Dm, "ka": &p.Ka, "kb": &p.Kb,
		})
		return deflectiongauss.New(p), nil
	default:
		return nil, &ConfigError{Field: "wake.model_strings.deflection_model", Reason: fmt.Sprintf("unrecognized model %q", name)}
	}
}

func resolveTurbulence(name string, params map[string]map[string]float64) (wake.TurbulenceFunc, error) {
	switch name {
	case "crespo_hernandez":
		p := crespohernandez.DefaultParams()
		applyScalar(params["crespo_hernandez"], map[string]*float64{
			"initial": &p.Initial, "constant": &p.Constant, "ai": &p.Ai, "downstream": &p.Downstream,
		})
		return crespohernandez.New(p), nil
	default:
		return nil, &ConfigError{Field: "wake.model_strings.turbulence_model", Reason: fmt.Sprintf("unrecognized model %q", name)}
	}
}

func resolveCombination(name string) (wake.CombinationFunc, error) {
	switch name {
	case "sosfs":
		return sosfs.New(), nil
	default:
		return nil, &ConfigError{Field: "wake.model_strings.combination_model", Reason: fmt.Sprintf("unrecognized model %q", name)}
	}
}

func applyScalar(src map[string]float64, dst map[string]*float64) {
	for k, ptr := range dst {
		if v, ok := src[k]; ok {
			*ptr = v
		}
	}
}
