package floris

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"github.com/lnashier/viper"
)

// Config is the structured configuration document recognized by load().
// Unknown top-level keys are a ConfigError; missing sections inherit
// from DefaultInputs.
type Config struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	FlorisVersion string `json:"floris_version"`

	Solver    SolverConfig `json:"solver"`
	Farm      FarmConfig   `json:"farm"`
	FlowField FlowFieldDoc `json:"flow_field"`
	Wake      WakeConfig   `json:"wake"`
}

// SolverConfig names the grid type and rotor-grid resolution of a solve.
// Type is validated but not otherwise read: NewSolver always builds a
// turbine grid, and "flow_field_grid" selects no different grid.
type SolverConfig struct {
	Type              string `json:"type"` // "turbine_grid" | "flow_field_grid"
	TurbineGridPoints int    `json:"turbine_grid_points"`
}

// FarmConfig is the raw farm layout section of a configuration document.
type FarmConfig struct {
	LayoutX     []float64 `json:"layout_x"`
	LayoutY     []float64 `json:"layout_y"`
	TurbineType []string  `json:"turbine_type"`

	// LayoutShapefile, when set, overrides LayoutX/LayoutY by reading
	// turbine positions from a shapefile (see turbinelibrary/shapefile.go).
	LayoutShapefile string `json:"layout_shapefile,omitempty"`
}

// FlowFieldDoc is the raw flow-field section of a configuration document.
type FlowFieldDoc struct {
	AirDensity          float64   `json:"air_density"`
	ReferenceWindHeight float64   `json:"reference_wind_height"`
	TurbulenceIntensity []float64 `json:"turbulence_intensity"`
	WindDirections      []float64 `json:"wind_directions"`
	WindShear           float64   `json:"wind_shear"`
	WindSpeeds          []float64 `json:"wind_speeds"`
	WindVeer            float64   `json:"wind_veer"`
}

// ModelStrings names the active variant of each wake submodel family.
type ModelStrings struct {
	VelocityModel    string `json:"velocity_model"`
	DeflectionModel  string `json:"deflection_model"`
	TurbulenceModel  string `json:"turbulence_model"`
	CombinationModel string `json:"combination_model"`
}

// WakeConfig is the raw wake section of a configuration document.
type WakeConfig struct {
	ModelStrings ModelStrings `json:"model_strings"`

	EnableSecondarySteering    bool `json:"enable_secondary_steering"`
	EnableYawAddedRecovery     bool `json:"enable_yaw_added_recovery"`
	EnableTransverseVelocities bool `json:"enable_transverse_velocities"`

	// NoWake disables the superposition loop entirely: every turbine sees
	// the undisturbed freestream inflow.
	NoWake bool `json:"no_wake"`

	DeflectionParameters map[string]map[string]float64 `json:"wake_deflection_parameters"`
	VelocityParameters   map[string]map[string]float64 `json:"wake_velocity_parameters"`
	TurbulenceParameters map[string]map[string]float64 `json:"wake_turbulence_parameters"`

	// VelocityArrayParameters carries the array-valued parameters of the
	// empirical_gauss model (wake_expansion_rates, breakpoints_D), which
	// don't fit the scalar VelocityParameters map.
	VelocityArrayParameters map[string]map[string][]float64 `json:"wake_velocity_array_parameters"`
}

var recognizedTopLevelKeys = map[string]bool{
	"name": true, "description": true, "floris_version": true,
	"solver": true, "farm": true, "flow_field": true, "wake": true,
}

// envPrefix is the viper environment-variable prefix read by load(). The
// only variable read is FLORIS_NAME, which overrides the document's name;
// no other field is taken from the environment.
var envPrefix = "FLORIS"

// load reads a configuration document from path (TOML or YAML, selected
// by extension), merges it over DefaultInputs, validates it, and returns
// the resolved Config.
func load(path string) (*Config, error) {
	raw := map[string]interface{}{}
	b, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(b), &raw); err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &raw); err != nil {
			return nil, &IOError{Path: path, Err: err}
		}
	default:
		return nil, &ConfigError{Field: path, Reason: fmt.Sprintf("unrecognized config format %q", ext)}
	}

	for k := range raw {
		if !recognizedTopLevelKeys[k] {
			return nil, &ConfigError{Field: k, Reason: "unrecognized top-level configuration key"}
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfg := DefaultInputs
	if err := mergeRawInto(&cfg, raw); err != nil {
		return nil, err
	}
	if s := v.GetString("NAME"); s != "" {
		cfg.Name = s
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeRawInto overlays the sections present in raw onto cfg, leaving
// DefaultInputs' values in place for any section the document omits.
// Each top-level section is decoded independently through encoding/json
// so a document supplying only e.g. `wake.no_wake` still inherits every
// other wake default.
func mergeRawInto(cfg *Config, raw map[string]interface{}) error {
	// cfg usually starts as a shallow copy of DefaultInputs; decoding into
	// its shared slices and maps would overwrite DefaultInputs itself, so
	// work on a deep copy.
	b, err := json.Marshal(cfg)
	if err != nil {
		return &ConfigError{Field: "defaults", Reason: err.Error()}
	}
	*cfg = Config{}
	if err := json.Unmarshal(b, cfg); err != nil {
		return &ConfigError{Field: "defaults", Reason: err.Error()}
	}
	decode := func(key string, dst interface{}) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		b, err := json.Marshal(v)
		if err != nil {
			return &ConfigError{Field: key, Reason: err.Error()}
		}
		if err := json.Unmarshal(b, dst); err != nil {
			return &ConfigError{Field: key, Reason: err.Error()}
		}
		return nil
	}
	if s, ok := raw["name"].(string); ok {
		cfg.Name = s
	}
	if s, ok := raw["description"].(string); ok {
		cfg.Description = s
	}
	if s, ok := raw["floris_version"].(string); ok {
		cfg.FlorisVersion = s
	}
	for key, dst := range map[string]interface{}{
		"solver":     &cfg.Solver,
		"farm":       &cfg.Farm,
		"flow_field": &cfg.FlowField,
		"wake":       &cfg.Wake,
	} {
		if err := decode(key, dst); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfig is the exported entry point for load(), kept separate so
// tests and the CLI can call it without constructing a Solver.
func LoadConfig(path string) (*Config, error) { return load(path) }

// ConfigFromMap merges a decoded JSON-like document (as produced by a
// websocket or HTTP request body) over DefaultInputs and validates it,
// the in-memory analogue of load() for callers that never touch disk
// (see web.Server).
func ConfigFromMap(raw map[string]interface{}) (*Config, error) {
	for k := range raw {
		if !recognizedTopLevelKeys[k] {
			return nil, &ConfigError{Field: k, Reason: "unrecognized top-level configuration key"}
		}
	}
	cfg := DefaultInputs
	if err := mergeRawInto(&cfg, raw); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the cross-section invariants that can be verified on
// the raw document alone (length matches, ranges); it does not resolve
// wake models or turbine libraries, which happens in NewSolver.
func (c *Config) Validate() error {
	var errs ConfigErrors
	if len(c.Farm.LayoutX) != len(c.Farm.LayoutY) {
		errs = append(errs, &ConfigError{Field: "farm.layout_x/layout_y", Reason: "must have the same length"})
	}
	if len(c.Farm.TurbineType) != 1 && len(c.Farm.TurbineType) != len(c.Farm.LayoutX) {
		errs = append(errs, &ConfigError{Field: "farm.turbine_type", Reason: "must have one entry or one per turbine"})
	}
	if c.Solver.Type != "turbine_grid" && c.Solver.Type != "flow_field_grid" {
		errs = append(errs, &ConfigError{Field: "solver.type", Reason: `must be "turbine_grid" or "flow_field_grid"`})
	}
	if c.Solver.TurbineGridPoints < 1 {
		errs = append(errs, &ConfigError{Field: "solver.turbine_grid_points", Reason: "must be >= 1"})
	}
	if c.FlowField.WindShear < 0 {
		errs = append(errs, &ConfigError{Field: "flow_field.wind_shear", Reason: "must be >= 0"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
