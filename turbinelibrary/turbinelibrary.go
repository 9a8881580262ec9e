// Package turbinelibrary loads turbine power-thrust performance
// documents from YAML or TOML files on disk, so a deployment can hand
// over a new turbine model without touching solver code.
package turbinelibrary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cenkalti/backoff"
	"github.com/ghodss/yaml"

	"github.com/nrel/florisgo"
)

// document is the on-disk shape of a turbine performance file, using
// snake_case keys for its power/thrust table.
type document struct {
	TurbineType   string  `yaml:"turbine_type" toml:"turbine_type"`
	RotorDiameter float64 `yaml:"rotor_diameter" toml:"rotor_diameter"`
	HubHeight     float64 `yaml:"hub_height" toml:"hub_height"`
	TSR           float64 `yaml:"TSR" toml:"TSR"`
	PP            float64 `yaml:"pP" toml:"pP"`
	PT            float64 `yaml:"pT" toml:"pT"`
	RefDensity    float64 `yaml:"ref_density_cp_ct" toml:"ref_density_cp_ct"`

	PowerThrustTable struct {
		WindSpeed []float64 `yaml:"wind_speed" toml:"wind_speed"`
		Power     []float64 `yaml:"power" toml:"power"`
		Thrust    []float64 `yaml:"thrust" toml:"thrust"`
	} `yaml:"power_thrust_table" toml:"power_thrust_table"`
}

// Library is a directory-backed floris.TurbineLibrary: each turbine type
// is a "<name>.yaml" or "<name>.toml" file within Dir. Results are cached
// after the first successful lookup, since a *floris.TurbineSpec is
// immutable and safe to share across every Farm position of that type.
type Library struct {
	Dir string

	// RetryElapsedMax bounds how long Lookup retries a transient read
	// failure (e.g. the directory living on a slow network mount) before
	// giving up, using an exponential backoff the way a deployment would
	// tolerate a flaky remote turbine-catalog volume. Zero disables
	// retrying.
	RetryElapsedMax time.Duration

	cache map[string]*floris.TurbineSpec
}

// New returns a Library rooted at dir with retrying disabled.
func New(dir string) *Library {
	return &Library{Dir: dir, cache: map[string]*floris.TurbineSpec{}}
}

// Lookup implements floris.TurbineLibrary.
func (l *Library) Lookup(name string) (*floris.TurbineSpec, error) {
	if l.cache == nil {
		l.cache = map[string]*floris.TurbineSpec{}
	}
	if spec, ok := l.cache[name]; ok {
		return spec, nil
	}

	path, err := l.resolvePath(name)
	if err != nil {
		return nil, err
	}

	var b []byte
	readFile := func() error {
		var readErr error
		b, readErr = os.ReadFile(path)
		return readErr
	}
	if l.RetryElapsedMax > 0 {
		bo := backoff.NewExponentialBackOff()
		bo.MaxElapsedTime = l.RetryElapsedMax
		err = backoff.Retry(readFile, bo)
	} else {
		err = readFile()
	}
	if err != nil {
		return nil, &floris.IOError{Path: path, Err: err}
	}

	var doc document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(b), &doc); err != nil {
			return nil, &floris.IOError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &doc); err != nil {
			return nil, &floris.IOError{Path: path, Err: err}
		}
	default:
		return nil, &floris.ConfigError{Field: path, Reason: fmt.Sprintf("unrecognized turbine document format %q", ext)}
	}

	spec := &floris.TurbineSpec{
		Name:          name,
		RotorDiameter: doc.RotorDiameter,
		HubHeight:     doc.HubHeight,
		TSR:           doc.TSR,
		PP:            orDefault(doc.PP, 2),
		PT:            orDefault(doc.PT, 2),
		RefDensity:    doc.RefDensity,
		WindSpeeds:    doc.PowerThrustTable.WindSpeed,
		CpTable:       doc.PowerThrustTable.Power,
		CtTable:       doc.PowerThrustTable.Thrust,
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec.BuildInterpolators()
	l.cache[name] = spec
	return spec, nil
}

func (l *Library) resolvePath(name string) (string, error) {
	for _, ext := range []string{".yaml", ".yml", ".toml"} {
		p := filepath.Join(l.Dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &floris.ConfigError{Field: "farm.turbine_type", Reason: fmt.Sprintf("no turbine document for %q under %s", name, l.Dir)}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
