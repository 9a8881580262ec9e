// Package floriscli builds the command-line interface for the wake
// solver: a cobra Root command whose subcommands share a persistent
// --log-level/--log-format/--config flag set.
package floriscli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nrel/florisgo"
	"github.com/nrel/florisgo/turbinelibrary"
	"github.com/nrel/florisgo/web"
)

// Cfg holds the flags shared by every subcommand.
type Cfg struct {
	ConfigPath string
	TurbineDir string
	LogLevel   string
	LogFormat  string
	OutputPath string

	Root *cobra.Command

	solveCmd       *cobra.Command
	samplePlaneCmd *cobra.Command
	serveCmd       *cobra.Command
}

// InitializeConfig builds the Root command and its subcommands.
func InitializeConfig() *Cfg {
	cfg := &Cfg{}

	cfg.Root = &cobra.Command{
		Use:               "floris",
		Short:             "A steady-state wind-farm wake solver.",
		Long:              `floris solves wind-farm wake interaction for a configured farm layout, atmospheric condition, and wake submodel selection.`,
		DisableAutoGenTag: true,
	}
	cfg.Root.PersistentFlags().StringVar(&cfg.ConfigPath, "config", "", "path to a TOML or YAML configuration document")
	cfg.Root.PersistentFlags().StringVar(&cfg.TurbineDir, "turbine-library", "turbine_library", "directory of turbine performance documents")
	cfg.Root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "one of: debug, info, warn, error")
	cfg.Root.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", "text", "one of: text, json")

	cfg.solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Run a solve and print rotor-averaged velocity, Ct, axial induction and power.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.runSolve()
		},
		DisableAutoGenTag: true,
	}
	cfg.solveCmd.Flags().StringVar(&cfg.OutputPath, "output", "", "write results as JSON to this path instead of stdout")

	cfg.samplePlaneCmd = &cobra.Command{
		Use:   "sample-plane",
		Short: "Solve and sample a horizontal cut plane through the flow field.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.runSamplePlane()
		},
		DisableAutoGenTag: true,
	}

	var serveAddr string
	cfg.serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve solve results over a websocket as they complete.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.runServe(serveAddr)
		},
		DisableAutoGenTag: true,
	}
	cfg.serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")

	cfg.Root.AddCommand(cfg.solveCmd, cfg.samplePlaneCmd, cfg.serveCmd)
	return cfg
}

func (cfg *Cfg) logger() *logrus.Logger {
	l := logrus.New()
	if cfg.LogFormat == "json" {
		l.Formatter = &logrus.JSONFormatter{}
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.Level = lvl
	}
	return l
}

func (cfg *Cfg) loadSolver() (*floris.Solver, error) {
	if cfg.ConfigPath == "" {
		return nil, fmt.Errorf("floris: --config is required")
	}
	doc, err := floris.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if doc.Farm.LayoutShapefile != "" {
		x, y, err := turbinelibrary.LoadLayoutShapefile(doc.Farm.LayoutShapefile)
		if err != nil {
			return nil, err
		}
		doc.Farm.LayoutX, doc.Farm.LayoutY = x, y
	}

	lib := turbinelibrary.New(cfg.TurbineDir)
	return floris.NewSolver(doc, lib, floris.WithLogger(cfg.logger()))
}

func (cfg *Cfg) runSolve() error {
	s, err := cfg.loadSolver()
	if err != nil {
		return err
	}
	if _, err := s.Solve(); err != nil {
		return err
	}

	velocity, err := s.RotorAveragedVelocity()
	if err != nil {
		return err
	}
	cts, err := s.TurbineCts()
	if err != nil {
		return err
	}
	a, err := s.AxialInductions()
	if err != nil {
		return err
	}
	power, err := s.TurbinePowers()
	if err != nil {
		return err
	}

	out := map[string]*floris.Tensor3{
		"rotor_averaged_velocity": velocity,
		"turbine_cts":             cts,
		"axial_inductions":        a,
		"turbine_powers":          power,
	}
	return cfg.writeJSON(out)
}

func (cfg *Cfg) runSamplePlane() error {
	s, err := cfg.loadSolver()
	if err != nil {
		return err
	}
	plane, err := floris.SamplePlane(s, floris.DefaultPlaneSpec())
	if err != nil {
		return err
	}
	return cfg.writeJSON(plane)
}

func (cfg *Cfg) runServe(addr string) error {
	lib := turbinelibrary.New(cfg.TurbineDir)
	logger := cfg.logger()
	srv := &web.Server{
		Logger: logger,
		NewSolver: func(raw map[string]interface{}) (*floris.Solver, error) {
			c, err := floris.ConfigFromMap(raw)
			if err != nil {
				return nil, err
			}
			return floris.NewSolver(c, lib, floris.WithLogger(logger))
		},
	}
	logger.WithField("addr", addr).Info("serving floris websocket endpoint")
	return http.ListenAndServe(addr, srv)
}

func (cfg *Cfg) writeJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if cfg.OutputPath == "" {
		fmt.Println(string(b))
		return nil
	}
	return os.WriteFile(cfg.OutputPath, b, 0644)
}
