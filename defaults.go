package floris

// DefaultInputs is the default configuration document: every section a
// loaded configuration omits inherits its value from here.
var DefaultInputs = Config{
	Name:           "DEFAULT",
	Description:    "",
	FlorisVersion:  "v3.4.0",
	Solver: SolverConfig{
		Type:              "turbine_grid",
		TurbineGridPoints: 3,
	},
	Farm: FarmConfig{
		LayoutX:     []float64{0, 5 * 126},
		LayoutY:     []float64{0, 0},
		TurbineType: []string{"nrel_5MW"},
	},
	FlowField: FlowFieldDoc{
		AirDensity:          1.225,
		ReferenceWindHeight: 90,
		TurbulenceIntensity: []float64{0.06},
		WindDirections:      []float64{270},
		WindShear:           0.12,
		WindSpeeds:          []float64{8},
		WindVeer:            0,
	},
	Wake: WakeConfig{
		ModelStrings: ModelStrings{
			CombinationModel: "sosfs",
			DeflectionModel:  "gauss",
			TurbulenceModel:  "crespo_hernandez",
			VelocityModel:    "gauss",
		},
		EnableSecondarySteering:    false,
		EnableYawAddedRecovery:     false,
		EnableTransverseVelocities: false,
		DeflectionParameters: map[string]map[string]float64{
			"gauss": {
				"ad": 0, "alpha": 0.58, "bd": 0, "beta": 0.077, "dm": 1.0, "ka": 0.38, "kb": 0.004,
			},
			"jimenez": {
				"ad": 0, "bd": 0, "kd": 0.05,
			},
		},
		VelocityParameters: map[string]map[string]float64{
			"gauss": {
				"alpha": 0.58, "beta": 0.077, "ka": 0.38, "kb": 0.004,
			},
			"jensen": {
				"we": 0.05,
			},
		},
		TurbulenceParameters: map[string]map[string]float64{
			"crespo_hernandez": {
				"initial": 0.1, "constant": 0.5, "ai": 0.8, "downstream": -0.32,
			},
		},
	},
}
