// Package config loads the analysis configuration from YAML. Every field
// has a default reproducing the documented baseline run, so an empty file
// (or no file at all) yields a complete, runnable configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the complete configuration for one analysis run.
type Config struct {
	// AirData is the path to the Sonntag-format air property table.
	AirData string `yaml:"air_data"`

	Cycle     CycleConfig     `yaml:"cycle"`
	Bottoming BottomingConfig `yaml:"bottoming"`
	Sweeps    SweepsConfig    `yaml:"sweeps"`
	Solver    SolverConfig    `yaml:"solver"`
}

// CycleConfig holds the Brayton cycle operating point.
type CycleConfig struct {
	InletTemp            float64 `yaml:"inlet_temp"`            // T1 [K]
	TurbineInletTemp     float64 `yaml:"turbine_inlet_temp"`    // T3 [K]
	GasConstant          float64 `yaml:"gas_constant"`          // R [kJ/kg·K]
	CompressorEfficiency float64 `yaml:"compressor_efficiency"` // (0, 1]
	TurbineEfficiency    float64 `yaml:"turbine_efficiency"`    // (0, 1]
}

// BottomingConfig holds the bottoming steam cycle reference point.
type BottomingConfig struct {
	StackTemp        float64 `yaml:"stack_temp"`        // [K]
	ExhaustThreshold float64 `yaml:"exhaust_threshold"` // [K]
	SteamHeatInput   float64 `yaml:"steam_heat_input"`  // [kJ/kg]
	SteamEfficiency  float64 `yaml:"steam_efficiency"`  // [%]
}

// RangeConfig describes an evenly spaced pressure-ratio range.
type RangeConfig struct {
	MinRatio float64 `yaml:"min_ratio"`
	MaxRatio float64 `yaml:"max_ratio"`
	Points   int     `yaml:"points"`
}

// SweepsConfig configures the four analysis parts.
type SweepsConfig struct {
	Efficiency  RangeConfig       `yaml:"efficiency"`
	NetWork     RangeConfig       `yaml:"net_work"`
	Sensitivity SensitivityConfig `yaml:"sensitivity"`
	Combined    CombinedConfig    `yaml:"combined"`
}

// SensitivityConfig configures the fixed-ratio efficiency sensitivity run.
type SensitivityConfig struct {
	Ratio        float64   `yaml:"ratio"`
	Efficiencies []float64 `yaml:"efficiencies"`
}

// CombinedConfig configures the combined-cycle sweep and the single spot
// evaluation reported alongside it.
type CombinedConfig struct {
	RangeConfig `yaml:",inline"`
	SpotRatio   float64 `yaml:"spot_ratio"`
}

// SolverConfig tunes the root solver used for the isentropic and inverse
// enthalpy solves.
type SolverConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

// Default returns the configuration of the documented baseline run.
func Default() *Config {
	return &Config{
		AirData: "data/airdata_sonntag.txt",
		Cycle: CycleConfig{
			InletTemp:            298.15,
			TurbineInletTemp:     1200.0,
			GasConstant:          0.287,
			CompressorEfficiency: 0.90,
			TurbineEfficiency:    0.90,
		},
		Bottoming: BottomingConfig{
			StackTemp:        460.0,
			ExhaustThreshold: 673.15,
			SteamHeatInput:   2917.0,
			SteamEfficiency:  36.53,
		},
		Sweeps: SweepsConfig{
			Efficiency: RangeConfig{MinRatio: 2, MaxRatio: 30, Points: 20},
			NetWork:    RangeConfig{MinRatio: 2, MaxRatio: 30, Points: 12},
			Sensitivity: SensitivityConfig{
				Ratio:        10,
				Efficiencies: []float64{0.86, 0.88, 0.90, 0.92, 0.94},
			},
			Combined: CombinedConfig{
				RangeConfig: RangeConfig{MinRatio: 2, MaxRatio: 30, Points: 20},
				SpotRatio:   13.59,
			},
		},
		Solver: SolverConfig{
			Tolerance:     1e-6,
			MaxIterations: 100,
		},
	}
}

// Load reads a YAML configuration file over the defaults. A missing file
// is an error; use Default directly to run without one.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
