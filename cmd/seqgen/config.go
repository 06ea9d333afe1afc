package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the knobs of one generation run. Values come from an
// optional YAML file; explicitly set command-line flags win over it.
type RunConfig struct {
	// Length is the sequence length N (also the alphabet size).
	Length int `yaml:"length"`
	// Count is the number of sequences M to generate.
	Count int `yaml:"count"`
	// Out is the output folder for the CSV and PNG artifacts.
	Out string `yaml:"out"`
	// Seed fixes the RNG; 0 means "seed from the clock" at the CLI level.
	Seed int64 `yaml:"seed"`
	// Strict makes degenerate probability rows a fatal error instead of
	// leaving them all-zero.
	Strict bool `yaml:"strict"`
	// Dev switches the logger to human-friendly development output.
	Dev bool `yaml:"dev"`
}

// defaultRunConfig mirrors the flag defaults.
func defaultRunConfig() RunConfig {
	return RunConfig{
		Length: 12,
		Count:  72,
		Out:    "out",
	}
}

// loadRunConfig reads a YAML run configuration from path.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	return cfg, nil
}
