// Package config loads and saves the global statloom configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Seed for the pseudo-random source; 0 means derive from the clock.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// GeneratorPoints is the default dataset size for generate and summary.
	GeneratorPoints int `mapstructure:"generator_points" yaml:"generator_points"`

	// Generator parameter defaults.
	UniformMin float64 `mapstructure:"uniform_min" yaml:"uniform_min"`
	UniformMax float64 `mapstructure:"uniform_max" yaml:"uniform_max"`
	NormalMean float64 `mapstructure:"normal_mean" yaml:"normal_mean"`
	NormalStd  float64 `mapstructure:"normal_std" yaml:"normal_std"`

	// Output selects the default report renderer: markdown|yaml|table.
	Output string `mapstructure:"output" yaml:"output"`
	// DatasetsDir holds saved dataset snapshots.
	DatasetsDir string `mapstructure:"datasets_dir" yaml:"datasets_dir"`
	// MaxRows caps rows processed from input files; 0 means unlimited.
	MaxRows int `mapstructure:"max_rows" yaml:"max_rows"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.statloom/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".statloom")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("STATLOOM")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("seed", 0)
	v.SetDefault("generator_points", 1000)
	v.SetDefault("uniform_min", 0.0)
	v.SetDefault("uniform_max", 1.0)
	v.SetDefault("normal_mean", 0.0)
	v.SetDefault("normal_std", 1.0)
	v.SetDefault("output", "markdown")
	v.SetDefault("max_rows", 100000)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".statloom")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve datasets_dir default: ~/.statloom/datasets
	if c.DatasetsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.DatasetsDir = filepath.Join(home, ".statloom", "datasets")
	}
	if c.Output == "" {
		c.Output = "markdown"
	}
	return &c, nil
}
