// Package config holds the checker settings. Every setting has a default
// matching the standard setup flow, so running without a settings file
// consumes no configuration at all.
package config

import (
	"fmt"
	"net/url"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from a YAML string like "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = dur
	return nil
}

// PythonConfig selects the interpreter to probe and the accepted version range.
type PythonConfig struct {
	Executable    string `yaml:"executable"`
	RequiredMajor int    `yaml:"required_major"`
	MinimumMinor  int    `yaml:"minimum_minor"`
}

// DiskConfig holds the free-space advisory threshold.
type DiskConfig struct {
	MinFreeGB float64 `yaml:"min_free_gb"`
}

// NetworkConfig holds the reachability endpoint and its hard timeout.
type NetworkConfig struct {
	Endpoint string   `yaml:"endpoint"`
	Timeout  Duration `yaml:"timeout"`
}

// Config is the root checker configuration.
type Config struct {
	Python  PythonConfig  `yaml:"python"`
	Disk    DiskConfig    `yaml:"disk"`
	Network NetworkConfig `yaml:"network"`
}

// Default returns the built-in settings: CPython 3.10+, a 10 GB free-space
// threshold, and pypi.org reachability with a 5 second timeout.
func Default() *Config {
	executable := "python3"
	if runtime.GOOS == "windows" {
		executable = "python"
	}
	return &Config{
		Python: PythonConfig{
			Executable:    executable,
			RequiredMajor: 3,
			MinimumMinor:  10,
		},
		Disk: DiskConfig{
			MinFreeGB: 10,
		},
		Network: NetworkConfig{
			Endpoint: "https://pypi.org",
			Timeout:  Duration{5 * time.Second},
		},
	}
}

// Load reads the settings file at path and merges it over the defaults.
// Omitted keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Python.Executable == "" {
		return fmt.Errorf("python.executable must not be empty")
	}
	if c.Python.RequiredMajor < 2 {
		return fmt.Errorf("python.required_major %d is not a valid Python major version", c.Python.RequiredMajor)
	}
	if c.Python.MinimumMinor < 0 {
		return fmt.Errorf("python.minimum_minor must not be negative")
	}
	if c.Disk.MinFreeGB < 0 {
		return fmt.Errorf("disk.min_free_gb must not be negative")
	}
	u, err := url.Parse(c.Network.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("network.endpoint %q is not a valid URL", c.Network.Endpoint)
	}
	if c.Network.Timeout.Duration <= 0 {
		return fmt.Errorf("network.timeout must be positive")
	}
	return nil
}
