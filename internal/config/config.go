package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML can carry values like "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dd)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config holds the server settings. Flags override file values.
type Config struct {
	Addr         string   `yaml:"addr"`
	PersistPath  string   `yaml:"persistPath"`
	Solver       string   `yaml:"solver"` // bestfirst|backtrack
	SolveTimeout Duration `yaml:"solveTimeout"`
	LogLevel     string   `yaml:"logLevel"` // debug|info|warn|error
}

func Default() Config {
	return Config{
		Addr:         ":8080",
		PersistPath:  "./data",
		Solver:       "bestfirst",
		SolveTimeout: Duration(5 * time.Second),
		LogLevel:     "info",
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
