package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/grocery-sim/grocery-sim/sim"
)

// FileConfig is the YAML shape of the optional --config file. Both
// sections start from the reference defaults, so a file only needs the
// keys it overrides.
type FileConfig struct {
	Store sim.StoreConfig `yaml:"store"`
	Run   sim.RunConfig   `yaml:"run"`
}

// LoadFileConfig reads the YAML config at path over the defaults. An empty
// path returns the defaults unchanged. CLI flags (seed, days, cashiers,
// suppliers) take precedence over the file.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := &FileConfig{
		Store: sim.DefaultStoreConfig(),
		Run:   sim.DefaultRunConfig(),
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
