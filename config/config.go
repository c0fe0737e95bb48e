// Package config loads the ocegraph application configuration from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ocegraph/core"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config is the application configuration. Missing fields take the values
// of Default.
type Config struct {
	LogLevel   string `yaml:"logLevel"`
	Directed   bool   `yaml:"directed"`
	AutoExtend bool   `yaml:"autoExtend"` // let the graph grow past the declared vertex count
	Inventory  string `yaml:"inventory"`  // .yaml, .yml or .hcl document
	StorePath  string `yaml:"storePath"`  // badger directory; empty disables the store
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Parse decodes YAML data and fills in defaults.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Level returns the logrus level named by LogLevel.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

// GraphOptions returns the core options implied by c. Directedness is
// passed per call by the builder and is not included.
func (c Config) GraphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if c.AutoExtend {
		opts = append(opts, core.WithAutoExtend())
	}
	return opts
}
