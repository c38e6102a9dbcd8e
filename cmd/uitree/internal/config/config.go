// Package config loads the optional uitree.yaml file.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uitree/pkg/element"
	"github.com/go-drift/uitree/pkg/errors"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "uitree.yaml"

// Config represents the optional uitree.yaml configuration.
type Config struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Output OutputConfig `yaml:"output"`
}

// ArenaConfig contains element arena settings.
type ArenaConfig struct {
	Capacity       int `yaml:"capacity,omitempty"`
	ReuseThreshold int `yaml:"reuse_threshold,omitempty"`
}

// OutputConfig contains CLI output settings.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
	Debug  bool   `yaml:"debug,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Path   string
	Arena  element.Config
	Format string
	Debug  bool
}

// Load reads the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError(fmt.Errorf("failed to parse %s: %w", path, err))
	}
	return &cfg, nil
}

// LoadOptional reads uitree.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	cfg, err := Load(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		var uerr *errors.UITreeError
		if stderrors.As(err, &uerr) {
			return nil, err
		}
		return nil, configError(fmt.Errorf("failed to read %s: %w", FileName, err))
	}
	return cfg, nil
}

// Resolve loads the configuration and fills in defaults. An explicit path
// must exist; otherwise uitree.yaml in dir is optional.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
		if err != nil {
			var uerr *errors.UITreeError
			if !stderrors.As(err, &uerr) {
				err = configError(fmt.Errorf("failed to read %s: %w", path, err))
			}
			return nil, err
		}
	} else {
		cfg, err = LoadOptional(dir)
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, FileName)
	}

	format := strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	if format == "" {
		format = "text"
	}
	if format != "text" && format != "json" {
		return nil, configError(fmt.Errorf("output.format %q: must be text or json", cfg.Output.Format))
	}
	if cfg.Arena.Capacity < 0 {
		return nil, configError(fmt.Errorf("arena.capacity %d: must not be negative", cfg.Arena.Capacity))
	}

	return &Resolved{
		Path: path,
		Arena: element.Config{
			InitialCapacity: cfg.Arena.Capacity,
			ReuseThreshold:  cfg.Arena.ReuseThreshold,
		},
		Format: format,
		Debug:  cfg.Output.Debug,
	}, nil
}

func configError(err error) error {
	return &errors.UITreeError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
}
