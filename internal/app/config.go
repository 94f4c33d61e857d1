package app

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corey/tally/internal/domain/classifier"
)

// Size transform names accepted in config files.
const (
	TransformIdentity = "identity"
	TransformLog      = "log"
)

// DefaultPrefix is the counter namespace prefix used when the config file
// does not override it. Classifiers sharing a DB path and prefix share
// counters.
const DefaultPrefix = "default"

// Config is the on-disk configuration, read from .tally/config.yml.
// Every field has a usable zero/default value so the file is optional.
type Config struct {
	Binarized     bool    `yaml:"binarized"`
	UniformPriors bool    `yaml:"uniform_priors"`
	SmoothingK    float64 `yaml:"smoothing_k"`
	SizeTransform string  `yaml:"size_transform"` // "identity" or "log"
	Prefix        string  `yaml:"prefix"`
	DBPath        string  `yaml:"db_path"` // overrides .tally/tally.db
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		SmoothingK:    classifier.DefaultSmoothingK,
		SizeTransform: TransformIdentity,
		Prefix:        DefaultPrefix,
	}
}

// LoadConfig reads .tally/config.yml under projectRoot, falling back to
// defaults when the file is absent. File values only override fields they
// set; e.g. a file that only sets `binarized: true` keeps the default
// smoothing constant.
func LoadConfig(projectRoot string) (Config, error) {
	cfg := DefaultConfig()
	paths := NewPaths(projectRoot)

	data, err := os.ReadFile(paths.Config)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", paths.Config, err)
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.SizeTransform == "" {
		cfg.SizeTransform = TransformIdentity
	}
	return cfg, nil
}

// ClassifierOptions converts the config into classifier.Options.
// Unknown size transforms are rejected rather than silently mapped.
func (c Config) ClassifierOptions() (classifier.Options, error) {
	var transform classifier.SizeTransform
	switch c.SizeTransform {
	case TransformIdentity, "":
		transform = classifier.SizeIdentity
	case TransformLog:
		transform = classifier.SizeNaturalLog
	default:
		return classifier.Options{}, fmt.Errorf("unknown size_transform %q (want %q or %q)",
			c.SizeTransform, TransformIdentity, TransformLog)
	}
	return classifier.Options{
		Binarized:     c.Binarized,
		UniformPriors: c.UniformPriors,
		SmoothingK:    c.SmoothingK,
		SizeTransform: transform,
	}, nil
}
