package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/wattwise/wattwise/internal/logging"
)

// SupportedConfigVersions is the semver constraint a config file's version
// field must satisfy. Bumped only when the schema changes incompatibly.
const SupportedConfigVersions = "^1.0"

// DefaultConfigVersion is written by examples and assumed for files that
// omit the version field.
const DefaultConfigVersion = "1.0.0"

// OutputConfig holds rendering preferences.
type OutputConfig struct {
	// DefaultFormat is used when --output is not given: "table" or "json".
	DefaultFormat string `yaml:"default_format"`
}

// Config is the persistent CLI configuration.
type Config struct {
	// Version is the config schema version, checked against
	// SupportedConfigVersions.
	Version string         `yaml:"version"`
	Output  OutputConfig   `yaml:"output"`
	Logging logging.Config `yaml:"logging"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Version: DefaultConfigVersion,
		Output:  OutputConfig{DefaultFormat: "table"},
		Logging: logging.Config{Level: "info", Format: "console"},
	}
}

// DefaultPath returns ~/.wattwise/config.yaml, or empty when the home
// directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wattwise", "config.yaml")
}

// Load reads the config file at path, falling back to DefaultPath when path
// is empty. A missing file yields the defaults without error; a present but
// malformed or version-incompatible file is an error, since silently
// ignoring explicit configuration would be worse than failing.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is user-supplied by design
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := checkVersion(cfg.Version); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// checkVersion validates the schema version against the supported range.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid config version %q: %w", version, err)
	}
	constraint, err := semver.NewConstraint(SupportedConfigVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("config version %s is outside supported range %s", version, SupportedConfigVersions)
	}
	return nil
}
