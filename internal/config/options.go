package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces the resolver's own knobs so they never collide with
// the configuration keys being resolved.
const envPrefix = "SETTINGS_"

// Options holds the resolver's own settings: where each source lives and
// which delimiter nests flat keys. They are distinct from the configuration
// being resolved and may themselves be overridden through SETTINGS_-prefixed
// environment variables.
type Options struct {
	// BaseDir is the directory relative source paths and relative
	// path-valued fields resolve against. Empty means the working
	// directory.
	// Env: SETTINGS_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// SecretsDir is the Docker secrets directory.
	// Env: SETTINGS_SECRETS_DIR
	SecretsDir string `env:"SECRETS_DIR" envDefault:"/run/secrets"`

	// DotenvPath is the dotenv file location.
	// Env: SETTINGS_DOTENV_PATH
	DotenvPath string `env:"DOTENV_PATH" envDefault:".env"`

	// YAMLPath is the YAML configuration file location.
	// Env: SETTINGS_YAML_PATH
	YAMLPath string `env:"YAML_PATH" envDefault:"config.yaml"`

	// Delimiter separates nested key segments in flat sources. It is
	// restricted to underscore and dot characters so delimiter-nested keys
	// stay valid dotenv keys.
	// Env: SETTINGS_DELIMITER
	Delimiter string `env:"DELIMITER" envDefault:"__"`
}

// OptionsFromEnv builds Options from SETTINGS_-prefixed environment
// variables, falling back to the declared defaults.
func OptionsFromEnv() (Options, error) {
	var opts Options
	if err := env.ParseWithOptions(&opts, env.Options{Prefix: envPrefix}); err != nil {
		return Options{}, fmt.Errorf("error parsing resolver options: %w", err)
	}
	return opts.normalized()
}

// normalized fills in the base directory and anchors relative source paths
// to it.
func (o Options) normalized() (Options, error) {
	if o.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Options{}, fmt.Errorf("error resolving base directory: %w", err)
		}
		o.BaseDir = wd
	}

	o.SecretsDir = o.anchor(o.SecretsDir)
	o.DotenvPath = o.anchor(o.DotenvPath)
	o.YAMLPath = o.anchor(o.YAMLPath)

	if o.Delimiter == "" {
		o.Delimiter = "__"
	}
	for _, r := range o.Delimiter {
		if r != '_' && r != '.' {
			return Options{}, fmt.Errorf("%w, got %q", ErrInvalidDelimiter, o.Delimiter)
		}
	}

	return o, nil
}

func (o Options) anchor(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.BaseDir, path)
}
