package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	basedirerrors "github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

// AppName is the application name used for the config directory and file.
const AppName = "basedir"

// CurrentVersion is the newest config schema version this build understands.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	// Version is the config schema version.
	Version int `mapstructure:"version" yaml:"version"`

	// Format is the default output format for listing commands
	// (text, json, yaml, or toml).
	Format string `mapstructure:"format" yaml:"format"`

	// Color controls colored output: auto, always, or never.
	Color string `mapstructure:"color" yaml:"color"`

	// App is an optional application subdirectory appended to resolved
	// base directories, e.g. "myapp" or "myorg/myapp".
	App string `mapstructure:"app" yaml:"app,omitempty"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Format:  "text",
		Color:   "auto",
	}
}

// Dir returns the directory searched for the config file. BASEDIR_CONFIG_DIR
// overrides the usual <config-home>/basedir location, mostly for tests.
func Dir() (string, error) {
	if dir := os.Getenv("BASEDIR_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	configHome, err := xdg.ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, AppName), nil
}

// DefaultPath returns the full path of the default config file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Re-initializing clears any config file pinned by a previous Load.
func Init() {
	viper.Reset()

	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if dir, err := Dir(); err == nil {
		viper.AddConfigPath(dir)
	}

	// Environment variable support
	viper.SetEnvPrefix("BASEDIR")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("format", "text")
	viper.SetDefault("color", "auto")
	viper.SetDefault("app", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		switch {
		case notFound && path == "":
			// Implicit load with no file present: use defaults.
		case notFound || os.IsNotExist(err):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		err := errors.Wrap(errs[0], "validating config")
		return nil, errors.Mark(err, basedirerrors.ErrInvalidConfig)
	}

	return &cfg, nil
}
