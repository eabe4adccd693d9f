// Package config provides configuration management for the basedir CLI.
//
// This package handles loading and validating the basedir tool's own
// configuration file. It is distinct from the XDG resolution performed by
// pkg/xdg; the config file merely tunes the CLI's output defaults.
//
// # Configuration File
//
// The default configuration file location is <config-home>/basedir/config.yaml,
// where <config-home> is resolved by pkg/xdg (usually ~/.config). The file
// uses YAML format with the following structure:
//
//	version: 1
//	format: text    # default output format: text, json, yaml, toml
//	color: auto     # auto, always, never
//	app: myapp      # optional app subdirectory for path/find
//
// BASEDIR_CONFIG_DIR overrides the directory searched for the file, and
// BASEDIR_FORMAT, BASEDIR_COLOR, and BASEDIR_APP override individual fields
// through Viper's automatic environment binding.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("") // search default locations
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// Use a non-empty path to load a specific file; a missing explicit file is
// an error, while a missing default file silently yields defaults.
//
// # Validation
//
// Loaded configurations are validated automatically. [Validate] can also be
// used directly:
//
//	errs := config.Validate(cfg)
//	if len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
//
// # Default Values
//
// The [Default] function returns a configuration with the built-in defaults:
//
//	cfg := config.Default()
//	// cfg.Version = 1
//	// cfg.Format = "text"
//	// cfg.Color = "auto"
package config
