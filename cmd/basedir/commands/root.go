// Package commands implements the CLI commands for basedir.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/basedir/cmd"
	"github.com/thoreinstein/basedir/internal/config"
	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// noColor holds the value of the --no-color flag.
var noColor bool

// loadedConfig and configLoadErr capture the result of config loading
// at startup. Load failures are reported lazily so commands that exist
// to diagnose or rewrite the config file can still run.
var (
	loadedConfig  *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("basedir version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "basedir",
	Short: "Query XDG base directories",
	Long: `basedir resolves the XDG Base Directory Specification against the
current environment: the data, config, cache, state, and runtime
directories, plus the data and config search paths.

Environment variables that are unset, empty, or hold relative paths are
ignored and the specification defaults apply instead. Every path printed
is absolute.`,
	Example: `  # Print the config home
  basedir path config-home

  # Print every directory as JSON
  basedir list --format json

  # Locate a config file across the search path
  basedir find config myapp/settings.toml

  # Check the environment for problems
  basedir doctor

  See Also: basedir init, basedir doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		setupColor()
		return checkConfigError(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewExitError(
			errors.New("cannot use --quiet and --verbose together"), errors.ExitUser)
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("BASEDIR_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// setupColor applies the configured color mode. The --no-color flag wins
// over the config file; NO_COLOR and TERM=dumb are handled by the color
// package itself.
func setupColor() {
	if loadedConfig != nil {
		switch loadedConfig.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}
	}
	if noColor {
		color.NoColor = true
	}
}

// checkConfigError surfaces config load failures. Help, version, doctor,
// init, and gen-doc run regardless so a broken config file can still be
// diagnosed and repaired.
func checkConfigError(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "doctor", "init", "gen-doc":
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command. main maps the returned error to an exit
// code.
func Execute() error {
	return rootCmd.Execute()
}
