package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/basedir/internal/config"
	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Create the basedir configuration file with default values.

The file lands at <config-home>/basedir/config.yaml, where <config-home>
honors XDG_CONFIG_HOME. The write is atomic, so an interrupted init never
leaves a half-written file behind.`,
	Example: `  # Write the default config
  basedir init

  # Overwrite an existing config
  basedir init --force

  See Also: basedir doctor`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	configPath, err := config.DefaultPath()
	if err != nil {
		return mapEnvError(err)
	}

	out := cmd.OutOrStdout()

	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(out, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use --force to overwrite")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(out, "Created %s\n", configPath)
	return nil
}
