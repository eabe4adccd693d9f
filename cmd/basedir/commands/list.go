package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/basedir/internal/config"
	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

var (
	listFormat string
	listApp    string
)

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "",
		"output format: text, json, yaml, toml (default from config)")
	listCmd.Flags().StringVar(&listApp, "app", "",
		"append an application subdirectory to each path")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every base directory",
	Long: `Print every resolved base directory and search path at once.

An unset runtime directory shows as "(not set)" in text output and is
omitted from the structured formats.`,
	Example: `  # Tabular overview
  basedir list

  # Structured output for scripting
  basedir list --format json
  basedir list --format yaml
  basedir list --format toml

  # Paths for a specific application
  basedir list --app myapp`,
	RunE: runList,
}

// listing is the serializable view of every resolved directory.
type listing struct {
	DataHome   string   `json:"data_home" yaml:"data_home" toml:"data_home"`
	ConfigHome string   `json:"config_home" yaml:"config_home" toml:"config_home"`
	CacheHome  string   `json:"cache_home" yaml:"cache_home" toml:"cache_home"`
	StateHome  string   `json:"state_home" yaml:"state_home" toml:"state_home"`
	RuntimeDir string   `json:"runtime_dir,omitempty" yaml:"runtime_dir,omitempty" toml:"runtime_dir,omitempty"`
	DataDirs   []string `json:"data_dirs" yaml:"data_dirs" toml:"data_dirs"`
	ConfigDirs []string `json:"config_dirs" yaml:"config_dirs" toml:"config_dirs"`
}

func runList(cmd *cobra.Command, _ []string) error {
	format := listFormat
	if format == "" {
		format = "text"
		if loadedConfig != nil && loadedConfig.Format != "" {
			format = loadedConfig.Format
		}
	}
	if !config.ValidFormat(format) {
		err := errors.Wrapf(errors.ErrUnknownFormat, "listing as %q", format)
		return errors.NewUserError(err, "valid formats: "+strings.Join(config.Formats, ", "))
	}

	l, err := collectListing(xdg.Default(), appDir(listApp))
	if err != nil {
		return mapEnvError(err)
	}

	return writeListing(cmd.OutOrStdout(), l, format)
}

// collectListing resolves every directory kind. An unset runtime directory
// is reported as empty rather than failing the whole listing.
func collectListing(r *xdg.Resolver, app string) (*listing, error) {
	var (
		l   listing
		err error
	)

	if l.DataHome, err = r.DataHome(); err != nil {
		return nil, err
	}
	if l.ConfigHome, err = r.ConfigHome(); err != nil {
		return nil, err
	}
	if l.CacheHome, err = r.CacheHome(); err != nil {
		return nil, err
	}
	if l.StateHome, err = r.StateHome(); err != nil {
		return nil, err
	}

	runtimeDir, err := r.RuntimeDir()
	if err != nil && !errors.Is(err, xdg.ErrRuntimeDirNotSet) {
		return nil, err
	}
	l.RuntimeDir = runtimeDir

	l.DataDirs = r.DataDirs()
	l.ConfigDirs = r.ConfigDirs()

	if app != "" {
		l.DataHome = filepath.Join(l.DataHome, app)
		l.ConfigHome = filepath.Join(l.ConfigHome, app)
		l.CacheHome = filepath.Join(l.CacheHome, app)
		l.StateHome = filepath.Join(l.StateHome, app)
		if l.RuntimeDir != "" {
			l.RuntimeDir = filepath.Join(l.RuntimeDir, app)
		}
		l.DataDirs = joinApp(l.DataDirs, app)
		l.ConfigDirs = joinApp(l.ConfigDirs, app)
	}

	return &l, nil
}

func writeListing(w io.Writer, l *listing, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(l); err != nil {
			return errors.Wrap(err, "encoding JSON")
		}
	case "yaml":
		data, err := yaml.Marshal(l)
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		if _, err := w.Write(data); err != nil {
			return errors.Wrap(err, "writing YAML")
		}
	case "toml":
		if err := toml.NewEncoder(w).Encode(l); err != nil {
			return errors.Wrap(err, "encoding TOML")
		}
	default:
		writeListingText(w, l)
	}
	return nil
}

func writeListingText(w io.Writer, l *listing) {
	runtimeDir := l.RuntimeDir
	if runtimeDir == "" {
		runtimeDir = "(not set)"
	}

	sep := string(filepath.ListSeparator)
	rows := []struct {
		name  string
		value string
	}{
		{"data-home", l.DataHome},
		{"config-home", l.ConfigHome},
		{"cache-home", l.CacheHome},
		{"state-home", l.StateHome},
		{"runtime-dir", runtimeDir},
		{"data-dirs", strings.Join(l.DataDirs, sep)},
		{"config-dirs", strings.Join(l.ConfigDirs, sep)},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-12s %s\n", row.name, row.value)
	}
}
