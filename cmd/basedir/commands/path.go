package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/internal/logging"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

var pathApp string

func init() {
	pathCmd.Flags().StringVar(&pathApp, "app", "",
		"append an application subdirectory to each path")
	rootCmd.AddCommand(pathCmd)
}

// kinds lists the directory kinds accepted by path and list, in display
// order.
var kinds = []string{
	"data-home",
	"config-home",
	"cache-home",
	"state-home",
	"runtime-dir",
	"data-dirs",
	"config-dirs",
}

var kindDescriptions = map[string]string{
	"data-home":   "user-specific data files (XDG_DATA_HOME)",
	"config-home": "user-specific configuration files (XDG_CONFIG_HOME)",
	"cache-home":  "user-specific non-essential data (XDG_CACHE_HOME)",
	"state-home":  "user-specific state: logs, history (XDG_STATE_HOME)",
	"runtime-dir": "user-specific runtime files (XDG_RUNTIME_DIR)",
	"data-dirs":   "data search path (XDG_DATA_DIRS)",
	"config-dirs": "config search path (XDG_CONFIG_DIRS)",
}

var pathCmd = &cobra.Command{
	Use:   "path [kind]",
	Short: "Print a base directory path",
	Long: `Print the resolved path for one directory kind.

Single directories print as one line. Search-path kinds (data-dirs,
config-dirs) print one entry per line in precedence order.

Run without a kind on a terminal to pick one interactively.`,
	Example: `  # Print the data home
  basedir path data-home

  # Print the config search path, one entry per line
  basedir path config-dirs

  # Print where an application should keep its cache
  basedir path cache-home --app myapp`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: kinds,
	RunE:      runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	var kind string
	if len(args) == 1 {
		kind = args[0]
	} else {
		selected, err := pickKind()
		if err != nil {
			return err
		}
		if selected == "" {
			// Picker aborted
			return nil
		}
		kind = selected
	}

	paths, err := resolveKind(xdg.Default(), kind, appDir(pathApp))
	if err != nil {
		return mapEnvError(err)
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintln(out, p)
	}
	return nil
}

// resolveKind resolves a directory kind against r. Single-directory kinds
// return one path; search-path kinds return every entry in precedence
// order. A non-empty app is joined onto each result.
func resolveKind(r *xdg.Resolver, kind, app string) ([]string, error) {
	var (
		path string
		err  error
	)

	switch kind {
	case "data-home":
		path, err = r.DataHome()
	case "config-home":
		path, err = r.ConfigHome()
	case "cache-home":
		path, err = r.CacheHome()
	case "state-home":
		path, err = r.StateHome()
	case "runtime-dir":
		path, err = r.RuntimeDir()
	case "data-dirs":
		return joinApp(r.DataDirs(), app), nil
	case "config-dirs":
		return joinApp(r.ConfigDirs(), app), nil
	default:
		err := errors.Wrapf(errors.ErrUnknownKind, "resolving %q", kind)
		return nil, errors.NewUserError(err, "valid kinds: "+strings.Join(kinds, ", "))
	}

	if err != nil {
		return nil, err
	}
	return joinApp([]string{path}, app), nil
}

// pickKind opens an interactive picker over the directory kinds. It returns
// an empty string when the user aborts.
func pickKind() (string, error) {
	if !logging.IsTTY(os.Stdout) {
		return "", errors.NewUserError(errors.New("directory kind required"),
			"valid kinds: "+strings.Join(kinds, ", "))
	}

	r := xdg.Default()
	idx, err := fuzzyfinder.Find(
		kinds,
		func(i int) string {
			return kinds[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			desc := kindDescriptions[kinds[i]]
			resolved, err := resolveKind(r, kinds[i], appDir(pathApp))
			if err != nil {
				return fmt.Sprintf("%s\n\n(%s)", desc, err)
			}
			return fmt.Sprintf("%s\n\n%s", desc, strings.Join(resolved, "\n"))
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "interactive selection failed")
	}

	return kinds[idx], nil
}
