package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

var findAll bool

func init() {
	findCmd.Flags().BoolVar(&findAll, "all", false,
		"print every match instead of the first")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <config|data> <relative-path>",
	Short: "Locate a file across a search path",
	Long: `Search for a relative path across the base directories of a category.

The user directory (config home or data home) is checked first, then each
search-path entry in precedence order. The first match prints by default;
--all prints every match.

Exits with code 1 when nothing is found.`,
	Example: `  # Find a config file wherever it lives
  basedir find config myapp/settings.toml

  # Every installed copy of a data file
  basedir find data applications/editor.desktop --all`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	category, rel := args[0], args[1]

	if filepath.IsAbs(rel) {
		return errors.NewUserError(errors.Newf("path %q is absolute", rel),
			"pass a path relative to the base directories")
	}

	roots, err := searchRoots(xdg.Default(), category)
	if err != nil {
		return mapEnvError(err)
	}

	matches := findInRoots(roots, rel)
	if len(matches) == 0 {
		err := errors.Wrapf(errors.ErrNoMatch, "finding %q", rel)
		return errors.NewExitError(err, errors.ExitUser)
	}

	if !findAll {
		matches = matches[:1]
	}

	out := cmd.OutOrStdout()
	for _, m := range matches {
		fmt.Fprintln(out, m)
	}
	return nil
}

// searchRoots returns the directories to search for a category, most
// specific first.
func searchRoots(r *xdg.Resolver, category string) ([]string, error) {
	switch category {
	case "config":
		home, err := r.ConfigHome()
		if err != nil {
			return nil, err
		}
		return append([]string{home}, r.ConfigDirs()...), nil
	case "data":
		home, err := r.DataHome()
		if err != nil {
			return nil, err
		}
		return append([]string{home}, r.DataDirs()...), nil
	default:
		err := errors.Wrapf(errors.ErrUnknownKind, "searching %q", category)
		return nil, errors.NewUserError(err, "valid categories: config, data")
	}
}

// findInRoots returns every root/rel that exists, in root order.
func findInRoots(roots []string, rel string) []string {
	var matches []string
	for _, root := range roots {
		candidate := filepath.Join(root, rel)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		matches = append(matches, candidate)
	}
	return matches
}
