package commands

import (
	"path/filepath"

	"github.com/fatih/color"

	"github.com/thoreinstein/basedir/internal/doctor"
	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

// Severity glyph colors for doctor output.
var (
	passColor = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
)

// statusIcon renders a severity as a single colored glyph.
func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return passColor.Sprint("✓")
	case doctor.SeverityInfo:
		return infoColor.Sprint("ℹ")
	case doctor.SeverityWarning:
		return warnColor.Sprint("⚠")
	case doctor.SeverityError:
		return failColor.Sprint("✗")
	default:
		return "?"
	}
}

// appDir returns the application subdirectory to append: the flag value when
// given, otherwise the configured default.
func appDir(flag string) string {
	if flag != "" {
		return flag
	}
	if loadedConfig != nil {
		return loadedConfig.App
	}
	return ""
}

// joinApp appends an application subdirectory to every entry. An empty app
// returns dirs unchanged.
func joinApp(dirs []string, app string) []string {
	if app == "" {
		return dirs
	}
	joined := make([]string, len(dirs))
	for i, d := range dirs {
		joined[i] = filepath.Join(d, app)
	}
	return joined
}

// mapEnvError attaches exit codes and suggestions to resolution failures.
// Errors that already carry an exit code pass through unchanged.
func mapEnvError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case errors.Is(err, xdg.ErrHomeDirNotFound):
		return errors.NewSystemError(err, "set HOME to an absolute path")
	case errors.Is(err, xdg.ErrRuntimeDirNotSet):
		return errors.NewSystemError(err,
			"XDG_RUNTIME_DIR is normally provided by the session manager (pam_systemd)")
	}
	return err
}
