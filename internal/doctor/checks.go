package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/basedir/internal/config"
	"github.com/thoreinstein/basedir/pkg/fileutil"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

// HomeCheck verifies the home directory can be determined, since every
// home-relative default depends on it.
type HomeCheck struct {
	resolver *xdg.Resolver
}

var _ Check = (*HomeCheck)(nil)

// NewHomeCheck creates a new home directory check.
func NewHomeCheck(r *xdg.Resolver) *HomeCheck {
	return &HomeCheck{resolver: r}
}

// Name returns the unique identifier for this check.
func (c *HomeCheck) Name() string {
	return "home-dir"
}

// Category returns the grouping for this check.
func (c *HomeCheck) Category() string {
	return "environment"
}

// Run executes the home directory check.
func (c *HomeCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	home, err := c.resolver.Home()
	if err != nil {
		result.Status = SeverityError
		result.Message = "home directory could not be determined"
		result.Details = map[string]any{"error": err.Error()}
		result.FixHint = "set HOME to an absolute path"
		return result
	}

	result.Status = SeverityPass
	result.Message = "home directory resolved"
	result.Details = map[string]any{"path": home}
	return result
}

// BaseDirCheck inspects one of the single-directory XDG variables and
// reports how it will resolve.
type BaseDirCheck struct {
	name    string
	envVar  string
	resolve func() (string, error)
}

var _ Check = (*BaseDirCheck)(nil)

// NewDataHomeCheck creates a check for XDG_DATA_HOME.
func NewDataHomeCheck(r *xdg.Resolver) *BaseDirCheck {
	return &BaseDirCheck{name: "data-home", envVar: xdg.EnvDataHome, resolve: r.DataHome}
}

// NewConfigHomeCheck creates a check for XDG_CONFIG_HOME.
func NewConfigHomeCheck(r *xdg.Resolver) *BaseDirCheck {
	return &BaseDirCheck{name: "config-home", envVar: xdg.EnvConfigHome, resolve: r.ConfigHome}
}

// NewCacheHomeCheck creates a check for XDG_CACHE_HOME.
func NewCacheHomeCheck(r *xdg.Resolver) *BaseDirCheck {
	return &BaseDirCheck{name: "cache-home", envVar: xdg.EnvCacheHome, resolve: r.CacheHome}
}

// NewStateHomeCheck creates a check for XDG_STATE_HOME.
func NewStateHomeCheck(r *xdg.Resolver) *BaseDirCheck {
	return &BaseDirCheck{name: "state-home", envVar: xdg.EnvStateHome, resolve: r.StateHome}
}

// Name returns the unique identifier for this check.
func (c *BaseDirCheck) Name() string {
	return c.name
}

// Category returns the grouping for this check.
func (c *BaseDirCheck) Category() string {
	return "environment"
}

// Run executes the base directory check.
func (c *BaseDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	raw, set := os.LookupEnv(c.envVar)
	resolved, err := c.resolve()
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%s cannot be resolved", c.envVar)
		result.Details = map[string]any{"error": err.Error()}
		result.FixHint = "set HOME to an absolute path, or set " + c.envVar + " directly"
		return result
	}

	switch {
	case !set || raw == "":
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("%s is not set, using default", c.envVar)
		result.Details = map[string]any{"path": resolved, "source": "default"}
	case !filepath.IsAbs(raw):
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%s is relative and will be ignored", c.envVar)
		result.Details = map[string]any{"value": raw, "path": resolved, "source": "default"}
		result.FixHint = "set " + c.envVar + " to an absolute path or unset it"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%s is set", c.envVar)
		result.Details = map[string]any{"path": resolved, "source": "environment"}
	}

	return result
}

// SearchPathCheck inspects one of the list-valued XDG variables and reports
// which entries survive filtering.
type SearchPathCheck struct {
	name    string
	envVar  string
	resolve func() []string
}

var _ Check = (*SearchPathCheck)(nil)

// NewDataDirsCheck creates a check for XDG_DATA_DIRS.
func NewDataDirsCheck(r *xdg.Resolver) *SearchPathCheck {
	return &SearchPathCheck{name: "data-dirs", envVar: xdg.EnvDataDirs, resolve: r.DataDirs}
}

// NewConfigDirsCheck creates a check for XDG_CONFIG_DIRS.
func NewConfigDirsCheck(r *xdg.Resolver) *SearchPathCheck {
	return &SearchPathCheck{name: "config-dirs", envVar: xdg.EnvConfigDirs, resolve: r.ConfigDirs}
}

// Name returns the unique identifier for this check.
func (c *SearchPathCheck) Name() string {
	return c.name
}

// Category returns the grouping for this check.
func (c *SearchPathCheck) Category() string {
	return "environment"
}

// Run executes the search path check.
func (c *SearchPathCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  make(map[string]any),
	}

	dirs := c.resolve()
	result.Details["dirs"] = dirs

	// Search paths routinely name directories that do not exist; report
	// them without failing the check.
	var missing []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	if len(missing) > 0 {
		result.Details["missing"] = missing
	}

	raw, set := os.LookupEnv(c.envVar)
	if !set || raw == "" {
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("%s is not set, using default search path", c.envVar)
		return result
	}

	var dropped []string
	var usable int
	for _, p := range filepath.SplitList(raw) {
		if p == "" || !filepath.IsAbs(p) {
			dropped = append(dropped, p)
			continue
		}
		usable++
	}

	switch {
	case usable == 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%s has no usable entries, using default search path", c.envVar)
		result.Details["dropped"] = dropped
		result.FixHint = "use absolute paths separated by " + string(filepath.ListSeparator)
	case len(dropped) > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%s has %d unusable entries", c.envVar, len(dropped))
		result.Details["dropped"] = dropped
		result.FixHint = "use absolute paths separated by " + string(filepath.ListSeparator)
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%s has %d entries", c.envVar, usable)
	}

	return result
}

// RuntimeDirCheck verifies XDG_RUNTIME_DIR is set and meets the security
// requirements: an existing directory, owned by the current user, mode 0700.
type RuntimeDirCheck struct {
	resolver *xdg.Resolver
}

var _ Check = (*RuntimeDirCheck)(nil)

// NewRuntimeDirCheck creates a new runtime directory check.
func NewRuntimeDirCheck(r *xdg.Resolver) *RuntimeDirCheck {
	return &RuntimeDirCheck{resolver: r}
}

// Name returns the unique identifier for this check.
func (c *RuntimeDirCheck) Name() string {
	return "runtime-dir"
}

// Category returns the grouping for this check.
func (c *RuntimeDirCheck) Category() string {
	return "runtime"
}

// Run executes the runtime directory check.
func (c *RuntimeDirCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	dir, err := c.resolver.RuntimeDir()
	if err != nil {
		if errors.Is(err, xdg.ErrRuntimeDirNotSet) {
			result.Status = SeverityWarning
			result.Message = "XDG_RUNTIME_DIR is not set"
			result.FixHint = "your session manager (e.g. pam_systemd) normally provides it; applications should fall back to a cache path"
			return result
		}
		result.Status = SeverityError
		result.Message = "XDG_RUNTIME_DIR could not be resolved"
		result.Details = map[string]any{"error": err.Error()}
		return result
	}

	result.Details = map[string]any{"path": dir}

	status, err := xdg.ValidateRuntimeDir(dir)
	if err != nil {
		result.Status = SeverityError
		result.Message = "runtime directory could not be inspected"
		result.Details["error"] = err.Error()
		return result
	}

	switch status {
	case xdg.RuntimeDirValid:
		result.Status = SeverityPass
		result.Message = "runtime directory is valid"
	case xdg.RuntimeDirNotFound:
		result.Status = SeverityError
		result.Message = "runtime directory does not exist"
		result.FixHint = "log in through your session manager, or create it: mkdir -m 0700 " + dir
	case xdg.RuntimeDirWrongOwner:
		result.Status = SeverityError
		result.Message = "runtime directory is owned by another user"
		result.FixHint = "point XDG_RUNTIME_DIR at a directory you own"
	case xdg.RuntimeDirInsecurePermissions:
		result.Status = SeverityError
		result.Message = "runtime directory permissions are not 0700"
		result.FixHint = "chmod 0700 " + dir
	}

	return result
}

// ConfigFileCheck validates the CLI's own config file syntax and contents.
type ConfigFileCheck struct{}

var _ Check = (*ConfigFileCheck)(nil)

// NewConfigFileCheck creates a new config file check.
func NewConfigFileCheck() *ConfigFileCheck {
	return &ConfigFileCheck{}
}

// Name returns the unique identifier for this check.
func (c *ConfigFileCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigFileCheck) Category() string {
	return "config"
}

// Run executes the config file check.
func (c *ConfigFileCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	path, err := config.DefaultPath()
	if err != nil {
		result.Status = SeverityError
		result.Message = "config directory could not be determined"
		result.Details = map[string]any{"error": err.Error()}
		return result
	}
	result.Details = map[string]any{"path": path}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = "no config file, defaults in use"
			return result
		}
		result.Status = SeverityError
		result.Message = "config file could not be read"
		result.Details["error"] = err.Error()
		return result
	}

	// Unmarshal over defaults so omitted fields keep their default values,
	// matching what config.Load does through Viper.
	cfg := config.Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		result.Status = SeverityError
		result.Message = "config file has a YAML syntax error"
		result.Details["error"] = err.Error()
		result.FixHint = "fix the syntax in " + path
		return result
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		issues := make([]string, 0, len(errs))
		for _, e := range errs {
			issues = append(issues, e.Error())
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("config file has %d invalid field(s)", len(errs))
		result.Details["issues"] = issues
		result.FixHint = "edit " + path + " or regenerate it with: basedir init --force"
		return result
	}

	result.Status = SeverityPass
	result.Message = "config file is valid"
	return result
}

// Checks returns the standard diagnostic set in display order.
func Checks(r *xdg.Resolver) []Check {
	return []Check{
		NewHomeCheck(r),
		NewDataHomeCheck(r),
		NewConfigHomeCheck(r),
		NewCacheHomeCheck(r),
		NewStateHomeCheck(r),
		NewDataDirsCheck(r),
		NewConfigDirsCheck(r),
		NewRuntimeDirCheck(r),
		NewConfigFileCheck(),
	}
}
