package xdg

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Environment variables defined by the XDG Base Directory Specification.
const (
	EnvDataHome   = "XDG_DATA_HOME"
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvCacheHome  = "XDG_CACHE_HOME"
	EnvStateHome  = "XDG_STATE_HOME"
	EnvRuntimeDir = "XDG_RUNTIME_DIR"
	EnvDataDirs   = "XDG_DATA_DIRS"
	EnvConfigDirs = "XDG_CONFIG_DIRS"
)

// envHome is not an XDG variable but anchors every home-relative default.
const envHome = "HOME"

// Default search paths used when the list variables are unset or contain no
// usable entries.
var (
	defaultDataDirs   = []string{"/usr/local/share", "/usr/share"}
	defaultConfigDirs = []string{"/etc/xdg"}
)

var (
	// ErrHomeDirNotFound indicates the user's home directory could not be
	// determined, so home-relative defaults cannot be computed.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrRuntimeDirNotSet indicates XDG_RUNTIME_DIR is unset, empty, or not
	// an absolute path. The variable has no default; callers decide how to
	// degrade.
	ErrRuntimeDirNotSet = errors.New("XDG_RUNTIME_DIR is not set")
)

// LookupFunc reports the value of an environment variable and whether it was
// present, mirroring [os.LookupEnv].
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a fixed map. It is the usual way
// to build a hermetic [Resolver] in tests.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// Resolver resolves XDG base directories against a single environment
// lookup function. The zero value is not usable; construct one with
// [NewResolver] or [Default].
//
// A Resolver holds no mutable state and performs no caching, so a single
// instance is safe for concurrent use and always reflects the environment
// as seen by its lookup function at call time.
type Resolver struct {
	lookup LookupFunc
	home   func() (string, error)
}

// NewResolver returns a Resolver that reads every variable, including HOME,
// through lookup. It never consults the process environment.
func NewResolver(lookup LookupFunc) *Resolver {
	r := &Resolver{lookup: lookup}
	r.home = r.homeFromLookup
	return r
}

// Default returns a Resolver over the process environment. When HOME is
// unset it falls back to the operating system's notion of the current
// user's home directory.
func Default() *Resolver {
	return &Resolver{lookup: os.LookupEnv, home: platformHome}
}

// defaultResolver backs the package-level functions.
var defaultResolver = Default()

// Home returns the home directory the resolver anchors its defaults to.
// The returned path is always absolute; otherwise the error unwraps to
// [ErrHomeDirNotFound].
func (r *Resolver) Home() (string, error) {
	return r.home()
}

// homeFromLookup resolves HOME strictly through the injected lookup. A
// relative HOME would leak relative base directories into every default, so
// it is rejected like an unset one.
func (r *Resolver) homeFromLookup() (string, error) {
	h, ok := r.lookup(envHome)
	if !ok || h == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "HOME is not set")
	}
	if !filepath.IsAbs(h) {
		return "", errors.Wrapf(ErrHomeDirNotFound, "HOME is not absolute: %q", h)
	}
	return h, nil
}

// DataHome returns the base directory for user-specific data files:
// $XDG_DATA_HOME, or ~/.local/share when unset, empty, or relative.
func (r *Resolver) DataHome() (string, error) {
	return r.homePath(EnvDataHome, ".local", "share")
}

// ConfigHome returns the base directory for user-specific configuration:
// $XDG_CONFIG_HOME, or ~/.config when unset, empty, or relative.
func (r *Resolver) ConfigHome() (string, error) {
	return r.homePath(EnvConfigHome, ".config")
}

// CacheHome returns the base directory for non-essential cached data:
// $XDG_CACHE_HOME, or ~/.cache when unset, empty, or relative.
func (r *Resolver) CacheHome() (string, error) {
	return r.homePath(EnvCacheHome, ".cache")
}

// StateHome returns the base directory for state that should persist
// between restarts but is not portable enough for DataHome (logs, history,
// recently-used lists): $XDG_STATE_HOME, or ~/.local/state.
func (r *Resolver) StateHome() (string, error) {
	return r.homePath(EnvStateHome, ".local", "state")
}

// RuntimeDir returns $XDG_RUNTIME_DIR. The XDG specification defines no
// fallback, so the error unwraps to [ErrRuntimeDirNotSet] when the variable
// is unset, empty, or relative. The path is returned as-is; use
// [ValidateRuntimeDir] to check its security properties.
func (r *Resolver) RuntimeDir() (string, error) {
	if p, ok := r.absPath(EnvRuntimeDir); ok {
		return p, nil
	}
	return "", ErrRuntimeDirNotSet
}

// DataDirs returns the preference-ordered search path for data files:
// $XDG_DATA_DIRS, or [/usr/local/share /usr/share]. Empty and relative
// entries are dropped; if nothing usable remains the default list is
// returned. DataHome is not included.
func (r *Resolver) DataDirs() []string {
	return r.searchPath(EnvDataDirs, defaultDataDirs)
}

// ConfigDirs returns the preference-ordered search path for configuration
// files: $XDG_CONFIG_DIRS, or [/etc/xdg]. Empty and relative entries are
// dropped; if nothing usable remains the default list is returned.
// ConfigHome is not included.
func (r *Resolver) ConfigDirs() []string {
	return r.searchPath(EnvConfigDirs, defaultConfigDirs)
}

// absPath returns the variable's value when it is a non-empty absolute
// path. Empty and relative values report false, which callers treat the
// same as unset.
func (r *Resolver) absPath(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok || v == "" || !filepath.IsAbs(v) {
		return "", false
	}
	return v, true
}

// homePath resolves a single-directory variable with a home-relative
// default.
func (r *Resolver) homePath(key string, defaultParts ...string) (string, error) {
	if p, ok := r.absPath(key); ok {
		return p, nil
	}
	home, err := r.home()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, defaultParts...)...), nil
}

// searchPath resolves a list variable, keeping only absolute entries in
// their original order.
func (r *Resolver) searchPath(key string, defaults []string) []string {
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return append([]string(nil), defaults...)
	}
	var dirs []string
	for _, p := range filepath.SplitList(v) {
		if p == "" || !filepath.IsAbs(p) {
			continue
		}
		dirs = append(dirs, p)
	}
	if len(dirs) == 0 {
		return append([]string(nil), defaults...)
	}
	return dirs
}

// Home returns the current user's home directory. See [Resolver.Home].
func Home() (string, error) { return defaultResolver.Home() }

// DataHome returns $XDG_DATA_HOME or ~/.local/share.
func DataHome() (string, error) { return defaultResolver.DataHome() }

// ConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func ConfigHome() (string, error) { return defaultResolver.ConfigHome() }

// CacheHome returns $XDG_CACHE_HOME or ~/.cache.
func CacheHome() (string, error) { return defaultResolver.CacheHome() }

// StateHome returns $XDG_STATE_HOME or ~/.local/state.
func StateHome() (string, error) { return defaultResolver.StateHome() }

// RuntimeDir returns $XDG_RUNTIME_DIR, or an error unwrapping to
// [ErrRuntimeDirNotSet] when it has no usable value.
func RuntimeDir() (string, error) { return defaultResolver.RuntimeDir() }

// DataDirs returns $XDG_DATA_DIRS or the default search path.
func DataDirs() []string { return defaultResolver.DataDirs() }

// ConfigDirs returns $XDG_CONFIG_DIRS or the default search path.
func ConfigDirs() []string { return defaultResolver.ConfigDirs() }
