// Package xdg resolves the base directories defined by the XDG Base
// Directory Specification from environment variables, falling back to the
// spec-mandated defaults when a variable is unset, empty, or invalid.
//
// Resolution is a pure computation over environment values: nothing is ever
// created, chmodded, or otherwise touched on disk, and no result is cached.
// Callers that want a directory to exist create it themselves.
//
// # Resolution Rules
//
// Each single-directory variable (XDG_DATA_HOME, XDG_CONFIG_HOME,
// XDG_CACHE_HOME, XDG_STATE_HOME) resolves to its value when that value is
// a non-empty absolute path, and to its default below $HOME otherwise:
//
//	xdg.DataHome()   // $XDG_DATA_HOME   or ~/.local/share
//	xdg.ConfigHome() // $XDG_CONFIG_HOME or ~/.config
//	xdg.CacheHome()  // $XDG_CACHE_HOME  or ~/.cache
//	xdg.StateHome()  // $XDG_STATE_HOME  or ~/.local/state
//
// An empty variable is treated exactly like an unset one, and a relative
// value is ignored as if unset; both cases fall back to the default. When
// the home directory itself cannot be determined the error unwraps to
// [ErrHomeDirNotFound].
//
// XDG_RUNTIME_DIR has no default. [RuntimeDir] returns an error that
// unwraps to [ErrRuntimeDirNotSet] when the variable is unset, empty, or
// relative:
//
//	dir, err := xdg.RuntimeDir()
//	if errors.Is(err, xdg.ErrRuntimeDirNotSet) {
//	    // fall back to a cache path, or refuse to run
//	}
//
// The list variables (XDG_DATA_DIRS, XDG_CONFIG_DIRS) split on the OS path
// list separator, drop empty and relative entries, and fall back to the
// spec defaults when nothing valid remains:
//
//	xdg.DataDirs()   // $XDG_DATA_DIRS   or [/usr/local/share /usr/share]
//	xdg.ConfigDirs() // $XDG_CONFIG_DIRS or [/etc/xdg]
//
// # Injected Environments
//
// The package-level functions read the process environment. For hermetic
// tests, or for resolving paths on behalf of a different environment,
// construct a [Resolver] with an explicit lookup function:
//
//	r := xdg.NewResolver(xdg.MapLookup(map[string]string{
//	    "HOME":            "/home/ferris",
//	    "XDG_CONFIG_HOME": "/custom/config",
//	}))
//	cfg, err := r.ConfigHome() // /custom/config
//
// A resolver built with [NewResolver] never consults the process
// environment, not even for HOME.
//
// # Runtime Directory Validation
//
// [ValidateRuntimeDir] reports whether a candidate runtime directory meets
// the spec's security requirements (exists, owned by the current user, mode
// 0700). The check is advisory and never repairs anything:
//
//	status, err := xdg.ValidateRuntimeDir(dir)
//	if err == nil && status != xdg.RuntimeDirValid {
//	    log.Warn("runtime dir unusable", "status", status)
//	}
package xdg
