//go:build unix

package xdg

import (
	"os"
	"syscall"

	"github.com/cockroachdb/errors"
)

// ValidateRuntimeDir reports whether path is usable as XDG_RUNTIME_DIR: an
// existing directory, owned by the current effective user, with mode
// exactly 0700. The check is advisory; it never creates, repairs, or
// chmods anything.
//
// A missing path is an expected outcome, not an error: it reports
// (RuntimeDirNotFound, nil). The error is non-nil only when the directory
// could not be inspected at all (for example a permission error on a parent
// component), and then the status is not meaningful.
func ValidateRuntimeDir(path string) (RuntimeDirStatus, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return RuntimeDirNotFound, nil
		}
		return RuntimeDirNotFound, errors.Wrapf(err, "stat runtime dir %q", path)
	}
	if !info.IsDir() {
		return RuntimeDirNotFound, nil
	}
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return RuntimeDirNotFound, errors.Newf("no ownership metadata for %q", path)
	}
	if int(st.Uid) != os.Geteuid() {
		return RuntimeDirWrongOwner, nil
	}
	if info.Mode().Perm() != 0o700 {
		return RuntimeDirInsecurePermissions, nil
	}
	return RuntimeDirValid, nil
}
