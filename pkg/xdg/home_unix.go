//go:build unix

package xdg

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// platformHome resolves the current user's home directory for the process
// environment. $HOME wins when it holds an absolute path; the user database
// is the fallback for stripped-down environments (cron, containers) that
// run without one.
func platformHome() (string, error) {
	if h := os.Getenv(envHome); h != "" && filepath.IsAbs(h) {
		return h, nil
	}
	u, err := user.Current()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	if u.HomeDir == "" || !filepath.IsAbs(u.HomeDir) {
		return "", errors.Wrapf(ErrHomeDirNotFound, "user database has no home for uid %d", os.Getuid())
	}
	return u.HomeDir, nil
}
