//go:build !unix

package xdg

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// platformHome defers to the standard library on platforms without a
// passwd-style user database.
func platformHome() (string, error) {
	h, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	if !filepath.IsAbs(h) {
		return "", errors.Wrapf(ErrHomeDirNotFound, "home is not absolute: %q", h)
	}
	return h, nil
}
