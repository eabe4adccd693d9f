//go:build !unix

package xdg

// ValidateRuntimeDir always reports RuntimeDirValid on platforms without
// unix ownership and permission semantics.
func ValidateRuntimeDir(path string) (RuntimeDirStatus, error) {
	return RuntimeDirValid, nil
}
