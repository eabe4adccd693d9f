package xdg

// RuntimeDirStatus classifies a candidate runtime directory against the
// spec's security requirements. The checks run in order and the first
// failure wins, so a directory that is both foreign-owned and
// world-readable reports RuntimeDirWrongOwner.
type RuntimeDirStatus int

const (
	// RuntimeDirValid means the directory exists, is owned by the current
	// user, and has mode 0700.
	RuntimeDirValid RuntimeDirStatus = iota

	// RuntimeDirNotFound means the path does not exist or is not a
	// directory.
	RuntimeDirNotFound

	// RuntimeDirWrongOwner means the directory is owned by another user.
	RuntimeDirWrongOwner

	// RuntimeDirInsecurePermissions means the permission bits grant some
	// access to group or other, or withhold it from the owner; anything
	// but exactly 0700.
	RuntimeDirInsecurePermissions
)

// String returns a short lowercase description suitable for logs.
func (s RuntimeDirStatus) String() string {
	switch s {
	case RuntimeDirValid:
		return "valid"
	case RuntimeDirNotFound:
		return "not found"
	case RuntimeDirWrongOwner:
		return "wrong owner"
	case RuntimeDirInsecurePermissions:
		return "insecure permissions"
	default:
		return "unknown"
	}
}
