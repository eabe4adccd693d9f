package config

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrUnsupportedVersion indicates the version field is newer than this
	// build understands.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidColorMode indicates an unrecognized color mode.
	ErrInvalidColorMode = errors.New("invalid color mode")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Formats lists the output formats accepted by the format field and the
// --format flag.
var Formats = []string{"text", "json", "yaml", "toml"}

// ColorModes lists the accepted values for the color field.
var ColorModes = []string{"auto", "always", "never"}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	switch {
	case cfg.Version < 1:
		errs = append(errs, ErrVersionTooLow)
	case cfg.Version > CurrentVersion:
		errs = append(errs, &FieldError{
			Field: "version",
			Value: strconv.Itoa(cfg.Version),
			Err:   ErrUnsupportedVersion,
		})
	}

	if cfg.Format != "" && !ValidFormat(cfg.Format) {
		errs = append(errs, &FieldError{
			Field: "format",
			Value: cfg.Format,
			Err:   ErrInvalidFormat,
		})
	}

	if cfg.Color != "" && !validColorMode(cfg.Color) {
		errs = append(errs, &FieldError{
			Field: "color",
			Value: cfg.Color,
			Err:   ErrInvalidColorMode,
		})
	}

	if cfg.App != "" {
		if err := validateAppDir(cfg.App); err != nil {
			errs = append(errs, &FieldError{
				Field: "app",
				Value: cfg.App,
				Err:   err,
			})
		}
	}

	return errs
}

// ValidFormat reports whether format is one of the accepted output formats.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if format == f {
			return true
		}
	}
	return false
}

func validColorMode(mode string) bool {
	for _, m := range ColorModes {
		if mode == m {
			return true
		}
	}
	return false
}

// validateAppDir checks that an app subdirectory is a well-formed relative
// path that stays below the base directory it is joined to. It does not
// check whether anything exists there.
func validateAppDir(app string) error {
	if strings.ContainsRune(app, '\x00') {
		return ErrInvalidPath
	}
	if filepath.IsAbs(app) {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(app)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return ErrInvalidPath
	}

	return nil
}

// FieldError reports a validation failure for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
