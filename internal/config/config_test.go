package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	basedirerrors "github.com/thoreinstein/basedir/internal/errors"
)

func TestInit(t *testing.T) {
	viper.Reset()

	Init()

	// Check defaults are set
	if viper.GetInt("version") != CurrentVersion {
		t.Errorf("expected version default %d, got %d", CurrentVersion, viper.GetInt("version"))
	}
	if viper.GetString("format") != "text" {
		t.Errorf("expected format default text, got %q", viper.GetString("format"))
	}
	if viper.GetString("color") != "auto" {
		t.Errorf("expected color default auto, got %q", viper.GetString("color"))
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	// Point the config dir at an empty temp dir to avoid loading any real
	// config file.
	t.Setenv("BASEDIR_CONFIG_DIR", t.TempDir())

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected config to be returned")
	}
	if cfg.Format != "text" {
		t.Errorf("expected default format text, got %q", cfg.Format)
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := []byte("version: 1\nformat: json\napp: myapp\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Format != "json" {
		t.Errorf("expected format json, got %q", cfg.Format)
	}
	if cfg.App != "myapp" {
		t.Errorf("expected app myapp, got %q", cfg.App)
	}
	if cfg.Color != "auto" {
		t.Errorf("expected color to default to auto, got %q", cfg.Color)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing", "config.yaml"))
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unsupported version",
			content: "version: 2\n",
			wantErr: "version: unsupported config version: 2",
		},
		{
			name:    "invalid format",
			content: "version: 1\nformat: xml\n",
			wantErr: "format: invalid format: xml",
		},
		{
			name:    "invalid color mode",
			content: "version: 1\ncolor: sometimes\n",
			wantErr: "color: invalid color mode: sometimes",
		},
		{
			name:    "absolute app dir",
			content: "version: 1\napp: /etc/myapp\n",
			wantErr: "app: invalid path: /etc/myapp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init()

			dir := t.TempDir()
			configPath := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(configPath)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if err.Error() != "validating config: "+tt.wantErr {
				t.Errorf("Load() error = %v, want %v", err, "validating config: "+tt.wantErr)
			}
			if !basedirerrors.Is(err, basedirerrors.ErrInvalidConfig) {
				t.Error("Load() error should report ErrInvalidConfig")
			}
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	// 1. Setup a specific config file
	dir := t.TempDir()
	fileA := filepath.Join(dir, "config_a.yaml")
	if err := os.WriteFile(fileA, []byte("version: 1\nformat: json\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// 2. Initialize and Load specific file
	Init()
	if _, err := Load(fileA); err != nil {
		t.Fatalf("First Load failed: %v", err)
	}

	// 3. Setup a default config file in a different directory
	dirB := t.TempDir()
	t.Setenv("BASEDIR_CONFIG_DIR", dirB)
	fileB := filepath.Join(dirB, "config.yaml")
	if err := os.WriteFile(fileB, []byte("version: 1\nformat: toml\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// 4. Re-Initialize. This should clear the specific file from step 2.
	Init()

	// 5. Load with empty path. Should pick up fileB from BASEDIR_CONFIG_DIR.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Second Load failed: %v", err)
	}

	if cfg.Format != "toml" {
		t.Errorf("expected config from default path (fileB) with format toml, got %q", cfg.Format)
		if viper.ConfigFileUsed() == fileA {
			t.Errorf("Still using fileA: %s", viper.ConfigFileUsed())
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{
			name: "default config is valid",
			cfg:  Default(),
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: nil, // any error
		},
		{
			name:    "version zero",
			cfg:     &Config{Version: 0, Format: "text", Color: "auto"},
			wantErr: ErrVersionTooLow,
		},
		{
			name:    "future version",
			cfg:     &Config{Version: CurrentVersion + 1, Format: "text", Color: "auto"},
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "bad format",
			cfg:     &Config{Version: 1, Format: "csv", Color: "auto"},
			wantErr: ErrInvalidFormat,
		},
		{
			name:    "bad color",
			cfg:     &Config{Version: 1, Format: "text", Color: "maybe"},
			wantErr: ErrInvalidColorMode,
		},
		{
			name:    "app escapes base dir",
			cfg:     &Config{Version: 1, Format: "text", Color: "auto", App: "../outside"},
			wantErr: ErrInvalidPath,
		},
		{
			name:    "app with null byte",
			cfg:     &Config{Version: 1, Format: "text", Color: "auto", App: "bad\x00name"},
			wantErr: ErrInvalidPath,
		},
		{
			name: "nested app dir is valid",
			cfg:  &Config{Version: 1, Format: "text", Color: "auto", App: "myorg/myapp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)

			if tt.cfg != nil && tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}

			if len(errs) == 0 {
				t.Fatal("Validate() = no errors, want at least one")
			}
			if tt.wantErr != nil && !errors.Is(errs[0], tt.wantErr) {
				t.Errorf("Validate()[0] = %v, want %v", errs[0], tt.wantErr)
			}
		})
	}
}

func TestValidFormat(t *testing.T) {
	for _, f := range Formats {
		if !ValidFormat(f) {
			t.Errorf("ValidFormat(%q) = false, want true", f)
		}
	}
	if ValidFormat("xml") {
		t.Error("ValidFormat(xml) = true, want false")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("BASEDIR_CONFIG_DIR", "/custom/confdir")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join("/custom/confdir", "config.yaml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}

func TestDir_UsesConfigHome(t *testing.T) {
	t.Setenv("BASEDIR_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	if want := filepath.Join("/xdg/config", AppName); dir != want {
		t.Errorf("Dir() = %q, want %q", dir, want)
	}
}
