package commands

import (
	"testing"

	"github.com/thoreinstein/basedir/internal/config"
	"github.com/thoreinstein/basedir/internal/errors"
	"github.com/thoreinstein/basedir/pkg/xdg"
)

func pathTestResolver() *xdg.Resolver {
	return xdg.NewResolver(xdg.MapLookup(map[string]string{
		"HOME":            "/home/ferris",
		"XDG_RUNTIME_DIR": "/run/user/1000",
	}))
}

func TestResolveKind(t *testing.T) {
	r := pathTestResolver()

	tests := []struct {
		kind string
		app  string
		want []string
	}{
		{"data-home", "", []string{"/home/ferris/.local/share"}},
		{"config-home", "", []string{"/home/ferris/.config"}},
		{"cache-home", "", []string{"/home/ferris/.cache"}},
		{"state-home", "", []string{"/home/ferris/.local/state"}},
		{"runtime-dir", "", []string{"/run/user/1000"}},
		{"data-dirs", "", []string{"/usr/local/share", "/usr/share"}},
		{"config-dirs", "", []string{"/etc/xdg"}},
		{"config-home", "myapp", []string{"/home/ferris/.config/myapp"}},
		{"data-dirs", "myapp", []string{"/usr/local/share/myapp", "/usr/share/myapp"}},
	}

	for _, tt := range tests {
		name := tt.kind
		if tt.app != "" {
			name += " with app"
		}
		t.Run(name, func(t *testing.T) {
			got, err := resolveKind(r, tt.kind, tt.app)
			if err != nil {
				t.Fatalf("resolveKind(%q) error = %v", tt.kind, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("resolveKind(%q) = %v, want %v", tt.kind, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("resolveKind(%q)[%d] = %q, want %q", tt.kind, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolveKind_Unknown(t *testing.T) {
	_, err := resolveKind(pathTestResolver(), "tmp-home", "")
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, errors.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}

func TestResolveKind_RuntimeDirNotSet(t *testing.T) {
	r := xdg.NewResolver(xdg.MapLookup(map[string]string{"HOME": "/home/ferris"}))

	_, err := resolveKind(r, "runtime-dir", "")
	if !errors.Is(err, xdg.ErrRuntimeDirNotSet) {
		t.Errorf("expected ErrRuntimeDirNotSet, got %v", err)
	}
}

func TestResolveKind_MissingHome(t *testing.T) {
	r := xdg.NewResolver(xdg.MapLookup(nil))

	_, err := resolveKind(r, "config-home", "")
	if !errors.Is(err, xdg.ErrHomeDirNotFound) {
		t.Errorf("expected ErrHomeDirNotFound, got %v", err)
	}

	// Search paths never need the home directory.
	got, err := resolveKind(r, "config-dirs", "")
	if err != nil {
		t.Fatalf("resolveKind(config-dirs) error = %v", err)
	}
	if len(got) != 1 || got[0] != "/etc/xdg" {
		t.Errorf("resolveKind(config-dirs) = %v, want [/etc/xdg]", got)
	}
}

func TestJoinApp(t *testing.T) {
	dirs := []string{"/usr/local/share", "/usr/share"}

	same := joinApp(dirs, "")
	if len(same) != 2 || same[0] != dirs[0] || same[1] != dirs[1] {
		t.Errorf("joinApp with empty app = %v, want %v", same, dirs)
	}

	got := joinApp(dirs, "myorg/myapp")
	want := []string{"/usr/local/share/myorg/myapp", "/usr/share/myorg/myapp"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("joinApp[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAppDir(t *testing.T) {
	origConfig := loadedConfig
	defer func() { loadedConfig = origConfig }()

	loadedConfig = nil
	if got := appDir("cli-app"); got != "cli-app" {
		t.Errorf("appDir(flag) = %q, want cli-app", got)
	}
	if got := appDir(""); got != "" {
		t.Errorf("appDir with no config = %q, want empty", got)
	}

	cfg := config.Default()
	cfg.App = "cfg-app"
	loadedConfig = cfg
	if got := appDir(""); got != "cfg-app" {
		t.Errorf("appDir from config = %q, want cfg-app", got)
	}
	if got := appDir("cli-app"); got != "cli-app" {
		t.Errorf("flag should win over config, got %q", got)
	}
}

func TestPathCommand(t *testing.T) {
	t.Setenv("HOME", "/home/ferris")
	t.Setenv("BASEDIR_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	out, err := executeCommand(t, "path", "data-home")
	if err != nil {
		t.Fatalf("path data-home failed: %v", err)
	}
	if out != "/custom/data\n" {
		t.Errorf("output = %q, want /custom/data newline", out)
	}
}

func TestPathCommand_SearchPath(t *testing.T) {
	t.Setenv("HOME", "/home/ferris")
	t.Setenv("BASEDIR_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_DATA_DIRS", "/opt/share:/usr/share")

	out, err := executeCommand(t, "path", "data-dirs")
	if err != nil {
		t.Fatalf("path data-dirs failed: %v", err)
	}
	if out != "/opt/share\n/usr/share\n" {
		t.Errorf("output = %q, want one entry per line", out)
	}
}

func TestPathCommand_UnknownKind(t *testing.T) {
	t.Setenv("HOME", "/home/ferris")
	t.Setenv("BASEDIR_CONFIG_DIR", t.TempDir())

	_, err := executeCommand(t, "path", "music-home")
	if !errors.Is(err, errors.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}
