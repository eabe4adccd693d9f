package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/thoreinstein/basedir/internal/doctor"
	"github.com/thoreinstein/basedir/internal/errors"
)

func TestValidateDoctorFlags(t *testing.T) {
	defer func() {
		doctorJSON = false
		doctorQuiet = false
		doctorVerbose = false
	}()

	tests := []struct {
		name    string
		json    bool
		quiet   bool
		verbose bool
		wantErr bool
	}{
		{"no flags", false, false, false, false},
		{"json only", true, false, false, false},
		{"quiet only", false, true, false, false},
		{"verbose only", false, false, true, false},
		{"json and quiet", true, true, false, true},
		{"quiet and verbose", false, true, true, true},
		{"all three", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctorJSON = tt.json
			doctorQuiet = tt.quiet
			doctorVerbose = tt.verbose

			err := validateDoctorFlags(nil, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateDoctorFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func reportFixture() *doctor.Report {
	return &doctor.Report{
		Results: []*doctor.CheckResult{
			{Name: "home-dir", Category: "environment", Status: doctor.SeverityPass, Message: "home directory resolves"},
			{Name: "data-home", Category: "environment", Status: doctor.SeverityInfo, Message: "not set, using default"},
			{
				Name: "data-dirs", Category: "environment", Status: doctor.SeverityWarning,
				Message: "2 unusable entries", FixHint: "use absolute paths",
			},
			{
				Name: "runtime-dir", Category: "runtime", Status: doctor.SeverityError,
				Message: "directory does not exist", FixHint: "mkdir -m 0700 /run/user/1000",
			},
		},
		Summary: doctor.Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1},
	}
}

func TestOutputDoctorText_Default(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	var buf bytes.Buffer
	outputDoctorText(&buf, reportFixture())
	out := buf.String()

	if strings.Contains(out, "home-dir") {
		t.Errorf("default mode should hide passing checks:\n%s", out)
	}
	if !strings.Contains(out, "⚠ [environment] data-dirs: 2 unusable entries") {
		t.Errorf("warning line missing:\n%s", out)
	}
	if !strings.Contains(out, "✗ [runtime] runtime-dir: directory does not exist") {
		t.Errorf("error line missing:\n%s", out)
	}
	if !strings.Contains(out, "hint: mkdir -m 0700 /run/user/1000") {
		t.Errorf("fix hint missing:\n%s", out)
	}
	if !strings.Contains(out, "Summary: 1 passed, 1 info, 1 warnings, 1 errors") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestOutputDoctorText_Verbose(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	doctorVerbose = true
	defer func() { doctorVerbose = false }()

	var buf bytes.Buffer
	outputDoctorText(&buf, reportFixture())
	out := buf.String()

	if !strings.Contains(out, "✓ [environment] home-dir: home directory resolves") {
		t.Errorf("verbose mode should show passing checks:\n%s", out)
	}
	if !strings.Contains(out, "ℹ [environment] data-home: not set, using default") {
		t.Errorf("verbose mode should show info checks:\n%s", out)
	}
}

func TestOutputDoctorReport_Quiet(t *testing.T) {
	doctorQuiet = true
	defer func() { doctorQuiet = false }()

	var buf bytes.Buffer
	if err := outputDoctorReport(&buf, reportFixture()); err != nil {
		t.Fatalf("outputDoctorReport error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet mode should produce no output, got %q", buf.String())
	}
}

func TestOutputDoctorReport_JSON(t *testing.T) {
	doctorJSON = true
	defer func() { doctorJSON = false }()

	var buf bytes.Buffer
	if err := outputDoctorReport(&buf, reportFixture()); err != nil {
		t.Fatalf("outputDoctorReport error = %v", err)
	}

	var decoded struct {
		Results []struct {
			Name   string `json:"name"`
			Status int    `json:"status"`
		} `json:"results"`
		Summary struct {
			Errors int `json:"errors"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Results) != 4 {
		t.Errorf("results = %d, want 4", len(decoded.Results))
	}
	if decoded.Summary.Errors != 1 {
		t.Errorf("summary.errors = %d, want 1", decoded.Summary.Errors)
	}
}

func TestStatusIcon(t *testing.T) {
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	tests := []struct {
		severity doctor.Severity
		want     string
	}{
		{doctor.SeverityPass, "✓"},
		{doctor.SeverityInfo, "ℹ"},
		{doctor.SeverityWarning, "⚠"},
		{doctor.SeverityError, "✗"},
		{doctor.Severity(99), "?"},
	}

	for _, tt := range tests {
		if got := statusIcon(tt.severity); got != tt.want {
			t.Errorf("statusIcon(%v) = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestDoctorCommand_ExitCodes(t *testing.T) {
	t.Setenv("BASEDIR_CONFIG_DIR", t.TempDir())

	defer func() { doctorQuiet = false }()

	t.Run("broken environment reports errors", func(t *testing.T) {
		// Relative HOME cannot resolve, so the home check fails.
		t.Setenv("HOME", "relative/home")

		_, err := executeCommand(t, "doctor", "--quiet")
		if err == nil {
			t.Fatal("expected exit-code error for broken environment")
		}

		var exitErr *errors.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("expected ExitError, got %T", err)
		}
		if exitErr.Code != 2 {
			t.Errorf("Code = %d, want 2", exitErr.Code)
		}
		if exitErr.Err != nil {
			t.Errorf("Err = %v, want nil (exit code only)", exitErr.Err)
		}
	})
}
