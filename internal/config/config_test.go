package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/jacoelho/dq/internal/output"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}
	return path
}

func TestParseValid(t *testing.T) {
	t.Parallel()

	file := writeTempFile(t, "doc.yaml", "status: up\n")

	tests := []struct {
		name string
		args []string
		want *Config
	}{
		{
			name: "lookup only",
			args: []string{"dq", "-lookup", "status=up", file},
			want: &Config{Files: []string{file}, Lookup: "status=up", Format: output.FormatText},
		},
		{
			name: "lookup with select and format",
			args: []string{"dq", "-lookup", "status", "-select", "select name", "-format", "json", file},
			want: &Config{Files: []string{file}, Lookup: "status", Select: "select name", Format: output.FormatJSON},
		},
		{
			name: "jsonpath",
			args: []string{"dq", "-jsonpath", "$.status", "-format", "yaml", file},
			want: &Config{Files: []string{file}, JSONPath: "$.status", Format: output.FormatYAML},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, result := Parse(tc.args)
			if result != nil {
				t.Fatalf("Parse(%v) unexpected exit result: %+v", tc.args, result)
			}
			if !reflect.DeepEqual(cfg, tc.want) {
				t.Errorf("Parse(%v) = %+v, want %+v", tc.args, cfg, tc.want)
			}
		})
	}
}

func TestParseMultipleFiles(t *testing.T) {
	t.Parallel()

	first := writeTempFile(t, "a.yaml", "status: up\n")
	second := writeTempFile(t, "b.yaml", "status: down\n")

	cfg, result := Parse([]string{"dq", "-lookup", "status", first, second})
	if result != nil {
		t.Fatalf("Parse() unexpected exit result: %+v", result)
	}
	if !reflect.DeepEqual(cfg.Files, []string{first, second}) {
		t.Errorf("Files = %v, want both inputs in order", cfg.Files)
	}
}

func TestParseHelp(t *testing.T) {
	t.Parallel()

	cfg, result := Parse([]string{"dq", "-h"})
	if cfg != nil {
		t.Fatalf("Parse() config = %+v, want nil on help", cfg)
	}
	if result == nil || result.ExitCode != 0 {
		t.Fatalf("Parse() result = %+v, want exit code 0", result)
	}
	if !strings.Contains(result.Message, "Usage: dq") {
		t.Errorf("help message %q does not include usage", result.Message)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	file := writeTempFile(t, "doc.yaml", "status: up\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no arguments", args: nil, want: "no arguments provided"},
		{name: "no input files", args: []string{"dq", "-lookup", "status"}, want: "no input files specified"},
		{name: "no query", args: []string{"dq", file}, want: "either --lookup or --jsonpath is required"},
		{name: "lookup and jsonpath", args: []string{"dq", "-lookup", "a", "-jsonpath", "$.a", file}, want: "mutually exclusive"},
		{name: "select without lookup", args: []string{"dq", "-jsonpath", "$.a", "-select", "name", file}, want: "--select requires --lookup"},
		{name: "missing file", args: []string{"dq", "-lookup", "a", "absent.yaml"}, want: "not found"},
		{name: "unknown format", args: []string{"dq", "-lookup", "a", "-format", "csv", file}, want: "unknown format"},
		{name: "unknown flag", args: []string{"dq", "-bogus", file}, want: "failed to parse arguments"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, result := Parse(tc.args)
			if cfg != nil {
				t.Fatalf("Parse(%v) config = %+v, want nil", tc.args, cfg)
			}
			if result == nil || result.ExitCode != 1 {
				t.Fatalf("Parse(%v) result = %+v, want exit code 1", tc.args, result)
			}
			if !strings.Contains(result.Message, tc.want) {
				t.Errorf("message %q does not contain %q", result.Message, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	file := writeTempFile(t, "doc.yaml", "status: up\n")

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "valid", config: Config{Files: []string{file}, Lookup: "status"}},
		{name: "no files", config: Config{Lookup: "status"}, wantErr: ErrNoInputFiles},
		{name: "no query", config: Config{Files: []string{file}}, wantErr: ErrNoQuery},
		{
			name:    "query conflict",
			config:  Config{Files: []string{file}, Lookup: "a", JSONPath: "$.a"},
			wantErr: ErrQueryConflict,
		},
		{
			name:    "select without lookup",
			config:  Config{Files: []string{file}, JSONPath: "$.a", Select: "name"},
			wantErr: ErrSelectConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.config.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err != tc.wantErr {
				t.Fatalf("Validate() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
