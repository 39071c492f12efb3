package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/remotedata"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	mode, err := cfg.Mode()
	if err != nil {
		t.Fatalf("Mode() error: %v", err)
	}
	if mode != remotedata.ModeNone {
		t.Errorf("Mode() = %q, want %q", mode, remotedata.ModeNone)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "netguard.toml",
			content: `remote_data = "astropy"
verbose = true
audit_log = "guard.jsonl"
`,
		},
		{
			name: "yaml",
			file: "netguard.yaml",
			content: `remote_data: astropy
verbose: true
audit_log: guard.jsonl
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.RemoteData != "astropy" {
				t.Errorf("RemoteData = %q, want astropy", cfg.RemoteData)
			}
			if !cfg.Verbose {
				t.Error("Verbose should be true")
			}
			if cfg.JSON {
				t.Error("JSON should default to false")
			}
			if cfg.AuditLog != "guard.jsonl" {
				t.Errorf("AuditLog = %q, want guard.jsonl", cfg.AuditLog)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"invalid mode", "bad.toml", `remote_data = "everything"`, "invalid config"},
		{"malformed toml", "broken.toml", `remote_data = `, "failed to parse config"},
		{"malformed yaml", "broken.yaml", "remote_data: [", "failed to parse config"},
		{"unknown extension", "netguard.json", `{}`, "unsupported config format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestValidate_AuditLogDirectory(t *testing.T) {
	cfg := Default()
	cfg.AuditLog = "logs" + string(filepath.Separator)

	if err := cfg.Validate(); err == nil {
		t.Error("audit_log ending in a separator should be rejected")
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()

	if got := Find(dir); got != "" {
		t.Errorf("Find() in empty dir = %q, want empty", got)
	}

	writeFile(t, dir, ".netguard.yml", "verbose: true\n")
	writeFile(t, dir, ".netguard.toml", "verbose = true\n")

	if got := Find(dir); got != filepath.Join(dir, ".netguard.toml") {
		t.Errorf("Find() = %q, want the toml file first", got)
	}
}

func TestResolvePath(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"relative", "conf/netguard.toml", filepath.Join(root, "conf", "netguard.toml")},
		{"escape attempt", "../../etc/netguard.toml", filepath.Join(root, "etc", "netguard.toml")},
		{"absolute", "/etc/netguard.toml", "/etc/netguard.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(root, tt.path)
			if err != nil {
				t.Fatalf("ResolvePath() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolvePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad_Fixtures(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(testutil.WriteFixture(t, dir, "netguard.toml"))
	if err != nil {
		t.Fatalf("Load(netguard.toml) error: %v", err)
	}
	if mode, _ := cfg.Mode(); mode != remotedata.ModeAstropy {
		t.Errorf("toml fixture mode = %q, want astropy", mode)
	}

	cfg, err = Load(testutil.WriteFixture(t, dir, "netguard.yaml"))
	if err != nil {
		t.Fatalf("Load(netguard.yaml) error: %v", err)
	}
	if mode, _ := cfg.Mode(); mode != remotedata.ModeGitHub || !cfg.Verbose {
		t.Errorf("yaml fixture = %+v", cfg)
	}

	if _, err := Load(testutil.WriteFixture(t, dir, "invalid.toml")); err == nil {
		t.Error("invalid fixture should fail validation")
	}
}
