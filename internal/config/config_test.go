package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Database.Path != filepath.Join("data", "stride.db") {
		t.Fatalf("expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.Time.Zone != "UTC" {
		t.Fatalf("expected default zone, got %q", cfg.Time.Zone)
	}
}

func TestLoadReadsTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stride.toml")
	content := `
[server]
port = "9090"

[database]
path = "/var/lib/stride/stride.db"

[time]
zone = "Europe/Berlin"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if cfg.Database.Path != "/var/lib/stride/stride.db" {
		t.Fatalf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Time.Zone != "Europe/Berlin" {
		t.Fatalf("unexpected zone %q", cfg.Time.Zone)
	}
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stride.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = \"3000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected port 3000, got %q", cfg.Server.Port)
	}
	if cfg.Time.Zone != "UTC" {
		t.Fatalf("unset sections keep defaults, got zone %q", cfg.Time.Zone)
	}
}

func TestLoadEnvironmentOverridesWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stride.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = \"3000\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("STRIDE_PORT", "4000")
	t.Setenv("STRIDE_TZ", "America/New_York")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "4000" {
		t.Fatalf("env must beat the file, got %q", cfg.Server.Port)
	}
	if cfg.Time.Zone != "America/New_York" {
		t.Fatalf("env must beat the default, got %q", cfg.Time.Zone)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stride.toml")
	if err := os.WriteFile(path, []byte("[server\nport ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
