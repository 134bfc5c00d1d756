package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv(EnvDBPath, "")
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	isolate(t)

	if Exists() {
		t.Fatal("Exists() = true before any save")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.General.DBPath = filepath.Join(dir, "custom.db")
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("config perm = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("Theme = %q, want tokyo-night", got.Appearance.Theme)
	}
	if GetDBPath(got) != cfg.General.DBPath {
		t.Fatalf("GetDBPath = %q, want %q", GetDBPath(got), cfg.General.DBPath)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme after failed load = %q, want default", cfg.Appearance.Theme)
	}
}

func TestDBPathPrecedence(t *testing.T) {
	dir := isolate(t)

	cfg := DefaultConfig()
	if got, want := GetDBPath(cfg), filepath.Join(dir, "data", "spendit", "budget.db"); got != want {
		t.Fatalf("default GetDBPath = %q, want %q", got, want)
	}

	cfg.General.DBPath = "/from/config.db"
	if got := GetDBPath(cfg); got != "/from/config.db" {
		t.Fatalf("config GetDBPath = %q", got)
	}

	t.Setenv(EnvDBPath, "/from/env.db")
	if got := GetDBPath(cfg); got != "/from/env.db" {
		t.Fatalf("env GetDBPath = %q", got)
	}
}

func TestLogPathDefault(t *testing.T) {
	dir := isolate(t)

	if got, want := GetLogPath(DefaultConfig()), filepath.Join(dir, "data", "spendit", "spendit.log"); got != want {
		t.Fatalf("GetLogPath = %q, want %q", got, want)
	}
}
