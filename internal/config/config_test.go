package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "₽" {
		t.Errorf("Currency = %q, want ₽", cfg.General.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.General.DataDir = "/tmp/wishes"
	amount := int64(10000)
	cfg.Budget.DefaultAmount = &amount
	cfg.Appearance.Theme = "terminal"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.Currency != "$" {
		t.Errorf("Currency = %q, want $", loaded.General.Currency)
	}
	if loaded.General.DataDir != "/tmp/wishes" {
		t.Errorf("DataDir = %q, want /tmp/wishes", loaded.General.DataDir)
	}
	if loaded.Budget.DefaultAmount == nil || *loaded.Budget.DefaultAmount != 10000 {
		t.Errorf("DefaultAmount = %v, want 10000", loaded.Budget.DefaultAmount)
	}
	if loaded.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", loaded.Appearance.Theme)
	}
}

func TestDataDir_FallsBackToDefault(t *testing.T) {
	var cfg Config
	if got := cfg.DataDir(); got != DefaultDataDir() {
		t.Errorf("DataDir = %q, want default %q", got, DefaultDataDir())
	}

	cfg.General.DataDir = "/custom/dir"
	if got := cfg.DataDir(); got != "/custom/dir" {
		t.Errorf("DataDir = %q, want /custom/dir", got)
	}
}

func TestConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	want := filepath.Join(dir, "wishsplit", "config.toml")
	if got := ConfigPath(); got != want {
		t.Errorf("ConfigPath = %q, want %q", got, want)
	}
}
