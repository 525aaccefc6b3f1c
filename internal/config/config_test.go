package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Prompt != "user=> " {
		t.Errorf("Prompt = %q, want default", cfg.Prompt)
	}
	if cfg.HistoryLimit != 1000 {
		t.Errorf("HistoryLimit = %d, want default 1000", cfg.HistoryLimit)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mage.toml")
	contents := "prompt = \"mage=> \"\nhistory_limit = 50\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Prompt != "mage=> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "mage=> ")
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
	if cfg.HistoryPath == "" {
		t.Errorf("HistoryPath should retain its default when not overridden")
	}
}
