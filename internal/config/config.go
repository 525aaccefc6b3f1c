// Package config loads the REPL's optional ~/.mage.toml, grounded on
// gavlooth-codeloom's internal/config package (same Load/DefaultConfig
// shape, same BurntSushi/toml dependency).
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the REPL's ambient settings (spec.md §6's REPL surface).
type Config struct {
	HistoryPath  string `toml:"history_path"`
	Prompt       string `toml:"prompt"`
	HistoryLimit int    `toml:"history_limit"`
}

// DefaultConfig matches spec.md §6's "~/.mage_history, mode 0640" default
// exactly, plus a prompt and history size original_source/repl.py left
// hardcoded.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		HistoryPath:  filepath.Join(home, ".mage_history"),
		Prompt:       "user=> ",
		HistoryLimit: 1000,
	}
}

// Load reads path (if non-empty and present) over DefaultConfig, falling
// back to ~/.mage.toml when path is empty. A missing config file is not an
// error: the REPL runs fine on defaults alone.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".mage.toml")
		}
	}

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
