// Package config resolves worktime settings: where the ledger file
// lives, how fine relative-time phrases get, and whether output is
// colored. Precedence: command-line flag > environment > config file >
// defaults. The resolved value is threaded into every command; nothing
// here is process-global.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds all configurable worktime settings.
type Config struct {
	LedgerPath  string `json:"ledger_path"` // path to the ledger file
	Granularity string `json:"granularity"` // "second" | "minute" | "hour" | "day"
	NoColor     bool   `json:"no_color"`
}

// Defaults returns the built-in configuration values.
// The ledger lives at ~/.worktime.yaml unless overridden.
func Defaults() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		LedgerPath:  filepath.Join(home, ".worktime.yaml"),
		Granularity: "minute",
	}, nil
}

// Load reads ~/.config/worktime/config.json when present and applies
// environment overrides (WORKTIME_PATH, NO_COLOR) on top.
func Load() (Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return Config{}, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(home, ".config", "worktime", "config.json")
	file, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg = Merge(cfg, file)

	if env := os.Getenv("WORKTIME_PATH"); env != "" {
		cfg.LedgerPath = env
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}
	return cfg, nil
}

// loadFile reads and parses a JSON config file at path.
// Returns nil (no error) if the file is absent.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge applies overlay values over base, keeping base where the
// overlay is unset.
func Merge(base Config, overlay *Config) Config {
	if overlay == nil {
		return base
	}
	if overlay.LedgerPath != "" {
		base.LedgerPath = overlay.LedgerPath
	}
	if overlay.Granularity != "" {
		base.Granularity = overlay.Granularity
	}
	if overlay.NoColor {
		base.NoColor = true
	}
	return base
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
