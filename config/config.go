package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// Config holds user-configurable viewer defaults.
type Config struct {
	// DefaultFilter is applied when neither the command line nor a
	// saved location carries a filter.
	DefaultFilter string `json:"default_filter"`
	// Mouse enables pointer interaction; disable for terminals whose
	// mouse reporting interferes with copy/paste.
	Mouse bool `json:"mouse"`
	// LayoutAspect is the width/height ratio assumed when packing
	// reports that arrive without rectangles.
	LayoutAspect float64 `json:"layout_aspect"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Mouse:        true,
		LayoutAspect: 2.0,
	}
}

// Path returns ~/.config/unitmap/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "unitmap", "config.json")
}

// Load loads config from disk; returns defaults on error. Comments in
// the file are tolerated.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		log.Printf("unitmap: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
