// Package config handles configuration loading and book home resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// BookConfig holds settings for the phonebook store itself.
type BookConfig struct {
	Format string `yaml:"format"` // "json" | "yaml"
}

// ExportConfig controls where timestamped exports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"` // empty means <book home>/exports
}

// StyleConfig controls terminal output styling.
type StyleConfig struct {
	Color string `yaml:"color"` // "auto" | "always" | "never"
}

// BluebookConfig is the root per-home configuration.
type BluebookConfig struct {
	Book   BookConfig   `yaml:"book"`
	Export ExportConfig `yaml:"export"`
	Style  StyleConfig  `yaml:"style"`
}

// Default returns a BluebookConfig populated with sensible defaults.
func Default() *BluebookConfig {
	return &BluebookConfig{
		Book:   BookConfig{Format: "json"},
		Export: ExportConfig{Dir: ""},
		Style:  StyleConfig{Color: "auto"},
	}
}

// Load reads a per-home config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*BluebookConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if book, ok := raw["book"].(map[string]any); ok {
		if v, ok := book["format"].(string); ok && v != "" {
			cfg.Book.Format = v
		}
	}

	if export, ok := raw["export"].(map[string]any); ok {
		if v, ok := export["dir"].(string); ok {
			cfg.Export.Dir = v
		}
	}

	if style, ok := raw["style"].(map[string]any); ok {
		if v, ok := style["color"].(string); ok && v != "" {
			cfg.Style.Color = v
		}
	}

	return cfg, nil
}

// ---------------------------------------------------------------------------
// Book home resolution
// ---------------------------------------------------------------------------

// globalConfigPath returns the path to the global bluebook config file.
// This file stores only book_home (and future global settings).
func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "bluebook", "config.yaml"), nil
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveBookHome returns the book home path and the source of the resolution.
// Priority: BLUEBOOK_HOME env → persisted global config → ~/.bluebook
// source is one of "env", "config", or "default".
func ResolveBookHome() (path, source string) {
	if env := os.Getenv("BLUEBOOK_HOME"); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	if persisted, ok, _ := GetPersistedBookHome(); ok {
		return persisted, "config"
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bluebook"), "default"
}

// GetBookHome returns the resolved book home path.
func GetBookHome() string {
	path, _ := ResolveBookHome()
	return path
}

// GetPersistedBookHome reads book_home from the global config.
// Returns ("", false, nil) if not set.
func GetPersistedBookHome() (string, bool, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", false, nil
	}

	val, _ := raw["book_home"].(string)
	val = strings.TrimSpace(val)
	if val == "" {
		return "", false, nil
	}

	p, err := normalizePath(val)
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}

// SetPersistedBookHome normalizes path and persists it in the global config.
// Returns the normalized path.
func SetPersistedBookHome(path string) (string, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return "", err
	}

	cfgPath, err := globalConfigPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", err
	}

	// Read existing global config, preserving any other keys.
	var raw map[string]any
	if data, err := os.ReadFile(cfgPath); err == nil {
		_ = yaml.Unmarshal(data, &raw)
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	raw["book_home"] = normalized

	out, err := yaml.Marshal(raw)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(cfgPath, out, 0o600); err != nil {
		return "", err
	}
	return normalized, nil
}

// ClearPersistedBookHome removes book_home from the global config.
// Returns true if the key was present and removed.
// If the file becomes empty after removal it is deleted.
func ClearPersistedBookHome() (bool, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false, nil
	}

	if _, ok := raw["book_home"]; !ok {
		return false, nil
	}
	delete(raw, "book_home")

	if len(raw) == 0 {
		_ = os.Remove(cfgPath)
		return true, nil
	}

	out, err := yaml.Marshal(raw)
	if err != nil {
		return false, err
	}
	return true, os.WriteFile(cfgPath, out, 0o600)
}
