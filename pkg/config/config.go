// Package config loads the optional loom.yaml adapter configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"gopkg.in/yaml.v3"
)

// Config represents the optional loom.yaml configuration.
type Config struct {
	Adapter AdapterConfig `yaml:"adapter"`
	Engine  EngineConfig  `yaml:"engine"`
}

// AdapterConfig contains adapter metadata.
type AdapterConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// EngineConfig contains engine settings.
type EngineConfig struct {
	// VerboseErrors enables stack traces in the default error handler.
	VerboseErrors bool `yaml:"verbose_errors,omitempty"`
	// EnforceAffinity binds an affinity guard to the engine at startup.
	// Defaults to true; set false only for single-threaded embedding.
	EnforceAffinity *bool `yaml:"enforce_affinity,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root            string
	ModulePath      string
	AdapterName     string
	AdapterID       string
	VerboseErrors   bool
	EnforceAffinity bool
}

// LoadOptional reads loom.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "loom.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read loom.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse loom.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads loom.yaml (if present) and resolves defaults. The adapter
// name falls back to the enclosing module's final path element; the adapter
// ID falls back to the module path with slashes dotted.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Adapter.Name)
	if name == "" {
		name = defaultName(modulePath, dir)
	}

	id := strings.TrimSpace(cfg.Adapter.ID)
	if id == "" {
		id = strings.ReplaceAll(modulePath, "/", ".")
	}

	enforce := true
	if cfg.Engine.EnforceAffinity != nil {
		enforce = *cfg.Engine.EnforceAffinity
	}

	return &Resolved{
		Root:            dir,
		ModulePath:      modulePath,
		AdapterName:     name,
		AdapterID:       id,
		VerboseErrors:   cfg.Engine.VerboseErrors,
		EnforceAffinity: enforce,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) > 0 && parts[len(parts)-1] != "" {
		return parts[len(parts)-1]
	}
	return filepath.Base(dir)
}
