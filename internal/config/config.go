// Package config loads the extraction run's settings: which files to read,
// which dialect to parse them with, where emitted records land, and how
// much of the machine to use. Mirrors the teacher repo's config package in
// shape (JSON file with search-path fallback to defaults) and adds YAML as
// an alternate format, grounded on gopkg.in/yaml.v3.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for a hdlfacts extraction run.
type Config struct {
	// Dialect selects the Dialect/grammar pairing from internal/extractor's
	// registry (e.g. "vhdl"). Empty means the binary's default dialect.
	Dialect string `json:"dialect,omitempty" yaml:"dialect,omitempty"`

	// Extensions lists the file extensions (with leading dot) this run
	// considers source files when walking a directory.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// Exclude is a list of glob patterns to skip when walking a directory.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`

	// VName carries the static fields every emitted VName in this run
	// shares: language, root and corpus. Signature and Path are computed
	// per definition and per file respectively.
	VName VNameConfig `json:"vname,omitempty" yaml:"vname,omitempty"`

	// Output controls where emitted records are written.
	Output OutputConfig `json:"output,omitempty" yaml:"output,omitempty"`

	// Concurrency controls how many files are extracted in parallel.
	Concurrency ConcurrencyConfig `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`

	// Metrics controls the optional Prometheus /metrics listener.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// LogLevel is a logrus level name: "debug", "info", "warn", "error".
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
}

// VNameConfig holds the static VName fields shared by every record in a run.
type VNameConfig struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Root     string `json:"root,omitempty" yaml:"root,omitempty"`
	Corpus   string `json:"corpus,omitempty" yaml:"corpus,omitempty"`
}

// OutputConfig controls the sink target.
type OutputConfig struct {
	// Path is a file to write NDJSON records to; empty means stdout.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ConcurrencyConfig controls the pipeline's worker pool.
type ConcurrencyConfig struct {
	// Workers is the number of files processed in parallel. 0 means auto
	// (GOMAXPROCS).
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// MetricsConfig controls the optional Prometheus listener.
type MetricsConfig struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Addr    string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() *Config {
	return &Config{
		Dialect:    "vhdl",
		Extensions: []string{".vhd", ".vhdl"},
		VName: VNameConfig{
			Language: "vhdl",
			Root:     "",
			Corpus:   "",
		},
		Concurrency: ConcurrencyConfig{Workers: 0},
		LogLevel:    "info",
	}
}

// Load finds and loads the configuration file for rootPath.
// Search order:
//  1. ./hdlfacts.json, ./hdlfacts.yaml, ./hdlfacts.yml (current working directory)
//  2. <rootPath>/hdlfacts.{json,yaml,yml} (if rootPath is a directory different from cwd)
//  3. ~/.config/hdlfacts/config.{json,yaml,yml}
//
// Returns DefaultConfig if no config file is found.
func Load(rootPath string) (*Config, error) {
	cwd, _ := os.Getwd()

	var searchPaths []string
	for _, name := range []string{"hdlfacts.json", "hdlfacts.yaml", "hdlfacts.yml"} {
		searchPaths = append(searchPaths, filepath.Join(cwd, name))
	}

	if info, err := os.Stat(rootPath); err == nil && info.IsDir() {
		absRoot, _ := filepath.Abs(rootPath)
		if absRoot != cwd {
			for _, name := range []string{"hdlfacts.json", "hdlfacts.yaml", "hdlfacts.yml"} {
				searchPaths = append(searchPaths, filepath.Join(rootPath, name))
			}
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range []string{"config.json", "config.yaml", "config.yml"} {
			searchPaths = append(searchPaths, filepath.Join(home, ".config", "hdlfacts", name))
		}
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file, dispatching on
// extension between JSON and YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Dialect == "" {
		c.Dialect = "vhdl"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".vhd", ".vhdl"}
	}
	if c.VName.Language == "" {
		c.VName.Language = c.Dialect
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Save writes the configuration to path, choosing JSON or YAML by
// extension.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
