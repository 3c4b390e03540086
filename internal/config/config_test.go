package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dialect != "vhdl" {
		t.Errorf("Dialect = %q, want vhdl", cfg.Dialect)
	}
	if len(cfg.Extensions) == 0 {
		t.Error("expected non-empty default Extensions")
	}
}

func TestSaveLoadRoundTripJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hdlfacts.json")

	cfg := DefaultConfig()
	cfg.VName.Corpus = "example.com/hdl"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.VName.Corpus != "example.com/hdl" {
		t.Errorf("Corpus = %q, want example.com/hdl", loaded.VName.Corpus)
	}
	if loaded.Dialect != "vhdl" {
		t.Errorf("Dialect = %q, want vhdl", loaded.Dialect)
	}
}

func TestSaveLoadRoundTripYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hdlfacts.yaml")

	cfg := DefaultConfig()
	cfg.Concurrency.Workers = 4
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Concurrency.Workers != 4 {
		t.Errorf("Workers = %d, want 4", loaded.Concurrency.Workers)
	}
}

func TestLoadWithNoConfigFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dialect != "vhdl" {
		t.Errorf("Dialect = %q, want vhdl", cfg.Dialect)
	}
}
