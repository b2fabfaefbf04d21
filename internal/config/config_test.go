package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.OutputDir != "./download" {
		t.Errorf("OutputDir = %q, want ./download", s.OutputDir)
	}
	if s.MaxConcurrentFetches != 1 {
		t.Errorf("MaxConcurrentFetches = %d, want 1", s.MaxConcurrentFetches)
	}
	if s.MaxSequenceLength != 100000 {
		t.Errorf("MaxSequenceLength = %d, want 100000", s.MaxSequenceLength)
	}
	if s.FetchTimeout != 5*time.Minute {
		t.Errorf("FetchTimeout = %v, want 5m", s.FetchTimeout)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.OutputDir != "./download" {
		t.Errorf("OutputDir = %q, want default", s.OutputDir)
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "seqget.json")

	s := DefaultSettings()
	s.OutputDir = "/data/out"
	s.MaxConcurrentFetches = 8
	s.SkipExisting = true
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "/data/out" || loaded.MaxConcurrentFetches != 8 || !loaded.SkipExisting {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SEQGET_OUTPUT_DIR", "/env/out")
	t.Setenv("SEQGET_MAX_CONCURRENT_FETCHES", "16")

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.OutputDir != "/env/out" {
		t.Errorf("OutputDir = %q, want /env/out", s.OutputDir)
	}
	if s.MaxConcurrentFetches != 16 {
		t.Errorf("MaxConcurrentFetches = %d, want 16", s.MaxConcurrentFetches)
	}
}

func TestToOutputConfig(t *testing.T) {
	s := DefaultSettings()
	s.OutputDir = "/out"
	s.FileNameFormat = "{token}_{name}"

	cfg := s.ToOutputConfig()
	if cfg.Dir != "/out" || cfg.FileNameFormat != "{token}_{name}" {
		t.Errorf("cfg = %+v", cfg)
	}
}
