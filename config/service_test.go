package config

import (
	"path/filepath"
	"testing"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	s := NewService(nil)
	s.SetStorageDir(t.TempDir())
	if err := s.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	return s
}

func TestGetConfigDefaultsWithoutFile(t *testing.T) {
	s := setupTestService(t)

	cfg, err := s.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if cfg.DefaultStyle != "professional" {
		t.Errorf("DefaultStyle = %q, want professional", cfg.DefaultStyle)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}

	dir, err := s.GetStorageDir()
	if err != nil {
		t.Fatalf("GetStorageDir failed: %v", err)
	}
	if cfg.OutputDir != filepath.Join(dir, "decks") {
		t.Errorf("OutputDir = %q, want storage dir decks subfolder", cfg.OutputDir)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	s := setupTestService(t)

	want := Config{
		OutputDir:    "/tmp/decks",
		DefaultStyle: "bcg",
		PDFHandout:   true,
		DetailedLog:  true,
		Language:     "en",
	}
	if err := s.SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	got, err := s.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if got != want {
		t.Errorf("reloaded config = %+v, want %+v", got, want)
	}
}

func TestPartialConfigGetsDerivedDefaults(t *testing.T) {
	s := setupTestService(t)

	if err := s.SaveConfig(Config{PDFHandout: true}); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	cfg, err := s.GetConfig()
	if err != nil {
		t.Fatalf("GetConfig failed: %v", err)
	}
	if !cfg.PDFHandout {
		t.Error("PDFHandout flag lost on reload")
	}
	if cfg.DefaultStyle != "professional" || cfg.Language != "en" || cfg.OutputDir == "" {
		t.Errorf("derived defaults not applied: %+v", cfg)
	}
}

func TestOnConfigChangedCallback(t *testing.T) {
	s := setupTestService(t)

	var notified []Config
	s.OnConfigChanged(func(cfg Config) {
		notified = append(notified, cfg)
	})

	cfg := Defaults()
	cfg.DefaultStyle = "bain"
	if err := s.SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	if len(notified) != 1 {
		t.Fatalf("callback fired %d times, want 1", len(notified))
	}
	if notified[0].DefaultStyle != "bain" {
		t.Errorf("callback saw %+v", notified[0])
	}
}
