package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Service wraps all configuration handling: storage directory resolution,
// JSON persistence and change notification.
type Service struct {
	storageDir string
	logger     func(string)
	callbacks  []func(Config)
	mu         sync.RWMutex
}

// NewService creates a new config Service. The logger may be nil.
func NewService(logger func(string)) *Service {
	if logger == nil {
		logger = func(string) {}
	}
	return &Service{logger: logger}
}

// GetStorageDir returns the storage directory path (~/DeckForge by default).
func (s *Service) GetStorageDir() (string, error) {
	s.mu.RLock()
	sd := s.storageDir
	s.mu.RUnlock()

	if sd != "" {
		return sd, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, "DeckForge"), nil
}

// SetStorageDir overrides the storage directory (mainly for tests).
func (s *Service) SetStorageDir(dir string) {
	s.mu.Lock()
	s.storageDir = dir
	s.mu.Unlock()
}

// Initialize makes sure the storage directory exists.
func (s *Service) Initialize() error {
	dir, err := s.GetStorageDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("config: create storage dir: %w", err)
	}
	s.logger("config service initialized, storage dir: " + dir)
	return nil
}

// GetConfigPath returns the config file path.
func (s *Service) GetConfigPath() (string, error) {
	dir, err := s.GetStorageDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfig loads the saved configuration, falling back to defaults when no
// config file exists yet.
func (s *Service) GetConfig() (Config, error) {
	path, err := s.GetConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s.withDerivedDefaults(Defaults())
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s.withDerivedDefaults(cfg)
}

// SaveConfig persists the configuration and notifies registered callbacks.
func (s *Service) SaveConfig(cfg Config) error {
	path, err := s.GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create storage dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: serialize: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	s.mu.RLock()
	callbacks := append([]func(Config){}, s.callbacks...)
	s.mu.RUnlock()
	for _, cb := range callbacks {
		cb(cfg)
	}

	s.logger("config saved to " + path)
	return nil
}

// OnConfigChanged registers a callback fired after each successful save.
func (s *Service) OnConfigChanged(cb func(Config)) {
	s.mu.Lock()
	s.callbacks = append(s.callbacks, cb)
	s.mu.Unlock()
}

func (s *Service) withDerivedDefaults(cfg Config) (Config, error) {
	if cfg.OutputDir == "" {
		dir, err := s.GetStorageDir()
		if err != nil {
			return Config{}, err
		}
		cfg.OutputDir = filepath.Join(dir, "decks")
	}
	if cfg.DefaultStyle == "" {
		cfg.DefaultStyle = Defaults().DefaultStyle
	}
	if cfg.Language == "" {
		cfg.Language = Defaults().Language
	}
	return cfg, nil
}
