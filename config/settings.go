package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Settings is the per-user state restored on the next launch.
type Settings struct {
	Geometry           string `yaml:"geometry,omitempty"`
	Language           string `yaml:"language,omitempty"`
	LastScreenshotPath string `yaml:"last_screenshot_path,omitempty"`
}

// SettingsStore persists Settings as YAML. Loading never fails: a missing or
// unreadable file yields zero Settings so callers fall back to defaults.
type SettingsStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// DefaultSettingsPath returns settings.yaml under the XDG config home.
func DefaultSettingsPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(Vendor, AppName, "settings.yaml"))
}

// NewSettingsStore returns a store backed by the file at path.
func NewSettingsStore(path string, logger *slog.Logger) *SettingsStore {
	return &SettingsStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *SettingsStore) Path() string { return s.path }

// Load reads the settings file.
func (s *SettingsStore) Load() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	var st Settings
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && s.logger != nil {
			s.logger.Warn("settings read failed", "path", s.path, "error", err)
		}
		return Settings{}
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		if s.logger != nil {
			s.logger.Warn("settings decode failed, using defaults", "path", s.path, "error", err)
		}
		return Settings{}
	}
	return st
}

// Save writes settings atomically (temp file + rename).
func (s *SettingsStore) Save(st Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := yaml.Marshal(&st)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("settings: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("settings: rename: %w", err)
	}
	return nil
}
