package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Vendor and AppName namespace every file the application writes.
const (
	Vendor  = "soocke"
	AppName = "ScreenshotTextExtractor"
)

// Config holds runtime configuration for capture, OCR and app behavior.
// Fields are loaded from a JSON file; missing fields keep their defaults.
type Config struct {
	Debug bool `json:"debug"`

	// Capture parameters
	ScreenshotDir     string `json:"screenshot_dir"`
	PreCaptureDelayMs int    `json:"pre_capture_delay_ms"`
	SettleDelayMs     int    `json:"settle_delay_ms"`
	OffscreenX        int    `json:"offscreen_x"`
	OffscreenY        int    `json:"offscreen_y"`

	// OCR engine parameters
	TessdataPrefix string `json:"tessdata_prefix"`
	Preprocess     bool   `json:"preprocess"`

	// UI parameters
	ThumbnailWidth    int `json:"thumbnail_width"`
	ThumbnailHeight   int `json:"thumbnail_height"`
	TickMs            int `json:"tick_ms"`
	ShutdownTimeoutMs int `json:"shutdown_timeout_ms"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:             false,
		ScreenshotDir:     "",
		PreCaptureDelayMs: 50,
		SettleDelayMs:     20,
		OffscreenX:        -10000,
		OffscreenY:        -10000,
		TessdataPrefix:    "",
		Preprocess:        false,
		ThumbnailWidth:    320,
		ThumbnailHeight:   240,
		TickMs:            100,
		ShutdownTimeoutMs: 2000,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.PreCaptureDelayMs < 0 || c.PreCaptureDelayMs > 1000 {
		c.PreCaptureDelayMs = 50
	}
	// Settle waits must never be skipped, otherwise the window can end up in the shot.
	if c.SettleDelayMs <= 0 || c.SettleDelayMs > 1000 {
		c.SettleDelayMs = 20
	}
	if c.OffscreenX > -1000 {
		c.OffscreenX = -10000
	}
	if c.OffscreenY > -1000 {
		c.OffscreenY = -10000
	}
	if c.ThumbnailWidth < 50 {
		c.ThumbnailWidth = 320
	}
	if c.ThumbnailHeight < 50 {
		c.ThumbnailHeight = 240
	}
	if c.TickMs <= 0 {
		c.TickMs = 100
	}
	if c.ShutdownTimeoutMs <= 0 {
		c.ShutdownTimeoutMs = 2000
	}
	return nil
}

// PreCaptureDelay is the pause between disabling the trigger and moving the window.
func (c *Config) PreCaptureDelay() time.Duration {
	return time.Duration(c.PreCaptureDelayMs) * time.Millisecond
}

// SettleDelay is the wait after each window move.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// Tick is the UI update loop interval.
func (c *Config) Tick() time.Duration { return time.Duration(c.TickMs) * time.Millisecond }

// ShutdownTimeout bounds the wait for an in-flight OCR worker at exit.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}

// ResolveScreenshotDir returns the configured screenshot directory or the
// application cache directory when unset.
func (c *Config) ResolveScreenshotDir() string {
	if c.ScreenshotDir != "" {
		return c.ScreenshotDir
	}
	return filepath.Join(xdg.CacheHome, Vendor, AppName, "temp_screenshots")
}

// DefaultPath returns the location of config.json under the XDG config home.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(Vendor, AppName, "config.json"))
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
