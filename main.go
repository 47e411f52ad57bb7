package main

import (
	"os"

	"github.com/soocke/screentext-go/app"
	"github.com/soocke/screentext-go/config"
)

func main() {
	cfg := config.DefaultConfig()
	cfgPath, err := config.DefaultPath()
	if err == nil {
		loaded, lerr := config.Load(cfgPath)
		cfg = loaded
		err = lerr
	}

	logger := NewLogger(cfg.Debug)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", err)
	}

	settingsPath, err := config.DefaultSettingsPath()
	if err != nil {
		logger.Error("settings path", "error", err)
		os.Exit(1)
	}

	application := app.NewApp("Screenshot Text Extractor", 800, 700, cfg, settingsPath, logger)
	if err := application.Start(); err != nil {
		logger.Error("application start failed", "error", err)
		os.Exit(1)
	}
}
