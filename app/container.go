package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/screentext-go/config"
	"github.com/soocke/screentext-go/domain/capture"
	"github.com/soocke/screentext-go/domain/ocr"
	"github.com/soocke/screentext-go/ui/model"
	"github.com/soocke/screentext-go/ui/presenter"
	"github.com/soocke/screentext-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Settings   *config.SettingsStore
	Store      *capture.Store
	CaptureSvc capture.CaptureService
	OCR        *ocr.Processor
	Scan       *model.ScanModel
	RootView   *view.RootView

	// Presenters
	ScanPresenter *presenter.ScanPresenter
	Loop          *presenter.Loop
}

// BuildContainer constructs all non-Tk components. The OCR engine is created
// here through factory (ocr.NewTesseractEngine when nil); a missing engine is
// logged and surfaces later as a failed scan.
func BuildContainer(cfg *config.Config, logger *slog.Logger, settingsPath string, factory ocr.EngineFactory) (*AppContainer, error) {
	if factory == nil {
		factory = ocr.NewTesseractEngine
	}
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Settings = config.NewSettingsStore(settingsPath, logger)

	store, err := capture.NewStore(cfg.ResolveScreenshotDir())
	if err != nil {
		return nil, fmt.Errorf("screenshot directory: %w", err)
	}
	c.Store = store
	c.CaptureSvc = capture.NewCaptureService(logger, nil, store)

	opts := ocr.EngineOptions{
		TessdataPrefix: cfg.TessdataPrefix,
		Preprocess:     cfg.Preprocess,
	}
	c.OCR = ocr.NewProcessor(ocr.DefaultLanguageCode(), opts, factory, logger)
	c.Scan = model.NewScanModel(ocr.DefaultLanguage)

	c.RootView = view.NewRootView(cfg, logger)
	c.ScanPresenter = presenter.NewScanPresenter(c.Scan, c.RootView, view.MainWindow{}, c.CaptureSvc, c.OCR, c.Settings, cfg, logger)
	return c, nil
}
