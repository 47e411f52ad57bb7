package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/screentext-go/config"
	"github.com/soocke/screentext-go/debug"
	"github.com/soocke/screentext-go/domain/ocr"
	"github.com/soocke/screentext-go/ui/presenter"
	"github.com/soocke/screentext-go/ui/theme"
)

type app struct {
	config       *config.Config
	logger       *slog.Logger
	settingsPath string
	width        int
	height       int
	afterID      string
	closing      bool
	stopDebug    func()

	container *AppContainer
}

func NewApp(title string, width, height int, cfg *config.Config, settingsPath string, logger *slog.Logger) *app {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &app{config: cfg, logger: logger, settingsPath: settingsPath, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI, restores persisted state and enters the Tk main loop.
func (a *app) Start() error {
	c, err := BuildContainer(a.config, a.logger, a.settingsPath, nil)
	if err != nil {
		return err
	}
	a.container = c

	theme.InitStyles()
	c.RootView.Build(ocr.LanguageNames(), c.ScanPresenter.Scan, a.exitHandler, c.ScanPresenter.OnLanguageChanged)
	c.ScanPresenter.Restore()
	c.Loop = presenter.NewLoop(c.ScanPresenter, a.scheduleUpdate)

	if a.config.Debug {
		a.stopDebug = debug.StartRuntimeLogger(2*time.Second, a.logger, func() []slog.Attr {
			st := c.CaptureSvc.Stats()
			return []slog.Attr{
				slog.Int("ocr_in_flight", c.ScanPresenter.InFlight()),
				slog.Uint64("captures", st.Captures),
				slog.Uint64("capture_failures", st.Failures),
				slog.Float64("avg_capture_us", st.AvgCaptureMicros),
			}
		})
	}

	a.logger.Info("application started", "settings", a.settingsPath, "screenshot", c.Store.Path())
	a.scheduleUpdate()
	App.Wait()
	return nil
}

func (a *app) scheduleUpdate() {
	if a.closing {
		return
	}
	// Schedule the next tick using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(a.config.Tick(), func() {
		if a.container != nil && a.container.Loop != nil {
			a.container.Loop.Tick()
		}
	})
}

// exitHandler persists settings, waits briefly for a running OCR worker and
// tears down the window.
func (a *app) exitHandler() {
	if a.closing {
		return
	}
	if a.container != nil && a.container.ScanPresenter.DeferExit(a.exitHandler) {
		a.logger.Info("exit deferred until the window is restored")
		return
	}
	a.closing = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if c := a.container; c != nil {
		_ = c.ScanPresenter.Persist()
		if !c.ScanPresenter.Shutdown(a.config.ShutdownTimeout()) {
			a.logger.Warn("exiting with ocr still running")
		} else if err := c.OCR.Close(); err != nil {
			a.logger.Warn("ocr close", "error", err)
		}
	}
	if a.stopDebug != nil {
		a.stopDebug()
	}
	a.logger.Info("application closed")
	Destroy(App)
}
