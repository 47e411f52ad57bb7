package presenter

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/soocke/screentext-go/config"
	"github.com/soocke/screentext-go/domain/capture"
	"github.com/soocke/screentext-go/domain/ocr"
	"github.com/soocke/screentext-go/ui/model"
)

// Messages shown in the result area.
const (
	MsgTakingScreenshot = "Taking screenshot..."
	MsgCaptureFailed    = "Failed to take or save screenshot. OCR aborted."
	MsgNoText           = "No text could be extracted or an error occurred during OCR. Check the log for details."
	MsgInvalidPath      = "Error: Screenshot path is invalid or file does not exist for OCR."
	MsgOCRInProgress    = "OCR is already in progress."

	PlaceholderNoShot   = "No screenshot taken yet."
	PlaceholderNewShot  = "Take a new screenshot."
	PlaceholderFailed   = "Screenshot failed."
	PlaceholderNotFound = "Screenshot file not found."
	PlaceholderBadImage = "Failed to load screenshot."
)

// ScanView is the UI surface the scan presenter drives. All methods are
// called on the Tk thread.
type ScanView interface {
	SetScanEnabled(enabled bool)
	SetText(text string)
	ShowThumbnail(path string) error
	ShowPlaceholder(caption string)
	SelectLanguage(name string)
}

// WindowControl moves the application window and pumps UI events.
type WindowControl interface {
	Position() (image.Point, error)
	Move(p image.Point)
	Settle(d time.Duration)
	Geometry() string
	SetGeometry(g string)
}

// Capturer grabs and saves one screenshot.
type Capturer interface {
	Capture(ctx context.Context) (capture.Shot, error)
}

// TextRecognizer is the OCR adapter used by the presenter.
type TextRecognizer interface {
	ProcessImage(ctx context.Context, path string) (string, bool)
	SetLanguage(code string)
}

// SettingsStore loads and saves persisted settings.
type SettingsStore interface {
	Load() config.Settings
	Save(config.Settings) error
}

type ocrResult struct {
	scanID string
	text   string
}

// ScanPresenter runs the capture -> OCR -> display cycle.
//
// OCR runs on at most one worker goroutine. The worker posts its result to a
// channel that Tick drains on the Tk thread, so the view is only touched from
// the UI thread.
type ScanPresenter struct {
	model    *model.ScanModel
	view     ScanView
	window   WindowControl
	capturer Capturer
	ocr      TextRecognizer
	settings SettingsStore
	cfg      *config.Config
	logger   *slog.Logger

	workers  errgroup.Group
	resultCh chan ocrResult
	done     chan struct{}
	stopOnce sync.Once
	inFlight atomic.Int32

	// Tk thread only.
	capturing   bool
	pendingExit func()
}

var errExitRequested = errors.New("exit requested during capture")

// NewScanPresenter constructs a scan presenter.
func NewScanPresenter(m *model.ScanModel, view ScanView, window WindowControl, capturer Capturer, rec TextRecognizer, settings SettingsStore, cfg *config.Config, logger *slog.Logger) *ScanPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if m == nil {
		m = model.NewScanModel(ocr.DefaultLanguage)
	}
	p := &ScanPresenter{
		model:    m,
		view:     view,
		window:   window,
		capturer: capturer,
		ocr:      rec,
		settings: settings,
		cfg:      cfg,
		logger:   logger,
		resultCh: make(chan ocrResult, 1),
		done:     make(chan struct{}),
	}
	p.workers.SetLimit(1)
	return p
}

// InFlight reports the number of running OCR workers (0 or 1).
func (p *ScanPresenter) InFlight() int { return int(p.inFlight.Load()) }

// Scan captures the primary display and dispatches OCR on success.
func (p *ScanPresenter) Scan() {
	if p == nil || p.view == nil || p.capturer == nil || p.ocr == nil {
		return
	}
	scanID := uuid.NewString()
	log := p.logger.With("scan_id", scanID)

	p.model.SetScanning(true)
	p.view.SetScanEnabled(false)
	p.setText(MsgTakingScreenshot)

	p.capturing = true
	shot, err := p.captureScreen(context.Background())
	p.capturing = false
	if exit := p.pendingExit; exit != nil {
		p.pendingExit = nil
		log.Info("exit requested during capture, window restored")
		exit()
		return
	}
	if err != nil {
		log.Error("scan capture failed", "error", err)
		p.setText(MsgCaptureFailed + "\n" + failureReason(err))
		p.view.ShowPlaceholder(PlaceholderFailed)
		p.finishScan()
		return
	}

	p.model.SetScreenshotPath(shot.Path)
	p.showThumbnail(shot.Path)
	p.setText(fmt.Sprintf("Screenshot taken: %s (%s)\nStarting OCR...", filepath.Base(shot.Path), humanize.Bytes(uint64(shot.Size))))
	p.saveSettings()

	p.dispatchOCR(scanID, shot.Path)
}

// dispatchOCR starts the worker, or rejects the request if one is running.
func (p *ScanPresenter) dispatchOCR(scanID, path string) {
	log := p.logger.With("scan_id", scanID)
	started := p.workers.TryGo(func() error {
		p.inFlight.Add(1)
		defer p.inFlight.Add(-1)
		text := p.runOCR(log, path)
		select {
		case p.resultCh <- ocrResult{scanID: scanID, text: text}:
		case <-p.done:
			log.Warn("ocr result dropped after shutdown")
		}
		return nil
	})
	if !started {
		log.Warn(MsgOCRInProgress)
		p.finishScan()
		return
	}
	log.Info("ocr dispatched", "path", path, "language", p.model.Language())
}

// runOCR executes on the worker goroutine and always yields a display string.
func (p *ScanPresenter) runOCR(log *slog.Logger, path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("ocr worker panic", "error", r, "stack", string(debug.Stack()))
			text = fmt.Sprintf("Critical error in OCR worker: %v", r)
		}
	}()
	if !capture.Exists(path) {
		return MsgInvalidPath
	}
	start := time.Now()
	out, ok := p.ocr.ProcessImage(context.Background(), path)
	log.Info("ocr finished", "found", ok, "elapsed", time.Since(start))
	if !ok {
		return MsgNoText
	}
	return out
}

// Tick delivers a finished OCR result on the Tk thread. Call periodically.
func (p *ScanPresenter) Tick() {
	if p == nil {
		return
	}
	select {
	case res := <-p.resultCh:
		p.onOCRComplete(res)
	default:
	}
}

func (p *ScanPresenter) onOCRComplete(res ocrResult) {
	p.logger.Debug("ocr result delivered", "scan_id", res.scanID, "chars", len(res.text))
	p.setText(res.text)
	p.finishScan()
}

func (p *ScanPresenter) finishScan() {
	p.model.SetScanning(false)
	p.view.SetScanEnabled(true)
}

// captureScreen moves the window off-screen, grabs, and always moves it back.
func (p *ScanPresenter) captureScreen(ctx context.Context) (shot capture.Shot, err error) {
	if p.window == nil {
		return p.capturer.Capture(ctx)
	}
	p.window.Settle(p.cfg.PreCaptureDelay())
	if p.pendingExit != nil {
		return capture.Shot{}, errExitRequested
	}
	orig, perr := p.window.Position()
	if perr != nil {
		p.logger.Warn("window position unavailable, capturing without relocation", "error", perr)
		return p.capturer.Capture(ctx)
	}
	settle := p.cfg.SettleDelay()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("capture panic", "error", r, "stack", string(debug.Stack()))
			shot, err = capture.Shot{}, fmt.Errorf("capture panic: %v", r)
		}
		p.window.Move(orig)
		p.window.Settle(settle)
	}()
	p.window.Move(image.Pt(p.cfg.OffscreenX, p.cfg.OffscreenY))
	p.window.Settle(settle)
	if p.pendingExit != nil {
		return capture.Shot{}, errExitRequested
	}
	return p.capturer.Capture(ctx)
}

// DeferExit postpones exit while a capture has the window relocated or is
// pumping UI events. It reports whether exit was deferred; a deferred exit
// runs once the window is back in place.
func (p *ScanPresenter) DeferExit(exit func()) bool {
	if p == nil || !p.capturing {
		return false
	}
	p.pendingExit = exit
	return true
}

// OnLanguageChanged applies a language picked in the view.
func (p *ScanPresenter) OnLanguageChanged(name string) {
	if p == nil || p.ocr == nil {
		return
	}
	code, ok := ocr.LanguageCode(name)
	if !ok {
		p.logger.Warn("language not found in available languages", "language", name)
		return
	}
	p.ocr.SetLanguage(code)
	p.model.SetLanguage(name)
	p.saveSettings()
	p.logger.Info("language set", "language", name, "code", code)
}

// Restore applies persisted settings at startup.
func (p *ScanPresenter) Restore() {
	if p == nil {
		return
	}
	var st config.Settings
	if p.settings != nil {
		st = p.settings.Load()
	}
	if p.window != nil {
		if g := sanitizeGeometry(st.Geometry, p.cfg); g != "" {
			p.window.SetGeometry(g)
		} else if st.Geometry != "" {
			p.logger.Warn("ignoring saved geometry", "geometry", st.Geometry)
		}
	}

	name := st.Language
	code, ok := ocr.LanguageCode(name)
	if !ok {
		if name != "" {
			p.logger.Warn("saved language no longer valid, using default", "language", name)
		}
		name = ocr.DefaultLanguage
		code = ocr.DefaultLanguageCode()
	}
	p.model.SetLanguage(name)
	if p.view != nil {
		p.view.SelectLanguage(name)
	}
	if p.ocr != nil {
		p.ocr.SetLanguage(code)
	}

	if capture.Exists(st.LastScreenshotPath) {
		p.model.SetScreenshotPath(st.LastScreenshotPath)
		p.showThumbnail(st.LastScreenshotPath)
		return
	}
	p.model.SetScreenshotPath("")
	if p.view != nil {
		p.view.ShowPlaceholder(PlaceholderNewShot)
	}
}

// Persist saves geometry, language and the screenshot path.
func (p *ScanPresenter) Persist() error {
	if p == nil || p.settings == nil {
		return nil
	}
	if err := p.settings.Save(p.snapshot()); err != nil {
		p.logger.Error("settings save failed", "error", err)
		return err
	}
	return nil
}

// Shutdown stops result delivery and waits up to timeout for a running
// worker. It reports whether the worker finished in time.
func (p *ScanPresenter) Shutdown(timeout time.Duration) bool {
	if p == nil {
		return true
	}
	p.stopOnce.Do(func() { close(p.done) })
	finished := make(chan struct{})
	go func() {
		_ = p.workers.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return true
	case <-time.After(timeout):
		p.logger.Warn("ocr worker still running at shutdown", "timeout", timeout)
		return false
	}
}

func (p *ScanPresenter) snapshot() config.Settings {
	st := config.Settings{Language: p.model.Language()}
	if p.window != nil {
		st.Geometry = sanitizeGeometry(p.window.Geometry(), p.cfg)
	}
	if path := p.model.ScreenshotPath(); capture.Exists(path) {
		st.LastScreenshotPath = path
	}
	return st
}

func (p *ScanPresenter) saveSettings() {
	if p.settings == nil {
		return
	}
	if err := p.settings.Save(p.snapshot()); err != nil {
		p.logger.Error("settings save failed", "error", err)
	}
}

func (p *ScanPresenter) showThumbnail(path string) {
	if p.view == nil {
		return
	}
	if !capture.Exists(path) {
		p.view.ShowPlaceholder(PlaceholderNotFound)
		return
	}
	if err := p.view.ShowThumbnail(path); err != nil {
		p.logger.Error("thumbnail load failed", "path", path, "error", err)
		p.view.ShowPlaceholder(PlaceholderBadImage)
	}
}

func (p *ScanPresenter) setText(s string) {
	p.model.SetText(s)
	p.view.SetText(s)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, capture.ErrDisplayUnavailable):
		return "Reason: could not access the primary screen."
	case errors.Is(err, capture.ErrSaveFailed):
		return "Reason: the screenshot could not be saved."
	default:
		return "Reason: " + err.Error()
	}
}
