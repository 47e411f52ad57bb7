package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"sync"
)

// Processor owns the engine instance for the current language and turns
// engine output into plain text. ProcessImage never panics and never returns
// an error: every failure is logged and reported as "no text".
type Processor struct {
	mu         sync.Mutex
	lang       string
	base       EngineOptions
	engine     Engine
	factory    EngineFactory
	strategies []NamedStrategy
	logger     *slog.Logger
}

// NewProcessor builds the engine for lang. A construction failure is logged
// and leaves the processor uninitialized until the next SetLanguage.
func NewProcessor(lang string, base EngineOptions, factory EngineFactory, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Processor{lang: lang, base: base, factory: factory, strategies: DefaultStrategies, logger: logger}
	p.initEngine()
	return p
}

// SetStrategies replaces the ordered extraction strategies.
func (p *Processor) SetStrategies(s []NamedStrategy) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.strategies = s
}

// Language returns the engine code currently configured.
func (p *Processor) Language() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang
}

// Ready reports whether an engine instance exists.
func (p *Processor) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine != nil
}

// SetLanguage recreates the engine for code. Engines cannot switch language
// in place, so the old instance is closed first.
func (p *Processor) SetLanguage(code string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if code == p.lang && p.engine != nil {
		return
	}
	p.lang = code
	p.initEngine()
	p.logger.Info("ocr language changed", "lang", code, "ready", p.engine != nil)
}

// Close releases the engine.
func (p *Processor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeEngine()
}

// initEngine must be called with mu held (or before p is shared).
func (p *Processor) initEngine() {
	_ = p.closeEngine()
	if p.factory == nil {
		p.logger.Error("ocr engine factory missing")
		return
	}
	opts := p.base
	opts.Lang = p.lang
	eng, err := p.factory(opts)
	if err != nil {
		p.logger.Error("ocr engine init failed", "lang", p.lang, "error", err)
		return
	}
	p.engine = eng
	p.logger.Info("ocr engine initialized", "lang", p.lang)
}

func (p *Processor) closeEngine() error {
	if p.engine == nil {
		return nil
	}
	err := p.engine.Close()
	p.engine = nil
	if err != nil {
		p.logger.Warn("ocr engine close", "error", err)
	}
	return err
}

// ProcessImage recognizes text in the image at path. It returns false when
// the file is missing, the engine is uninitialized, the engine fails, or no
// result object yields usable text.
func (p *Processor) ProcessImage(ctx context.Context, path string) (text string, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.engine == nil {
		p.logger.Error("ocr engine is not initialized", "lang", p.lang)
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		p.logger.Error("ocr image path does not exist", "path", path, "error", err)
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("ocr engine panic", "error", r, "stack", string(debug.Stack()))
			text, ok = "", false
		}
	}()

	results, err := p.engine.Predict(ctx, path)
	if err != nil {
		p.logger.Error("ocr predict failed", "path", path, "error", err)
		return "", false
	}
	if len(results) == 0 {
		p.logger.Info("ocr predict returned no results", "path", path)
		return "", false
	}

	p.logger.Debug("ocr predict results", "count", len(results))
	texts := make([]string, 0, len(results))
	for i, r := range results {
		t, name, found := p.extract(r)
		if !found {
			p.logger.Debug("ocr result without text", "index", i, "detail", describe(r))
			continue
		}
		p.logger.Debug("ocr result extracted", "index", i, "strategy", name)
		texts = append(texts, t)
	}
	if len(texts) == 0 {
		p.logger.Info("ocr found no meaningful text", "path", path, "results", len(results))
		return "", false
	}
	return strings.Join(texts, RegionSeparator), true
}

func (p *Processor) extract(r Result) (string, string, bool) {
	for _, s := range p.strategies {
		if s.Extract == nil {
			continue
		}
		if t, ok := s.Extract(r); ok {
			return t, s.Name, true
		}
	}
	return "", "", false
}

// describe renders a bounded preview of a result for diagnostics.
func describe(r Result) string {
	s := fmt.Sprintf("%T %v", r, r)
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
