package ocr

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeEngine records the language it was built with and returns canned results.
type fakeEngine struct {
	lang     string
	results  []Result
	err      error
	panicVal any
	predicts int
	closed   bool
}

func (e *fakeEngine) Predict(ctx context.Context, path string) ([]Result, error) {
	e.predicts++
	if e.panicVal != nil {
		panic(e.panicVal)
	}
	return e.results, e.err
}

func (e *fakeEngine) Close() error { e.closed = true; return nil }

// fakeFactory builds fakeEngines and keeps every instance for inspection.
type fakeFactory struct {
	mu      sync.Mutex
	built   []*fakeEngine
	results []Result
	failFor map[string]bool
}

func (f *fakeFactory) New(opts EngineOptions) (Engine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[opts.Lang] {
		return nil, ErrUnsupportedLanguage
	}
	e := &fakeEngine{lang: opts.Lang, results: f.results}
	f.built = append(f.built, e)
	return e, nil
}

func (f *fakeFactory) last() *fakeEngine {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.built) == 0 {
		return nil
	}
	return f.built[len(f.built)-1]
}

func writeImage(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "shot.png")
	if err := os.WriteFile(p, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func structured(texts ...any) Result {
	return map[string]any{"res": map[string]any{"rec_texts": texts}}
}

func TestProcessor_MissingPathReturnsAbsent(t *testing.T) {
	f := &fakeFactory{results: []Result{structured("hello")}}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	text, ok := p.ProcessImage(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if ok || text != "" {
		t.Fatalf("expected absent for missing path, got %q %v", text, ok)
	}
	if f.last().predicts != 0 {
		t.Fatalf("engine must not run for a missing path")
	}
}

func TestProcessor_UninitializedEngine(t *testing.T) {
	f := &fakeFactory{failFor: map[string]bool{"xx": true}}
	p := NewProcessor("xx", EngineOptions{}, f.New, discardLogger)
	if p.Ready() {
		t.Fatalf("processor should not be ready after factory failure")
	}
	if _, ok := p.ProcessImage(context.Background(), writeImage(t)); ok {
		t.Fatalf("expected absent from uninitialized processor")
	}
	// Reselecting the same code retries construction once it is valid.
	f.failFor = nil
	p.SetLanguage("xx")
	if !p.Ready() {
		t.Fatalf("same-code SetLanguage should retry a failed engine")
	}
}

func TestProcessor_JoinsRegionsWithRegionSeparator(t *testing.T) {
	f := &fakeFactory{results: []Result{
		structured("line one", "line two"),
		structured("  ", ""),
		structured("other region"),
	}}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	text, ok := p.ProcessImage(context.Background(), writeImage(t))
	if !ok {
		t.Fatalf("expected text")
	}
	want := "line one\nline two" + RegionSeparator + "other region"
	if text != want {
		t.Fatalf("got %q want %q", text, want)
	}
}

func TestProcessor_WhitespaceOnlyIsAbsent(t *testing.T) {
	f := &fakeFactory{results: []Result{structured(" ", "\t"), []any{}, structured()}}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	if text, ok := p.ProcessImage(context.Background(), writeImage(t)); ok {
		t.Fatalf("expected absent, got %q", text)
	}
}

func TestProcessor_EngineErrorAndPanicAreAbsent(t *testing.T) {
	f := &fakeFactory{}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	path := writeImage(t)

	f.last().err = errors.New("boom")
	if _, ok := p.ProcessImage(context.Background(), path); ok {
		t.Fatalf("engine error should be absent")
	}
	f.last().err = nil
	f.last().panicVal = "kaboom"
	text, ok := p.ProcessImage(context.Background(), path)
	if ok || text != "" {
		t.Fatalf("engine panic should be absent, got %q %v", text, ok)
	}
	// Processor is still usable after a panic.
	f.last().panicVal = nil
	f.last().results = []Result{structured("ok")}
	if text, ok := p.ProcessImage(context.Background(), path); !ok || text != "ok" {
		t.Fatalf("processor unusable after panic: %q %v", text, ok)
	}
}

func TestProcessor_SetLanguageRecreatesEngine(t *testing.T) {
	f := &fakeFactory{}
	p := NewProcessor("en", EngineOptions{Preprocess: true}, f.New, discardLogger)
	first := f.last()
	p.SetLanguage("en")
	if len(f.built) != 1 {
		t.Fatalf("same language must be a no-op, built=%d", len(f.built))
	}
	p.SetLanguage("japan")
	if len(f.built) != 2 || !first.closed {
		t.Fatalf("expected old engine closed and a new one built, built=%d closed=%v", len(f.built), first.closed)
	}
	if got := f.last().lang; got != "japan" || p.Language() != "japan" {
		t.Fatalf("engine lang=%s processor lang=%s", got, p.Language())
	}
}

func TestProcessor_EveryLanguageRoundTrips(t *testing.T) {
	f := &fakeFactory{}
	p := NewProcessor(DefaultLanguageCode(), EngineOptions{}, f.New, discardLogger)
	for _, l := range Languages {
		code, ok := LanguageCode(l.Name)
		if !ok {
			t.Fatalf("no code for %s", l.Name)
		}
		p.SetLanguage(code)
		if got := p.Language(); got != l.Code {
			t.Fatalf("%s: got %s want %s", l.Name, got, l.Code)
		}
		if got := f.last().lang; got != l.Code {
			t.Fatalf("%s: engine built with %s", l.Name, got)
		}
	}
}

func TestProcessor_OnlyJapaneseEnginePredicts(t *testing.T) {
	f := &fakeFactory{results: []Result{structured("こんにちは")}}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	code, _ := LanguageCode("Japanese")
	p.SetLanguage(code)
	if _, ok := p.ProcessImage(context.Background(), writeImage(t)); !ok {
		t.Fatalf("expected text")
	}
	for _, e := range f.built {
		if e.predicts > 0 && e.lang != "japan" {
			t.Fatalf("predict ran on engine configured with %s", e.lang)
		}
	}
	if f.last().predicts != 1 {
		t.Fatalf("expected the japan engine to predict once, got %d", f.last().predicts)
	}
}

func TestProcessor_CustomStrategies(t *testing.T) {
	f := &fakeFactory{results: []Result{"plain"}}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	p.SetStrategies([]NamedStrategy{{Name: "string", Extract: func(r Result) (string, bool) {
		s, ok := r.(string)
		return s, ok
	}}})
	if text, ok := p.ProcessImage(context.Background(), writeImage(t)); !ok || text != "plain" {
		t.Fatalf("custom strategy not used: %q %v", text, ok)
	}
}

func TestProcessor_Close(t *testing.T) {
	f := &fakeFactory{}
	p := NewProcessor("en", EngineOptions{}, f.New, discardLogger)
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !f.last().closed || p.Ready() {
		t.Fatalf("close should release the engine")
	}
}
