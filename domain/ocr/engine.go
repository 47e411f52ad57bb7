// Package ocr adapts a text recognition engine whose result shape is not
// guaranteed to be stable into a plain "text or nothing" answer.
package ocr

import (
	"context"
	"errors"
)

var (
	// ErrEngineUnavailable is returned when no recognition backend is compiled in.
	ErrEngineUnavailable = errors.New("ocr: engine unavailable")
	// ErrUnsupportedLanguage is returned for an engine code the backend cannot load.
	ErrUnsupportedLanguage = errors.New("ocr: unsupported language")
)

// Result is one untrusted result object returned by an engine. It is either a
// decoded JSON value (maps, slices, strings, numbers) or raw JSON bytes.
type Result = any

// Engine recognizes text in an image file.
type Engine interface {
	Predict(ctx context.Context, path string) ([]Result, error)
	Close() error
}

// EngineOptions parameterizes engine construction.
type EngineOptions struct {
	Lang                      string
	UseTextlineOrientation    bool
	UseDocOrientationClassify bool
	UseDocUnwarping           bool
	TessdataPrefix            string
	Preprocess                bool
}

// EngineFactory builds an engine for the given options.
type EngineFactory func(opts EngineOptions) (Engine, error)
