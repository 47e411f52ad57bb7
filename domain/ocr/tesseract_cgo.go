//go:build cgo

package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// tesseractEngine runs recognition through a gosseract client bound to one
// language.
type tesseractEngine struct {
	client *gosseract.Client
	opts   EngineOptions
}

// NewTesseractEngine builds a Tesseract-backed engine. The orientation toggles
// select OSD page segmentation; unwarping has no Tesseract equivalent.
func NewTesseractEngine(opts EngineOptions) (Engine, error) {
	lang, ok := TesseractLanguage(opts.Lang)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, opts.Lang)
	}
	client := gosseract.NewClient()
	if opts.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(opts.TessdataPrefix); err != nil {
			client.Close()
			return nil, fmt.Errorf("ocr: tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(lang); err != nil {
		client.Close()
		return nil, fmt.Errorf("ocr: set language %s: %w", lang, err)
	}
	mode := gosseract.PSM_AUTO
	if opts.UseDocOrientationClassify || opts.UseTextlineOrientation {
		mode = gosseract.PSM_AUTO_OSD
	}
	if err := client.SetPageSegMode(mode); err != nil {
		client.Close()
		return nil, fmt.Errorf("ocr: page seg mode: %w", err)
	}
	return &tesseractEngine{client: client, opts: opts}, nil
}

// Predict returns one structured result per detected text block, shaped
// {"res": {"rec_texts": [...], "rec_scores": [...], "rec_boxes": [...]}}.
func (e *tesseractEngine) Predict(ctx context.Context, path string) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.opts.Preprocess {
		data, err := PreprocessPNG(path)
		if err != nil {
			return nil, err
		}
		if err := e.client.SetImageFromBytes(data); err != nil {
			return nil, fmt.Errorf("ocr: set image: %w", err)
		}
	} else if err := e.client.SetImage(path); err != nil {
		return nil, fmt.Errorf("ocr: set image: %w", err)
	}

	blocks, err := e.client.GetBoundingBoxes(gosseract.RIL_BLOCK)
	if err != nil {
		return nil, fmt.Errorf("ocr: blocks: %w", err)
	}
	lines, err := e.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("ocr: lines: %w", err)
	}
	return GroupLines(toBoxes(blocks), toBoxes(lines)), nil
}

func (e *tesseractEngine) Close() error { return e.client.Close() }

func toBoxes(in []gosseract.BoundingBox) []Box {
	out := make([]Box, len(in))
	for i, b := range in {
		out[i] = Box{Box: b.Box, Word: b.Word, Confidence: b.Confidence}
	}
	return out
}
