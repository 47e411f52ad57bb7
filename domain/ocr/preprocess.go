package ocr

import (
	"bytes"
	"fmt"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// preprocessContrast is the relative contrast boost applied before recognition.
const preprocessContrast = 0.25

// PreprocessPNG loads the image at path, converts it to grayscale, boosts
// contrast and returns the result PNG-encoded.
func PreprocessPNG(path string) ([]byte, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ocr: preprocess open: %w", err)
	}
	gray := effect.Grayscale(img)
	boosted := adjust.Contrast(gray, preprocessContrast)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, boosted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("ocr: preprocess encode: %w", err)
	}
	return buf.Bytes(), nil
}
