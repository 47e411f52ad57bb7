//go:build !cgo

package ocr

// NewTesseractEngine is unavailable without cgo; gosseract links libtesseract.
func NewTesseractEngine(opts EngineOptions) (Engine, error) {
	return nil, ErrEngineUnavailable
}
