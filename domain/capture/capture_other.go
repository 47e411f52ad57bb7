//go:build !windows

package capture

import (
	"fmt"
	"image"

	displays "github.com/kbinani/screenshot"
	"github.com/vova616/screenshot"
)

// Grab captures the primary display (display 0) and returns a newly
// allocated RGBA image.
func Grab() (*image.RGBA, error) {
	if displays.NumActiveDisplays() == 0 {
		return nil, fmt.Errorf("%w: no active displays", ErrDisplayUnavailable)
	}
	bounds := displays.GetDisplayBounds(0)
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: primary display has empty bounds", ErrDisplayUnavailable)
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
	}
	return img, nil
}
