package capture

import (
	"errors"
	"image"
	"time"
)

var (
	// ErrDisplayUnavailable reports that no primary display could be grabbed.
	ErrDisplayUnavailable = errors.New("capture: display unavailable")
	// ErrSaveFailed reports that the grabbed frame could not be written to disk.
	ErrSaveFailed = errors.New("capture: save failed")
)

// Grabber returns a full frame of the primary display.
type Grabber interface {
	Grab() (*image.RGBA, error)
}

// GrabberFunc adapts a function to Grabber.
type GrabberFunc func() (*image.RGBA, error)

// Grab calls f.
func (f GrabberFunc) Grab() (*image.RGBA, error) { return f() }

// Shot describes a screenshot persisted at the canonical path.
type Shot struct {
	Path       string
	Size       int64
	Bounds     image.Rectangle
	CapturedAt time.Time
	// Distance is the perceptual hash distance to the previous shot; -1 when
	// there is nothing to compare against.
	Distance int
}
