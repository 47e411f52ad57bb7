package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
)

// CaptureService grabs the primary display and persists it as the canonical
// screenshot. Use NewCaptureService to construct an instance.
type CaptureService interface {
	Capture(ctx context.Context) (Shot, error)
	Stats() CaptureStats
}

type captureService struct {
	grabber      Grabber
	store        *Store
	logger       *slog.Logger
	changes      changeTracker
	captures     atomic.Uint64
	failures     atomic.Uint64
	captureNanos atomic.Uint64
	lastAt       atomic.Int64
	lastSize     atomic.Int64
}

func newCaptureService(logger *slog.Logger, grabber Grabber, store *Store) *captureService {
	if grabber == nil {
		grabber = GrabberFunc(Grab)
	}
	return &captureService{grabber: grabber, store: store, logger: logger}
}

// NewCaptureService constructs a capture service writing into store. A nil
// grabber selects the platform primary display grabber.
func NewCaptureService(logger *slog.Logger, grabber Grabber, store *Store) CaptureService {
	return newCaptureService(logger, grabber, store)
}

// Capture grabs one frame and saves it. Errors wrap ErrDisplayUnavailable or
// ErrSaveFailed.
func (s *captureService) Capture(ctx context.Context) (Shot, error) {
	if err := ctx.Err(); err != nil {
		return Shot{}, err
	}
	start := time.Now()
	img, err := s.grabber.Grab()
	if err != nil {
		s.failures.Add(1)
		if !errors.Is(err, ErrDisplayUnavailable) {
			err = fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
		}
		s.log().Error("capture grab", "error", err)
		return Shot{}, err
	}
	if img == nil || img.Bounds().Empty() {
		s.failures.Add(1)
		return Shot{}, fmt.Errorf("%w: empty frame", ErrDisplayUnavailable)
	}
	if s.store == nil {
		s.failures.Add(1)
		return Shot{}, fmt.Errorf("%w: no screenshot store", ErrSaveFailed)
	}
	size, err := s.store.Save(img)
	if err != nil {
		s.failures.Add(1)
		s.log().Error("capture save", "path", s.store.Path(), "error", err)
		return Shot{}, err
	}

	elapsed := time.Since(start)
	now := time.Now()
	s.captureNanos.Add(uint64(elapsed.Nanoseconds()))
	s.captures.Add(1)
	s.lastAt.Store(now.UnixNano())
	s.lastSize.Store(size)

	shot := Shot{
		Path:       s.store.Path(),
		Size:       size,
		Bounds:     img.Bounds(),
		CapturedAt: now,
		Distance:   s.changes.Distance(img),
	}
	s.log().Info("screenshot saved",
		"path", shot.Path,
		"size", humanize.Bytes(uint64(size)),
		"bounds", shot.Bounds.String(),
		"distance", shot.Distance,
		"elapsed", elapsed,
	)
	return shot, nil
}

func (s *captureService) Stats() CaptureStats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	var last time.Time
	if ns := s.lastAt.Load(); ns != 0 {
		last = time.Unix(0, ns)
	}
	return CaptureStats{
		Captures:         captures,
		Failures:         s.failures.Load(),
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      last,
		LastSize:         s.lastSize.Load(),
	}
}

func (s *captureService) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}
