package debug

// Debug runtime logger. Started only when config.Debug is true.
// Emits goroutine count, heap and stack usage and resident set size at a
// fixed interval, plus any attributes the caller adds.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// StatsFunc returns extra attributes logged with every sample.
type StatsFunc func() []slog.Attr

// StartRuntimeLogger launches a ticker that logs runtime stats until the
// returned stop func is called. stop is safe to call more than once.
func StartRuntimeLogger(interval time.Duration, logger *slog.Logger, extra StatsFunc) (stop func()) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	quit := make(chan struct{})
	var once sync.Once

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		s := newSampler()
		for {
			select {
			case <-quit:
				return
			case <-t.C:
				attrs := s.sample(logger)
				if extra != nil {
					attrs = append(attrs, extra()...)
				}
				logger.LogAttrs(context.Background(), slog.LevelInfo, "runtime-stats", attrs...)
			}
		}
	}()
	return func() { once.Do(func() { close(quit) }) }
}

type sampler struct {
	samples      []metrics.Sample
	rssErrLogged bool
}

func newSampler() *sampler {
	return &sampler{samples: []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}}
}

// sample reads one set of runtime attributes. RSS failures are logged once.
func (s *sampler) sample(logger *slog.Logger) []slog.Attr {
	metrics.Read(s.samples)
	var goroutines uint64
	if s.samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = s.samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	attrs := []slog.Attr{
		slog.Uint64("goroutines", goroutines),
		slog.String("heap_alloc", humanize.Bytes(ms.HeapAlloc)),
		slog.Uint64("heap_inuse", ms.HeapInuse),
		slog.Uint64("stack_inuse", ms.StackInuse),
		slog.Uint64("num_gc", uint64(ms.NumGC)),
	}
	rss, err := residentBytes()
	switch {
	case err == nil:
		attrs = append(attrs, slog.String("rss", humanize.Bytes(rss)))
	case !s.rssErrLogged:
		logger.Warn("runtime-stats: resident size unavailable", slog.String("err", err.Error()))
		s.rssErrLogged = true
	}
	return attrs
}
