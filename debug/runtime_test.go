package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartRuntimeLogger_LogsExtraAttrs(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))
	stop := StartRuntimeLogger(5*time.Millisecond, logger, func() []slog.Attr {
		return []slog.Attr{slog.Bool("ocr_in_flight", true)}
	})
	defer stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), `"ocr_in_flight":true`) {
			stop()
			stop()
			if !strings.Contains(out.String(), `"goroutines":`) {
				t.Fatalf("missing goroutine count: %s", out.String())
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("no runtime-stats line logged: %s", out.String())
}
