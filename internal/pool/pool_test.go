package pool

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestPool_RunsTasks(t *testing.T) {
	p := New("request", 4, testLogger(&bytes.Buffer{}))

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		if err := p.Submit("count", func(worker string, index int) {
			defer wg.Done()
			count.Add(1)
		}); err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
	}
	wg.Wait()
	p.Shutdown()

	if got := count.Load(); got != 32 {
		t.Errorf("ran %d tasks, want 32", got)
	}
}

func TestPool_WorkerNames(t *testing.T) {
	p := New("worker", 2, testLogger(&bytes.Buffer{}))
	defer p.Shutdown()

	names := make(chan string, 1)
	var once sync.Once
	var wg sync.WaitGroup
	wg.Add(1)
	if err := p.Submit("names", func(worker string, index int) {
		defer wg.Done()
		once.Do(func() { names <- worker })
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	wg.Wait()

	name := <-names
	if !strings.HasPrefix(name, "worker_") {
		t.Errorf("worker name = %q, want worker_<index>", name)
	}
}

func TestPool_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	var mu sync.Mutex
	logger := slog.New(slog.NewTextHandler(&lockedWriter{buf: &buf, mu: &mu}, nil))
	p := New("request", 1, logger)

	var wg sync.WaitGroup
	wg.Add(2)
	p.Submit("explode", func(worker string, index int) { //nolint:errcheck
		defer wg.Done()
		panic("boom")
	})
	// The worker must survive and run the next task.
	ran := false
	p.Submit("after", func(worker string, index int) { //nolint:errcheck
		defer wg.Done()
		ran = true
	})
	wg.Wait()
	p.Shutdown()

	if !ran {
		t.Error("worker did not survive the panic")
	}
	mu.Lock()
	logged := buf.String()
	mu.Unlock()
	if !strings.Contains(logged, "boom") || !strings.Contains(logged, "request_0") || !strings.Contains(logged, "explode") {
		t.Errorf("panic log missing detail: %s", logged)
	}
}

func TestPool_SubmitAfterShutdown(t *testing.T) {
	p := New("request", 1, testLogger(&bytes.Buffer{}))
	p.Shutdown()

	err := p.Submit("late", func(worker string, index int) {})
	if !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Submit() error = %v, want ErrPoolClosed", err)
	}
}

type lockedWriter struct {
	mu  *sync.Mutex
	buf *bytes.Buffer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}
