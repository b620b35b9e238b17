package db

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type flakyPinger struct {
	failures int
	calls    int
}

func (p *flakyPinger) PingContext(ctx context.Context) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("connection refused")
	}
	return nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWaitUntilReadyRetriesUntilSuccess(t *testing.T) {
	pinger := &flakyPinger{failures: 3}

	err := WaitUntilReady(context.Background(), pinger, time.Millisecond, 0, quietLogger())
	if err != nil {
		t.Fatalf("WaitUntilReady returned error: %v", err)
	}
	if pinger.calls != 4 {
		t.Errorf("expected 4 ping attempts, got %d", pinger.calls)
	}
}

func TestWaitUntilReadyImmediateSuccess(t *testing.T) {
	pinger := &flakyPinger{}

	err := WaitUntilReady(context.Background(), pinger, time.Millisecond, 0, quietLogger())
	if err != nil {
		t.Fatalf("WaitUntilReady returned error: %v", err)
	}
	if pinger.calls != 1 {
		t.Errorf("expected a single ping attempt, got %d", pinger.calls)
	}
}

func TestWaitUntilReadyTimeout(t *testing.T) {
	pinger := &flakyPinger{failures: 1 << 30}

	start := time.Now()
	err := WaitUntilReady(context.Background(), pinger, time.Millisecond, 20*time.Millisecond, quietLogger())
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("wait did not stop promptly, took %v", elapsed)
	}
}

func TestWaitUntilReadyContextCancel(t *testing.T) {
	pinger := &flakyPinger{failures: 1 << 30}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := WaitUntilReady(ctx, pinger, time.Millisecond, 0, quietLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}
