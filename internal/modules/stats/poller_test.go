package stats_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nicklasfangerfisk/Smartbuy-backoffice-sub003/internal/modules/stats"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPoller_RefreshesImmediatelyAndOnInterval(t *testing.T) {
	var calls atomic.Int64
	p := stats.NewPoller(10*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 3 refreshes, got %d", calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

func TestPoller_StopsOnCancel(t *testing.T) {
	var calls atomic.Int64
	p := stats.NewPoller(5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	}, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// let it tick a few times, then stop
	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("refresh ran after cancellation: %d -> %d", after, calls.Load())
	}
}

func TestPoller_KeepsRunningAfterRefreshError(t *testing.T) {
	var calls atomic.Int64
	p := stats.NewPoller(5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return context.DeadlineExceeded
	}, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	p.Run(ctx)

	if calls.Load() < 2 {
		t.Errorf("expected the poller to keep ticking through errors, got %d calls", calls.Load())
	}
}
