package stats

import (
	"context"
	"log/slog"
	"time"
)

// Poller re-runs a refresh function on a fixed interval, starting with an
// immediate run. Cancelling the context stops it; there is no state update
// after cancellation, so a slow refresh cannot land on a stopped poller.
type Poller struct {
	interval time.Duration
	refresh  func(context.Context) error
	logger   *slog.Logger
}

func NewPoller(interval time.Duration, refresh func(context.Context) error, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Poller{interval: interval, refresh: refresh, logger: logger}
}

// Run blocks until ctx is cancelled. Callers start it in a goroutine.
func (p *Poller) Run(ctx context.Context) {
	p.tick(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if err := p.refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Error("stats refresh failed", "error", err)
	}
}
