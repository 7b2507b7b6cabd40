// Package scheduler runs the periodic publishing sweep in-process.
package scheduler

import (
	"context"
	"time"

	"ripple/internal/middleware"
	"ripple/internal/service"
)

// Scheduler drives the publisher service on a fixed interval. One sweep
// runs immediately on Start so posts due while the server was down are
// published without waiting a full interval.
type Scheduler struct {
	publisher *service.PublisherService
	interval  time.Duration
}

// New returns a scheduler that sweeps every interval.
func New(publisher *service.PublisherService, interval time.Duration) *Scheduler {
	return &Scheduler{publisher: publisher, interval: interval}
}

// Start blocks until ctx is cancelled, running a sweep on every tick.
// Sweep errors are logged and the loop keeps going; the sweep is
// idempotent so the next tick covers anything a failed run missed.
func (s *Scheduler) Start(ctx context.Context) {
	middleware.Logger.Info("scheduler started", "interval", s.interval.String())

	if _, err := s.publisher.PublishDue(ctx); err != nil {
		middleware.Logger.Error("initial publish sweep failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			middleware.Logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.publisher.PublishDue(ctx); err != nil {
				middleware.Logger.Error("publish sweep failed", "error", err)
			}
		}
	}
}
