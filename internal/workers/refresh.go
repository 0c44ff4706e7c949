// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

// RefreshWorker calls its target every interval and whenever Trigger is
// called. Failed refreshes are logged and retried on the next tick.
type RefreshWorker struct {
	target   Refresher
	interval time.Duration

	trigger chan struct{}
	done    chan struct{}

	logger *logger.Logger
}

// NewRefreshWorker creates a worker refreshing target. A non-positive
// interval disables the ticker, leaving only explicit triggers.
func NewRefreshWorker(target Refresher, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	return &RefreshWorker{
		target:   target,
		interval: interval,
		trigger:  make(chan struct{}, 1),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Run starts the refresh loop. It must be called at most once.
func (w *RefreshWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

// Trigger requests a refresh as soon as possible. Requests made while one
// is already pending are merged.
func (w *RefreshWorker) Trigger() {
	select {
	case w.trigger <- struct{}{}:
	default:
	}
}

// Done is closed once the loop has stopped.
func (w *RefreshWorker) Done() <-chan struct{} {
	return w.done
}

func (w *RefreshWorker) loop(ctx context.Context) {
	defer close(w.done)

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
		case <-w.trigger:
		}
		w.refresh(ctx)
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	if err := w.target.Refresh(ctx); err != nil && ctx.Err() == nil {
		w.logger.Warn().Err(err).Str("func", "*RefreshWorker.refresh").Msg("refresh failed")
	}
}
