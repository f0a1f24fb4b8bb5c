// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-totp-keeper/internal/logger"
)

// Workers runs a set of background workers and blocks until all of them
// return.
type Workers struct {
	workers []Worker
}

// New constructs a [Workers] group from the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker and waits for completion. Cancel ctx to stop
// the group.
func (w *Workers) Run(ctx context.Context) {
	done := make(chan struct{}, len(w.workers))

	for _, worker := range w.workers {
		go func(worker Worker) {
			worker.Run(ctx)
			done <- struct{}{}
		}(worker)
	}

	for range w.workers {
		<-done
	}
}

// IntervalWorker invokes a callback on a fixed interval until its context
// is cancelled or the callback reports an error. The first tick fires
// immediately rather than one interval in.
type IntervalWorker struct {
	Interval time.Duration
	Fn       func(ctx context.Context) error
	Log      *logger.Logger
}

// Run implements [Worker].
func (w *IntervalWorker) Run(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = logger.Nop()
	}

	if err := w.Fn(ctx); err != nil {
		log.Error().Err(err).Msg("interval worker stopped on first run")
		return
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.Fn(ctx); err != nil {
				log.Error().Err(err).Msg("interval worker stopped")
				return
			}
		}
	}
}
