package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/store"
)

// retentionWorker periodically sweeps the access log so an idle server
// does not keep an oversized document on disk between requests. Appends
// also enforce retention inline; the worker only covers quiet periods.
type retentionWorker struct {
	accessLog store.AccessLogRepository
	interval  time.Duration

	logger *logger.Logger
}

func newRetentionWorker(accessLog store.AccessLogRepository, interval time.Duration, logger *logger.Logger) *retentionWorker {
	return &retentionWorker{
		accessLog: accessLog,
		interval:  interval,
		logger:    logger,
	}
}

// Run starts the periodic sweep in its own goroutine. A non-positive
// interval disables the worker.
func (w *retentionWorker) Run() {
	if w.interval <= 0 {
		w.logger.Info().Msg("access log retention worker disabled")
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("access log retention worker started")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.accessLog.EnforceRetention(context.Background())
		}
	}()
}
