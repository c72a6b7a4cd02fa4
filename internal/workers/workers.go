package workers

import (
	"github.com/MKhiriev/go-2048-server/internal/config"
	"github.com/MKhiriev/go-2048-server/internal/logger"
	"github.com/MKhiriev/go-2048-server/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers of the server process. For
// now that is the single access-log retention sweeper.
func NewWorkers(repositories *store.Repositories, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newRetentionWorker(repositories.AccessLogRepository, cfg.RetentionInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
