package workers

import (
	"context"

	"github.com/MKhiriev/calm-journal/internal/logger"
)

// Workers starts a fixed set of workers in order and stops them in reverse.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.logger.Info().Int("count", len(w.workers)).Msg("workers started")
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Int("count", len(w.workers)).Msg("workers stopped")
}
