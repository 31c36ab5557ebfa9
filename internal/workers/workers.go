package workers

import (
	"context"
	"fmt"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in order and stops at the first failure.
func (w *Workers) Run(ctx context.Context) error {
	for i, worker := range w.workers {
		if err := worker.Run(ctx); err != nil {
			return fmt.Errorf("error starting worker %d: %w", i, err)
		}
	}
	return nil
}
