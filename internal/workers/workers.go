package workers

import (
	"context"
	"sync"
)

// Workers starts a set of workers together and stops them together.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns immediately. A
// second Run stops the previous generation first.
func (w *Workers) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(runCtx)
		}(worker)
	}
}

// Stop cancels the workers and blocks until all of them returned. Safe to
// call when nothing runs.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
