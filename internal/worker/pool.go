// Package worker runs independent tasks on a fixed number of goroutines
package worker

import (
	"context"
	"sync"

	"github.com/osse101/jobboard/internal/logger"
)

// Task represents a unit of work executed by a worker
type Task interface {
	Process(ctx context.Context) error
}

// TaskFunc adapts a function to Task
type TaskFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f TaskFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool. Tasks enqueued before Stop are always drained.
type Pool struct {
	workers int
	queue   chan Task
	wg      sync.WaitGroup
	once    sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &Pool{
		workers: workers,
		queue:   make(chan Task, queueSize),
	}
}

// Start starts the workers. ctx is handed to every task.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	log := logger.FromContext(ctx)
	for task := range p.queue {
		if ctx.Err() != nil {
			log.Debug(LogMsgWorkerSkipped, "error", ctx.Err())
			continue
		}
		if err := task.Process(ctx); err != nil {
			// Tasks report their own results; the pool only logs
			log.Debug(LogMsgWorkerTaskFailed, "error", err)
		}
	}
}

// Enqueue adds a task, blocking while the queue is full
func (p *Pool) Enqueue(ctx context.Context, task Task) error {
	select {
	case p.queue <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop closes the queue and waits for workers to finish the queued tasks
func (p *Pool) Stop() {
	p.once.Do(func() { close(p.queue) })
	p.wg.Wait()
}
