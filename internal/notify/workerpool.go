package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

type Task func() error

type WorkerPool struct {
	pool      chan Task
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{pool: make(chan Task, size)}

	wp.wg.Add(size)
	for i := 0; i < size; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.pool {
		if err := task(); err != nil {
			zap.L().Error("Task execution failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.pool <- task:
		return nil
	}
}

// Close stops accepting tasks and blocks until the workers have drained
// the queue. Safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.pool)
	})
	wp.wg.Wait()
}
