package seemeTools

import (
	"context"
	"sync"
	"time"
)

type WorkerPoolTask func(context.Context) error

// WorkerPool runs submitted tasks on a fixed number of goroutines.
// The first task error cancels the pool and is returned by Wait.
type WorkerPool struct {
	ctx        context.Context
	cancel     context.CancelFunc
	wg         *sync.WaitGroup
	taskChan   chan WorkerPoolTask
	finishOnce sync.Once
	errOnce    sync.Once
	err        error
	startTime  time.Time
	duration   time.Duration
}

func NewWorkerPool(
	ctx context.Context,
	workerCount int,
	bufferSize int,
) *WorkerPool {
	ctx, cancel := context.WithCancel(ctx)

	if workerCount < 1 {
		workerCount = 1
	}

	wp := &WorkerPool{
		ctx:       ctx,
		cancel:    cancel,
		wg:        &sync.WaitGroup{},
		taskChan:  make(chan WorkerPoolTask, bufferSize),
		startTime: time.Now(),
	}

	// start workers
	for i := 0; i < workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}

	return wp
}

func (w *WorkerPool) worker() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		select {
		case <-w.ctx.Done():
			return
		case task, ok := <-w.taskChan:
			if !ok {
				return
			}

			if err := task(w.ctx); err != nil {
				w.Cancel(err)
				return
			}
		}
	}
}

// Submit returns false when the pool is already cancelled.
func (w *WorkerPool) Submit(task WorkerPoolTask) bool {
	select {
	case <-w.ctx.Done():
		return false
	default:
	}

	select {
	case <-w.ctx.Done():
		return false
	case w.taskChan <- task:
		return true
	}
}

func (w *WorkerPool) Finish() {
	w.finishOnce.Do(func() {
		close(w.taskChan)
	})
}

func (w *WorkerPool) Cancel(err error) {
	w.errOnce.Do(func() {
		w.err = err
	})
	w.cancel()
}

func (w *WorkerPool) Wait() error {
	w.wg.Wait()
	w.duration = time.Since(w.startTime)
	w.errOnce.Do(func() {})
	w.cancel()
	return w.err
}

func (w *WorkerPool) FinishAndWait() error {
	w.Finish()
	return w.Wait()
}

func (w *WorkerPool) GetDuration() time.Duration {
	return w.duration
}
