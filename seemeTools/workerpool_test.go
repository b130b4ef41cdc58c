package seemeTools

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	workerCount := 2
	taskCount := 5

	workerFun := func(ctx context.Context) error {
		select {
		case <-ctx.Done():
		case <-time.After(100 * time.Millisecond):
		}
		return nil
	}

	wp := NewWorkerPool(context.Background(), workerCount, 0)
	for i := 0; i < taskCount; i++ {
		require.True(t, wp.Submit(workerFun))
	}
	require.NoError(t, wp.FinishAndWait(), "worker pool failed with error")
	require.True(t, wp.GetDuration() > 285*time.Millisecond, "worker pool finished too fast")
	require.True(t, wp.GetDuration() < 400*time.Millisecond, "worker pool finished too slow")

	wp = NewWorkerPool(context.Background(), 1, 0)
	for i := 0; i < taskCount; i++ {
		wp.Submit(workerFun)
	}
	require.NoError(t, wp.FinishAndWait(), "worker pool failed with error")
	require.True(t, wp.GetDuration() > 485*time.Millisecond, "worker pool finished too fast")
	require.True(t, wp.GetDuration() < 600*time.Millisecond, "worker pool finished too slow")

	wp = NewWorkerPool(context.Background(), workerCount, 0)
	go func() {
		defer wp.Finish()
		for i := 0; i < taskCount; i++ {
			wp.Submit(workerFun)
		}
	}()
	time.Sleep(150 * time.Millisecond)
	wp.Cancel(nil)
	require.NoError(t, wp.Wait(), "worker pool failed with error")
	require.True(t, wp.GetDuration() > 150*time.Millisecond, "worker pool finished too fast")
	require.True(t, wp.GetDuration() < 250*time.Millisecond, "worker pool finished too slow")
}

func TestWorkerPoolTaskError(t *testing.T) {
	errTask := errors.New("task failed")
	var done int32

	wp := NewWorkerPool(context.Background(), 3, 10)
	for i := 0; i < 10; i++ {
		i := i
		wp.Submit(func(ctx context.Context) error {
			if i%2 == 1 {
				return errTask
			}
			atomic.AddInt32(&done, 1)
			return nil
		})
	}

	require.ErrorIs(t, wp.FinishAndWait(), errTask)
	require.False(t, wp.Submit(func(ctx context.Context) error { return nil }))
	require.True(t, atomic.LoadInt32(&done) < 10)
}
