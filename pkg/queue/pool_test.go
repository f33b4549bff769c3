package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRegisterAndCancelJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Register a job
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	// Cancel should succeed for a registered job
	assert.True(t, pool.CancelJob("job-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown job
	assert.False(t, pool.CancelJob("unknown"))
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	// Should find it
	assert.True(t, pool.CancelJob("job-1"))

	// Unregister
	pool.UnregisterJob("job-1")

	// Should not find it anymore
	assert.False(t, pool.CancelJob("job-1"))
}

func TestPoolActiveJobIDs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Empty initially
	ids := pool.activeJobIDs()
	assert.Empty(t, ids)

	// Register jobs
	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterJob("job-a", cancel1)
	pool.RegisterJob("job-b", cancel2)

	ids = pool.activeJobIDs()
	require.Len(t, ids, 2)
	assert.Contains(t, ids, "job-a")
	assert.Contains(t, ids, "job-b")
}

func TestPoolStopTwiceDoesNotPanic(t *testing.T) {
	pool := &WorkerPool{
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
	}

	// First call should close the channel without panic.
	pool.Stop()

	// Second call must not panic (sync.Once guards the close).
	assert.NotPanics(t, func() { pool.Stop() })
}
