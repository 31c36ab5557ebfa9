package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTask = Task{TransactionID: "tx-1", DocumentID: "doc-1", BuyerWallet: "0xABCDEF"}

func TestMemoryQueue_EnqueueValidates(t *testing.T) {
	q := NewMemoryQueue(1)

	_, err := q.Enqueue(context.Background(), Task{DocumentID: "doc"})

	assert.ErrorIs(t, err, ErrInvalidTask)
}

func TestMemoryQueue_Lifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := NewMemoryQueue(0)

	job, err := q.Enqueue(ctx, testTask)
	require.NoError(t, err)
	assert.Equal(t, StatusQueued, job.Status)
	assert.Equal(t, "0xabcdef", job.BuyerWallet)
	assert.NotEmpty(t, job.ID)

	got, ok, err := q.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, job, got)

	q.Start(ctx, 2, func(_ context.Context, j Job) (string, error) {
		assert.Equal(t, StatusProcessing, j.Status)
		assert.Equal(t, testTask.DocumentID, j.Task().DocumentID)
		return "token-1", nil
	})

	done, err := q.Wait(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusDone, done.Status)
	assert.Equal(t, "token-1", done.NFTTokenID)
	assert.Equal(t, 1, done.Attempts)
	assert.Empty(t, done.Error)

	// waiting on a finished job returns at once
	again, err := q.Wait(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, done, again)
}

func TestMemoryQueue_FailedJob(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := NewMemoryQueue(0)
	q.Start(ctx, 1, func(context.Context, Job) (string, error) {
		return "", errors.New("metadata upload failed")
	})

	job, err := q.Enqueue(ctx, testTask)
	require.NoError(t, err)

	done, err := q.Wait(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, done.Status)
	assert.Equal(t, "metadata upload failed", done.Error)
	assert.Empty(t, done.NFTTokenID)
}

func TestMemoryQueue_WaitUnknownJob(t *testing.T) {
	_, err := NewMemoryQueue(0).Wait(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryQueue_WaitHonoursContext(t *testing.T) {
	q := NewMemoryQueue(0)
	job, err := q.Enqueue(context.Background(), testTask)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = q.Wait(ctx, job.ID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryQueue_EnqueueFullQueue(t *testing.T) {
	q := NewMemoryQueue(1)
	_, err := q.Enqueue(context.Background(), testTask)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = q.Enqueue(ctx, testTask)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryQueue_Close(t *testing.T) {
	q := NewMemoryQueue(0)
	require.NoError(t, q.Close())

	_, err := q.Enqueue(context.Background(), testTask)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMemoryQueue_EvictsOldestFinishedJobs(t *testing.T) {
	// ─────────────────────────────────────────────
	// Arrange
	// ─────────────────────────────────────────────
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := NewMemoryQueue(0)
	q.maxFinished = 2
	q.Start(ctx, 1, func(context.Context, Job) (string, error) {
		return "token", nil
	})

	// ─────────────────────────────────────────────
	// Act
	// ─────────────────────────────────────────────
	ids := make([]string, 0, 3)
	for range 3 {
		job, err := q.Enqueue(ctx, testTask)
		require.NoError(t, err)
		_, err = q.Wait(ctx, job.ID)
		require.NoError(t, err)
		ids = append(ids, job.ID)
	}

	// ─────────────────────────────────────────────
	// Assert
	// ─────────────────────────────────────────────
	_, ok, err := q.GetJob(ctx, ids[0])
	require.NoError(t, err)
	assert.False(t, ok)
	for _, id := range ids[1:] {
		_, ok, err = q.GetJob(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	_, err = q.Wait(ctx, ids[0])
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryQueue_EvictsExpiredFinishedJobs(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var elapsed atomic.Int64
	start := time.Now()
	q := NewMemoryQueue(0)
	q.now = func() time.Time { return start.Add(time.Duration(elapsed.Load())) }
	q.Start(ctx, 1, func(context.Context, Job) (string, error) {
		return "token", nil
	})

	old, err := q.Enqueue(ctx, testTask)
	require.NoError(t, err)
	_, err = q.Wait(ctx, old.ID)
	require.NoError(t, err)

	elapsed.Store(int64(defaultFinishedTTL + time.Minute))
	fresh, err := q.Enqueue(ctx, testTask)
	require.NoError(t, err)

	_, ok, err := q.GetJob(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// queued jobs are never evicted
	_, ok, err = q.GetJob(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}
