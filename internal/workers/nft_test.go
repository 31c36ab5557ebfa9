package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/mock"
	"github.com/MKhiriev/unibrain/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var task = queue.Task{TransactionID: "tx-1", DocumentID: "doc-1", BuyerWallet: "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"}

func TestNFTWorker_ProcessesJobs(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := queue.NewMemoryQueue(0)

	w := NewNFTWorker(q, func(ctx context.Context, job queue.Job) (string, error) {
		assert.NotNil(t, logger.FromContext(ctx))
		return "token-" + job.DocumentID, nil
	}, 2, logger.Nop())
	require.NoError(t, w.Run(ctx))

	job, err := q.Enqueue(ctx, task)
	require.NoError(t, err)
	done, err := q.Wait(ctx, job.ID)

	require.NoError(t, err)
	assert.Equal(t, queue.StatusDone, done.Status)
	assert.Equal(t, "token-doc-1", done.NFTTokenID)
}

func TestNFTWorker_FailedJob(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q := queue.NewMemoryQueue(0)

	w := NewNFTWorker(q, func(context.Context, queue.Job) (string, error) {
		return "", errors.New("summary failed")
	}, 1, logger.Nop())
	require.NoError(t, w.Run(ctx))

	job, err := q.Enqueue(ctx, task)
	require.NoError(t, err)
	done, err := q.Wait(ctx, job.ID)

	require.NoError(t, err)
	assert.Equal(t, queue.StatusFailed, done.Status)
	assert.Equal(t, "summary failed", done.Error)
}

func TestNFTWorker_DefaultConcurrency(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mock.NewMockQueue(ctrl)
	ctx := context.Background()

	q.EXPECT().Start(ctx, 1, gomock.Any()).Times(1)

	w := NewNFTWorker(q, func(context.Context, queue.Job) (string, error) { return "", nil }, 0, logger.Nop())

	assert.NoError(t, w.Run(ctx))
}

func TestNFTWorker_WithoutQueue(t *testing.T) {
	w := NewNFTWorker(nil, nil, 1, logger.Nop())

	assert.ErrorIs(t, w.Run(context.Background()), ErrNoQueue)
}
