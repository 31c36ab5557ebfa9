// Package queue runs NFT generation as explicit jobs. A purchase enqueues a
// job and receives its record at once; consumers started with Start move the
// job from queued to processing and then to done or failed. Jobs are
// attempted once.
package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/unibrain/internal/config"
	"github.com/MKhiriev/unibrain/internal/logger"
)

//go:generate mockgen -source=queue.go -destination=../mock/queue_mock.go -package=mock

// Status is the lifecycle state of a Job.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

var (
	// ErrJobNotFound is returned by Wait for an unknown job id.
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidTask is returned by Enqueue when a required field is empty.
	ErrInvalidTask = errors.New("transaction, document and buyer are required")

	// ErrClosed is returned by Enqueue after Close.
	ErrClosed = errors.New("queue closed")
)

// Task is the input of an NFT generation job.
type Task struct {
	TransactionID string `json:"transaction_id"`
	DocumentID    string `json:"document_id"`
	BuyerWallet   string `json:"buyer_wallet"`
}

func (t Task) validate() error {
	if strings.TrimSpace(t.TransactionID) == "" || strings.TrimSpace(t.DocumentID) == "" || strings.TrimSpace(t.BuyerWallet) == "" {
		return ErrInvalidTask
	}
	return nil
}

// Job is the record of one NFT generation.
type Job struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	DocumentID    string    `json:"document_id"`
	BuyerWallet   string    `json:"buyer_wallet"`
	Status        Status    `json:"status"`
	Error         string    `json:"error,omitempty"`
	Attempts      int       `json:"attempts"`
	NFTTokenID    string    `json:"nft_token_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Task returns the input the job was created from.
func (j Job) Task() Task {
	return Task{TransactionID: j.TransactionID, DocumentID: j.DocumentID, BuyerWallet: j.BuyerWallet}
}

// Finished reports whether the job reached a terminal status.
func (j Job) Finished() bool {
	return j.Status == StatusDone || j.Status == StatusFailed
}

// Handler processes a job and returns the minted token id.
type Handler func(ctx context.Context, job Job) (string, error)

// Queue stores NFT generation jobs and dispatches them to consumers.
type Queue interface {
	Enqueue(ctx context.Context, task Task) (Job, error)
	GetJob(ctx context.Context, jobID string) (Job, bool, error)
	// Wait blocks until the job is finished or ctx is done.
	Wait(ctx context.Context, jobID string) (Job, error)
	// Start launches concurrency consumers and returns. Consumers stop when
	// ctx is done.
	Start(ctx context.Context, concurrency int, handler Handler)
	Close() error
}

// New returns a Redis backed queue when cfg names a Redis address and the
// in-process queue otherwise.
func New(ctx context.Context, cfg config.Workers, log *logger.Logger) (Queue, error) {
	if strings.TrimSpace(cfg.RedisAddr) == "" {
		return NewMemoryQueue(0), nil
	}

	q, err := NewRedisQueue(RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		Stream:   cfg.QueueName,
	}, log)
	if err != nil {
		return nil, err
	}
	if err = q.Ping(ctx); err != nil {
		_ = q.Close()
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	return q, nil
}

// run executes handler for job and returns the finished record.
func run(ctx context.Context, job Job, handler Handler) Job {
	tokenID, err := handler(ctx, job)
	job.UpdatedAt = time.Now().UTC()
	if err != nil {
		job.Status = StatusFailed
		job.Error = err.Error()
		return job
	}
	job.Status = StatusDone
	job.Error = ""
	job.NFTTokenID = tokenID
	return job
}
