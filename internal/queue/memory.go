package queue

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/unibrain/internal/utils"
)

const (
	defaultMemoryCapacity = 256

	// Finished jobs are kept for status lookups until either limit is hit.
	defaultFinishedRetention = 1024
	defaultFinishedTTL       = 24 * time.Hour
)

// MemoryQueue is the in-process Queue. Jobs do not survive a restart.
type MemoryQueue struct {
	mu      sync.Mutex
	jobs    map[string]*Job
	done    map[string]chan struct{}
	pending chan string
	closed  bool
	ids     utils.IDGenerator

	// finished lists finished jobs oldest first.
	finished    []finishedJob
	maxFinished int
	finishedTTL time.Duration
	now         func() time.Time
}

type finishedJob struct {
	id string
	at time.Time
}

// NewMemoryQueue holds up to capacity unprocessed jobs; Enqueue blocks when
// the queue is full. A non-positive capacity selects the default.
func NewMemoryQueue(capacity int) *MemoryQueue {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryQueue{
		jobs:    make(map[string]*Job),
		done:    make(map[string]chan struct{}),
		pending: make(chan string, capacity),
		ids:     utils.NewUUIDGenerator(),

		maxFinished: defaultFinishedRetention,
		finishedTTL: defaultFinishedTTL,
		now:         time.Now,
	}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, task Task) (Job, error) {
	if err := task.validate(); err != nil {
		return Job{}, err
	}

	now := q.now().UTC()
	job := Job{
		ID:            q.ids.Generate(),
		TransactionID: task.TransactionID,
		DocumentID:    task.DocumentID,
		BuyerWallet:   strings.ToLower(task.BuyerWallet),
		Status:        StatusQueued,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return Job{}, ErrClosed
	}
	q.evictLocked(now)
	stored := job
	q.jobs[job.ID] = &stored
	q.done[job.ID] = make(chan struct{})
	q.mu.Unlock()

	select {
	case q.pending <- job.ID:
		return job, nil
	case <-ctx.Done():
		q.finish(job.ID, func(j *Job) {
			j.Status = StatusFailed
			j.Error = ctx.Err().Error()
		})
		return Job{}, ctx.Err()
	}
}

func (q *MemoryQueue) GetJob(_ context.Context, jobID string) (Job, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, ok := q.jobs[jobID]
	if !ok {
		return Job{}, false, nil
	}
	return *job, true, nil
}

func (q *MemoryQueue) Wait(ctx context.Context, jobID string) (Job, error) {
	q.mu.Lock()
	job, ok := q.jobs[jobID]
	if !ok {
		q.mu.Unlock()
		return Job{}, ErrJobNotFound
	}
	if job.Finished() {
		finished := *job
		q.mu.Unlock()
		return finished, nil
	}
	done := q.done[jobID]
	q.mu.Unlock()

	select {
	case <-done:
		job, _, err := q.GetJob(ctx, jobID)
		return job, err
	case <-ctx.Done():
		return Job{}, ctx.Err()
	}
}

func (q *MemoryQueue) Start(ctx context.Context, concurrency int, handler Handler) {
	if concurrency <= 0 {
		concurrency = 1
	}
	for range concurrency {
		go q.consumeLoop(ctx, handler)
	}
}

// Close stops accepting jobs. Jobs already queued are still processed by
// running consumers.
func (q *MemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	return nil
}

func (q *MemoryQueue) consumeLoop(ctx context.Context, handler Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-q.pending:
			q.handle(ctx, id, handler)
		}
	}
}

func (q *MemoryQueue) handle(ctx context.Context, id string, handler Handler) {
	q.mu.Lock()
	stored, ok := q.jobs[id]
	if !ok {
		q.mu.Unlock()
		return
	}
	stored.Status = StatusProcessing
	stored.Attempts++
	stored.UpdatedAt = q.now().UTC()
	job := *stored
	q.mu.Unlock()

	result := run(ctx, job, handler)
	q.finish(id, func(j *Job) { *j = result })
}

func (q *MemoryQueue) finish(id string, update func(*Job)) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if job, ok := q.jobs[id]; ok {
		update(job)
		now := q.now().UTC()
		q.finished = append(q.finished, finishedJob{id: id, at: now})
		q.evictLocked(now)
	}
	if done, ok := q.done[id]; ok {
		close(done)
		delete(q.done, id)
	}
}

// evictLocked forgets the oldest finished jobs beyond maxFinished and those
// finished more than finishedTTL ago. q.mu must be held.
func (q *MemoryQueue) evictLocked(now time.Time) {
	n := 0
	for n < len(q.finished) {
		if len(q.finished)-n <= q.maxFinished && now.Sub(q.finished[n].at) < q.finishedTTL {
			break
		}
		delete(q.jobs, q.finished[n].id)
		n++
	}
	if n > 0 {
		q.finished = slices.Delete(q.finished, 0, n)
	}
}
