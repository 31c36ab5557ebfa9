package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/utils"
)

// RedisConfig configures a RedisQueue. Zero values select defaults.
type RedisConfig struct {
	Addr      string
	Password  string
	Stream    string
	Group     string
	Consumer  string
	JobTTL    time.Duration
	Block     time.Duration
	ClaimIdle time.Duration
	WaitPoll  time.Duration
	MaxLen    int64
	ReadCount int64
}

// RedisQueue keeps job records in hashes and dispatches job ids through a
// stream read by a consumer group.
type RedisQueue struct {
	client       *redis.Client
	stream       string
	group        string
	consumerBase string
	jobTTL       time.Duration
	block        time.Duration
	claimIdle    time.Duration
	waitPoll     time.Duration
	maxLen       int64
	readCount    int64
	ids          utils.IDGenerator
	once         sync.Once
	logger       *logger.Logger
}

// NewRedisQueue builds a RedisQueue. It does not contact the server.
func NewRedisQueue(cfg RedisConfig, log *logger.Logger) (*RedisQueue, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("redis addr required")
	}
	stream := strings.TrimSpace(cfg.Stream)
	if stream == "" {
		return nil, errors.New("queue stream required")
	}

	ids := utils.NewUUIDGenerator()
	q := &RedisQueue{
		client:       redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Password}),
		stream:       stream,
		group:        valueOr(strings.TrimSpace(cfg.Group), "nft-workers"),
		consumerBase: valueOr(strings.TrimSpace(cfg.Consumer), ids.Generate()),
		jobTTL:       durationOr(cfg.JobTTL, 24*time.Hour),
		block:        durationOr(cfg.Block, 5*time.Second),
		claimIdle:    durationOr(cfg.ClaimIdle, time.Minute),
		waitPoll:     durationOr(cfg.WaitPoll, 200*time.Millisecond),
		maxLen:       cfg.MaxLen,
		readCount:    cfg.ReadCount,
		ids:          ids,
		logger:       log,
	}
	if q.maxLen <= 0 {
		q.maxLen = 10000
	}
	if q.readCount <= 0 {
		q.readCount = 10
	}
	return q, nil
}

// Ping checks the connection.
func (q *RedisQueue) Ping(ctx context.Context) error {
	return q.client.Ping(ctx).Err()
}

func (q *RedisQueue) Close() error {
	return q.client.Close()
}

func (q *RedisQueue) Enqueue(ctx context.Context, task Task) (Job, error) {
	if err := task.validate(); err != nil {
		return Job{}, err
	}

	now := time.Now().UTC()
	job := Job{
		ID:            q.ids.Generate(),
		TransactionID: task.TransactionID,
		DocumentID:    task.DocumentID,
		BuyerWallet:   strings.ToLower(task.BuyerWallet),
		Status:        StatusQueued,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := q.writeJob(ctx, job); err != nil {
		return Job{}, err
	}

	if err := q.client.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		MaxLen: q.maxLen,
		Approx: true,
		Values: map[string]any{"job_id": job.ID},
	}).Err(); err != nil {
		return Job{}, fmt.Errorf("error adding job to stream: %w", err)
	}

	return job, nil
}

func (q *RedisQueue) GetJob(ctx context.Context, jobID string) (Job, bool, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return Job{}, false, nil
	}

	data, err := q.client.HGetAll(ctx, q.jobKey(jobID)).Result()
	if err != nil {
		return Job{}, false, fmt.Errorf("error reading job: %w", err)
	}
	if len(data) == 0 {
		return Job{}, false, nil
	}
	return decodeJob(jobID, data), true, nil
}

func (q *RedisQueue) Wait(ctx context.Context, jobID string) (Job, error) {
	ticker := time.NewTicker(q.waitPoll)
	defer ticker.Stop()

	for {
		job, ok, err := q.GetJob(ctx, jobID)
		if err != nil {
			return Job{}, err
		}
		if !ok {
			return Job{}, ErrJobNotFound
		}
		if job.Finished() {
			return job, nil
		}

		select {
		case <-ctx.Done():
			return Job{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (q *RedisQueue) Start(ctx context.Context, concurrency int, handler Handler) {
	if concurrency <= 0 {
		concurrency = 1
	}
	q.ensureGroup(ctx)
	for i := range concurrency {
		consumer := fmt.Sprintf("%s-%d", q.consumerBase, i)
		go q.consumeLoop(ctx, consumer, handler)
	}
}

func (q *RedisQueue) ensureGroup(ctx context.Context) {
	q.once.Do(func() {
		err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
		if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
			q.logger.Err(err).Str("func", "*RedisQueue.ensureGroup").Msg("error creating consumer group")
		}
	})
}

func (q *RedisQueue) consumeLoop(ctx context.Context, consumer string, handler Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if msgs, err := q.claimAbandoned(ctx, consumer); err == nil {
			for _, msg := range msgs {
				q.handleMessage(ctx, msg, handler)
			}
		}

		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.group,
			Consumer: consumer,
			Streams:  []string{q.stream, ">"},
			Count:    q.readCount,
			Block:    q.block,
		}).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				q.logger.Err(err).Str("func", "*RedisQueue.consumeLoop").Msg("error reading stream")
			}
			continue
		}
		for _, stream := range streams {
			for _, msg := range stream.Messages {
				q.handleMessage(ctx, msg, handler)
			}
		}
	}
}

// claimAbandoned picks up messages a crashed consumer left unacknowledged.
func (q *RedisQueue) claimAbandoned(ctx context.Context, consumer string) ([]redis.XMessage, error) {
	msgs, _, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   q.stream,
		Group:    q.group,
		Consumer: consumer,
		MinIdle:  q.claimIdle,
		Start:    "0-0",
		Count:    q.readCount,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return msgs, err
}

func (q *RedisQueue) handleMessage(ctx context.Context, msg redis.XMessage, handler Handler) {
	defer q.ackAndDel(ctx, msg.ID)

	jobID, _ := msg.Values["job_id"].(string)
	if jobID == "" {
		return
	}

	job, ok, err := q.GetJob(ctx, jobID)
	if err != nil || !ok || job.Finished() {
		return
	}

	// A job already in processing was abandoned mid-flight; it is not
	// attempted twice.
	if job.Status == StatusProcessing {
		job.Status = StatusFailed
		job.Error = "job interrupted"
		job.UpdatedAt = time.Now().UTC()
		_ = q.writeJob(ctx, job)
		return
	}

	job.Status = StatusProcessing
	job.Attempts++
	job.UpdatedAt = time.Now().UTC()
	if err = q.writeJob(ctx, job); err != nil {
		return
	}

	if err = q.writeJob(ctx, run(ctx, job, handler)); err != nil {
		q.logger.Err(err).Str("func", "*RedisQueue.handleMessage").Str("job_id", jobID).Msg("error saving job result")
	}
}

func (q *RedisQueue) ackAndDel(ctx context.Context, msgID string) {
	_, _ = q.client.XAck(ctx, q.stream, q.group, msgID).Result()
	_, _ = q.client.XDel(ctx, q.stream, msgID).Result()
}

func (q *RedisQueue) writeJob(ctx context.Context, job Job) error {
	key := q.jobKey(job.ID)
	payload := map[string]any{
		"transactionId": job.TransactionID,
		"documentId":    job.DocumentID,
		"buyerWallet":   job.BuyerWallet,
		"status":        string(job.Status),
		"error":         job.Error,
		"attempts":      strconv.Itoa(job.Attempts),
		"nftTokenId":    job.NFTTokenID,
		"createdAt":     job.CreatedAt.Format(time.RFC3339Nano),
		"updatedAt":     job.UpdatedAt.Format(time.RFC3339Nano),
	}
	if err := q.client.HSet(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("error writing job: %w", err)
	}
	_ = q.client.Expire(ctx, key, q.jobTTL).Err()
	return nil
}

func (q *RedisQueue) jobKey(jobID string) string {
	return fmt.Sprintf("job:%s:%s", q.stream, jobID)
}

func decodeJob(jobID string, data map[string]string) Job {
	job := Job{
		ID:            jobID,
		TransactionID: data["transactionId"],
		DocumentID:    data["documentId"],
		BuyerWallet:   data["buyerWallet"],
		Status:        Status(data["status"]),
		Error:         data["error"],
		NFTTokenID:    data["nftTokenId"],
	}
	if n, err := strconv.Atoi(data["attempts"]); err == nil {
		job.Attempts = n
	}
	if t, err := time.Parse(time.RFC3339Nano, data["createdAt"]); err == nil {
		job.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, data["updatedAt"]); err == nil {
		job.UpdatedAt = t
	}
	return job
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
