package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/unibrain/internal/logger"
	"github.com/MKhiriev/unibrain/internal/queue"
)

var ErrNoQueue = errors.New("nft worker has no queue")

// NFTWorker consumes NFT generation jobs.
type NFTWorker struct {
	queue       queue.Queue
	handler     queue.Handler
	concurrency int
	logger      *logger.Logger
}

func NewNFTWorker(q queue.Queue, handler queue.Handler, concurrency int, log *logger.Logger) *NFTWorker {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &NFTWorker{
		queue:       q,
		handler:     handler,
		concurrency: concurrency,
		logger:      log,
	}
}

func (w *NFTWorker) Run(ctx context.Context) error {
	if w.queue == nil || w.handler == nil {
		return ErrNoQueue
	}

	w.logger.Info().Int("concurrency", w.concurrency).Msg("starting nft worker")
	w.queue.Start(ctx, w.concurrency, w.handle)
	return nil
}

func (w *NFTWorker) handle(ctx context.Context, job queue.Job) (string, error) {
	log := &logger.Logger{Logger: w.logger.With().Str("job_id", job.ID).Str("document_id", job.DocumentID).Logger()}
	ctx = log.WithContext(ctx)

	tokenID, err := w.handler(ctx, job)
	if err != nil {
		log.Err(err).Str("func", "*NFTWorker.handle").Msg("nft generation failed")
		return "", err
	}

	log.Info().Str("token_id", tokenID).Msg("nft generated")
	return tokenID, nil
}
