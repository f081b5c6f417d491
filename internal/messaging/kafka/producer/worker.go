package producer

import (
	"context"
	"errors"
	"time"

	"sharda-hr/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	outboxBatchSize = 50

	// Sent rows are kept this long for audit before the relay removes them.
	sentRetention = 7 * 24 * time.Hour
	purgeInterval = time.Hour
)

// ProcessOutboxEvents relays pending outbox rows to Kafka until ctx is done.
// A full batch is followed immediately by the next one so a backlog drains
// without waiting for the poll interval.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("outbox.relay")
	poll := time.NewTicker(pollInterval)
	defer poll.Stop()
	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-purge.C:
			purgeSent(ctx, repo, log, time.Now())
		case <-poll.C:
			drain(ctx, repo, writer, log)
		}
	}
}

func drain(ctx context.Context, repo kafka.OutboxRepository, writer MessageWriter, log *zap.Logger) {
	for ctx.Err() == nil {
		fetched, err := RelayBatch(ctx, repo, writer, log)
		if err != nil {
			log.Error("relay outbox batch", zap.Error(err))
			return
		}
		if fetched < outboxBatchSize {
			return
		}
	}
}

func purgeSent(ctx context.Context, repo kafka.OutboxRepository, log *zap.Logger, now time.Time) {
	n, err := repo.PurgeSent(ctx, now.Add(-sentRetention))
	if err != nil {
		log.Error("purge sent outbox rows", zap.Error(err))
		return
	}
	if n > 0 {
		log.Info("purged sent outbox rows", zap.Int64("rows", n))
	}
}

// RelayBatch publishes one batch in a single write and records the outcome
// of every row. It returns how many rows were fetched.
func RelayBatch(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	msgs := make([]kafkago.Message, len(events))
	for i, event := range events {
		msgs[i] = toMessage(event)
	}
	failures := writeFailures(writer.WriteMessages(ctx, msgs...), len(events))

	sent := 0
	for i, event := range events {
		if failures[i] != nil {
			logger.Warn("publish outbox event",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.Int("retry_count", event.RetryCount),
				zap.Error(failures[i]),
			)
			if err := repo.MarkFailed(ctx, event.ID, failures[i].Error()); err != nil {
				logger.Error("mark outbox row failed", zap.String("outbox_id", event.ID), zap.Error(err))
			}
			continue
		}
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox row sent", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
	}

	logger.Debug("outbox batch relayed",
		zap.Int("fetched", len(events)),
		zap.Int("sent", sent),
	)
	return len(events), nil
}

// writeFailures spreads a WriteMessages error over the batch. kafka-go reports
// per-message results as WriteErrors; any other error fails every message.
func writeFailures(err error, n int) []error {
	failures := make([]error, n)
	if err == nil {
		return failures
	}
	var perMessage kafkago.WriteErrors
	if errors.As(err, &perMessage) && len(perMessage) == n {
		copy(failures, perMessage)
		return failures
	}
	for i := range failures {
		failures[i] = err
	}
	return failures
}
