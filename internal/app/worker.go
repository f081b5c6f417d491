package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sharda-hr/internal/config"
	"sharda-hr/internal/messaging/kafka"
	"sharda-hr/internal/messaging/kafka/producer"
	"sharda-hr/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	_, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka, cfg.Retries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.OutboxPollInterval)

	logger.Info("worker shut down")
	return nil
}
