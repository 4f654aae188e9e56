package kafka

import (
	"context"
	"fmt"
	"strings"

	"github.com/IBM/sarama"
	"pickup-service/internal/pkg/config"
	"pickup-service/pkg/logger"
)

const producerMaxRetries = 3

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = producerMaxRetries
	cfg.Producer.Idempotent = true
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Net.MaxOpenRequests = 1

	return cfg, nil
}

// NewSyncProducer ключ сообщения выбирает партицию, поэтому события одной заявки идут по порядку.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.EventsTopic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer created")
	return producer, nil
}

// ParseBrokers список брокеров из KAFKA_BROKERS через запятую.
func ParseBrokers(raw string) []string {
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}
