package kafka

import (
	"time"

	"github.com/adiwardana/marketplace/config"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaReader builds a consumer-group reader for the order events
// topic. Offsets are committed on an interval, so a crash between processing
// and commit redelivers messages: delivery is at-least-once by construction.
func CreateKafkaReader(config *config.Config) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:         []string{config.KafkaConfig.BrokerAddress},
		Topic:           config.KafkaConfig.OrderEventsTopic,
		GroupID:         config.KafkaConfig.ConsumerGroupID,
		MinBytes:        1e3, // 1KB
		MaxBytes:        1e6, // 1MB
		MaxWait:         100 * time.Millisecond,
		CommitInterval:  500 * time.Millisecond,
		ReadLagInterval: -1,
	})
}

// CreateKafkaWriter builds a producer for the order events topic.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:        config.KafkaConfig.OrderEventsTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
}
