package kafka

import (
	"net"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

const (
	orderEventsPartitions        = 3
	orderEventsReplicationFactor = 1
)

// BrokerConn is the slice of *kafka.Conn the provisioner needs.
type BrokerConn interface {
	ReadPartitions(topics ...string) ([]kafka.Partition, error)
	CreateTopics(topics ...kafka.TopicConfig) error
}

// DialController connects to any broker, asks it for the cluster controller
// and returns a connection to the controller, which is the only broker that
// accepts topic creation.
func DialController(brokerAddress string) (*kafka.Conn, error) {
	conn, err := kafka.Dial("tcp", brokerAddress)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return nil, err
	}

	return kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
}

// EnsureTopic idempotently creates the order events topic with a fixed
// partition count. An existing topic is checked by name and left untouched.
func EnsureTopic(conn BrokerConn, topic string) error {
	partitions, err := conn.ReadPartitions(topic)
	if err == nil && len(partitions) > 0 {
		log.Info().Str("component", "EnsureTopic").Str("topic", topic).Msg("topic already exists")
		return nil
	}
	if err != nil && err != kafka.UnknownTopicOrPartition {
		return err
	}

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     orderEventsPartitions,
		ReplicationFactor: orderEventsReplicationFactor,
	})
	if err != nil {
		return err
	}

	log.Info().Str("component", "EnsureTopic").Str("topic", topic).Msg("topic created")
	return nil
}
