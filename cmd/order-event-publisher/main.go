package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/adiwardana/marketplace/config"
	"github.com/adiwardana/marketplace/internal/dto"
	messagequeue "github.com/adiwardana/marketplace/internal/infrastructure/message-queue/kafka"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Small operational tool: publishes a single order event envelope to the
// order events topic, keyed by order id so events for one order land on the
// same partition.
func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Logger = logger

	eventType := flag.String("type", "order_created", "event type (order_created or order_status_update)")
	orderID := flag.Int64("order-id", 0, "order id")
	userID := flag.Int64("user-id", 0, "user id")
	totalAmount := flag.Float64("total-amount", 0, "order total (order_created)")
	itemCount := flag.Int("item-count", 0, "item count (order_created)")
	status := flag.String("status", "", "new order status (order_status_update)")
	previousStatus := flag.String("previous-status", "", "previous order status (order_status_update)")
	paymentStatus := flag.String("payment-status", "", "payment status (order_status_update)")
	flag.Parse()

	if *orderID <= 0 || *userID <= 0 {
		log.Fatal().Msg("order-id and user-id are required")
	}

	var data interface{}
	switch *eventType {
	case "order_created":
		data = dto.OrderCreatedEvent{
			UserID:      *userID,
			OrderID:     *orderID,
			TotalAmount: *totalAmount,
			ItemCount:   *itemCount,
		}
	case "order_status_update":
		data = dto.OrderStatusUpdateEvent{
			UserID:         *userID,
			OrderID:        *orderID,
			Status:         *status,
			PreviousStatus: *previousStatus,
			PaymentStatus:  *paymentStatus,
		}
	default:
		log.Fatal().Str("type", *eventType).Msg("unsupported event type")
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal event payload")
	}

	envelope, err := json.Marshal(dto.KafkaMessage{
		EventType: *eventType,
		Data:      rawData,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal event envelope")
	}

	config := config.CreateNewConfig()
	writer := messagequeue.CreateKafkaWriter(config)
	defer writer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(*orderID, 10)),
		Value: envelope,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to publish event")
	}

	fmt.Printf("published %s for order %d\n", *eventType, *orderID)
}
