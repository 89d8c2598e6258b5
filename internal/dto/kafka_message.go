package dto

import "encoding/json"

// KafkaMessage is the envelope every order event travels in.
type KafkaMessage struct {
	EventType string          `json:"type"`
	Data      json.RawMessage `json:"data"`
}

type OrderCreatedEvent struct {
	UserID      int64   `json:"userId"`
	OrderID     int64   `json:"orderId"`
	TotalAmount float64 `json:"totalAmount"`
	ItemCount   int     `json:"itemCount"`
}

type OrderStatusUpdateEvent struct {
	UserID         int64  `json:"userId"`
	OrderID        int64  `json:"orderId"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previousStatus"`
	PaymentStatus  string `json:"paymentStatus"`
}
