package client

import (
	"context"

	"github.com/adiwardana/marketplace/internal/dto"
)

// OrderServiceClient talks to the upstream order service. Settlement treats
// the two update calls as best-effort: callers log failures and move on.
type OrderServiceClient interface {
	GetOrder(ctx context.Context, orderID int64) (dto.OrderRecord, error)
	UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus string) error
	UpdatePaymentMode(ctx context.Context, orderID int64, paymentMethod string) error
}

// NotificationDispatcher delivers a fully-formed notification payload to the
// notification service.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, req dto.NotificationRequest) error
}
