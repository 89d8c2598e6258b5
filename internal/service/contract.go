package service

import (
	"context"

	"github.com/adiwardana/marketplace/internal/dto"
)

type PaymentService interface {
	InitiatePayment(ctx context.Context, req dto.InitiatePaymentRequest) (resp dto.InitiatePaymentResponse, err error)
	HandlePaymentCallback(ctx context.Context, req dto.PaymentCallbackRequest) (err error)
	GetTransactionsByOrderID(ctx context.Context, orderID int64) (resp dto.TransactionsResponse, err error)
}

type NotificationService interface {
	AddNotification(ctx context.Context, req dto.NotificationRequest) (resp dto.NotificationResponse, err error)
	GetNotifications(ctx context.Context, userID int64, unreadOnly bool) (resp dto.NotificationsResponse, err error)
	MarkNotificationRead(ctx context.Context, id string) (err error)
	ConsumeEvents(ctx context.Context)
	RemoveExpiredNotifications()
}
