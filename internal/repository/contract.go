package repository

import (
	"context"

	"github.com/adiwardana/marketplace/internal/domain"
)

type TransactionRepository interface {
	AddTransaction(ctx context.Context, data domain.PaymentTransaction) (id int64, err error)
	GetPendingTransaction(ctx context.Context, orderID int64, gatewayOrderID string) (data domain.PaymentTransaction, err error)
	UpdateTransaction(ctx context.Context, data domain.PaymentTransaction) (err error)
	GetTransactionsByOrderID(ctx context.Context, orderID int64) (data []domain.PaymentTransaction, err error)
}

type NotificationRepository interface {
	AddNotification(ctx context.Context, data domain.Notification) (err error)
	GetNotificationsByUserID(ctx context.Context, userID int64, unreadOnly bool) (data []domain.Notification, err error)
	MarkNotificationRead(ctx context.Context, id string, readAt int64) (err error)
	DeleteExpiredNotifications(ctx context.Context, now int64) (count int64, err error)
}
