package service

import (
	"context"
	"fmt"

	"github.com/adiwardana/marketplace/internal/domain"
	"github.com/adiwardana/marketplace/internal/dto"
	paymentgateway "github.com/adiwardana/marketplace/internal/infrastructure/payment-gateway"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/adiwardana/marketplace/pkg/utils"
)

type fakeTransactionRepository struct {
	transactions []domain.PaymentTransaction
	nextID       int64
}

func (r *fakeTransactionRepository) AddTransaction(ctx context.Context, data domain.PaymentTransaction) (int64, error) {
	for _, trx := range r.transactions {
		if trx.TransactionID == data.TransactionID {
			return 0, errs.ErrConflict
		}
	}

	r.nextID++
	data.ID = r.nextID
	r.transactions = append(r.transactions, data)
	return data.ID, nil
}

func (r *fakeTransactionRepository) GetPendingTransaction(ctx context.Context, orderID int64, gatewayOrderID string) (domain.PaymentTransaction, error) {
	for i := len(r.transactions) - 1; i >= 0; i-- {
		trx := r.transactions[i]
		if trx.OrderID == orderID && trx.GatewayOrderID != nil && *trx.GatewayOrderID == gatewayOrderID && trx.Status == domain.TransactionStatusPending {
			return trx, nil
		}
	}
	return domain.PaymentTransaction{}, errs.ErrTransactionNotFound
}

func (r *fakeTransactionRepository) UpdateTransaction(ctx context.Context, data domain.PaymentTransaction) error {
	for i, trx := range r.transactions {
		if trx.ID == data.ID {
			r.transactions[i] = data
			return nil
		}
	}
	return errs.ErrTransactionNotFound
}

func (r *fakeTransactionRepository) GetTransactionsByOrderID(ctx context.Context, orderID int64) ([]domain.PaymentTransaction, error) {
	var result []domain.PaymentTransaction
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if r.transactions[i].OrderID == orderID {
			result = append(result, r.transactions[i])
		}
	}
	return result, nil
}

type fakeGateway struct {
	fail         bool
	orderCount   int
	lastReceipt  string
	lastAmount   int64
	lastCurrency string
}

func (g *fakeGateway) CreateOrder(ctx context.Context, amount float64, currency string, receipt string) (paymentgateway.GatewayOrder, error) {
	if g.fail {
		return paymentgateway.GatewayOrder{}, errs.ErrGatewayUnavailable
	}

	g.orderCount++
	g.lastReceipt = receipt
	g.lastAmount = utils.ToMinorUnits(amount)
	g.lastCurrency = currency

	return paymentgateway.GatewayOrder{
		ID:       fmt.Sprintf("order_fake_%d", g.orderCount),
		Amount:   g.lastAmount,
		Currency: currency,
	}, nil
}

type fakeOrderServiceClient struct {
	orders      map[int64]dto.OrderRecord
	statusCalls []string
	modeCalls   []string
	failStatus  bool
	failMode    bool
}

func (c *fakeOrderServiceClient) GetOrder(ctx context.Context, orderID int64) (dto.OrderRecord, error) {
	order, ok := c.orders[orderID]
	if !ok {
		return dto.OrderRecord{}, errs.ErrOrderNotFound
	}
	return order, nil
}

func (c *fakeOrderServiceClient) UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus string) error {
	if c.failStatus {
		return fmt.Errorf("order service returned non-OK status: 503")
	}
	c.statusCalls = append(c.statusCalls, fmt.Sprintf("%d:%s", orderID, paymentStatus))
	return nil
}

func (c *fakeOrderServiceClient) UpdatePaymentMode(ctx context.Context, orderID int64, paymentMethod string) error {
	if c.failMode {
		return fmt.Errorf("order service returned non-OK status: 503")
	}
	c.modeCalls = append(c.modeCalls, fmt.Sprintf("%d:%s", orderID, paymentMethod))
	return nil
}

type fakeNotificationDispatcher struct {
	dispatched []dto.NotificationRequest
	fail       bool
}

func (d *fakeNotificationDispatcher) Dispatch(ctx context.Context, req dto.NotificationRequest) error {
	if d.fail {
		return fmt.Errorf("notification service returned non-created status: 503")
	}
	d.dispatched = append(d.dispatched, req)
	return nil
}

type fakeNotificationRepository struct {
	notifications []domain.Notification
	failAdd       bool
}

func (r *fakeNotificationRepository) AddNotification(ctx context.Context, data domain.Notification) error {
	if r.failAdd {
		return errs.ErrInternalServer
	}
	r.notifications = append(r.notifications, data)
	return nil
}

func (r *fakeNotificationRepository) GetNotificationsByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]domain.Notification, error) {
	var result []domain.Notification
	for i := len(r.notifications) - 1; i >= 0; i-- {
		notification := r.notifications[i]
		if notification.UserID != userID {
			continue
		}
		if unreadOnly && notification.Read {
			continue
		}
		result = append(result, notification)
	}
	return result, nil
}

func (r *fakeNotificationRepository) MarkNotificationRead(ctx context.Context, id string, readAt int64) error {
	for i, notification := range r.notifications {
		if notification.ID == id && !notification.Read {
			r.notifications[i].Read = true
			r.notifications[i].ReadAt = &readAt
			r.notifications[i].UpdatedAt = readAt
			return nil
		}
	}
	return errs.ErrNotificationNotFound
}

func (r *fakeNotificationRepository) DeleteExpiredNotifications(ctx context.Context, now int64) (int64, error) {
	var kept []domain.Notification
	var count int64
	for _, notification := range r.notifications {
		if notification.ExpiresAt != nil && *notification.ExpiresAt < now {
			count++
			continue
		}
		kept = append(kept, notification)
	}
	r.notifications = kept
	return count, nil
}
