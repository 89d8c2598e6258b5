package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/adiwardana/marketplace/internal/domain"
	"github.com/adiwardana/marketplace/internal/dto"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createNotificationFixture() (*fakeNotificationRepository, *NotificationServiceImpl) {
	repo := &fakeNotificationRepository{}
	svc := CreateNotificationService(repo, nil).(*NotificationServiceImpl)
	return repo, svc
}

func envelope(t *testing.T, eventType string, data interface{}) []byte {
	t.Helper()
	rawData, err := json.Marshal(data)
	require.NoError(t, err)
	raw, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: rawData})
	require.NoError(t, err)
	return raw
}

func TestAddNotification_CreatesUnreadRecord(t *testing.T) {
	repo, svc := createNotificationFixture()

	orderID := int64(42)
	resp, err := svc.AddNotification(context.Background(), dto.NotificationRequest{
		Type:     domain.NotificationTypePaymentSuccess,
		UserID:   9,
		OrderID:  &orderID,
		Title:    "Payment Successful",
		Message:  "Your payment of INR 579.97 for order #42 was successful.",
		Priority: domain.NotificationPriorityHigh,
		Category: domain.NotificationCategoryPayment,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.Read)
	assert.Nil(t, resp.ReadAt)

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, resp.ID, repo.notifications[0].ID)
}

func TestAddNotification_RejectsOutOfSetValues(t *testing.T) {
	_, svc := createNotificationFixture()

	valid := dto.NotificationRequest{
		Type:     domain.NotificationTypeSystemAlert,
		UserID:   9,
		Title:    "t",
		Message:  "m",
		Priority: domain.NotificationPriorityLow,
		Category: domain.NotificationCategorySystem,
	}

	testCases := []struct {
		Name   string
		Mutate func(req *dto.NotificationRequest)
	}{
		{Name: "unknown type", Mutate: func(req *dto.NotificationRequest) { req.Type = "carrier_pigeon" }},
		{Name: "unknown priority", Mutate: func(req *dto.NotificationRequest) { req.Priority = "asap" }},
		{Name: "unknown category", Mutate: func(req *dto.NotificationRequest) { req.Category = "misc" }},
		{Name: "missing user", Mutate: func(req *dto.NotificationRequest) { req.UserID = 0 }},
		{Name: "missing title", Mutate: func(req *dto.NotificationRequest) { req.Title = "" }},
		{Name: "missing message", Mutate: func(req *dto.NotificationRequest) { req.Message = "" }},
		{Name: "title too long", Mutate: func(req *dto.NotificationRequest) { req.Title = strings.Repeat("a", 256) }},
		{Name: "message too long", Mutate: func(req *dto.NotificationRequest) { req.Message = strings.Repeat("a", 1001) }},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := valid
			tc.Mutate(&req)

			_, err := svc.AddNotification(context.Background(), req)
			assert.ErrorIs(t, err, errs.ErrClient)
		})
	}
}

func TestMarkNotificationRead_SetsReadAtOnce(t *testing.T) {
	repo, svc := createNotificationFixture()

	resp, err := svc.AddNotification(context.Background(), dto.NotificationRequest{
		Type:     domain.NotificationTypeSystemAlert,
		UserID:   9,
		Title:    "t",
		Message:  "m",
		Priority: domain.NotificationPriorityLow,
		Category: domain.NotificationCategorySystem,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkNotificationRead(context.Background(), resp.ID))

	notification := repo.notifications[0]
	assert.True(t, notification.Read)
	require.NotNil(t, notification.ReadAt)

	// A second mark has no unread row to match.
	err = svc.MarkNotificationRead(context.Background(), resp.ID)
	assert.ErrorIs(t, err, errs.ErrNotificationNotFound)
	assert.Equal(t, notification.ReadAt, repo.notifications[0].ReadAt)
}

func TestGetNotifications_UnreadOnlyFilter(t *testing.T) {
	_, svc := createNotificationFixture()

	first, err := svc.AddNotification(context.Background(), dto.NotificationRequest{
		Type:     domain.NotificationTypeSystemAlert,
		UserID:   9,
		Title:    "first",
		Message:  "m",
		Priority: domain.NotificationPriorityLow,
		Category: domain.NotificationCategorySystem,
	})
	require.NoError(t, err)
	_, err = svc.AddNotification(context.Background(), dto.NotificationRequest{
		Type:     domain.NotificationTypeSystemAlert,
		UserID:   9,
		Title:    "second",
		Message:  "m",
		Priority: domain.NotificationPriorityLow,
		Category: domain.NotificationCategorySystem,
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkNotificationRead(context.Background(), first.ID))

	resp, err := svc.GetNotifications(context.Background(), 9, true)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "second", resp.Notifications[0].Title)

	resp, err = svc.GetNotifications(context.Background(), 9, false)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
}

func TestHandleOrderEvent_OrderCreated(t *testing.T) {
	repo, svc := createNotificationFixture()

	svc.handleOrderEvent(context.Background(), envelope(t, "order_created", dto.OrderCreatedEvent{
		UserID:      3,
		OrderID:     7,
		TotalAmount: 579.97,
		ItemCount:   2,
	}))

	require.Len(t, repo.notifications, 1)
	notification := repo.notifications[0]
	assert.Equal(t, domain.NotificationTypeOrderCreated, notification.Type)
	assert.Equal(t, domain.NotificationCategoryOrder, notification.Category)
	assert.Equal(t, int64(3), notification.UserID)
	require.NotNil(t, notification.OrderID)
	assert.Equal(t, int64(7), *notification.OrderID)
	assert.Contains(t, notification.Message, "7")
	assert.Contains(t, notification.Message, "579.97")
}

func TestHandleOrderEvent_OrderStatusUpdate(t *testing.T) {
	repo, svc := createNotificationFixture()

	svc.handleOrderEvent(context.Background(), envelope(t, "order_status_update", dto.OrderStatusUpdateEvent{
		UserID:         3,
		OrderID:        7,
		Status:         "shipped",
		PreviousStatus: "processing",
		PaymentStatus:  "paid",
	}))

	require.Len(t, repo.notifications, 1)
	notification := repo.notifications[0]
	assert.Equal(t, domain.NotificationTypeOrderStatusUpdate, notification.Type)
	assert.Equal(t, domain.NotificationCategoryOrder, notification.Category)
	assert.Contains(t, notification.Message, "7")
	assert.Contains(t, notification.Message, "shipped")
	assert.Contains(t, notification.Message, "processing")
}

func TestHandleOrderEvent_RedeliveryCreatesDuplicateRows(t *testing.T) {
	repo, svc := createNotificationFixture()

	msg := envelope(t, "order_created", dto.OrderCreatedEvent{
		UserID:      3,
		OrderID:     7,
		TotalAmount: 100,
		ItemCount:   1,
	})

	// At-least-once delivery: the consumer derives no deduplication key,
	// so a redelivered message writes a second row.
	svc.handleOrderEvent(context.Background(), msg)
	svc.handleOrderEvent(context.Background(), msg)

	require.Len(t, repo.notifications, 2)
	assert.NotEqual(t, repo.notifications[0].ID, repo.notifications[1].ID)
	assert.Equal(t, repo.notifications[0].Message, repo.notifications[1].Message)
}

func TestHandleOrderEvent_DropsBadPayloads(t *testing.T) {
	testCases := []struct {
		Name    string
		Message []byte
	}{
		{Name: "not json", Message: []byte("not-json")},
		{Name: "empty message", Message: []byte("")},
		{Name: "missing data", Message: []byte(`{"type":"order_created"}`)},
		{Name: "null data", Message: []byte(`{"type":"order_created","data":null}`)},
		{Name: "empty data object", Message: []byte(`{"type":"order_created","data":{}}`)},
		{Name: "wrong data shape", Message: []byte(`{"type":"order_created","data":"oops"}`)},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			repo, svc := createNotificationFixture()

			svc.handleOrderEvent(context.Background(), tc.Message)

			assert.Empty(t, repo.notifications)
		})
	}
}

func TestHandleOrderEvent_IgnoresUnknownTypes(t *testing.T) {
	repo, svc := createNotificationFixture()

	svc.handleOrderEvent(context.Background(), envelope(t, "order_refunded", dto.OrderCreatedEvent{
		UserID:  3,
		OrderID: 7,
	}))

	assert.Empty(t, repo.notifications)
}

func TestRemoveExpiredNotifications(t *testing.T) {
	repo, svc := createNotificationFixture()

	expired := time.Now().Add(-time.Hour).Unix()
	future := time.Now().Add(time.Hour).Unix()

	for _, expiresAt := range []*int64{&expired, &future, nil} {
		_, err := svc.AddNotification(context.Background(), dto.NotificationRequest{
			Type:      domain.NotificationTypePromotional,
			UserID:    9,
			Title:     "t",
			Message:   "m",
			Priority:  domain.NotificationPriorityLow,
			Category:  domain.NotificationCategoryPromotional,
			ExpiresAt: expiresAt,
		})
		require.NoError(t, err)
	}

	svc.RemoveExpiredNotifications()

	assert.Len(t, repo.notifications, 2)
}
