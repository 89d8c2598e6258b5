package domain

import "github.com/jmoiron/sqlx/types"

const (
	NotificationTypeOrderCreated      = "order_created"
	NotificationTypeOrderStatusUpdate = "order_status_update"
	NotificationTypePaymentSuccess    = "payment_success"
	NotificationTypePaymentFailed     = "payment_failed"
	NotificationTypeShipmentUpdate    = "shipment_update"
	NotificationTypeDeliveryUpdate    = "delivery_update"
	NotificationTypeSystemAlert       = "system_alert"
	NotificationTypePromotional       = "promotional"
)

const (
	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
	NotificationPriorityUrgent = "urgent"
)

const (
	NotificationCategoryOrder       = "order"
	NotificationCategoryPayment     = "payment"
	NotificationCategoryShipment    = "shipment"
	NotificationCategorySystem      = "system"
	NotificationCategoryPromotional = "promotional"
)

const (
	NotificationTitleMaxLength   = 255
	NotificationMessageMaxLength = 1000
)

var notificationTypes = map[string]struct{}{
	NotificationTypeOrderCreated:      {},
	NotificationTypeOrderStatusUpdate: {},
	NotificationTypePaymentSuccess:    {},
	NotificationTypePaymentFailed:     {},
	NotificationTypeShipmentUpdate:    {},
	NotificationTypeDeliveryUpdate:    {},
	NotificationTypeSystemAlert:       {},
	NotificationTypePromotional:       {},
}

var notificationPriorities = map[string]struct{}{
	NotificationPriorityLow:    {},
	NotificationPriorityMedium: {},
	NotificationPriorityHigh:   {},
	NotificationPriorityUrgent: {},
}

var notificationCategories = map[string]struct{}{
	NotificationCategoryOrder:       {},
	NotificationCategoryPayment:     {},
	NotificationCategoryShipment:    {},
	NotificationCategorySystem:      {},
	NotificationCategoryPromotional: {},
}

func IsValidNotificationType(notificationType string) bool {
	_, ok := notificationTypes[notificationType]
	return ok
}

func IsValidNotificationPriority(priority string) bool {
	_, ok := notificationPriorities[priority]
	return ok
}

func IsValidNotificationCategory(category string) bool {
	_, ok := notificationCategories[category]
	return ok
}

type Notification struct {
	ID         string         `db:"id"`
	Type       string         `db:"type"`
	UserID     int64          `db:"user_id"`
	OrderID    *int64         `db:"order_id"`
	Title      string         `db:"title"`
	Message    string         `db:"message"`
	Priority   string         `db:"priority"`
	Category   string         `db:"category"`
	Read       bool           `db:"read"`
	ReadAt     *int64         `db:"read_at"`
	ActionURL  *string        `db:"action_url"`
	ActionText *string        `db:"action_text"`
	Metadata   types.JSONText `db:"metadata"`
	ExpiresAt  *int64         `db:"expires_at"`
	CreatedAt  int64          `db:"created_at"`
	UpdatedAt  int64          `db:"updated_at"`
}
