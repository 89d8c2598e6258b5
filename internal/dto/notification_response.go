package dto

import "encoding/json"

type NotificationResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	UserID     int64           `json:"userId"`
	OrderID    *int64          `json:"orderId,omitempty"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Priority   string          `json:"priority"`
	Category   string          `json:"category"`
	Read       bool            `json:"read"`
	ReadAt     *int64          `json:"readAt,omitempty"`
	ActionURL  *string         `json:"actionUrl,omitempty"`
	ActionText *string         `json:"actionText,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	ExpiresAt  *int64          `json:"expiresAt,omitempty"`
	CreatedAt  int64           `json:"createdAt"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}
