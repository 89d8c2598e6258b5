package dto

import "encoding/json"

type NotificationRequest struct {
	Type       string          `json:"type"`
	UserID     int64           `json:"userId"`
	OrderID    *int64          `json:"orderId,omitempty"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	Priority   string          `json:"priority"`
	Category   string          `json:"category"`
	ActionURL  *string         `json:"actionUrl,omitempty"`
	ActionText *string         `json:"actionText,omitempty"`
	Metadata   json.RawMessage `json:"metadata,omitempty"`
	ExpiresAt  *int64          `json:"expiresAt,omitempty"`
}
