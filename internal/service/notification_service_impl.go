package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiwardana/marketplace/internal/domain"
	"github.com/adiwardana/marketplace/internal/dto"
	"github.com/adiwardana/marketplace/internal/repository"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/kafka-go"
)

type NotificationServiceImpl struct {
	repository  repository.NotificationRepository
	kafkaReader *kafka.Reader
}

func CreateNotificationService(repository repository.NotificationRepository, kafkaReader *kafka.Reader) NotificationService {
	return &NotificationServiceImpl{
		repository:  repository,
		kafkaReader: kafkaReader,
	}
}

func (s *NotificationServiceImpl) AddNotification(ctx context.Context, req dto.NotificationRequest) (resp dto.NotificationResponse, err error) {
	if req.UserID <= 0 || req.Title == "" || req.Message == "" {
		return resp, errs.ErrClient
	}
	if len(req.Title) > domain.NotificationTitleMaxLength || len(req.Message) > domain.NotificationMessageMaxLength {
		return resp, errs.ErrClient
	}
	if !domain.IsValidNotificationType(req.Type) || !domain.IsValidNotificationPriority(req.Priority) || !domain.IsValidNotificationCategory(req.Category) {
		return resp, errs.ErrClient
	}

	now := time.Now().Unix()
	notification := domain.Notification{
		ID:         ulid.Make().String(),
		Type:       req.Type,
		UserID:     req.UserID,
		OrderID:    req.OrderID,
		Title:      req.Title,
		Message:    req.Message,
		Priority:   req.Priority,
		Category:   req.Category,
		ActionURL:  req.ActionURL,
		ActionText: req.ActionText,
		Metadata:   []byte(req.Metadata),
		ExpiresAt:  req.ExpiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repository.AddNotification(ctx, notification); err != nil {
		return resp, err
	}

	return notificationToResponse(notification), nil
}

func (s *NotificationServiceImpl) GetNotifications(ctx context.Context, userID int64, unreadOnly bool) (resp dto.NotificationsResponse, err error) {
	if userID <= 0 {
		return resp, errs.ErrClient
	}

	notifications, err := s.repository.GetNotificationsByUserID(ctx, userID, unreadOnly)
	if err != nil {
		return resp, err
	}

	resp.Notifications = make([]dto.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		resp.Notifications = append(resp.Notifications, notificationToResponse(notification))
	}

	return resp, nil
}

func (s *NotificationServiceImpl) MarkNotificationRead(ctx context.Context, id string) (err error) {
	if id == "" {
		return errs.ErrClient
	}

	return s.repository.MarkNotificationRead(ctx, id, time.Now().Unix())
}

// ConsumeEvents drains the order events feed until ctx is cancelled. One
// message is processed at a time per assigned partition; a handler failure
// never stops the loop.
func (s *NotificationServiceImpl) ConsumeEvents(ctx context.Context) {
	log.Info().Str("component", "ConsumeEvents").Msg("order event consumer started")

	for {
		msg, err := s.kafkaReader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				log.Info().Str("component", "ConsumeEvents").Msg("order event consumer stopped")
				return
			}
			log.Error().Err(err).Str("component", "ConsumeEvents").Msg("")
			continue
		}

		s.handleOrderEvent(ctx, msg.Value)
	}
}

// handleOrderEvent translates one raw feed message into a notification row.
// Unparsable payloads are dropped with a warning, unrecognized event types
// are ignored. No deduplication key is derived from the message, so broker
// redelivery writes a duplicate row.
func (s *NotificationServiceImpl) handleOrderEvent(ctx context.Context, value []byte) {
	var receivedMsg dto.KafkaMessage
	if err := json.Unmarshal(value, &receivedMsg); err != nil {
		log.Warn().Err(err).Str("component", "handleOrderEvent").Msg("dropping unparsable order event")
		return
	}

	if isEmptyPayload(receivedMsg.Data) {
		log.Warn().Str("event_type", receivedMsg.EventType).Str("component", "handleOrderEvent").Msg("dropping order event with empty payload")
		return
	}

	switch receivedMsg.EventType {
	case domain.NotificationTypeOrderCreated:
		var event dto.OrderCreatedEvent
		if err := json.Unmarshal(receivedMsg.Data, &event); err != nil {
			log.Warn().Err(err).Str("component", "handleOrderEvent").Msg("dropping unparsable order_created payload")
			return
		}

		if _, err := s.AddNotification(ctx, buildOrderCreatedNotification(event)); err != nil {
			log.Error().Err(err).Str("component", "handleOrderEvent").Msg("failed to record order_created notification")
		}
	case domain.NotificationTypeOrderStatusUpdate:
		var event dto.OrderStatusUpdateEvent
		if err := json.Unmarshal(receivedMsg.Data, &event); err != nil {
			log.Warn().Err(err).Str("component", "handleOrderEvent").Msg("dropping unparsable order_status_update payload")
			return
		}

		if _, err := s.AddNotification(ctx, buildOrderStatusUpdateNotification(event)); err != nil {
			log.Error().Err(err).Str("component", "handleOrderEvent").Msg("failed to record order_status_update notification")
		}
	}
}

// RemoveExpiredNotifications is run periodically by the scheduler.
func (s *NotificationServiceImpl) RemoveExpiredNotifications() {
	count, err := s.repository.DeleteExpiredNotifications(context.Background(), time.Now().Unix())
	if err != nil {
		log.Error().Err(err).Str("component", "RemoveExpiredNotifications").Msg("")
		return
	}

	if count > 0 {
		log.Info().Int64("count", count).Str("component", "RemoveExpiredNotifications").Msg("expired notifications removed")
	}
}

func buildOrderCreatedNotification(event dto.OrderCreatedEvent) dto.NotificationRequest {
	orderID := event.OrderID
	return dto.NotificationRequest{
		Type:     domain.NotificationTypeOrderCreated,
		UserID:   event.UserID,
		OrderID:  &orderID,
		Title:    "Order Placed",
		Message:  fmt.Sprintf("Your order #%d with %d item(s) totalling %.2f has been placed.", event.OrderID, event.ItemCount, event.TotalAmount),
		Priority: domain.NotificationPriorityMedium,
		Category: domain.NotificationCategoryOrder,
	}
}

func buildOrderStatusUpdateNotification(event dto.OrderStatusUpdateEvent) dto.NotificationRequest {
	orderID := event.OrderID
	return dto.NotificationRequest{
		Type:     domain.NotificationTypeOrderStatusUpdate,
		UserID:   event.UserID,
		OrderID:  &orderID,
		Title:    "Order Status Updated",
		Message:  fmt.Sprintf("Your order #%d moved from %s to %s.", event.OrderID, event.PreviousStatus, event.Status),
		Priority: domain.NotificationPriorityMedium,
		Category: domain.NotificationCategoryOrder,
	}
}

func notificationToResponse(notification domain.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:         notification.ID,
		Type:       notification.Type,
		UserID:     notification.UserID,
		OrderID:    notification.OrderID,
		Title:      notification.Title,
		Message:    notification.Message,
		Priority:   notification.Priority,
		Category:   notification.Category,
		Read:       notification.Read,
		ReadAt:     notification.ReadAt,
		ActionURL:  notification.ActionURL,
		ActionText: notification.ActionText,
		Metadata:   json.RawMessage(notification.Metadata),
		ExpiresAt:  notification.ExpiresAt,
		CreatedAt:  notification.CreatedAt,
	}
}

func isEmptyPayload(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("{}"))
}
