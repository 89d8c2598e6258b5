package repository

import (
	"context"

	"github.com/adiwardana/marketplace/internal/domain"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type NotificationRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &NotificationRepositoryImpl{
		db: db,
	}
}

func (r *NotificationRepositoryImpl) AddNotification(ctx context.Context, data domain.Notification) (err error) {
	_, err = r.db.NamedExecContext(ctx, `INSERT INTO notifications(id, type, user_id, order_id, title, message, priority, category, "read", read_at, action_url, action_text, metadata, expires_at, created_at, updated_at) VALUES (:id, :type, :user_id, :order_id, :title, :message, :priority, :category, :read, :read_at, :action_url, :action_text, :metadata, :expires_at, :created_at, :updated_at)`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddNotification").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *NotificationRepositoryImpl) GetNotificationsByUserID(ctx context.Context, userID int64, unreadOnly bool) (data []domain.Notification, err error) {
	query := "SELECT * FROM notifications WHERE user_id = $1"
	if unreadOnly {
		query += ` AND "read" = false`
	}
	query += " ORDER BY created_at DESC"

	err = r.db.SelectContext(ctx, &data, query, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetNotificationsByUserID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}

// MarkNotificationRead flips read to true and stamps read_at exactly once:
// the read = false guard makes a second call match zero rows.
func (r *NotificationRepositoryImpl) MarkNotificationRead(ctx context.Context, id string, readAt int64) (err error) {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET "read" = true, read_at = $2, updated_at = $2 WHERE id = $1 AND "read" = false`, id, readAt)
	if err != nil {
		log.Error().Err(err).Str("component", "MarkNotificationRead").Msg("")
		return errs.ErrInternalServer
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "MarkNotificationRead").Msg("")
		return errs.ErrInternalServer
	}

	if affected == 0 {
		return errs.ErrNotificationNotFound
	}

	return nil
}

func (r *NotificationRepositoryImpl) DeleteExpiredNotifications(ctx context.Context, now int64) (count int64, err error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notifications WHERE expires_at IS NOT NULL AND expires_at < $1", now)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteExpiredNotifications").Msg("")
		return 0, errs.ErrInternalServer
	}

	count, err = result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteExpiredNotifications").Msg("")
		return 0, errs.ErrInternalServer
	}

	return count, nil
}
