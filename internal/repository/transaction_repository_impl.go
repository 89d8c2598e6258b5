package repository

import (
	"context"
	"database/sql"

	"github.com/adiwardana/marketplace/internal/domain"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const pqUniqueViolation = "23505"

type TransactionRepositoryImpl struct {
	db *sqlx.DB
}

func CreateTransactionRepository(db *sqlx.DB) TransactionRepository {
	return &TransactionRepositoryImpl{
		db: db,
	}
}

func (r *TransactionRepositoryImpl) AddTransaction(ctx context.Context, data domain.PaymentTransaction) (id int64, err error) {
	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO payment_transactions(transaction_id, order_id, user_id, payment_method, amount, currency, status, gateway, gateway_order_id, gateway_response, error_code, error_message, refund_amount, refund_reason, refund_date, ip_address, user_agent, metadata, created_at, updated_at) VALUES (:transaction_id, :order_id, :user_id, :payment_method, :amount, :currency, :status, :gateway, :gateway_order_id, :gateway_response, :error_code, :error_message, :refund_amount, :refund_reason, :refund_date, :ip_address, :user_agent, :metadata, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddTransaction").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddTransaction").Msg("")
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return 0, errs.ErrConflict
		}
		return 0, errs.ErrInternalServer
	}

	return data.ID, nil
}

func (r *TransactionRepositoryImpl) GetPendingTransaction(ctx context.Context, orderID int64, gatewayOrderID string) (data domain.PaymentTransaction, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM payment_transactions WHERE order_id = $1 AND gateway_order_id = $2 AND status = $3 ORDER BY created_at DESC LIMIT 1", orderID, gatewayOrderID, domain.TransactionStatusPending)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrTransactionNotFound
		}
		log.Error().Err(err).Str("component", "GetPendingTransaction").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *TransactionRepositoryImpl) UpdateTransaction(ctx context.Context, data domain.PaymentTransaction) (err error) {
	_, err = r.db.NamedExecContext(ctx, "UPDATE payment_transactions SET transaction_id = :transaction_id, status = :status, gateway_response = :gateway_response, error_code = :error_code, error_message = :error_message, updated_at = :updated_at WHERE id = :id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateTransaction").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *TransactionRepositoryImpl) GetTransactionsByOrderID(ctx context.Context, orderID int64) (data []domain.PaymentTransaction, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM payment_transactions WHERE order_id = $1 ORDER BY created_at DESC", orderID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetTransactionsByOrderID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}
