package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adiwardana/marketplace/internal/client"
	"github.com/adiwardana/marketplace/internal/domain"
	"github.com/adiwardana/marketplace/internal/dto"
	paymentgateway "github.com/adiwardana/marketplace/internal/infrastructure/payment-gateway"
	"github.com/adiwardana/marketplace/internal/repository"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/google/uuid"
)

const orderPaymentStatusPaid = "paid"

type PaymentServiceImpl struct {
	repository  repository.TransactionRepository
	gateway     paymentgateway.Gateway
	verifier    *paymentgateway.SignatureVerifier
	orderClient client.OrderServiceClient
	dispatcher  client.NotificationDispatcher
}

func CreatePaymentService(repository repository.TransactionRepository, gateway paymentgateway.Gateway, verifier *paymentgateway.SignatureVerifier, orderClient client.OrderServiceClient, dispatcher client.NotificationDispatcher) PaymentService {
	return &PaymentServiceImpl{
		repository:  repository,
		gateway:     gateway,
		verifier:    verifier,
		orderClient: orderClient,
		dispatcher:  dispatcher,
	}
}

func (s *PaymentServiceImpl) InitiatePayment(ctx context.Context, req dto.InitiatePaymentRequest) (resp dto.InitiatePaymentResponse, err error) {
	if req.OrderID <= 0 || !domain.IsValidPaymentMethod(req.PaymentMethod) {
		return resp, errs.ErrClient
	}

	order, err := s.orderClient.GetOrder(ctx, req.OrderID)
	if err != nil {
		return resp, err
	}

	if req.PaymentMethod == domain.PaymentMethodCashOnDelivery {
		return s.initiateCashOnDelivery(ctx, req, order)
	}

	gatewayOrder, err := s.gateway.CreateOrder(ctx, order.TotalAmount, domain.DefaultCurrency, paymentgateway.OrderReceipt(req.OrderID))
	if err != nil {
		// No transaction row is written on this path: a row without a
		// gateway order handle could never be settled by a callback.
		return resp, err
	}

	trxNumber, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating transaction number: %v", err)
	}

	now := time.Now().Unix()
	_, err = s.repository.AddTransaction(ctx, domain.PaymentTransaction{
		TransactionID:  trxNumber.String(),
		OrderID:        req.OrderID,
		UserID:         order.UserID,
		PaymentMethod:  req.PaymentMethod,
		Amount:         order.TotalAmount,
		Currency:       domain.DefaultCurrency,
		Status:         domain.TransactionStatusPending,
		Gateway:        paymentgateway.GatewayName,
		GatewayOrderID: &gatewayOrder.ID,
		IPAddress:      optionalString(req.IPAddress),
		UserAgent:      optionalString(req.UserAgent),
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return resp, err
	}

	return dto.InitiatePaymentResponse{
		PaymentStatus:   domain.TransactionStatusPending,
		RazorpayOrderID: gatewayOrder.ID,
		Amount:          order.TotalAmount,
		Currency:        gatewayOrder.Currency,
		OrderID:         req.OrderID,
		PaymentMethod:   req.PaymentMethod,
	}, nil
}

// initiateCashOnDelivery skips the gateway entirely: the transaction is
// recorded as pending and settles on delivery, outside this system.
func (s *PaymentServiceImpl) initiateCashOnDelivery(ctx context.Context, req dto.InitiatePaymentRequest, order dto.OrderRecord) (resp dto.InitiatePaymentResponse, err error) {
	trxNumber, err := uuid.NewV7()
	if err != nil {
		return resp, fmt.Errorf("error generating transaction number: %v", err)
	}

	now := time.Now().Unix()
	_, err = s.repository.AddTransaction(ctx, domain.PaymentTransaction{
		TransactionID: trxNumber.String(),
		OrderID:       req.OrderID,
		UserID:        order.UserID,
		PaymentMethod: req.PaymentMethod,
		Amount:        order.TotalAmount,
		Currency:      domain.DefaultCurrency,
		Status:        domain.TransactionStatusPending,
		Gateway:       "cod",
		IPAddress:     optionalString(req.IPAddress),
		UserAgent:     optionalString(req.UserAgent),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return resp, err
	}

	if err := s.orderClient.UpdatePaymentMode(ctx, req.OrderID, req.PaymentMethod); err != nil {
		log.Error().Err(err).Str("component", "InitiatePayment").Msg("failed to update order payment mode")
	}

	return dto.InitiatePaymentResponse{
		PaymentStatus: domain.TransactionStatusPending,
		OrderID:       req.OrderID,
		PaymentMethod: req.PaymentMethod,
	}, nil
}

// HandlePaymentCallback drives the pending -> completed transition. The store
// write is the point of no return: the two downstream calls after it are
// best-effort, their failures are logged and swallowed, and the transaction
// stays completed regardless.
func (s *PaymentServiceImpl) HandlePaymentCallback(ctx context.Context, req dto.PaymentCallbackRequest) (err error) {
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" || req.OrderID <= 0 || req.UserID <= 0 {
		return errs.ErrClient
	}

	if !s.verifier.Verify(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		log.Warn().
			Int64("order_id", req.OrderID).
			Str("gateway_order_id", req.RazorpayOrderID).
			Str("component", "HandlePaymentCallback").
			Msg("invalid payment signature")
		return errs.ErrInvalidSignature
	}

	trx, err := s.repository.GetPendingTransaction(ctx, req.OrderID, req.RazorpayOrderID)
	if err != nil {
		return err
	}

	rawResponse, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error marshalling gateway response: %v", err)
	}

	trx.Status = domain.TransactionStatusCompleted
	trx.TransactionID = req.RazorpayPaymentID
	trx.GatewayResponse = rawResponse
	trx.UpdatedAt = time.Now().Unix()

	if err := s.repository.UpdateTransaction(ctx, trx); err != nil {
		return err
	}

	if err := s.orderClient.UpdatePaymentStatus(ctx, req.OrderID, orderPaymentStatusPaid); err != nil {
		log.Error().Err(err).Str("component", "HandlePaymentCallback").Msg("failed to update order payment status")
	}

	if err := s.dispatcher.Dispatch(ctx, buildPaymentSuccessNotification(trx)); err != nil {
		log.Error().Err(err).Str("component", "HandlePaymentCallback").Msg("failed to dispatch payment notification")
	}

	return nil
}

func (s *PaymentServiceImpl) GetTransactionsByOrderID(ctx context.Context, orderID int64) (resp dto.TransactionsResponse, err error) {
	transactions, err := s.repository.GetTransactionsByOrderID(ctx, orderID)
	if err != nil {
		return resp, err
	}

	resp.Transactions = make([]dto.TransactionResponse, 0, len(transactions))
	for _, trx := range transactions {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
			TransactionID:  trx.TransactionID,
			OrderID:        trx.OrderID,
			UserID:         trx.UserID,
			PaymentMethod:  trx.PaymentMethod,
			Amount:         trx.Amount,
			Currency:       trx.Currency,
			Status:         trx.Status,
			Gateway:        trx.Gateway,
			GatewayOrderID: trx.GatewayOrderID,
			RefundAmount:   trx.RefundAmount,
			CreatedAt:      trx.CreatedAt,
		})
	}

	return resp, nil
}

func buildPaymentSuccessNotification(trx domain.PaymentTransaction) dto.NotificationRequest {
	orderID := trx.OrderID
	return dto.NotificationRequest{
		Type:     domain.NotificationTypePaymentSuccess,
		UserID:   trx.UserID,
		OrderID:  &orderID,
		Title:    "Payment Successful",
		Message:  fmt.Sprintf("Your payment of %s %.2f for order #%d was successful.", trx.Currency, trx.Amount, trx.OrderID),
		Priority: domain.NotificationPriorityHigh,
		Category: domain.NotificationCategoryPayment,
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
