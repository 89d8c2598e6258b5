package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adiwardana/marketplace/internal/dto"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/adiwardana/marketplace/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type OrderServiceClientImpl struct {
	host string
	cb   *gobreaker.CircuitBreaker[[]byte]
}

func CreateOrderServiceClient(host string, cb *gobreaker.CircuitBreaker[[]byte]) OrderServiceClient {
	return &OrderServiceClientImpl{
		host: host,
		cb:   cb,
	}
}

func (c *OrderServiceClientImpl) GetOrder(ctx context.Context, orderID int64) (data dto.OrderRecord, err error) {
	statusCode, body, err := c.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/orders/%d", c.host, orderID),
		Method: http.MethodGet,
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrder").Msg("")
		return data, errs.ErrInternalServer
	}

	if statusCode == http.StatusNotFound {
		return data, errs.ErrOrderNotFound
	}

	if statusCode != http.StatusOK {
		log.Error().Int("status_code", statusCode).Str("component", "GetOrder").Msg("order service returned non-OK status")
		return data, errs.ErrInternalServer
	}

	var envelope dto.OrderEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		log.Error().Err(err).Str("component", "GetOrder").Msg("")
		return data, errs.ErrInternalServer
	}

	return envelope.Data, nil
}

func (c *OrderServiceClientImpl) UpdatePaymentStatus(ctx context.Context, orderID int64, paymentStatus string) error {
	payload, err := json.Marshal(map[string]string{"paymentStatus": paymentStatus})
	if err != nil {
		return err
	}

	statusCode, _, err := c.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/orders/%d/payment-status", c.host, orderID),
		Method: http.MethodPut,
		Body:   payload,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return fmt.Errorf("order service returned non-OK status: %d", statusCode)
	}

	return nil
}

func (c *OrderServiceClientImpl) UpdatePaymentMode(ctx context.Context, orderID int64, paymentMethod string) error {
	payload, err := json.Marshal(map[string]string{"paymentMethod": paymentMethod})
	if err != nil {
		return err
	}

	statusCode, _, err := c.send(ctx, httpclient.HttpRequest{
		URL:    fmt.Sprintf("%s/api/orders/%d/payment-mode", c.host, orderID),
		Method: http.MethodPut,
		Body:   payload,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	})
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return fmt.Errorf("order service returned non-OK status: %d", statusCode)
	}

	return nil
}

func (c *OrderServiceClientImpl) send(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error) {
	var statusCode int
	body, err := c.cb.Execute(func() ([]byte, error) {
		var innerErr error
		var respBody []byte
		statusCode, respBody, innerErr = httpclient.SendRequest(ctx, req)
		return respBody, innerErr
	})

	return statusCode, body, err
}
