package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/adiwardana/marketplace/internal/dto"
	"github.com/adiwardana/marketplace/pkg/httpclient"
	"github.com/sony/gobreaker/v2"
)

type NotificationDispatcherImpl struct {
	host string
	cb   *gobreaker.CircuitBreaker[[]byte]
}

func CreateNotificationDispatcher(host string, cb *gobreaker.CircuitBreaker[[]byte]) NotificationDispatcher {
	return &NotificationDispatcherImpl{
		host: host,
		cb:   cb,
	}
}

func (c *NotificationDispatcherImpl) Dispatch(ctx context.Context, req dto.NotificationRequest) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return err
	}

	var statusCode int
	_, err = c.cb.Execute(func() ([]byte, error) {
		var innerErr error
		var respBody []byte
		statusCode, respBody, innerErr = httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/api/notifications", c.host),
			Method: http.MethodPost,
			Body:   payload,
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		})
		return respBody, innerErr
	})
	if err != nil {
		return err
	}

	if statusCode != http.StatusCreated {
		return fmt.Errorf("notification service returned non-created status: %d", statusCode)
	}

	return nil
}
