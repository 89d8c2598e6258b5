package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer       = errors.New("Internal server error")
	ErrClient               = errors.New("Bad request")
	ErrNotFound             = errors.New("Resource not found")
	ErrConflict             = errors.New("Conflicting record found")
	ErrInvalidSignature     = errors.New("Payment signature verification failed")
	ErrGatewayUnavailable   = errors.New("Payment gateway is unavailable")
	ErrTransactionNotFound  = errors.New("No pending transaction found for this order")
	ErrOrderNotFound        = errors.New("Order not found")
	ErrNotificationNotFound = errors.New("Notification not found")
)

var errorMap = map[error]int{
	ErrInternalServer:       http.StatusInternalServerError,
	ErrClient:               http.StatusBadRequest,
	ErrNotFound:             http.StatusNotFound,
	ErrConflict:             http.StatusConflict,
	ErrInvalidSignature:     http.StatusBadRequest,
	ErrGatewayUnavailable:   http.StatusServiceUnavailable,
	ErrTransactionNotFound:  http.StatusNotFound,
	ErrOrderNotFound:        http.StatusNotFound,
	ErrNotificationNotFound: http.StatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
