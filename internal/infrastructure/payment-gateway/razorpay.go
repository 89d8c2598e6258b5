package paymentgateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/adiwardana/marketplace/config"
	"github.com/adiwardana/marketplace/pkg/errs"
	"github.com/adiwardana/marketplace/pkg/utils"
	razorpay "github.com/razorpay/razorpay-go"
	"github.com/rs/zerolog/log"
)

const GatewayName = "razorpay"

// GatewayOrder is the handle returned by the remote gateway for a created
// order. Amount is in integer minor units (paise for INR).
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway wraps the remote payment gateway's order-creation call. Repeated
// calls for the same receipt still create new remote orders; the gateway does
// not deduplicate on receipt.
type Gateway interface {
	CreateOrder(ctx context.Context, amount float64, currency string, receipt string) (GatewayOrder, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
}

func CreateRazorpayGateway(config *config.Config) (*RazorpayGateway, error) {
	if config.RazorpayConfig.KeyID == "" || config.RazorpayConfig.KeySecret == "" {
		return nil, errors.New("razorpay credentials are not configured")
	}

	return &RazorpayGateway{
		client: razorpay.NewClient(config.RazorpayConfig.KeyID, config.RazorpayConfig.KeySecret),
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64, currency string, receipt string) (GatewayOrder, error) {
	minorUnits := utils.ToMinorUnits(amount)

	body, err := g.client.Order.Create(map[string]interface{}{
		"amount":   minorUnits,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		log.Error().Err(err).Str("component", "CreateOrder").Msg("")
		return GatewayOrder{}, errs.ErrGatewayUnavailable
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		log.Error().Str("component", "CreateOrder").Msg("gateway response has no order id")
		return GatewayOrder{}, errs.ErrGatewayUnavailable
	}

	return GatewayOrder{
		ID:       id,
		Amount:   minorUnits,
		Currency: currency,
	}, nil
}

// OrderReceipt derives the receipt identifier sent to the gateway from the
// order id, so repeated gateway orders for one order stay traceable.
func OrderReceipt(orderID int64) string {
	return fmt.Sprintf("order_rcpt_%d", orderID)
}
