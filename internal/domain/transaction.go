package domain

import "github.com/jmoiron/sqlx/types"

const (
	PaymentMethodUPI            = "UPI"
	PaymentMethodDebitCard      = "DebitCard"
	PaymentMethodCreditCard     = "CreditCard"
	PaymentMethodCashOnDelivery = "CashOnDelivery"
	PaymentMethodNetBanking     = "NetBanking"
)

const (
	TransactionStatusPending    = "pending"
	TransactionStatusProcessing = "processing"
	TransactionStatusCompleted  = "completed"
	TransactionStatusFailed     = "failed"
	TransactionStatusCancelled  = "cancelled"
	TransactionStatusRefunded   = "refunded"
)

const DefaultCurrency = "INR"

var paymentMethods = map[string]struct{}{
	PaymentMethodUPI:            {},
	PaymentMethodDebitCard:      {},
	PaymentMethodCreditCard:     {},
	PaymentMethodCashOnDelivery: {},
	PaymentMethodNetBanking:     {},
}

var transactionStatuses = map[string]struct{}{
	TransactionStatusPending:    {},
	TransactionStatusProcessing: {},
	TransactionStatusCompleted:  {},
	TransactionStatusFailed:     {},
	TransactionStatusCancelled:  {},
	TransactionStatusRefunded:   {},
}

func IsValidPaymentMethod(method string) bool {
	_, ok := paymentMethods[method]
	return ok
}

func IsValidTransactionStatus(status string) bool {
	_, ok := transactionStatuses[status]
	return ok
}

type PaymentTransaction struct {
	ID              int64          `db:"id"`
	TransactionID   string         `db:"transaction_id"`
	OrderID         int64          `db:"order_id"`
	UserID          int64          `db:"user_id"`
	PaymentMethod   string         `db:"payment_method"`
	Amount          float64        `db:"amount"`
	Currency        string         `db:"currency"`
	Status          string         `db:"status"`
	Gateway         string         `db:"gateway"`
	GatewayOrderID  *string        `db:"gateway_order_id"`
	GatewayResponse types.JSONText `db:"gateway_response"`
	ErrorCode       *string        `db:"error_code"`
	ErrorMessage    *string        `db:"error_message"`
	RefundAmount    float64        `db:"refund_amount"`
	RefundReason    *string        `db:"refund_reason"`
	RefundDate      *int64         `db:"refund_date"`
	IPAddress       *string        `db:"ip_address"`
	UserAgent       *string        `db:"user_agent"`
	Metadata        types.JSONText `db:"metadata"`
	CreatedAt       int64          `db:"created_at"`
	UpdatedAt       int64          `db:"updated_at"`
}
