package dto

type InitiatePaymentResponse struct {
	PaymentStatus   string  `json:"paymentStatus"`
	RazorpayOrderID string  `json:"razorpayOrderId,omitempty"`
	Amount          float64 `json:"amount,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	OrderID         int64   `json:"orderId"`
	PaymentMethod   string  `json:"paymentMethod"`
}

type TransactionResponse struct {
	TransactionID  string  `json:"transactionId"`
	OrderID        int64   `json:"orderId"`
	UserID         int64   `json:"userId"`
	PaymentMethod  string  `json:"paymentMethod"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	Gateway        string  `json:"gateway"`
	GatewayOrderID *string `json:"gatewayOrderId"`
	RefundAmount   float64 `json:"refundAmount"`
	CreatedAt      int64   `json:"createdAt"`
}

type TransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
