package dto

type InitiatePaymentRequest struct {
	OrderID       int64  `json:"orderId"`
	PaymentMethod string `json:"paymentMethod"`
	IPAddress     string `json:"-"`
	UserAgent     string `json:"-"`
}

type PaymentCallbackRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	OrderID           int64  `json:"orderId"`
	UserID            int64  `json:"userId"`
}
