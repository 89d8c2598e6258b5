package dto

// OrderRecord is the order aggregate as served by the upstream order service.
type OrderRecord struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	TotalAmount   float64 `json:"totalAmount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
}

type OrderEnvelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    OrderRecord `json:"data"`
}
