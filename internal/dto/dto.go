package dto

type CreateIntentRequest struct {
	OrderID string `json:"orderId"`
}

type CreateIntentResponse struct {
	Success      bool    `json:"success"`
	ClientSecret string  `json:"clientSecret"`
	OrderID      string  `json:"orderId"`
	Amount       float64 `json:"amount"`
}

type ConfirmPaymentRequest struct {
	OrderID         string `json:"orderId"`
	PaymentIntentID string `json:"paymentIntentId"`
}

type ConfirmPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status,omitempty"`
	Details string `json:"details,omitempty"`
}
