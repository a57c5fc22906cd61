package dto

// LineItem is one cart entry as sent by the frontend checkout flow.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateCheckoutSessionRequest struct {
	UserID    int        `json:"user_id"`
	LineItems []LineItem `json:"lineItems"`
	OrderID   int        `json:"orderId"`
	From      string     `json:"from"`
}

type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}

// PaymentStatusResponse carries either the record or the not-found sentinel.
type PaymentStatusResponse struct {
	Exists    bool   `json:"exists"`
	SessionID string `json:"session_id,omitempty"`
	Status    string `json:"payment_status,omitempty"`
}
