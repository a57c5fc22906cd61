package dao

// Payment is the single current-payment-per-user record. The session id is
// the locally generated correlation token, never the provider's own id.
type Payment struct {
	UserID    int    `json:"user_id"`
	SessionID string `json:"session_id"`
	Status    string `json:"payment_status"`
}

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)
