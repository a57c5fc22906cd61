package events

import "time"

// OrderPlaced is published after an order transaction commits. Consumed by
// the notifier to send the confirmation email.
type OrderPlaced struct {
	OrderID       int       `json:"order_id"`
	UserID        int       `json:"user_id"`
	OrderType     string    `json:"order_type"`
	TotalAmount   float64   `json:"total_amount"`
	ReservationID *int      `json:"reservation_id,omitempty"`
	PlacedAt      time.Time `json:"placed_at"`
}
