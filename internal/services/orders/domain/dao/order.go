package dao

// Order mirrors a row of the orders table. Date and Time are kept as the
// formatted strings the frontend consumes (YYYY-MM-DD / HH:MM:SS).
type Order struct {
	OrderID       int     `json:"order_id"`
	UserID        int     `json:"user_id"`
	MOP           string  `json:"mop"`
	TotalAmount   float64 `json:"total_amount"`
	OrderType     string  `json:"order_type,omitempty"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Delivery      bool    `json:"delivery"`
	ReservationID *int    `json:"reservation_id,omitempty"`
	Status        string  `json:"status,omitempty"`
	IsPaid        bool    `json:"ispaid"`
}

// OrderItem is one (menu item, quantity) pairing within an order's cart.
type OrderItem struct {
	OrderID  int `json:"order_id"`
	MenuID   int `json:"menu_id"`
	Quantity int `json:"order_quantity"`
}

type Delivery struct {
	DeliveryID int    `json:"delivery_id"`
	OrderID    int    `json:"order_id"`
	Location   string `json:"delivery_location"`
	Status     string `json:"delivery_status"`
}

type Reservation struct {
	ReservationID   int    `json:"reservation_id"`
	UserID          int    `json:"user_id"`
	GuestNumber     int    `json:"guest_number"`
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	AdvanceOrder    bool   `json:"advance_order"`
}

// HistoryOrder is the joined order/user row returned by the history listing.
type HistoryOrder struct {
	OrderID         int           `json:"order_id"`
	UserID          int           `json:"user_id"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	TotalAmount     float64       `json:"total_amount"`
	MOP             string        `json:"mop"`
	Delivery        bool          `json:"delivery"`
	OrderType       string        `json:"orderType"`
	ReservationID   *int          `json:"reservation_id"`
	Status          string        `json:"status"`
	IsPaid          bool          `json:"ispaid"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	Address         string        `json:"address"`
	ReservationDate *string       `json:"reservation_date"`
	ReservationTime *string       `json:"reservation_time"`
	Items           []HistoryItem `json:"items"`
}

type HistoryItem struct {
	OrderID  int    `json:"order_id"`
	MenuID   int    `json:"menu_id"`
	Quantity int    `json:"order_quantity"`
	MenuName string `json:"menu_name"`
}
