package dto

import "github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dao"

// CartItem is one entry of the request cart. Quantities are validated at the
// boundary before any transaction begins.
type CartItem struct {
	MenuID   int `json:"menu_id"`
	Quantity int `json:"quantity"`
}

type PlaceDeliveryOrderRequest struct {
	Cart             []CartItem `json:"cart"`
	UserID           int        `json:"userId"`
	MOP              string     `json:"mop"`
	TotalAmount      float64    `json:"totalAmount"`
	DeliveryLocation string     `json:"deliveryLocation"`
	DeliveryStatus   string     `json:"deliveryStatus"`
}

type PlaceDeliveryOrderResponse struct {
	Order    dao.Order    `json:"order"`
	Delivery dao.Delivery `json:"delivery"`
}

type PlaceReservationOrderRequest struct {
	GuestNumber     int        `json:"guestNumber"`
	UserID          int        `json:"userId"`
	ReservationDate string     `json:"reservationDate"`
	ReservationTime string     `json:"reservationTime"`
	AdvanceOrder    bool       `json:"advanceOrder"`
	TotalAmount     float64    `json:"totalAmount"`
	Cart            []CartItem `json:"cart"`
}

type PlaceReservationOrderResponse struct {
	Reservation dao.Reservation `json:"reservation"`
	Order       dao.Order       `json:"order"`
}
