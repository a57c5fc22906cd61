package handlers

import (
	"net/http"

	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/service"
)

type OrderHandler struct {
	service service.OrdersServiceInterface
}

func NewOrderHandler(s service.OrdersServiceInterface) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/orders", h.PlaceDeliveryOrder)
	mux.HandleFunc("POST /api/reservations", h.PlaceReservationOrder)
	mux.HandleFunc("GET /api/order-history", h.OrderHistory)
	mux.HandleFunc("PUT /order/update-is-paid/{order_id}", h.MarkPaid)
	mux.HandleFunc("PUT /order/update-not-paid/{order_id}", h.MarkNotPaid)
	mux.HandleFunc("PUT /order/order-served/{order_id}", h.MarkServed)
	mux.HandleFunc("PUT /order/update-delivery/{delivery_id}", h.UpdateDelivery)
	mux.HandleFunc("PUT /order/accepted-reservation", h.AcceptReservation)
	mux.HandleFunc("PUT /order/canceled-reservation", h.RejectReservation)
	mux.HandleFunc("GET /order/get-reservation", h.ListReservations)
	mux.HandleFunc("DELETE /order/cancel-reservation/{reservation_id}", h.CancelReservation)
}
