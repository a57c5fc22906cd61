package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/domain/dto"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/repository"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/orders/service"
)

func (h *OrderHandler) PlaceDeliveryOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceDeliveryOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	resp, err := h.service.PlaceDeliveryOrder(r.Context(), req)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}

func (h *OrderHandler) PlaceReservationOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.PlaceReservationOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	resp, err := h.service.PlaceReservationOrder(r.Context(), req)
	if err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, resp)
}

func (h *OrderHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	var userID *int
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "user_id must be an integer")
			return
		}
		userID = &id
	}

	orders, err := h.service.OrderHistory(r.Context(), userID)
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to fetch order history")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.setPaid(w, r, true)
}

func (h *OrderHandler) MarkNotPaid(w http.ResponseWriter, r *http.Request) {
	h.setPaid(w, r, false)
}

func (h *OrderHandler) setPaid(w http.ResponseWriter, r *http.Request, paid bool) {
	orderID, err := pathInt(r, "order_id")
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "order_id must be an integer")
		return
	}
	if err := h.service.SetOrderPaid(r.Context(), orderID, paid); err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"order_id": orderID, "ispaid": paid})
}

func (h *OrderHandler) MarkServed(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathInt(r, "order_id")
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "order_id must be an integer")
		return
	}
	if err := h.service.SetOrderServed(r.Context(), orderID); err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"order_id": orderID, "status": "served"})
}

func (h *OrderHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	deliveryID, err := pathInt(r, "delivery_id")
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "delivery_id must be an integer")
		return
	}
	var req struct {
		Status string `json:"delivery_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.UpdateDeliveryStatus(r.Context(), deliveryID, req.Status); err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"delivery_id": deliveryID, "delivery_status": req.Status})
}

func (h *OrderHandler) AcceptReservation(w http.ResponseWriter, r *http.Request) {
	h.setReservationStatus(w, r, "accepted")
}

func (h *OrderHandler) RejectReservation(w http.ResponseWriter, r *http.Request) {
	h.setReservationStatus(w, r, "cancelled")
}

func (h *OrderHandler) setReservationStatus(w http.ResponseWriter, r *http.Request, status string) {
	var req struct {
		ReservationID int `json:"reservation_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.SetReservationStatus(r.Context(), req.ReservationID, status); err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"reservation_id": req.ReservationID, "status": status})
}

func (h *OrderHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.ListReservations(r.Context())
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to fetch reservations")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reservations)
}

func (h *OrderHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID, err := pathInt(r, "reservation_id")
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "reservation_id must be an integer")
		return
	}
	if err := h.service.CancelReservation(r.Context(), reservationID); err != nil {
		writeOrderError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"reservation_id": reservationID, "canceled": true})
}

// writeOrderError maps business-rule rejections to 400 and everything else
// to 500, mirroring the error taxonomy of the order workflow.
func writeOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNoPayment):
		httpx.WriteProblem(w, http.StatusBadRequest, "no_payment", "No payment found for the customer")
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		httpx.WriteProblem(w, http.StatusInternalServerError, "server_error", "Server Error")
	}
}

func pathInt(r *http.Request, key string) (int, error) {
	return strconv.Atoi(r.PathValue(key))
}
