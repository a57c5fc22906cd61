package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/domain/dto"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/gateway"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/payments/service"
)

type PaymentHandler struct {
	service service.PaymentsServiceInterface
}

func NewPaymentHandler(s service.PaymentsServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: s}
}

func (h *PaymentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/create-gcash-checkout-session", h.CreateCheckoutSession)
	mux.HandleFunc("POST /api/downpayment-gcash-checkout-session", h.CreateDownpaymentSession)
	mux.HandleFunc("GET /api/check-payment-status/{user_id}", h.CheckPaymentStatus)
}

func (h *PaymentHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	h.createSession(w, r, h.service.CreateCheckoutSession)
}

func (h *PaymentHandler) CreateDownpaymentSession(w http.ResponseWriter, r *http.Request) {
	h.createSession(w, r, h.service.CreateDownpaymentSession)
}

func (h *PaymentHandler) createSession(w http.ResponseWriter, r *http.Request,
	create func(ctx context.Context, req dto.CreateCheckoutSessionRequest) (dto.CreateCheckoutSessionResponse, error)) {

	var req dto.CreateCheckoutSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	resp, err := create(r.Context(), req)
	if err != nil {
		writePaymentError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h *PaymentHandler) CheckPaymentStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(r.PathValue("user_id"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "user_id must be an integer")
		return
	}

	resp, err := h.service.CheckPaymentStatus(r.Context(), userID)
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to check payment status")
		return
	}
	if !resp.Exists {
		httpx.WriteJSON(w, http.StatusOK, map[string]bool{"exists": false})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"session_id":     resp.SessionID,
		"payment_status": resp.Status,
	})
}

// writePaymentError keeps the provider's error payload visible to the
// frontend, matching the behaviour of the checkout endpoints.
func writePaymentError(w http.ResponseWriter, err error) {
	var gwErr *gateway.Error
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.As(err, &gwErr):
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to create checkout session",
			"details": gwErr.Body,
		})
	default:
		httpx.WriteProblem(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}
