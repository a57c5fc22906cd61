package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
)

// Mailer is the subset of the SMTP mailer exposed over HTTP.
type Mailer interface {
	SendOrderConfirmation(to string) error
	SendReservationCancellation(to, customerName, details string) error
}

type NotifierHandler struct {
	mailer Mailer
	lg     *zap.Logger
}

func NewNotifierHandler(mailer Mailer, lg *zap.Logger) *NotifierHandler {
	return &NotifierHandler{mailer: mailer, lg: lg}
}

func (h *NotifierHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/send-confirmation", h.SendConfirmation)
	mux.HandleFunc("POST /api/cancel-reservation", h.CancelReservation)
}

func (h *NotifierHandler) SendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "email is required")
		return
	}
	if err := h.mailer.SendOrderConfirmation(req.Email); err != nil {
		h.lg.Error("send confirmation email", zap.String("email", req.Email), zap.Error(err))
		httpx.WriteProblem(w, http.StatusInternalServerError, "mail_error", "Failed to send email")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Email sent successfully"})
}

func (h *NotifierHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email              string `json:"email"`
		CustomerName       string `json:"customerName"`
		ReservationDetails string `json:"reservationDetails"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "email is required")
		return
	}
	if err := h.mailer.SendReservationCancellation(req.Email, req.CustomerName, req.ReservationDetails); err != nil {
		h.lg.Error("send cancellation email", zap.String("email", req.Email), zap.Error(err))
		httpx.WriteProblem(w, http.StatusInternalServerError, "mail_error", "Failed to send cancellation email")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Cancellation email sent successfully"})
}
