package feedback

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
)

type FeedbackHandler struct {
	service FeedbackServiceInterface
}

func NewFeedbackHandler(s FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{service: s}
}

func (h *FeedbackHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/feedback", h.Submit)
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var fb Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if err := h.service.Submit(r.Context(), fb); err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "Error adding feedback")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Feedback submitted successfully"})
}
