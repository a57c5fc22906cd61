package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/mlproxy"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/analytics/service"
)

type AnalyticsHandler struct {
	service service.AnalyticsServiceInterface
	proxy   *mlproxy.Client
}

func NewAnalyticsHandler(s service.AnalyticsServiceInterface, proxy *mlproxy.Client) *AnalyticsHandler {
	return &AnalyticsHandler{service: s, proxy: proxy}
}

func (h *AnalyticsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /graphs/peak-hours-data", h.PeakHours)
	mux.HandleFunc("GET /graphs/highest-selling-products", h.ProductDemand)
	mux.HandleFunc("GET /api/top-best-sellers", h.TopBestSellers)
	mux.HandleFunc("GET /graphs/call-feedback-stats", h.FeedbackStats)
	mux.HandleFunc("POST /graphs/call-analyze-sentiment", h.AnalyzeSentiment)
}

func (h *AnalyticsHandler) PeakHours(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PeakHours(r.Context(), r.URL.Query().Get("day"))
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, result)
}

func (h *AnalyticsHandler) TopBestSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.service.TopBestSellers(r.Context())
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Top 3 best-selling products retrieved successfully",
		"data":    sellers,
	})
}

func (h *AnalyticsHandler) ProductDemand(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	demand, err := h.service.ProductDemand(r.Context(), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		writeAnalyticsError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, demand)
}

func (h *AnalyticsHandler) FeedbackStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.proxy.FeedbackStats(r.Context())
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "proxy_error", "Error fetching feedback stats")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "failed to read body")
		return
	}
	result, err := h.proxy.AnalyzeSentiment(r.Context(), body)
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "proxy_error", "Error analyzing sentiment")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, result)
}

func writeAnalyticsError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, service.ErrNoData):
		httpx.WriteProblem(w, http.StatusNotFound, "no_data", "No sales data available for the given date range")
	default:
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "server error")
	}
}
