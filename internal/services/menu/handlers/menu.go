package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/domain"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/repository"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/menu/service"
)

type MenuHandler struct {
	service service.MenuServiceInterface
}

func NewMenuHandler(s service.MenuServiceInterface) *MenuHandler {
	return &MenuHandler{service: s}
}

func (h *MenuHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /menu/add-product", h.Add)
	mux.HandleFunc("GET /menu/get-product", h.List)
	mux.HandleFunc("GET /menu/get-product/{menu_id}", h.Get)
	mux.HandleFunc("PUT /menu/edit-product/{menu_id}", h.Update)
	mux.HandleFunc("DELETE /menu/delete-product/{menu_id}", h.Delete)
	mux.HandleFunc("GET /menu/get-categories", h.Categories)
	mux.HandleFunc("GET /menu/get-low-stocks", h.LowStocks)
	mux.HandleFunc("PATCH /menu/update-product-stock/{menu_id}", h.AdjustStock)
	mux.HandleFunc("GET /api/menu", h.List)
}

func (h *MenuHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	created, err := h.service.Add(r.Context(), item)
	if err != nil {
		writeMenuError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to fetch menu items")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.PathValue("menu_id"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "menu_id must be an integer")
		return
	}
	item, err := h.service.Get(r.Context(), menuID)
	if err != nil {
		writeMenuError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.PathValue("menu_id"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "menu_id must be an integer")
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	item.MenuID = menuID
	if err := h.service.Update(r.Context(), item); err != nil {
		writeMenuError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, item)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.PathValue("menu_id"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "menu_id must be an integer")
		return
	}
	if err := h.service.Delete(r.Context(), menuID); err != nil {
		writeMenuError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"menu_id": menuID, "deleted": true})
}

func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to fetch categories")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, categories)
}

func (h *MenuHandler) LowStocks(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.LowStocks(r.Context())
	if err != nil {
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "failed to fetch low stocks")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	menuID, err := strconv.Atoi(r.PathValue("menu_id"))
	if err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", "menu_id must be an integer")
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.AdjustStock(r.Context(), menuID, req.Delta); err != nil {
		writeMenuError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"menu_id": menuID, "delta": req.Delta})
}

func writeMenuError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", "menu item not found")
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", err.Error())
	default:
		httpx.WriteProblem(w, http.StatusInternalServerError, "db_error", "server error")
	}
}
