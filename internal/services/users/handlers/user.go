package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/EleazarRosete/lolos-place-backend/internal/httpx"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/domain"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/repository"
	"github.com/EleazarRosete/lolos-place-backend/internal/services/users/service"
)

type UserHandler struct {
	service service.UsersServiceInterface
}

func NewUserHandler(s service.UsersServiceInterface) *UserHandler {
	return &UserHandler{service: s}
}

func (h *UserHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/signup", h.Signup)
	mux.HandleFunc("POST /api/login", h.Login)
	mux.HandleFunc("POST /api/changeCustomerPassword", h.ChangePassword)
	mux.HandleFunc("POST /api/changeCustomerDetails", h.ChangeDetails)
	mux.HandleFunc("POST /api/send-otp", h.SendOTP)
	mux.HandleFunc("POST /api/verify-otp", h.VerifyOTP)
}

func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		writeUserError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, map[string]any{
		"user": map[string]any{
			"id":        user.UserID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
		},
	})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeUserError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login Successful",
		"data":    result,
	})
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.ChangePassword(r.Context(), req); err != nil {
		writeUserError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Password changed successfully!"})
}

func (h *UserHandler) ChangeDetails(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangeDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.ChangeDetails(r.Context(), req); err != nil {
		writeUserError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Changed successfully!"})
}

func (h *UserHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.SendOTP(r.Context(), req.Email); err != nil {
		writeUserError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

func (h *UserHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		writeUserError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "OTP verified successfully"})
}

func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteProblem(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials")
	case errors.Is(err, service.ErrUserExists):
		httpx.WriteProblem(w, http.StatusBadRequest, "user_exists", "User already exists")
	case errors.Is(err, service.ErrInvalidOTP):
		httpx.WriteProblem(w, http.StatusBadRequest, "invalid_otp", "Invalid OTP")
	case errors.Is(err, service.ErrInvalidRequest):
		httpx.WriteProblem(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteProblem(w, http.StatusNotFound, "not_found", "Customer not found")
	default:
		httpx.WriteProblem(w, http.StatusInternalServerError, "server_error", "Internal server error")
	}
}
