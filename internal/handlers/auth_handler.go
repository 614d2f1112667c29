package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NITHINPOLI04/VMEW/internal/models"
	"github.com/NITHINPOLI04/VMEW/internal/services"
	"github.com/NITHINPOLI04/VMEW/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Signup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			utils.Error(w, http.StatusConflict, "User already exists")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Error(w, http.StatusBadRequest, "Email and password are required")
		default:
			utils.Error(w, http.StatusInternalServerError, "Signup failed")
		}
		return
	}

	utils.JSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Login failed")
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}
