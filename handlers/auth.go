package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Lucifer06sai/saiflix/logger"
	"github.com/Lucifer06sai/saiflix/services"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid login data")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid login data")
		return
	}

	logger.Info("Login attempt", "username", req.Username)

	user, err := a.auth.Login(w, r, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Generic message regardless of cause.
			logger.Warn("Login failed", "username", req.Username)
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Error("Failed to create session", "username", req.Username, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	logger.Info("User authenticated successfully", "username", user.Username, "user_id", user.ID)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
	})
}

func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	a.auth.Logout(w, r)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
