package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Lucifer06sai/saiflix/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// Ping is a bare liveness check.
func (a *API) Ping(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
