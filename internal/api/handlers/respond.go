package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pcbstore/ops-console/internal/apperr"
	"github.com/pcbstore/ops-console/internal/identity"
	"github.com/pcbstore/ops-console/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// respondError maps the error taxonomy onto HTTP statuses. Storage detail is
// logged, never sent to the client.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrTimeout):
		slog.Error("storage timeout", "error", err)
		writeMessage(w, http.StatusServiceUnavailable, "Storage timeout.")
	default:
		slog.Error("internal error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
	}
}

// currentUser pulls the authenticated user the auth middleware attached.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user := identity.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized.")
		return nil, false
	}
	return user, true
}
