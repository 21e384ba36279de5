package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pcbstore/ops-console/internal/models"
)

type AuditLister interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.AuditLog, error)
}

type AuditHandler struct {
	svc AuditLister
}

func NewAuditHandler(svc AuditLister) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	logs, err := h.svc.List(r.Context(), user.ID, limit, offset)
	if err != nil {
		respondError(w, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": logs, "count": len(logs)})
}
