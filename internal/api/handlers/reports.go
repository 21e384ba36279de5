package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pcbstore/ops-console/internal/audit"
	"github.com/pcbstore/ops-console/internal/models"
	"github.com/pcbstore/ops-console/internal/report"
)

type ReportService interface {
	Create(ctx context.Context, userID uuid.UUID, req report.CreateRequest) (*models.Report, error)
	List(ctx context.Context, userID uuid.UUID, f report.Filter) ([]models.Report, error)
	Update(ctx context.Context, userID, id uuid.UUID, patch report.Patch) (*models.Report, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Daily(ctx context.Context, userID uuid.UUID, date string) (*report.DailyReport, error)
	DailyRange(ctx context.Context, userID uuid.UUID, startDate, endDate string) ([]report.DailyReport, error)
	FormatHourly(r *models.Report) string
}

type Auditor interface {
	Log(ctx context.Context, userID uuid.UUID, entry audit.LogEntry) error
}

type ReportHandler struct {
	svc   ReportService
	audit Auditor
}

func NewReportHandler(svc ReportService, auditor Auditor) *ReportHandler {
	return &ReportHandler{svc: svc, audit: auditor}
}

func (h *ReportHandler) CreateHourly(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	// DisallowUnknownFields rejects counter categories outside the fixed
	// schema instead of dropping them in aggregation later.
	var req report.CreateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	created, err := h.svc.Create(r.Context(), user.ID, req)
	if err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "report.create", &created.ID)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":       "Hourly report created.",
		"report":        created,
		"formattedText": h.svc.FormatHourly(created),
	})
}

func (h *ReportHandler) ListHourly(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	reports, err := h.svc.List(r.Context(), user.ID, report.Filter{
		Date:      q.Get("date"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	})
	if err != nil {
		respondError(w, err)
		return
	}
	if reports == nil {
		reports = []models.Report{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

func (h *ReportHandler) UpdateHourly(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid report ID.")
		return
	}

	var patch report.Patch
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	updated, err := h.svc.Update(r.Context(), user.ID, id, patch)
	if err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "report.update", &id)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Report updated successfully.",
		"report":  updated,
	})
}

func (h *ReportHandler) DeleteHourly(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid report ID.")
		return
	}

	if err := h.svc.Delete(r.Context(), user.ID, id); err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "report.delete", &id)

	writeMessage(w, http.StatusOK, "Report deleted successfully.")
}

func (h *ReportHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	daily, err := h.svc.Daily(r.Context(), user.ID, chi.URLParam(r, "date"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"report": daily})
}

func (h *ReportHandler) ListDaily(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	reports, err := h.svc.DailyRange(r.Context(), user.ID, q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": reports})
}

func (h *ReportHandler) logAudit(ctx context.Context, userID uuid.UUID, action string, resourceID *uuid.UUID) {
	if h.audit == nil {
		return
	}
	err := h.audit.Log(ctx, userID, audit.LogEntry{
		Action:       action,
		ResourceType: "report",
		ResourceID:   resourceID,
	})
	if err != nil {
		slog.Warn("audit log failed", "action", action, "error", err)
	}
}
