package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pcbstore/ops-console/internal/audit"
	"github.com/pcbstore/ops-console/internal/models"
	"github.com/pcbstore/ops-console/internal/prompt"
)

type PromptStore interface {
	GetProduct(ctx context.Context, userID uuid.UUID) (models.ProductPrompts, error)
	SaveProduct(ctx context.Context, userID uuid.UUID, p models.ProductPrompts) error
	GetCategory(ctx context.Context, userID uuid.UUID) (models.CategoryPrompts, error)
	SaveCategory(ctx context.Context, userID uuid.UUID, p models.CategoryPrompts) error
	ResetAll(ctx context.Context, userID uuid.UUID, family prompt.Family) error
	ResetOne(ctx context.Context, userID uuid.UUID, family prompt.Family, slot string) error
}

type PromptHandler struct {
	store PromptStore
	audit Auditor
}

func NewPromptHandler(store PromptStore, auditor Auditor) *PromptHandler {
	return &PromptHandler{store: store, audit: auditor}
}

func (h *PromptHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	prompts, err := h.store.GetProduct(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

func (h *PromptHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.ProductPrompts
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.store.SaveProduct(r.Context(), user.ID, req); err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "prompts.save")

	writeMessage(w, http.StatusOK, "Prompts saved successfully.")
}

func (h *PromptHandler) ResetProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.store.ResetAll(r.Context(), user.ID, prompt.FamilyProduct); err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "prompts.reset")

	writeMessage(w, http.StatusOK, "Prompts reset to default.")
}

func (h *PromptHandler) ResetMainPrompt(w http.ResponseWriter, r *http.Request) {
	h.resetOne(w, r, prompt.FamilyProduct, prompt.SlotMainPromptTemplate, "Main prompt reset to default.")
}

func (h *PromptHandler) ResetStaticPrompt(w http.ResponseWriter, r *http.Request) {
	h.resetOne(w, r, prompt.FamilyProduct, prompt.SlotStaticPrompt, "Static prompt reset to default.")
}

// RenderProduct resolves the caller's main template (override or default)
// against the submitted product fields and returns the finished prompt along
// with the static follow-up block.
func (h *PromptHandler) RenderProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var fields prompt.ProductFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if strings.TrimSpace(fields.ProductName) == "" {
		writeMessage(w, http.StatusBadRequest, "Product name is required.")
		return
	}

	prompts, err := h.store.GetProduct(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	rendered, err := prompt.ResolveProduct(prompts.MainPromptTemplate, fields)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"prompt":       rendered,
		"staticPrompt": prompts.StaticPrompt,
	})
}

func (h *PromptHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	prompts, err := h.store.GetCategory(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prompts)
}

func (h *PromptHandler) SaveCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CategoryPrompts
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.store.SaveCategory(r.Context(), user.ID, req); err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "category-prompts.save")

	writeMessage(w, http.StatusOK, "Category prompts saved successfully.")
}

func (h *PromptHandler) ResetCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.store.ResetAll(r.Context(), user.ID, prompt.FamilyCategory); err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, "category-prompts.reset")

	writeMessage(w, http.StatusOK, "Category prompts reset to default.")
}

func (h *PromptHandler) ResetCategoryPrompt1(w http.ResponseWriter, r *http.Request) {
	h.resetOne(w, r, prompt.FamilyCategory, prompt.SlotCategoryPrompt1, "Category prompt 1 reset to default.")
}

func (h *PromptHandler) ResetCategoryPrompt2(w http.ResponseWriter, r *http.Request) {
	h.resetOne(w, r, prompt.FamilyCategory, prompt.SlotCategoryPrompt2, "Category prompt 2 reset to default.")
}

// RenderCategory resolves both category templates. Prompt 1 gets the field
// substitutions plus optional-line pruning; prompt 2 wraps the pasted-back
// article content.
func (h *PromptHandler) RenderCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var fields prompt.CategoryFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if strings.TrimSpace(fields.ProductName) == "" {
		writeMessage(w, http.StatusBadRequest, "Product name is required.")
		return
	}
	if strings.TrimSpace(fields.ProductMainCategory) == "" {
		writeMessage(w, http.StatusBadRequest, "Product main category is required.")
		return
	}

	prompts, err := h.store.GetCategory(r.Context(), user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	prompt1, err := prompt.ResolveCategoryPrompt1(prompts.CategoryPrompt1, fields)
	if err != nil {
		respondError(w, err)
		return
	}
	prompt2, err := prompt.ResolveCategoryPrompt2(prompts.CategoryPrompt2, fields)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"prompt1": prompt1,
		"prompt2": prompt2,
	})
}

func (h *PromptHandler) resetOne(w http.ResponseWriter, r *http.Request, family prompt.Family, slot, msg string) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.store.ResetOne(r.Context(), user.ID, family, slot); err != nil {
		respondError(w, err)
		return
	}
	h.logAudit(r.Context(), user.ID, string(family)+"-prompts.reset."+slot)

	writeMessage(w, http.StatusOK, msg)
}

func (h *PromptHandler) logAudit(ctx context.Context, userID uuid.UUID, action string) {
	if h.audit == nil {
		return
	}
	err := h.audit.Log(ctx, userID, audit.LogEntry{
		Action:       action,
		ResourceType: "prompt",
	})
	if err != nil {
		slog.Warn("audit log failed", "action", action, "error", err)
	}
}
