package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbstore/ops-console/internal/apperr"
	"github.com/pcbstore/ops-console/internal/models"
	"github.com/pcbstore/ops-console/internal/prompt"
)

type fakePromptStore struct {
	product  models.ProductPrompts
	category models.CategoryPrompts
	saveErr  error

	savedProduct  *models.ProductPrompts
	savedCategory *models.CategoryPrompts
	resetAlls     []prompt.Family
	resetOnes     []string
}

func newFakePromptStore() *fakePromptStore {
	return &fakePromptStore{
		product: models.ProductPrompts{
			StaticPrompt:       prompt.DefaultStaticPrompt,
			MainPromptTemplate: prompt.DefaultMainPromptTemplate,
		},
		category: models.CategoryPrompts{
			CategoryPrompt1: prompt.DefaultCategoryPrompt1,
			CategoryPrompt2: prompt.DefaultCategoryPrompt2,
		},
	}
}

func (f *fakePromptStore) GetProduct(_ context.Context, _ uuid.UUID) (models.ProductPrompts, error) {
	return f.product, nil
}

func (f *fakePromptStore) SaveProduct(_ context.Context, _ uuid.UUID, p models.ProductPrompts) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedProduct = &p
	return nil
}

func (f *fakePromptStore) GetCategory(_ context.Context, _ uuid.UUID) (models.CategoryPrompts, error) {
	return f.category, nil
}

func (f *fakePromptStore) SaveCategory(_ context.Context, _ uuid.UUID, p models.CategoryPrompts) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedCategory = &p
	return nil
}

func (f *fakePromptStore) ResetAll(_ context.Context, _ uuid.UUID, family prompt.Family) error {
	f.resetAlls = append(f.resetAlls, family)
	return nil
}

func (f *fakePromptStore) ResetOne(_ context.Context, _ uuid.UUID, family prompt.Family, slot string) error {
	f.resetOnes = append(f.resetOnes, string(family)+"/"+slot)
	return nil
}

func newPromptTestRouter(store PromptStore) http.Handler {
	h := NewPromptHandler(store, nil)

	r := chi.NewRouter()
	r.Use(withTestUser(uuid.New()))
	r.Get("/prompts", h.GetProduct)
	r.Post("/prompts", h.SaveProduct)
	r.Delete("/prompts", h.ResetProduct)
	r.Delete("/prompts/main", h.ResetMainPrompt)
	r.Delete("/prompts/static", h.ResetStaticPrompt)
	r.Post("/prompts/render", h.RenderProduct)
	r.Get("/category-prompts", h.GetCategory)
	r.Post("/category-prompts", h.SaveCategory)
	r.Delete("/category-prompts", h.ResetCategory)
	r.Delete("/category-prompts/prompt1", h.ResetCategoryPrompt1)
	r.Delete("/category-prompts/prompt2", h.ResetCategoryPrompt2)
	r.Post("/category-prompts/render", h.RenderCategory)
	return r
}

func TestGetProductPrompts(t *testing.T) {
	router := newPromptTestRouter(newFakePromptStore())

	rec, body := doJSON(t, router, http.MethodGet, "/prompts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, prompt.DefaultStaticPrompt, body["staticPrompt"])
	assert.Equal(t, prompt.DefaultMainPromptTemplate, body["mainPromptTemplate"])
}

func TestSaveProductPrompts(t *testing.T) {
	store := newFakePromptStore()
	router := newPromptTestRouter(store)

	rec, body := doJSON(t, router, http.MethodPost, "/prompts",
		`{"staticPrompt":"follow-up","mainPromptTemplate":"write about ${productName}"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Prompts saved successfully.", body["message"])
	require.NotNil(t, store.savedProduct)
	assert.Equal(t, "write about ${productName}", store.savedProduct.MainPromptTemplate)
}

func TestSaveProductPromptsIncomplete(t *testing.T) {
	store := newFakePromptStore()
	store.saveErr = apperr.Validationf("Prompts data is incomplete.")
	router := newPromptTestRouter(store)

	rec, body := doJSON(t, router, http.MethodPost, "/prompts", `{"staticPrompt":"only one"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Prompts data is incomplete.", body["message"])
}

func TestResetProductPrompts(t *testing.T) {
	store := newFakePromptStore()
	router := newPromptTestRouter(store)

	rec, body := doJSON(t, router, http.MethodDelete, "/prompts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Prompts reset to default.", body["message"])
	assert.Equal(t, []prompt.Family{prompt.FamilyProduct}, store.resetAlls)
}

func TestResetSingleSlotLeavesOtherUntouched(t *testing.T) {
	store := newFakePromptStore()
	router := newPromptTestRouter(store)

	rec, body := doJSON(t, router, http.MethodDelete, "/prompts/main", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Main prompt reset to default.", body["message"])
	assert.Equal(t, []string{"product/mainPromptTemplate"}, store.resetOnes)
	assert.Empty(t, store.resetAlls)
}

func TestResetCategoryPromptSlots(t *testing.T) {
	store := newFakePromptStore()
	router := newPromptTestRouter(store)

	rec, _ := doJSON(t, router, http.MethodDelete, "/category-prompts/prompt1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = doJSON(t, router, http.MethodDelete, "/category-prompts/prompt2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"category/categoryPrompt1", "category/categoryPrompt2"}, store.resetOnes)
}

func TestRenderProductPrompt(t *testing.T) {
	router := newPromptTestRouter(newFakePromptStore())

	rec, body := doJSON(t, router, http.MethodPost, "/prompts/render",
		`{"productName":"Acer Aspire 5","productSpecs":"16GB RAM","productCategory":"Laptops","productSubCategory":"Gaming Laptops","websiteName":"PC Bunny","location":"Dhaka"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	rendered, _ := body["prompt"].(string)
	assert.Contains(t, rendered, "Product Name: [Acer Aspire 5]")
	assert.NotContains(t, rendered, "${productName}")
	assert.Equal(t, prompt.DefaultStaticPrompt, body["staticPrompt"])
}

func TestRenderProductPromptRequiresName(t *testing.T) {
	router := newPromptTestRouter(newFakePromptStore())

	rec, body := doJSON(t, router, http.MethodPost, "/prompts/render", `{"productSpecs":"16GB RAM"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product name is required.", body["message"])
}

func TestSaveCategoryPrompts(t *testing.T) {
	store := newFakePromptStore()
	router := newPromptTestRouter(store)

	rec, body := doJSON(t, router, http.MethodPost, "/category-prompts",
		`{"categoryPrompt1":"first ${productName}","categoryPrompt2":"second ${productContent}"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Category prompts saved successfully.", body["message"])
	require.NotNil(t, store.savedCategory)
}

func TestRenderCategoryPrompts(t *testing.T) {
	router := newPromptTestRouter(newFakePromptStore())

	rec, body := doJSON(t, router, http.MethodPost, "/category-prompts/render",
		`{"productName":"Acer Aspire 5","productMainCategory":"Laptops","productSubCategory":"Gaming Laptops"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	prompt1, _ := body["prompt1"].(string)
	assert.Contains(t, prompt1, "Product main category: [Laptops]")
	assert.NotContains(t, prompt1, "Product Sub Category 2:")
	assert.NotContains(t, prompt1, "Product Related Category:")

	prompt2, _ := body["prompt2"].(string)
	assert.NotContains(t, prompt2, "${productContent}")
}

func TestRenderCategoryPromptsRequiresMainCategory(t *testing.T) {
	router := newPromptTestRouter(newFakePromptStore())

	rec, body := doJSON(t, router, http.MethodPost, "/category-prompts/render",
		`{"productName":"Acer Aspire 5"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product main category is required.", body["message"])
}
