package retrieval

import (
	"context"
	"net/http"
	"strings"

	"github.com/mytheresa/product-entry/app/render"
	"github.com/mytheresa/product-entry/logger"
	"github.com/mytheresa/product-entry/models"
	"go.uber.org/zap"
)

const (
	FormTitle = "Product Data Retrieval"
	ListTitle = "Retrieval from Database"
)

type FormPage struct {
	Title      string
	Categories []string
}

type ListPage struct {
	Title    string
	Category string
	Products []models.Product
}

type ProductLister interface {
	List(ctx context.Context, filters models.ProductFilters) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type RetrievalHandler struct {
	repo   ProductLister
	render *render.Renderer
}

func NewRetrievalHandler(r ProductLister, rd *render.Renderer) *RetrievalHandler {
	return &RetrievalHandler{
		repo:   r,
		render: rd,
	}
}

// HandleForm renders the retrieval form. Known categories are offered as
// suggestions; the form still renders when they cannot be loaded.
func (h *RetrievalHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListCategories(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn("load category suggestions", zap.Error(err))
		categories = nil
	}

	h.render.Render(w, r, http.StatusOK, render.DataRetrieval, FormPage{
		Title:      FormTitle,
		Categories: categories,
	})
}

// HandleList lists the products of the submitted category, or every product
// when the category is blank.
func (h *RetrievalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	category := strings.TrimSpace(r.PostForm.Get("category"))

	products, err := h.repo.List(r.Context(), models.ProductFilters{Category: category})
	if err != nil {
		logger.FromContext(r.Context()).Error("list products", zap.String("category", category), zap.Error(err))
		http.Error(w, "failed to get products", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, http.StatusOK, render.List, ListPage{
		Title:    ListTitle,
		Category: category,
		Products: products,
	})
}
