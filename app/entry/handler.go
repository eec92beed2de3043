package entry

import (
	"context"
	"errors"
	"net/http"

	"github.com/mytheresa/product-entry/app/pages"
	"github.com/mytheresa/product-entry/app/render"
	"github.com/mytheresa/product-entry/logger"
	"github.com/mytheresa/product-entry/models"
	"go.uber.org/zap"
)

const (
	FormTitle    = "Product Data Entry"
	maxFormBytes = 64 << 10
)

type ProductCreator interface {
	Create(ctx context.Context, product *models.Product) error
}

type EntryHandler struct {
	repo   ProductCreator
	render *render.Renderer
}

func NewEntryHandler(r ProductCreator, rd *render.Renderer) *EntryHandler {
	return &EntryHandler{
		repo:   r,
		render: rd,
	}
}

func (h *EntryHandler) HandleForm(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, render.DataEntry, pages.Page{Title: FormTitle})
}

// HandleSubmit inserts the submitted product and returns to the home page.
// Every failure renders the generic error page; the cause is only logged.
func (h *EntryHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	price, err := models.ParsePrice(r.PostForm.Get("price"))
	if err != nil {
		h.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	product := &models.Product{
		Category:    r.PostForm.Get("category"),
		Description: r.PostForm.Get("description"),
		Price:       price,
		Code:        r.PostForm.Get("code"),
	}

	if err := h.repo.Create(r.Context(), product); err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}

	logger.FromContext(r.Context()).Info("product created",
		zap.String("code", product.Code),
		zap.String("category", product.Category),
	)
	h.render.Render(w, r, http.StatusOK, render.Home, pages.Page{Title: pages.HomeTitle})
}

func (h *EntryHandler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("product entry failed", zap.Int("status", status), zap.Error(err))
	} else {
		log.Warn("product entry rejected", zap.Int("status", status), zap.Error(err))
	}
	h.render.Render(w, r, status, render.Error, pages.Page{Title: pages.ErrorTitle})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrDuplicateProduct):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidProduct):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
