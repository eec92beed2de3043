package pages

import (
	"net/http"

	"github.com/mytheresa/product-entry/app/render"
)

const (
	HomeTitle  = "Home"
	ErrorTitle = "Error"
)

// Page is the view model of pages that only carry a title.
type Page struct {
	Title string
}

type PagesHandler struct {
	render *render.Renderer
}

func NewPagesHandler(rd *render.Renderer) *PagesHandler {
	return &PagesHandler{render: rd}
}

func (h *PagesHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, render.Home, Page{Title: HomeTitle})
}

func (h *PagesHandler) HandleError(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, render.Error, Page{Title: ErrorTitle})
}
