package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/mytheresa/product-entry/logger"
	"go.uber.org/zap"
)

// Page template names.
const (
	Home          = "home.html"
	DataEntry     = "dataentry.html"
	DataRetrieval = "dataretrieval.html"
	List          = "postdata.html"
	Error         = "unique.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the HTML page templates. Every page is parsed together
// with the shared layout once, at construction.
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{Home, DataEntry, DataRetrieval, List, Error} {
		tmpl, err := template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render writes the named page with the given status. The page is executed
// into a buffer first so a template failure never leaves a partial response.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	log := logger.FromContext(r.Context()).With(zap.String("template", name))

	tmpl, ok := rd.pages[name]
	if !ok {
		log.Error("unknown template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Error("render template", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Debug("write response", zap.Error(err))
	}
}
