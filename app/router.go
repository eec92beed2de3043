package app

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytheresa/product-entry/app/entry"
	"github.com/mytheresa/product-entry/app/pages"
	"github.com/mytheresa/product-entry/app/render"
	"github.com/mytheresa/product-entry/app/retrieval"
	"github.com/mytheresa/product-entry/logger"
	"github.com/mytheresa/product-entry/models"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Products       *models.ProductsRepository
	Renderer       *render.Renderer
	AllowedOrigins []string
}

// NewRouter registers every route and wraps them in CORS and request logging.
func NewRouter(deps Dependencies) http.Handler {
	pagesHandler := pages.NewPagesHandler(deps.Renderer)
	entryHandler := entry.NewEntryHandler(deps.Products, deps.Renderer)
	retrievalHandler := retrieval.NewRetrievalHandler(deps.Products, deps.Renderer)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", pagesHandler.HandleHome)
	mux.HandleFunc("POST /error", pagesHandler.HandleError)
	mux.HandleFunc("GET /dataentry", entryHandler.HandleForm)
	mux.HandleFunc("POST /entryprocessing", entryHandler.HandleSubmit)
	mux.HandleFunc("GET /dataretrieval", retrievalHandler.HandleForm)
	mux.HandleFunc("POST /list", retrievalHandler.HandleList)
	mux.HandleFunc("GET /health", healthCheck(deps.Products.Ping))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	return logger.Middleware(corsHandler.Handler(mux))
}

func healthCheck(ping func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ping(r.Context()); err != nil {
			logger.FromContext(r.Context()).Error("health check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unavailable",
				"database": "unreachable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":   "ok",
			"database": "connected",
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
