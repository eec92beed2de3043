package commands

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mytheresa/product-entry/app"
	"github.com/mytheresa/product-entry/app/render"
	"github.com/mytheresa/product-entry/database"
	"github.com/mytheresa/product-entry/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server, creating the database on first run",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx := cmd.Context()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Error("database initialization failed", zap.Error(err))
		return err
	}
	defer database.Close(db)

	renderer, err := render.New()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: app.NewRouter(app.Dependencies{
			Products:       models.NewProductsRepository(db),
			Renderer:       renderer,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Addr), zap.String("db_type", cfg.DBType))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
