package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mytheresa/product-entry/config"
	"github.com/mytheresa/product-entry/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "productdb",
	Short: "Product data entry and retrieval web application",
	Long: `productdb serves HTML forms for entering product records
(category, description, price, code) into a relational database
and for listing them, optionally filtered by category.

Without a subcommand it starts the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command until it finishes or the process is signalled.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to a .env file with configuration overrides")
	rootCmd.AddCommand(serveCmd, initdbCmd)
}

// setup loads configuration and the global logger shared by every command.
func setup() (config.Config, *zap.Logger, error) {
	cfg := config.Load(envFile)
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, log, nil
}
