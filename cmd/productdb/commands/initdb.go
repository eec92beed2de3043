package commands

import (
	"github.com/mytheresa/product-entry/database"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the product database if it does not exist yet, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := database.Connect(cmd.Context(), cfg)
		if err != nil {
			log.Error("database initialization failed", zap.Error(err))
			return err
		}
		return database.Close(db)
	},
}
