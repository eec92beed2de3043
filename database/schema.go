package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/mytheresa/product-entry/config"
	"github.com/mytheresa/product-entry/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProductTable is the table created by the init script.
const ProductTable = "product"

//go:embed initscript.sql
var initScript string

// Connect opens the configured database and runs the init script when the
// database does not exist yet. For SQLite the guard is the existence of the
// database file, checked before the driver creates it; for PostgreSQL it is
// the existence of the product table.
func Connect(ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	initialized := false
	if cfg.DBType == config.DBTypeSQLite {
		initialized = fileExists(cfg.DBPath)
	}

	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DBType == config.DBTypePostgres {
		initialized = db.WithContext(ctx).Migrator().HasTable(ProductTable)
	}

	log := logger.FromContext(ctx).With(zap.String("db_type", cfg.DBType))
	if initialized {
		log.Info("database already initialized, skipping init script")
		return db, nil
	}

	if err := RunInitScript(ctx, db, cfg.InitScript); err != nil {
		_ = Close(db)
		if cfg.DBType == config.DBTypeSQLite && cfg.DBPath != ":memory:" {
			// Leave no half-initialized file behind, or the next start would skip the script.
			_ = os.Remove(cfg.DBPath)
		}
		return nil, err
	}

	log.Info("database initialized", zap.String("script", scriptName(cfg.InitScript)))
	return db, nil
}

// RunInitScript executes the schema script in a single transaction.
// An empty path selects the embedded script.
func RunInitScript(ctx context.Context, db *gorm.DB, path string) error {
	script := initScript
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read init script: %w", err)
		}
		script = string(raw)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(script).Error
	})
	if err != nil {
		return fmt.Errorf("run init script %s: %w", scriptName(path), err)
	}
	return nil
}

func scriptName(path string) string {
	if path == "" {
		return "embedded:initscript.sql"
	}
	return path
}

func fileExists(path string) bool {
	if path == "" || path == ":memory:" {
		return false
	}
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
