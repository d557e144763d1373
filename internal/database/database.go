package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delacruz-wedding/wedding-api/internal/config"
	"github.com/delacruz-wedding/wedding-api/internal/store"
)

// Open wires up the persistence layer for the configured driver. The
// registries only ever see the store interfaces, so flat files and SQL
// are interchangeable.
func Open(cfg *config.Config) (*store.Stores, error) {
	switch cfg.StorageDriver {
	case "json":
		return store.NewJSONFile(cfg.DataDir)
	case "sqlite", "":
		db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return store.NewGorm(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
