package database

import (
	"fmt"

	"github.com/Kyz7/albums/internal/config"
	"github.com/Kyz7/albums/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store selected by cfg.DBDriver. The sqlite file is
// created on first open.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	case config.DriverSQLite, "":
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// SQLiteDSN enables foreign keys so ON DELETE CASCADE is honoured.
func SQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)"
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Album{}, &models.MediaItem{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
