package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migration records an applied SQL file.
type Migration struct {
	ID        uint   `gorm:"primaryKey"`
	Version   string `gorm:"uniqueIndex;size:255"`
	AppliedAt time.Time
}

func (Migration) TableName() string {
	return "schema_migrations"
}

// RunMigrations applies the SQL files bundled with the binary.
func RunMigrations(db *gorm.DB) ([]string, error) {
	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return RunMigrationsFS(db, sub)
}

// RunMigrationsFS applies every *.sql file in fsys that has not been
// recorded yet, in lexical order, and returns the versions it applied.
func RunMigrationsFS(db *gorm.DB, fsys fs.FS) ([]string, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}

	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}
	sort.Strings(files)

	var applied []string
	for _, file := range files {
		version := path.Base(file)

		var count int64
		if err := db.Model(&Migration{}).Where("version = ?", version).Count(&count).Error; err != nil {
			return applied, err
		}
		if count > 0 {
			continue
		}

		sqlContent, err := fs.ReadFile(fsys, file)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", version, err)
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(string(sqlContent)).Error; err != nil {
				return fmt.Errorf("failed to execute migration %s: %w", version, err)
			}
			return tx.Create(&Migration{Version: version, AppliedAt: time.Now().UTC()}).Error
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, version)
	}

	return applied, nil
}

func GetAppliedMigrations(db *gorm.DB) ([]Migration, error) {
	var migrations []Migration
	if err := db.Order("version").Find(&migrations).Error; err != nil {
		return nil, err
	}
	return migrations, nil
}
