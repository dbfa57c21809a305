package database_test

import (
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/Kyz7/albums/internal/config"
	"github.com/Kyz7/albums/internal/database"
	"github.com/Kyz7/albums/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "albums.db"),
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestConnectRejectsUnknownDriver(t *testing.T) {
	_, err := database.Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.Album{}))
	assert.True(t, db.Migrator().HasTable(&models.MediaItem{}))
	assert.True(t, db.Migrator().HasTable("photos"))
}

func TestCascadeDeleteRemovesMedia(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))

	now := time.Now().UTC()
	require.NoError(t, db.Create(&models.Album{ID: "a1", Name: "Trip", CreatedAt: now}).Error)
	require.NoError(t, db.Create(&models.MediaItem{ID: "m1", AlbumID: "a1", URL: "http://x/a.jpg", Type: models.MediaImage, CreatedAt: now}).Error)

	require.NoError(t, db.Delete(&models.Album{ID: "a1"}).Error)

	var count int64
	db.Model(&models.MediaItem{}).Where("album_id = ?", "a1").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestForeignKeyRejectsUnknownAlbum(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))

	err := db.Create(&models.MediaItem{ID: "m1", AlbumID: "nope", URL: "http://x/a.jpg", Type: models.MediaImage}).Error
	assert.Error(t, err)
}

func TestRunMigrations(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, database.Migrate(db))

	applied, err := database.RunMigrations(db)
	require.NoError(t, err)
	assert.Contains(t, applied, "001_photos_album_created_index.sql")
	assert.True(t, db.Migrator().HasIndex(&models.MediaItem{}, "idx_photos_album_created"))

	again, err := database.RunMigrations(db)
	require.NoError(t, err)
	assert.Empty(t, again)

	recorded, err := database.GetAppliedMigrations(db)
	require.NoError(t, err)
	assert.Len(t, recorded, len(applied))
}

func TestRunMigrationsFSOrderAndFailure(t *testing.T) {
	db := openTestDB(t)

	fsys := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE second (id INTEGER);")},
		"001_first.sql":  {Data: []byte("CREATE TABLE first (id INTEGER);")},
		"notes.txt":      {Data: []byte("ignored")},
	}
	applied, err := database.RunMigrationsFS(db, fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_first.sql", "002_second.sql"}, applied)

	broken := fstest.MapFS{
		"003_broken.sql": {Data: []byte("THIS IS NOT SQL;")},
	}
	_, err = database.RunMigrationsFS(db, broken)
	assert.Error(t, err)

	recorded, err := database.GetAppliedMigrations(db)
	require.NoError(t, err)
	assert.Len(t, recorded, 2)
}
