package main

import (
	"os"

	"github.com/Kyz7/albums/internal/config"
	"github.com/Kyz7/albums/internal/database"
	"github.com/Kyz7/albums/internal/logging"
	"github.com/Kyz7/albums/internal/server"
	"github.com/Kyz7/albums/internal/utils"
)

func main() {
	cfg := config.Load()

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("❌ Invalid configuration")
	}

	// ========== STORAGE SETUP ==========
	storage := utils.NewLocalStorage(cfg.UploadDir)
	if err := storage.Init(); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to initialize local storage")
	}
	log.Info().Str("dir", cfg.UploadDir).Msg("✅ Local storage initialized")

	// ========== DATABASE SETUP ==========
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("❌ Database connection failed")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("❌ Migration failed")
	}
	log.Info().Msg("✅ Database migrated successfully")

	applied, err := database.RunMigrations(db)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ SQL migrations failed")
	}
	log.Info().Strs("applied", applied).Msg("✅ SQL migrations completed")

	// ========== START SERVER ==========
	app := server.New(server.Deps{
		Config:  cfg,
		DB:      db,
		Storage: storage,
		Logger:  log,
		Clock:   utils.RealClock{},
	})

	log.Info().
		Str("addr", cfg.Addr()).
		Str("driver", cfg.DBDriver).
		Int("max_upload_mb", cfg.MaxUploadMB).
		Msg("🚀 Album server starting")

	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start server")
	}
}
