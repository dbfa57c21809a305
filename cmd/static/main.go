package main

import (
	"os"

	"github.com/Kyz7/albums/internal/config"
	"github.com/Kyz7/albums/internal/logging"
	"github.com/Kyz7/albums/internal/server"
)

func main() {
	cfg := config.LoadStatic()

	log := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stdout,
	})

	app := server.NewStatic(cfg.StaticDir, log)

	log.Info().Str("addr", cfg.Addr()).Str("dir", cfg.StaticDir).Msg("🚀 Static server starting")
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to start static server")
	}
}
