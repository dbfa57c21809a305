package server

import (
	"github.com/Kyz7/albums/internal/album"
	"github.com/Kyz7/albums/internal/config"
	"github.com/Kyz7/albums/internal/logging"
	"github.com/Kyz7/albums/internal/media"
	"github.com/Kyz7/albums/internal/response"
	"github.com/Kyz7/albums/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// multipart framing allowance on top of the largest accepted file
const bodySlack = 1 << 20

type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Storage *utils.LocalStorage
	Logger  zerolog.Logger
	Clock   utils.Clock
}

// New builds the album/media API app. The store handle in deps is shared
// by every handler.
func New(deps Deps) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		BodyLimit:             int(cfg.MaxUploadBytes()) + bodySlack,
		ErrorHandler:          response.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logging.RequestLogger(deps.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	albumSvc := album.NewService(deps.DB, deps.Clock)
	mediaSvc := media.NewService(deps.DB, albumSvc, deps.Storage, media.Config{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		Clock:          deps.Clock,
		Logger:         deps.Logger,
	})

	SetupRoutes(app, album.NewHandler(albumSvc), media.NewHandler(mediaSvc, cfg.PublicBaseURL))

	app.Static("/uploads", deps.Storage.Dir(), fiber.Static{
		ByteRange: true,
		Browse:    false,
		MaxAge:    3600,
	})
	app.Static("/", cfg.PublicDir, fiber.Static{
		Index: "index.html",
	})

	return app
}
