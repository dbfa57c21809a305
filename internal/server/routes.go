package server

import (
	"github.com/Kyz7/albums/internal/album"
	"github.com/Kyz7/albums/internal/media"
	"github.com/Kyz7/albums/internal/response"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, albums *album.Handler, photos *media.Handler) {
	api := app.Group("/api")

	// liveness
	api.Get("/ping", response.OK)

	api.Post("/albums", albums.Create)
	api.Get("/albums", albums.List)
	api.Get("/albums/:id", albums.Get)
	api.Post("/albums/:id/photos", photos.Add)

	api.Put("/photos/:id", photos.Update)
	api.Delete("/photos/:id", photos.Delete)
}
