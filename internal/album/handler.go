package album

import (
	"errors"

	"github.com/Kyz7/albums/internal/models"
	"github.com/Kyz7/albums/internal/request"
	"github.com/Kyz7/albums/internal/response"
	"github.com/gofiber/fiber/v2"
)

type CreateAlbumRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

type CreateAlbumResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DetailResponse struct {
	Album  *models.Album      `json:"album"`
	Photos []models.MediaItem `json:"photos"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body CreateAlbumRequest
	if err := request.Parse(c, &body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	a, err := h.svc.Create(c.UserContext(), body.Name, body.Description)
	if errors.Is(err, ErrInvalidAlbum) {
		return response.ValidationError(c, "Album name is required", map[string]string{
			"name": "name is required",
		})
	}
	if err != nil {
		return response.InternalError(c, "Failed to create album")
	}

	return response.JSON(c, CreateAlbumResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
	})
}

func (h *Handler) List(c *fiber.Ctx) error {
	albums, err := h.svc.List(c.UserContext())
	if err != nil {
		return response.InternalError(c, "Failed to fetch albums")
	}
	return response.JSON(c, albums)
}

func (h *Handler) Get(c *fiber.Ctx) error {
	a, media, err := h.svc.Detail(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrAlbumNotFound) {
		return response.NotFound(c, "Album")
	}
	if err != nil {
		return response.InternalError(c, "Failed to fetch album")
	}

	return response.JSON(c, DetailResponse{Album: a, Photos: media})
}
