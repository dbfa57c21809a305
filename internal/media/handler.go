package media

import (
	"errors"

	"github.com/Kyz7/albums/internal/album"
	"github.com/Kyz7/albums/internal/request"
	"github.com/Kyz7/albums/internal/response"
	"github.com/gofiber/fiber/v2"
)

type AddMediaRequest struct {
	URL string `json:"url" form:"url"`
}

type AddMediaResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	Type     string `json:"type"`
}

type UpdateMediaRequest struct {
	Comment *string       `json:"comment" form:"comment"`
	Liked   *request.Flag `json:"liked" form:"liked"`
}

type Handler struct {
	svc *Service
	// publicBaseURL overrides the request origin in upload URLs.
	publicBaseURL string
}

func NewHandler(svc *Service, publicBaseURL string) *Handler {
	return &Handler{svc: svc, publicBaseURL: publicBaseURL}
}

func (h *Handler) Add(c *fiber.Ctx) error {
	albumID := c.Params("id")
	ctx := c.UserContext()

	file, fileErr := c.FormFile("file")
	if fileErr == nil {
		item, err := h.svc.AddUpload(ctx, albumID, file, h.baseURL(c))
		if err != nil {
			return h.addError(c, err)
		}
		return response.JSON(c, AddMediaResponse{
			ID:       item.ID,
			URL:      item.URL,
			Filename: item.Filename,
			Type:     string(item.Type),
		})
	}

	var body AddMediaRequest
	if err := request.Parse(c, &body); err != nil {
		if err := h.svc.CheckAlbum(ctx, albumID); err != nil {
			return h.addError(c, err)
		}
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	item, err := h.svc.AddLink(ctx, albumID, body.URL)
	if err != nil {
		return h.addError(c, err)
	}
	return response.JSON(c, AddMediaResponse{
		ID:   item.ID,
		URL:  item.URL,
		Type: string(item.Type),
	})
}

func (h *Handler) addError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, album.ErrAlbumNotFound):
		return response.NotFound(c, "Album")
	case errors.Is(err, ErrNoSource):
		return response.ValidationError(c, "Provide a file or a url", map[string]string{
			"file": "file or url is required",
		})
	case errors.Is(err, ErrFileTooLarge):
		return response.BadRequest(c, "File too large", map[string]interface{}{
			"max_size_mb": h.svc.maxUpload / (1024 * 1024),
		})
	default:
		return response.InternalError(c, "Failed to add media")
	}
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var body UpdateMediaRequest
	if err := request.Parse(c, &body); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	err := h.svc.Update(c.UserContext(), c.Params("id"), body.Comment, body.Liked)
	if errors.Is(err, ErrMediaNotFound) {
		return response.NotFound(c, "Media")
	}
	if err != nil {
		return response.InternalError(c, "Failed to update media")
	}
	return response.OK(c)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	err := h.svc.Delete(c.UserContext(), c.Params("id"))
	if errors.Is(err, ErrMediaNotFound) {
		return response.NotFound(c, "Media")
	}
	if err != nil {
		return response.InternalError(c, "Failed to delete media")
	}
	return response.OK(c)
}

func (h *Handler) baseURL(c *fiber.Ctx) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	return c.BaseURL()
}
