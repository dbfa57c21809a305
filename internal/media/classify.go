package media

import (
	"strings"

	"github.com/Kyz7/albums/internal/models"
)

// KindFromMIME classifies an upload by its declared content type.
func KindFromMIME(contentType string) models.MediaKind {
	if strings.HasPrefix(contentType, "video/") {
		return models.MediaVideo
	}
	return models.MediaImage
}

// KindFromURL guesses the kind of an external link. Anything containing
// ".mp4" or "video" is a video, the rest are images.
func KindFromURL(url string) models.MediaKind {
	if strings.Contains(url, ".mp4") || strings.Contains(url, "video") {
		return models.MediaVideo
	}
	return models.MediaImage
}
