package media_test

import (
	"testing"

	"github.com/Kyz7/albums/internal/media"
	"github.com/Kyz7/albums/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestKindFromMIME(t *testing.T) {
	tests := map[string]models.MediaKind{
		"video/mp4":                models.MediaVideo,
		"video/quicktime":          models.MediaVideo,
		"image/png":                models.MediaImage,
		"image/jpeg":               models.MediaImage,
		"application/octet-stream": models.MediaImage,
		"":                         models.MediaImage,
		"VIDEO/MP4":                models.MediaImage,
	}
	for mime, want := range tests {
		assert.Equal(t, want, media.KindFromMIME(mime), mime)
	}
}

func TestKindFromURL(t *testing.T) {
	tests := map[string]models.MediaKind{
		"http://x/a.mp4":                     models.MediaVideo,
		"https://cdn.example.com/clip.mp4?x": models.MediaVideo,
		"https://example.com/video/123":      models.MediaVideo,
		"https://videos.example.com/a.jpg":   models.MediaVideo,
		"http://x/a.jpg?next=b.mp4":          models.MediaVideo,
		"http://x/a.png":                     models.MediaImage,
		"http://x/a.MP4":                     models.MediaImage,
		"https://example.com/photo":          models.MediaImage,
	}
	for url, want := range tests {
		assert.Equal(t, want, media.KindFromURL(url), url)
	}
}
