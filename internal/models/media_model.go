package models

import "time"

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// MediaItem is a photo or video in an album. Filename is empty when the
// item points at an external URL instead of an upload.
type MediaItem struct {
	ID        string    `gorm:"primaryKey;size:16" json:"id"`
	AlbumID   string    `gorm:"size:16;not null;index" json:"album_id"`
	Filename  string    `gorm:"not null;default:''" json:"filename"`
	URL       string    `gorm:"not null" json:"url"`
	Type      MediaKind `gorm:"size:10;not null" json:"type"`
	Comment   string    `gorm:"not null;default:''" json:"comment"`
	Liked     int       `gorm:"not null;default:0" json:"liked"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (MediaItem) TableName() string {
	return "photos"
}
