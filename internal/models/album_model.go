package models

import "time"

type Album struct {
	ID          string      `gorm:"primaryKey;size:16" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `gorm:"not null;default:''" json:"description"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`
	Media       []MediaItem `gorm:"foreignKey:AlbumID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Album) TableName() string {
	return "albums"
}
