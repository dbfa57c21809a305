package album

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kyz7/albums/internal/models"
	"github.com/Kyz7/albums/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrInvalidAlbum is returned when required album fields are missing.
	ErrInvalidAlbum = errors.New("invalid album")
	// ErrAlbumNotFound is returned when an album id does not exist.
	ErrAlbumNotFound = errors.New("album not found")
)

type Service struct {
	db    *gorm.DB
	clock utils.Clock
}

func NewService(db *gorm.DB, clock utils.Clock) *Service {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &Service{db: db, clock: clock}
}

func (s *Service) Create(ctx context.Context, name, description string) (*models.Album, error) {
	name = utils.SanitizeText(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidAlbum)
	}

	a := models.Album{
		ID:          utils.NewID(),
		Name:        name,
		Description: utils.SanitizeText(description),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	return &a, nil
}

// List returns every album, most recent first.
func (s *Service) List(ctx context.Context) ([]models.Album, error) {
	albums := []models.Album{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&albums).Error; err != nil {
		return nil, fmt.Errorf("list albums: %w", err)
	}
	return albums, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Album, error) {
	var a models.Album
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get album %s: %w", id, err)
	}
	return &a, nil
}

// Exists returns ErrAlbumNotFound unless id names an album.
func (s *Service) Exists(ctx context.Context, id string) error {
	_, err := s.Get(ctx, id)
	return err
}

// Detail returns the album and its media, most recent first.
func (s *Service) Detail(ctx context.Context, id string) (*models.Album, []models.MediaItem, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	media := []models.MediaItem{}
	if err := s.db.WithContext(ctx).
		Where("album_id = ?", id).
		Order("created_at DESC").
		Find(&media).Error; err != nil {
		return nil, nil, fmt.Errorf("list media for album %s: %w", id, err)
	}
	return a, media, nil
}
