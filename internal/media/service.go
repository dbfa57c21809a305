package media

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/Kyz7/albums/internal/models"
	"github.com/Kyz7/albums/internal/request"
	"github.com/Kyz7/albums/internal/utils"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	ErrMediaNotFound = errors.New("media not found")
	// ErrNoSource means neither a file nor a URL was supplied.
	ErrNoSource     = errors.New("file or url is required")
	ErrFileTooLarge = errors.New("file too large")
)

// AlbumLookup is the album check performed before every insert.
type AlbumLookup interface {
	Exists(ctx context.Context, id string) error
}

type Service struct {
	db        *gorm.DB
	albums    AlbumLookup
	storage   *utils.LocalStorage
	clock     utils.Clock
	logger    zerolog.Logger
	maxUpload int64
}

type Config struct {
	MaxUploadBytes int64
	Clock          utils.Clock
	Logger         zerolog.Logger
}

func NewService(db *gorm.DB, albums AlbumLookup, storage *utils.LocalStorage, cfg Config) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &Service{
		db:        db,
		albums:    albums,
		storage:   storage,
		clock:     clock,
		logger:    cfg.Logger,
		maxUpload: cfg.MaxUploadBytes,
	}
}

// AddUpload stores file and records it in the album. baseURL is the
// public origin the upload will be served from.
func (s *Service) AddUpload(ctx context.Context, albumID string, file *multipart.FileHeader, baseURL string) (*models.MediaItem, error) {
	if err := s.albums.Exists(ctx, albumID); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrNoSource
	}
	if s.maxUpload > 0 && file.Size > s.maxUpload {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrFileTooLarge, file.Size, s.maxUpload)
	}

	filename, err := s.storage.Save(file)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	item := models.MediaItem{
		ID:        utils.NewID(),
		AlbumID:   albumID,
		Filename:  filename,
		URL:       strings.TrimRight(baseURL, "/") + "/uploads/" + filename,
		Type:      KindFromMIME(file.Header.Get("Content-Type")),
		CreatedAt: s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		// the row never existed, so the file would be unreachable
		if rmErr := s.storage.Delete(filename); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("filename", filename).Msg("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("insert media: %w", err)
	}

	s.logger.Debug().Str("album_id", albumID).Str("media_id", item.ID).Str("filename", filename).Msg("media uploaded")
	return &item, nil
}

// CheckAlbum returns the album lookup error for albumID, if any.
func (s *Service) CheckAlbum(ctx context.Context, albumID string) error {
	return s.albums.Exists(ctx, albumID)
}

// AddLink records an external URL in the album.
func (s *Service) AddLink(ctx context.Context, albumID, url string) (*models.MediaItem, error) {
	if err := s.albums.Exists(ctx, albumID); err != nil {
		return nil, err
	}

	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoSource
	}

	item := models.MediaItem{
		ID:        utils.NewID(),
		AlbumID:   albumID,
		URL:       url,
		Type:      KindFromURL(url),
		CreatedAt: s.clock.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, fmt.Errorf("insert media: %w", err)
	}
	return &item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.MediaItem, error) {
	var item models.MediaItem
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMediaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get media %s: %w", id, err)
	}
	return &item, nil
}

// Update overwrites the fields that are non-nil and keeps the others.
func (s *Service) Update(ctx context.Context, id string, comment *string, liked *request.Flag) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	var commentArg, likedArg interface{}
	if comment != nil {
		commentArg = utils.SanitizeText(*comment)
	}
	if liked != nil {
		likedArg = liked.Int()
	}

	err := s.db.WithContext(ctx).
		Model(&models.MediaItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"comment": gorm.Expr("COALESCE(?, comment)", commentArg),
			"liked":   gorm.Expr("COALESCE(?, liked)", likedArg),
		}).Error
	if err != nil {
		return fmt.Errorf("update media %s: %w", id, err)
	}
	return nil
}

// Delete removes the row and, best effort, its uploaded file. A file that
// cannot be removed never fails the call.
func (s *Service) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if item.Filename != "" {
		if err := s.storage.Delete(item.Filename); err != nil {
			s.logger.Debug().Err(err).Str("filename", item.Filename).Msg("upload already gone")
		}
	}

	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.MediaItem{}).Error; err != nil {
		return fmt.Errorf("delete media %s: %w", id, err)
	}
	return nil
}
