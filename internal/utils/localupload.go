package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrOutsideUploadDir = errors.New("file path outside uploads directory")

// LocalStorage keeps uploaded media in a single flat directory.
type LocalStorage struct {
	dir string
	now func() time.Time
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir, now: time.Now}
}

// Init creates the upload directory if it does not exist.
func (s *LocalStorage) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", s.dir, err)
	}
	return nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// GenerateFilename builds "<unix millis>-<8 hex><ext>", keeping the
// extension of the original name.
func (s *LocalStorage) GenerateFilename(original string) string {
	ext := filepath.Ext(filepath.Base(original))
	return fmt.Sprintf("%d-%s%s",
		s.now().UnixMilli(),
		strings.ReplaceAll(uuid.New().String(), "-", "")[:8],
		ext,
	)
}

// Save writes the upload under a fresh name and returns that name.
func (s *LocalStorage) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	filename := s.GenerateFilename(file.Filename)
	fullPath := filepath.Join(s.dir, filename)

	dst, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return filename, nil
}

// Path resolves filename inside the upload directory, refusing anything
// that would escape it.
func (s *LocalStorage) Path(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", ErrOutsideUploadDir
	}

	baseAbs, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath := filepath.Join(baseAbs, filename)
	if !strings.HasPrefix(absPath, baseAbs+string(filepath.Separator)) {
		return "", ErrOutsideUploadDir
	}
	return absPath, nil
}

func (s *LocalStorage) Delete(filename string) error {
	fullPath, err := s.Path(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Exists(filename string) bool {
	fullPath, err := s.Path(filename)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}
