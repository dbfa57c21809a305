package album_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Kyz7/albums/internal/album"
	"github.com/Kyz7/albums/internal/response"
	"github.com/Kyz7/albums/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockService(t *testing.T) (*album.Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return album.NewService(db, utils.RealClock{}), mock
}

func TestServiceCreateValidation(t *testing.T) {
	svc, mock := mockService(t)

	_, err := svc.Create(context.Background(), "  ", "desc")
	assert.ErrorIs(t, err, album.ErrInvalidAlbum)
	assert.NoError(t, mock.ExpectationsWereMet(), "validation must not touch the store")
}

func TestServiceListStoreFailure(t *testing.T) {
	svc, mock := mockService(t)
	mock.ExpectQuery(`SELECT \* FROM "albums"`).WillReturnError(errors.New("connection refused"))

	_, err := svc.List(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, album.ErrAlbumNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceGetNotFound(t *testing.T) {
	svc, mock := mockService(t)
	mock.ExpectQuery(`SELECT \* FROM "albums" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}))

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, album.ErrAlbumNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListHandlerStoreFailure(t *testing.T) {
	svc, mock := mockService(t)
	mock.ExpectQuery(`SELECT \* FROM "albums"`).WillReturnError(errors.New("disk I/O error"))

	app := fiber.New(fiber.Config{ErrorHandler: response.ErrorHandler})
	h := album.NewHandler(svc)
	app.Get("/api/albums", h.List)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/albums", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
