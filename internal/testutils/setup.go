package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kyz7/albums/internal/config"
	"github.com/Kyz7/albums/internal/database"
	"github.com/Kyz7/albums/internal/logging"
	"github.com/Kyz7/albums/internal/server"
	"github.com/Kyz7/albums/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type TestApp struct {
	App     *fiber.App
	DB      *gorm.DB
	Storage *utils.LocalStorage
	Config  *config.Config
	Clock   *utils.FakeClock
}

// TestDB opens a migrated sqlite file inside the test's temp dir.
func TestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	require.NoError(t, database.Migrate(db), "Failed to migrate test database")
	_, err = database.RunMigrations(db)
	require.NoError(t, err, "Failed to apply SQL migrations")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SetupTestApp wires the full API over a throwaway store, upload dir and
// public dir containing a single index.html.
func SetupTestApp(t *testing.T, opts ...func(*config.Config)) *TestApp {
	t.Helper()
	root := t.TempDir()

	cfg := &config.Config{
		Port:        "0",
		DBDriver:    config.DriverSQLite,
		UploadDir:   filepath.Join(root, "uploads"),
		PublicDir:   filepath.Join(root, "public"),
		MaxUploadMB: 10,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	require.NoError(t, os.MkdirAll(cfg.PublicDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.PublicDir, "index.html"), []byte("<h1>albums</h1>"), 0644))

	storage := utils.NewLocalStorage(cfg.UploadDir)
	require.NoError(t, storage.Init(), "Failed to initialize storage")

	db := TestDB(t)
	clock := utils.NewFakeClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	app := server.New(server.Deps{
		Config:  cfg,
		DB:      db,
		Storage: storage,
		Logger:  logging.Nop(),
		Clock:   clock,
	})

	return &TestApp{App: app, DB: db, Storage: storage, Config: cfg, Clock: clock}
}

func MakeRequest(app *fiber.App, method, url string, body interface{}) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return send(app, req)
}

// MakeRawRequest sends body verbatim with the given content type.
func MakeRawRequest(app *fiber.App, method, url, contentType string, body []byte) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return send(app, req)
}

// FilePart is a file field in a multipart request.
type FilePart struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

func MakeMultipartRequest(app *fiber.App, method, url string, fields map[string]string, files ...FilePart) (*httptest.ResponseRecorder, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, val := range fields {
		if err := writer.WriteField(key, val); err != nil {
			return nil, err
		}
	}

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Filename+`"`)
		h.Set("Content-Type", f.ContentType)
		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, err
		}
	}

	contentType := writer.FormDataContentType()
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", contentType)
	return send(app, req)
}

func send(app *fiber.App, req *http.Request) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()

	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode
	for k, v := range resp.Header {
		for _, val := range v {
			rec.Header().Add(k, val)
		}
	}
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if resp.Body.Len() == 0 {
		t.Fatal("Response body is empty")
	}

	if err := json.Unmarshal(resp.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to parse response %q: %v", resp.Body.String(), err)
	}
}

type ErrorResponse struct {
	OK    bool         `json:"ok"`
	Error *ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details"`
}

func AssertOK(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()
	var result struct {
		OK bool `json:"ok"`
	}
	ParseResponse(t, resp, &result)
	assert.Equal(t, 200, resp.Code)
	assert.True(t, result.OK, "Expected ok acknowledgement")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, status int, expectedCode string) {
	t.Helper()
	var result ErrorResponse
	ParseResponse(t, resp, &result)
	assert.Equal(t, status, resp.Code)
	assert.False(t, result.OK, "Expected error response")
	if assert.NotNil(t, result.Error, "Expected error object") {
		assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
	}
}
