package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"shikshaksangh_backend/internals/features/contents/news/dto"
)

func newNewsApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "news.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// text[] has no sqlite counterpart; a plain text column stores the
	// pq array literal, which is all these paths need
	require.NoError(t, db.Exec(`CREATE TABLE news (
		news_id text PRIMARY KEY,
		news_title text NOT NULL,
		news_slug text NOT NULL UNIQUE,
		news_content text NOT NULL,
		news_image_path text,
		news_tags text,
		news_created_at datetime,
		news_updated_at datetime
	)`).Error)

	ctrl := NewNewsController(db)
	app := fiber.New()
	app.Post("/news", ctrl.CreateNews)
	app.Get("/news/:slug", ctrl.GetNewsBySlug)
	return app
}

type newsEnvelope struct {
	Data dto.NewsDTO `json:"data"`
}

func postNews(t *testing.T, app *fiber.App, title string) dto.NewsDTO {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"news_title":   title,
		"news_content": "Full text of " + title,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/news", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var env newsEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env.Data
}

func getNewsBySlug(t *testing.T, app *fiber.App, slug string) (int, dto.NewsDTO) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/news/"+slug, nil), -1)
	require.NoError(t, err)

	var env newsEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Data
}

func TestCreateNews_DuplicateTitleGetsSuffixedSlug(t *testing.T) {
	app := newNewsApp(t)

	first := postNews(t, app, "Annual Convention")
	second := postNews(t, app, "Annual Convention")

	assert.Equal(t, "annual-convention", first.NewsSlug)
	assert.Equal(t, "annual-convention-2", second.NewsSlug)
	assert.NotEqual(t, first.NewsID, second.NewsID)
}

func TestGetNewsBySlug_ResolvesEachStoredRecord(t *testing.T) {
	app := newNewsApp(t)

	first := postNews(t, app, "Teacher Training")
	second := postNews(t, app, "Teacher Training")

	for _, want := range []dto.NewsDTO{first, second} {
		status, got := getNewsBySlug(t, app, want.NewsSlug)
		require.Equal(t, fiber.StatusOK, status, "slug %q", want.NewsSlug)
		assert.Equal(t, want.NewsID, got.NewsID)
		assert.Equal(t, want.NewsSlug, got.NewsSlug)
		assert.Equal(t, want.NewsTitle, got.NewsTitle)
	}
}

func TestGetNewsBySlug_Unknown(t *testing.T) {
	app := newNewsApp(t)
	status, _ := getNewsBySlug(t, app, "no-such-news")
	assert.Equal(t, fiber.StatusNotFound, status)
}
