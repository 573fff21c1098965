package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	newsModel "aidjourney_backend/internals/features/sitecontent/news/model"
	newsRoute "aidjourney_backend/internals/features/sitecontent/news/route"
	helper "aidjourney_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&newsModel.NewsModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	api := app.Group("/api")
	newsRoute.NewsPublicRoutes(api, db)
	newsRoute.NewsAdminRoutes(api.Group("/admin"), db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestNewsCreateDerivesSlugAndParsesDate(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/news/", fiber.Map{
		"title": "Annual Report Released",
		"image": "news/x.webp",
		"date":  "2026-03-14",
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "annual-report-released", data["slug"])
	assert.Equal(t, "2026-03-14", data["date"])

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/news/", fiber.Map{
		"title": "Bad Date",
		"image": "news/y.webp",
		"date":  "14/03/2026",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "date")
}

func TestPublicNewsPublishedNewestFirst(t *testing.T) {
	app, db := newTestApp(t)
	rows := []newsModel.NewsModel{
		{Title: "old", Slug: "old", Image: "news/1.webp", Date: day(t, "2026-01-01"), Published: true},
		{Title: "new-a", Slug: "new-a", Image: "news/2.webp", Date: day(t, "2026-06-01"), Published: true},
		{Title: "new-b", Slug: "new-b", Image: "news/3.webp", Date: day(t, "2026-06-01"), Published: true},
		{Title: "draft", Slug: "draft", Image: "news/4.webp", Date: day(t, "2026-07-01"), Published: false},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/news", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])
	data := body["data"].([]any)
	// Same-day entries fall back to newest insertion first.
	assert.Equal(t, "new-b", data[0].(map[string]any)["title"])
	assert.Equal(t, "new-a", data[1].(map[string]any)["title"])
	assert.Equal(t, "old", data[2].(map[string]any)["title"])
}

func TestPublicNewsBySlug(t *testing.T) {
	app, db := newTestApp(t)
	rows := []newsModel.NewsModel{
		{Title: "published", Slug: "published", Image: "news/1.webp", Date: day(t, "2026-02-02"), Published: true},
		{Title: "draft", Slug: "draft", Image: "news/2.webp", Date: day(t, "2026-02-03"), Published: false},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/news/published", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "published", body["data"].(map[string]any)["title"])

	// Drafts are invisible by slug too.
	status, _ = doJSON(t, app, http.MethodGet, "/api/news/draft", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, app, http.MethodGet, "/api/news/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestNewsSlugConflict(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/news/", fiber.Map{
		"title": "Gala Night",
		"image": "news/1.webp",
		"date":  "2026-05-05",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/news/", fiber.Map{
		"title": "Gala night",
		"image": "news/2.webp",
		"date":  "2026-05-06",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])
}
