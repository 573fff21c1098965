package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bannerModel "aidjourney_backend/internals/features/sitecontent/banner/model"
	bannerRoute "aidjourney_backend/internals/features/sitecontent/banner/route"
	helper "aidjourney_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&bannerModel.BannerModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	api := app.Group("/api")
	bannerRoute.BannerPublicRoutes(api, db)
	// The staff gate itself is covered in the route package tests.
	bannerRoute.BannerAdminRoutes(api.Group("/admin"), db)
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

func seedBanners(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []bannerModel.BannerModel{
		{Title: "third", Image: "banners/3.webp", SortOrder: 3, IsActive: true},
		{Title: "first", Image: "banners/1.webp", SortOrder: 1, IsActive: true},
		{Title: "second", Image: "banners/2.webp", SortOrder: 2, IsActive: true},
		{Title: "hidden", Image: "banners/4.webp", SortOrder: 0, IsActive: false},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func titles(body map[string]any) []string {
	data, _ := body["data"].([]any)
	out := make([]string, 0, len(data))
	for _, item := range data {
		m := item.(map[string]any)
		out = append(out, m["title"].(string))
	}
	return out
}

func TestPublicBannerListActiveOrdered(t *testing.T) {
	app, db := newTestApp(t)
	seedBanners(t, db)

	status, body := doJSON(t, app, http.MethodGet, "/api/banner", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])
	assert.Equal(t, []string{"first", "second", "third"}, titles(body))
}

// Staff reads see the same active subset; only staff writes reach
// inactive rows.
func TestAdminBannerReadHidesInactive(t *testing.T) {
	app, db := newTestApp(t)
	seedBanners(t, db)

	status, body := doJSON(t, app, http.MethodGet, "/api/admin/banners/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])

	var hidden bannerModel.BannerModel
	require.NoError(t, db.Where("title = ?", "hidden").First(&hidden).Error)

	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/banners/"+itoa(hidden.ID), nil)
	assert.Equal(t, http.StatusNotFound, status)

	// A write reaches the inactive row.
	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/banners/"+itoa(hidden.ID), nil)
	assert.Equal(t, http.StatusOK, status)

	var count int64
	require.NoError(t, db.Model(&bannerModel.BannerModel{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestCreateBannerValidation(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/banners/", fiber.Map{
		"image": "banners/x.webp",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "title")

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/banners/", fiber.Map{
		"title":    "Give today",
		"image":    "banners/x.webp",
		"cta_href": "/donate now",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs = body["errors"].(map[string]any)
	assert.Contains(t, errs, "cta_href")

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/banners/", fiber.Map{
		"title": "Give today",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs = body["errors"].(map[string]any)
	assert.Contains(t, errs, "image")
}

func TestCreateAndUpdateBanner(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/banners/", fiber.Map{
		"title":    "Give today",
		"image":    "banners/x.webp",
		"cta_href": "#donate",
		"order":    5,
	})
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	id := itoa(uint(data["id"].(float64)))
	assert.Equal(t, "#donate", data["cta_href"])

	status, body = doJSON(t, app, http.MethodPatch, "/api/admin/banners/"+id, fiber.Map{
		"subtitle": "Every bit counts",
	})
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, "Give today", data["title"])
	assert.Equal(t, "Every bit counts", data["subtitle"])
}

func itoa(v uint) string { return strconv.FormatUint(uint64(v), 10) }
