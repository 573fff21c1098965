package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	aboutModel "aidjourney_backend/internals/features/sitecontent/about/model"
	aboutRoute "aidjourney_backend/internals/features/sitecontent/about/route"
	helper "aidjourney_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&aboutModel.AboutSectionModel{},
		&aboutModel.WhatWeDoItemModel{},
		&aboutModel.JourneyEntryModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	api := app.Group("/api")
	aboutRoute.AboutPublicRoutes(api, db)
	aboutRoute.AboutAdminRoutes(api.Group("/admin"), db)
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

func strList(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.(string))
	}
	return out
}

func TestAboutSingletonMaterializes(t *testing.T) {
	app, db := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodGet, "/api/about", nil)
	assert.Equal(t, http.StatusOK, status)

	// Repeat reads keep exactly one row.
	status, _ = doJSON(t, app, http.MethodGet, "/api/admin/about/", nil)
	assert.Equal(t, http.StatusOK, status)

	var count int64
	require.NoError(t, db.Model(&aboutModel.AboutSectionModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAboutListFieldsEditedAsText(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPut, "/api/admin/about/", fiber.Map{
		"heading":              "Who we are",
		"highlight_words_text": "hope, dignity,, growth ",
		"points_text":          "We listen first.\r\n\r\n We act locally. \n",
	})
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, []string{"hope", "dignity", "growth"}, strList(data["highlight_words"]))
	assert.Equal(t, []string{"We listen first.", "We act locally."}, strList(data["points"]))
	assert.Equal(t, "hope, dignity, growth", data["highlight_words_text"])

	// The public projection serves the same lists as arrays.
	status, body = doJSON(t, app, http.MethodGet, "/api/about", nil)
	require.Equal(t, http.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, []string{"hope", "dignity", "growth"}, strList(data["highlight_words"]))
}

func TestAboutCtaHrefRejectsWhitespace(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPut, "/api/admin/about/", fiber.Map{
		"cta_primary_href": "/get involved",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "cta_primary_href")

	for _, ok := range []string{"#about", "/about", "https://example.org/about"} {
		status, _ = doJSON(t, app, http.MethodPut, "/api/admin/about/", fiber.Map{
			"cta_primary_href": ok,
		})
		assert.Equal(t, http.StatusOK, status, ok)
	}
}

func TestAboutChildrenCRUDAndPublicNesting(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/api/admin/about/what-we-do/", fiber.Map{
		"title":       "Education",
		"description": "Schooling support",
		"order":       2,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/about/what-we-do/", fiber.Map{
		"title":       "Health",
		"description": "Clinics",
		"order":       1,
	})
	require.Equal(t, http.StatusCreated, status)
	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/about/what-we-do/", fiber.Map{
		"title":       "Hidden",
		"description": "Not live yet",
		"is_active":   false,
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, app, http.MethodPost, "/api/admin/about/journey/", fiber.Map{
		"year": "2019",
		"text": "Founded",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodGet, "/api/about", nil)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)

	wwd := data["what_we_do"].([]any)
	require.Len(t, wwd, 2)
	assert.Equal(t, "Health", wwd[0].(map[string]any)["title"])
	assert.Equal(t, "Education", wwd[1].(map[string]any)["title"])

	journey := data["journey"].([]any)
	require.Len(t, journey, 1)
	assert.Equal(t, "2019", journey[0].(map[string]any)["year"])

	// Admin listing still shows the inactive card.
	status, body = doJSON(t, app, http.MethodGet, "/api/admin/about/what-we-do/", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["count"])

	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/about/what-we-do/1", nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodDelete, "/api/admin/about/what-we-do/99", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
