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

	storyModel "aidjourney_backend/internals/features/sitecontent/story/model"
	storyRoute "aidjourney_backend/internals/features/sitecontent/story/route"
	helper "aidjourney_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&storyModel.StoryModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	api := app.Group("/api")
	storyRoute.StoryPublicRoutes(api, db)
	storyRoute.StoryAdminRoutes(api.Group("/admin"), db)
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

func TestStoryHrefRejectsWhitespace(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/stories/", fiber.Map{
		"title": "From the field",
		"href":  "/stories/field report",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "href")

	for _, ok := range []string{"#story", "/stories/field-report", "https://example.org/s/1"} {
		status, _ = doJSON(t, app, http.MethodPost, "/api/admin/stories/", fiber.Map{
			"title": "From the field " + ok,
			"href":  ok,
		})
		assert.Equal(t, http.StatusCreated, status, ok)
	}
}

func TestPublicStoriesActiveOnly(t *testing.T) {
	app, db := newTestApp(t)
	rows := []storyModel.StoryModel{
		{Title: "live", SortOrder: 1, IsActive: true},
		{Title: "hidden", SortOrder: 0, IsActive: false},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/stories", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "live", body["data"].([]any)[0].(map[string]any)["title"])

	// Admin sees everything.
	status, body = doJSON(t, app, http.MethodGet, "/api/admin/stories/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])
}
