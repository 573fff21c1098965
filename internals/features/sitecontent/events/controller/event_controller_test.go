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

	eventModel "aidjourney_backend/internals/features/sitecontent/events/model"
	eventRoute "aidjourney_backend/internals/features/sitecontent/events/route"
	helper "aidjourney_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&eventModel.EventCategoryModel{},
		&eventModel.EventModel{},
		&eventModel.EventPhotoModel{},
	))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	api := app.Group("/api")
	eventRoute.EventPublicRoutes(api, db)
	eventRoute.EventAdminRoutes(api.Group("/admin"), db)
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

type fixture struct {
	outreach eventModel.EventCategoryModel
	galas    eventModel.EventCategoryModel
	ev2025   eventModel.EventModel
	ev2026   eventModel.EventModel
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture
	f.outreach = eventModel.EventCategoryModel{Name: "Outreach", Slug: "outreach", IsActive: true}
	f.galas = eventModel.EventCategoryModel{Name: "Galas", Slug: "galas", IsActive: true}
	require.NoError(t, db.Create(&f.outreach).Error)
	require.NoError(t, db.Create(&f.galas).Error)

	f.ev2025 = eventModel.EventModel{CategoryID: f.outreach.ID, Title: "Food Drive", Year: 2025, IsActive: true}
	f.ev2026 = eventModel.EventModel{CategoryID: f.galas.ID, Title: "Spring Gala", Year: 2026, IsActive: true}
	require.NoError(t, db.Create(&f.ev2025).Error)
	require.NoError(t, db.Create(&f.ev2026).Error)

	require.NoError(t, db.Create(&eventModel.EventPhotoModel{
		EventID: f.ev2025.ID, Image: "events/a.webp", Caption: "volunteers",
	}).Error)
	require.NoError(t, db.Create(&eventModel.EventPhotoModel{
		EventID: f.ev2025.ID, Image: "events/b.webp",
	}).Error)
	return f
}

func TestPublicEventFilters(t *testing.T) {
	app, db := newTestApp(t)
	f := seed(t, db)

	// Hidden event never appears.
	require.NoError(t, db.Create(&eventModel.EventModel{
		CategoryID: f.outreach.ID, Title: "Draft", Year: 2026, IsActive: false,
	}).Error)

	status, body := doJSON(t, app, http.MethodGet, "/api/events/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])

	status, body = doJSON(t, app, http.MethodGet, "/api/events/?category=outreach", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])
	ev := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Food Drive", ev["title"])
	assert.Equal(t, "outreach", ev["category_slug"])
	assert.EqualValues(t, 2, ev["photo_count"])

	status, body = doJSON(t, app, http.MethodGet, "/api/events/?year=2026", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["count"])
	assert.Equal(t, "Spring Gala", body["data"].([]any)[0].(map[string]any)["title"])

	status, _ = doJSON(t, app, http.MethodGet, "/api/events/?year=banana", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPublicEventPhotos(t *testing.T) {
	app, db := newTestApp(t)
	f := seed(t, db)

	status, body := doJSON(t, app, http.MethodGet,
		"/api/events/"+strconv.Itoa(int(f.ev2025.ID))+"/photos", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["count"])

	// An inactive event hides its gallery.
	require.NoError(t, db.Model(&eventModel.EventModel{}).
		Where("id = ?", f.ev2025.ID).Update("is_active", false).Error)
	status, _ = doJSON(t, app, http.MethodGet,
		"/api/events/"+strconv.Itoa(int(f.ev2025.ID))+"/photos", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategorySlugDerivedAndConflict(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/events/categories/", fiber.Map{
		"name": "Community Days",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "community-days", body["data"].(map[string]any)["slug"])

	status, body = doJSON(t, app, http.MethodPost, "/api/admin/events/categories/", fiber.Map{
		"name": "Community days",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])
}

func TestEventRequiresKnownCategory(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/api/admin/events/", fiber.Map{
		"category_id": 42,
		"title":       "Orphan Event",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "category_id")
}

func TestDeleteEventCascadesPhotos(t *testing.T) {
	app, db := newTestApp(t)
	f := seed(t, db)

	status, _ := doJSON(t, app, http.MethodDelete,
		"/api/admin/events/"+strconv.Itoa(int(f.ev2025.ID)), nil)
	assert.Equal(t, http.StatusOK, status)

	var photos int64
	require.NoError(t, db.Model(&eventModel.EventPhotoModel{}).Count(&photos).Error)
	assert.EqualValues(t, 0, photos)
}

func TestDeleteCategoryCascadesEventsAndPhotos(t *testing.T) {
	app, db := newTestApp(t)
	f := seed(t, db)

	status, _ := doJSON(t, app, http.MethodDelete,
		"/api/admin/events/categories/"+strconv.Itoa(int(f.outreach.ID)), nil)
	assert.Equal(t, http.StatusOK, status)

	var events, photos int64
	require.NoError(t, db.Model(&eventModel.EventModel{}).Count(&events).Error)
	require.NoError(t, db.Model(&eventModel.EventPhotoModel{}).Count(&photos).Error)
	assert.EqualValues(t, 1, events) // the gala in the other category survives
	assert.EqualValues(t, 0, photos)
}
