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

	"aidjourney_backend/internals/configs"
	authModel "aidjourney_backend/internals/features/users/auth/model"
	authRoute "aidjourney_backend/internals/features/users/auth/route"
	authService "aidjourney_backend/internals/features/users/auth/service"
	helper "aidjourney_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	configs.AccessTokenTTL = time.Minute
	configs.RefreshTokenTTL = time.Hour

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.UserModel{}, &authModel.RefreshTokenModel{}))

	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	authRoute.AuthRoutes(app.Group("/api"), db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, name string, staff, active bool) authModel.UserModel {
	t.Helper()
	hash, err := authService.HashPassword("s3cret-pass")
	require.NoError(t, err)
	u := authModel.UserModel{
		UserName: name,
		Email:    name + "@example.org",
		Password: hash,
		IsStaff:  staff,
		IsActive: active,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
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

func TestTokenLoginByUsernameOrEmail(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", true, true)

	for _, identifier := range []string{"admin", "admin@example.org"} {
		status, body := doJSON(t, app, http.MethodPost, "/api/auth/token", fiber.Map{
			"identifier": identifier,
			"password":   "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, status, identifier)
		data := body["data"].(map[string]any)
		assert.NotEmpty(t, data["access_token"])
		assert.NotEmpty(t, data["refresh_token"])
	}
}

func TestTokenLoginRejectsBadCredentials(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", true, true)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/token", fiber.Map{
		"identifier": "admin",
		"password":   "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["error_code"])

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/token", fiber.Map{
		"identifier": "nobody",
		"password":   "s3cret-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestTokenLoginRejectsDisabledAccount(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "gone", false, false)

	status, _ := doJSON(t, app, http.MethodPost, "/api/auth/token", fiber.Map{
		"identifier": "gone",
		"password":   "s3cret-pass",
	})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRefreshRotatesTheToken(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", true, true)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/token", fiber.Map{
		"identifier": "admin",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, status)
	refresh := body["data"].(map[string]any)["refresh_token"].(string)

	status, body = doJSON(t, app, http.MethodPost, "/api/auth/token/refresh", fiber.Map{
		"refresh": refresh,
	})
	require.Equal(t, http.StatusOK, status)
	next := body["data"].(map[string]any)["refresh_token"].(string)
	assert.NotEqual(t, refresh, next)

	// The presented token was rotated out and cannot be replayed.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/token/refresh", fiber.Map{
		"refresh": refresh,
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// The replacement still works.
	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/token/refresh", fiber.Map{
		"refresh": next,
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	app, db := newTestApp(t)
	seedUser(t, db, "admin", true, true)

	status, body := doJSON(t, app, http.MethodPost, "/api/auth/token", fiber.Map{
		"identifier": "admin",
		"password":   "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, status)
	access := body["data"].(map[string]any)["access_token"].(string)

	status, _ = doJSON(t, app, http.MethodPost, "/api/auth/token/refresh", fiber.Map{
		"refresh": access,
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}
