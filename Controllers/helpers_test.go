package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Momentum/FiberConfig"
	"Momentum/Models"
)

// setupTestApp wires the full route table against a fresh in-memory database.
// Models.DB is swapped because the auth middleware resolves users through it.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&Models.User{},
		&Models.Task{},
		&Models.Goal{},
		&Models.DailyEntry{},
		&Models.Achievement{},
	))
	require.NoError(t, Models.SetupIndexes(db))
	Models.DB = db

	app := fiber.New()
	FiberConfig.SetupRoutes(app, db)
	return app, db
}

// registerAndLogin creates an account through the API and returns the jwt
// cookie for subsequent requests.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body := fmt.Sprintf(`{"username": %q, "password": "hunter22"}`, username)

	resp := doRequest(t, app, http.MethodPost, "/api/Register", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/Login", body, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "jwt" {
			return cookie.Value
		}
	}
	t.Fatal("login response did not set jwt cookie")
	return ""
}

func doRequest(t *testing.T, app *fiber.App, method, target, body, jwtCookie string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if jwtCookie != "" {
		req.AddCookie(&http.Cookie{Name: "jwt", Value: jwtCookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
