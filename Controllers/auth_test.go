package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	app, _ := setupTestApp(t)

	body := `{"username": "taken", "password": "hunter22"}`
	resp := doRequest(t, app, http.MethodPost, "/api/Register", body, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/Register", body, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/Register",
		`{"username": "careful", "password": "hunter22"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/Login",
		`{"username": "careful", "password": "wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterValidatesInput(t *testing.T) {
	app, _ := setupTestApp(t)

	// Password too short.
	resp := doRequest(t, app, http.MethodPost, "/api/Register",
		`{"username": "shorty", "password": "abc"}`, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCurrentUserEndpoint(t *testing.T) {
	app, _ := setupTestApp(t)
	cookie := registerAndLogin(t, app, "whoami")

	resp := doRequest(t, app, http.MethodGet, "/api/User", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		Username string `json:"username"`
	}
	decodeBody(t, resp, &user)
	require.Equal(t, "whoami", user.Username)
}

func TestStatsEndpointZeroData(t *testing.T) {
	app, _ := setupTestApp(t)
	cookie := registerAndLogin(t, app, "fresh")

	resp := doRequest(t, app, http.MethodGet, "/api/stats", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats struct {
		TotalTasks     int64   `json:"total_tasks"`
		CompletedTasks int64   `json:"completed_tasks"`
		Streak         int     `json:"streak"`
		ActiveGoals    int64   `json:"active_goals"`
		CompletionRate float64 `json:"completion_rate"`
	}
	decodeBody(t, resp, &stats)
	require.Zero(t, stats.TotalTasks)
	require.Zero(t, stats.CompletedTasks)
	require.Zero(t, stats.Streak)
	require.Zero(t, stats.ActiveGoals)
	require.Zero(t, stats.CompletionRate)
}
