package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Momentum/Models"
)

func TestTaskLifecycle(t *testing.T) {
	app, db := setupTestApp(t)
	cookie := registerAndLogin(t, app, "worker")

	resp := doRequest(t, app, http.MethodPost, "/api/tasks/",
		`{"title": "Write report", "category": "Work", "priority": "high", "estimated_hours": 2, "tags": ["q3", "writing"]}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task Models.Task
	decodeBody(t, resp, &task)
	require.Equal(t, Models.StatusPending, task.Status)
	require.Nil(t, task.CompletedAt)

	// Completing stamps CompletedAt.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID),
		`{"status": "completed"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored Models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	require.Equal(t, Models.StatusCompleted, stored.Status)
	require.NotNil(t, stored.CompletedAt)

	// Reverting clears it again.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID),
		`{"status": "in_progress"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, task.ID).Error)
	require.Equal(t, Models.StatusInProgress, stored.Status)
	require.Nil(t, stored.CompletedAt)

	// Hard delete.
	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Error(t, db.First(&stored, task.ID).Error)
}

func TestTaskRecompletionKeepsOriginalStamp(t *testing.T) {
	app, db := setupTestApp(t)
	cookie := registerAndLogin(t, app, "restamper")

	resp := doRequest(t, app, http.MethodPost, "/api/tasks/", `{"title": "old win"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task Models.Task
	decodeBody(t, resp, &task)

	// A completion recorded yesterday must not move to today when the
	// status is patched to completed again.
	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Model(&Models.Task{}).Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"status":       Models.StatusCompleted,
			"completed_at": yesterday,
		}).Error)

	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID),
		`{"status": "completed"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored Models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	require.NotNil(t, stored.CompletedAt)
	require.WithinDuration(t, yesterday, *stored.CompletedAt, time.Minute)
}

func TestTaskCompletionAwardsAchievement(t *testing.T) {
	app, db := setupTestApp(t)
	cookie := registerAndLogin(t, app, "achiever")

	for i := 0; i < 5; i++ {
		resp := doRequest(t, app, http.MethodPost, "/api/tasks/",
			fmt.Sprintf(`{"title": "task %d"}`, i), cookie)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var task Models.Task
		decodeBody(t, resp, &task)

		resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", task.ID),
			`{"status": "completed"}`, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var achievements []Models.Achievement
	require.NoError(t, db.Where("name = ?", "First Steps").Find(&achievements).Error)
	require.Len(t, achievements, 1)
	require.Equal(t, "🌱", achievements[0].Icon)

	resp := doRequest(t, app, http.MethodGet, "/api/achievements", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var earned []Models.Achievement
	decodeBody(t, resp, &earned)
	require.Len(t, earned, 1)
	require.Equal(t, "First Steps", earned[0].Name)
}

func TestTaskValidation(t *testing.T) {
	app, _ := setupTestApp(t)
	cookie := registerAndLogin(t, app, "validator")

	// Title is required.
	resp := doRequest(t, app, http.MethodPost, "/api/tasks/", `{"description": "no title"}`, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Category must come from the closed enumeration.
	resp = doRequest(t, app, http.MethodPost, "/api/tasks/", `{"title": "x", "category": "Chores"}`, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Status filter is validated too.
	resp = doRequest(t, app, http.MethodGet, "/api/tasks/?status=done", "", cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTasksAreOwnerScoped(t *testing.T) {
	app, _ := setupTestApp(t)
	alice := registerAndLogin(t, app, "alice")
	bob := registerAndLogin(t, app, "bob")

	resp := doRequest(t, app, http.MethodPost, "/api/tasks/", `{"title": "alice's task"}`, alice)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var task Models.Task
	decodeBody(t, resp, &task)

	// Bob cannot see or delete Alice's task.
	resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/tasks/%d", task.ID), "", bob)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), "", bob)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var tasks []Models.Task
	resp = doRequest(t, app, http.MethodGet, "/api/tasks/", "", bob)
	decodeBody(t, resp, &tasks)
	require.Empty(t, tasks)
}
