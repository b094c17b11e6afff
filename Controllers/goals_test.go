package Controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Momentum/Models"
)

func TestGoalProgressLifecycle(t *testing.T) {
	app, db := setupTestApp(t)
	cookie := registerAndLogin(t, app, "climber")

	resp := doRequest(t, app, http.MethodPost, "/api/goals/",
		`{"title": "Run a marathon", "target_date": "2025-10-01"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var goal Models.Goal
	decodeBody(t, resp, &goal)
	require.Equal(t, Models.GoalActive, goal.Status)
	require.Zero(t, goal.Progress)

	// Reaching 100 flips the goal to completed.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/goals/%d/progress", goal.ID),
		`{"progress": 100}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored Models.Goal
	require.NoError(t, db.First(&stored, goal.ID).Error)
	require.Equal(t, Models.GoalCompleted, stored.Status)
	require.Equal(t, 100, stored.Progress)

	// Dropping back below 100 reverts it to active.
	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/goals/%d/progress", goal.ID),
		`{"progress": 50}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&stored, goal.ID).Error)
	require.Equal(t, Models.GoalActive, stored.Status)
	require.Equal(t, 50, stored.Progress)
}

func TestGoalProgressRejectsOutOfRange(t *testing.T) {
	app, _ := setupTestApp(t)
	cookie := registerAndLogin(t, app, "overreacher")

	resp := doRequest(t, app, http.MethodPost, "/api/goals/", `{"title": "Read 12 books"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var goal Models.Goal
	decodeBody(t, resp, &goal)

	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/goals/%d/progress", goal.ID),
		`{"progress": 101}`, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/goals/%d/progress", goal.ID),
		`{"progress": -1}`, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGoalProgressTriggersAchievementSweep(t *testing.T) {
	app, db := setupTestApp(t)
	cookie := registerAndLogin(t, app, "sweeper")

	var user Models.User
	require.NoError(t, db.Where("username = ?", "sweeper").First(&user).Error)

	// Seed completed tasks directly so no evaluation has run for them yet.
	now := time.Now()
	for i := 0; i < 5; i++ {
		task := Models.Task{
			UserID:      user.ID,
			Title:       fmt.Sprintf("done %d", i),
			Status:      Models.StatusCompleted,
			CompletedAt: &now,
		}
		require.NoError(t, db.Create(&task).Error)
	}

	resp := doRequest(t, app, http.MethodPost, "/api/goals/", `{"title": "Ship it"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var goal Models.Goal
	decodeBody(t, resp, &goal)

	var count int64
	require.NoError(t, db.Model(&Models.Achievement{}).
		Where("user_id = ?", user.ID).Count(&count).Error)
	require.Zero(t, count)

	resp = doRequest(t, app, http.MethodPatch, fmt.Sprintf("/api/goals/%d/progress", goal.ID),
		`{"progress": 10}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var achievement Models.Achievement
	require.NoError(t, db.Where("user_id = ? AND name = ?", user.ID, "First Steps").
		First(&achievement).Error)
}
