package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"Momentum/Models"
)

func TestJournalUpsertRoundTrip(t *testing.T) {
	app, db := setupTestApp(t)
	cookie := registerAndLogin(t, app, "journaler")

	resp := doRequest(t, app, http.MethodPut, "/api/journal/2025-03-01",
		`{"mood": 4, "gratitude": "sunny day", "highlights": "shipped the feature"}`, cookie)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Re-saving the same date replaces the entry in place.
	resp = doRequest(t, app, http.MethodPut, "/api/journal/2025-03-01",
		`{"mood": 2, "gratitude": "coffee", "challenges": "long meetings"}`, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&Models.DailyEntry{}).
		Where("entry_date = ?", "2025-03-01").
		Count(&count).Error)
	require.EqualValues(t, 1, count)

	resp = doRequest(t, app, http.MethodGet, "/api/journal/2025-03-01", "", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entry Models.DailyEntry
	decodeBody(t, resp, &entry)
	require.Equal(t, 2, entry.Mood)
	require.Equal(t, "coffee", entry.Gratitude)
	require.Equal(t, "long meetings", entry.Challenges)
	require.Empty(t, entry.Highlights)
}

func TestJournalRejectsOutOfScaleMood(t *testing.T) {
	app, _ := setupTestApp(t)
	cookie := registerAndLogin(t, app, "moody")

	resp := doRequest(t, app, http.MethodPut, "/api/journal/2025-03-01", `{"mood": 6}`, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, "/api/journal/2025-03-01", `{"mood": 0}`, cookie)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestJournalMissingEntry(t *testing.T) {
	app, _ := setupTestApp(t)
	cookie := registerAndLogin(t, app, "reader")

	resp := doRequest(t, app, http.MethodGet, "/api/journal/2025-01-01", "", cookie)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestJournalRequiresAuth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/journal/", "", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
