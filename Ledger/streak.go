package Ledger

import (
	"time"

	"Momentum/Models"
)

// ComputeStreak counts consecutive calendar days, walking backward from
// today, on which the user completed at least one task.
func (l *Ledger) ComputeStreak(userID uint) (int, error) {
	var stamps []time.Time
	if err := l.DB.Model(&Models.Task{}).
		Where("user_id = ? AND status = ? AND completed_at IS NOT NULL", userID, Models.StatusCompleted).
		Order("completed_at DESC").
		Pluck("completed_at", &stamps).Error; err != nil {
		return 0, err
	}

	// Reduce timestamps to distinct local calendar days in Go rather than
	// leaning on dialect-specific date formatting in SQL.
	return streakFrom(dateOf(time.Now()), distinctDates(stamps)), nil
}

// streakFrom walks the distinct completion dates (most recent first) starting
// from today. A date matching the cursor extends the run; a date matching
// cursor-1 also extends it, which on the very first element gives a one-day
// grace: completions through yesterday still count as an ongoing streak.
// The first date matching neither ends the walk.
func streakFrom(today time.Time, dates []time.Time) int {
	streak := 0
	cursor := today
	for _, d := range dates {
		switch {
		case d.Equal(cursor):
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		case d.Equal(cursor.AddDate(0, 0, -1)):
			streak++
			cursor = d.AddDate(0, 0, -1)
		default:
			return streak
		}
	}
	return streak
}

// dateOf truncates a timestamp to its local calendar date at midnight UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// distinctDates maps timestamps (already sorted most recent first) to their
// calendar dates, dropping duplicates and preserving order.
func distinctDates(stamps []time.Time) []time.Time {
	dates := make([]time.Time, 0, len(stamps))
	for _, s := range stamps {
		d := dateOf(s)
		if len(dates) > 0 && dates[len(dates)-1].Equal(d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
