package Ledger

import (
	"strings"
	"time"

	"Momentum/Models"
)

// MilestoneBasis names the metric a milestone is evaluated against.
type MilestoneBasis string

const (
	BasisCompletedCount MilestoneBasis = "completed_count"
	BasisStreak         MilestoneBasis = "streak"
)

// Milestone defines when an achievement unlocks.
type Milestone struct {
	Threshold   int
	Name        string
	Description string
	Icon        string
	Basis       MilestoneBasis
}

// Milestones is the fixed achievement table, evaluated in order.
var Milestones = []Milestone{
	{5, "First Steps", "Completed 5 tasks", "🌱", BasisCompletedCount},
	{25, "Getting Started", "Completed 25 tasks", "🚀", BasisCompletedCount},
	{50, "Halfway Hero", "Completed 50 tasks", "⭐", BasisCompletedCount},
	{100, "Century Club", "Completed 100 tasks", "💯", BasisCompletedCount},
	{7, "Week Warrior", "7-day streak", "🔥", BasisStreak},
	{30, "Monthly Master", "30-day streak", "👑", BasisStreak},
}

// EvaluateAchievements awards any milestones the user newly qualifies for and
// returns their names. Awarding is idempotent: already-earned milestones are
// skipped, and achievements are never revoked when a metric later drops back
// below its threshold.
func (l *Ledger) EvaluateAchievements(userID uint) ([]string, error) {
	stats, err := l.ComputeStats(userID)
	if err != nil {
		return nil, err
	}

	var earnedNames []string
	if err := l.DB.Model(&Models.Achievement{}).
		Where("user_id = ?", userID).
		Pluck("name", &earnedNames).Error; err != nil {
		return nil, err
	}
	earned := make(map[string]bool, len(earnedNames))
	for _, name := range earnedNames {
		earned[name] = true
	}

	var awarded []string
	for _, m := range Milestones {
		if earned[m.Name] {
			continue
		}

		var metric int64
		switch m.Basis {
		case BasisStreak:
			metric = int64(stats.Streak)
		default:
			metric = stats.CompletedTasks
		}
		if metric < int64(m.Threshold) {
			continue
		}

		achievement := Models.Achievement{
			UserID:      userID,
			Name:        m.Name,
			Description: m.Description,
			Icon:        m.Icon,
			EarnedAt:    time.Now(),
		}
		if err := l.DB.Create(&achievement).Error; err != nil {
			// A concurrent evaluation may have won the insert; the unique
			// index on (user_id, name) makes that harmless.
			if isDuplicateErr(err) {
				continue
			}
			return awarded, err
		}
		awarded = append(awarded, m.Name)
	}

	return awarded, nil
}

func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
