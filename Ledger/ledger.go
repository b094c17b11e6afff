package Ledger

import (
	"time"

	"gorm.io/gorm"

	"Momentum/Models"
)

// Ledger derives per-user productivity statistics from the task and goal
// tables and decides which achievements to award. It is stateless: every
// call takes the owning user id explicitly.
type Ledger struct {
	DB *gorm.DB
}

// New creates a new Ledger
func New(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

// Stats is an immutable snapshot of one user's productivity numbers.
type Stats struct {
	TotalTasks     int64   `json:"total_tasks"`
	CompletedTasks int64   `json:"completed_tasks"`
	WeekCompleted  int64   `json:"week_completed"`
	Streak         int     `json:"streak"`
	ActiveGoals    int64   `json:"active_goals"`
	CompletionRate float64 `json:"completion_rate"`
}

// ComputeStats aggregates the user's task and goal counts. A user with no
// data yields all zeros; there is no error path other than the store itself.
func (l *Ledger) ComputeStats(userID uint) (Stats, error) {
	var stats Stats

	if err := l.DB.Model(&Models.Task{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalTasks).Error; err != nil {
		return Stats{}, err
	}

	if err := l.DB.Model(&Models.Task{}).
		Where("user_id = ? AND status = ?", userID, Models.StatusCompleted).
		Count(&stats.CompletedTasks).Error; err != nil {
		return Stats{}, err
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := l.DB.Model(&Models.Task{}).
		Where("user_id = ? AND status = ? AND completed_at >= ?", userID, Models.StatusCompleted, weekAgo).
		Count(&stats.WeekCompleted).Error; err != nil {
		return Stats{}, err
	}

	streak, err := l.ComputeStreak(userID)
	if err != nil {
		return Stats{}, err
	}
	stats.Streak = streak

	if err := l.DB.Model(&Models.Goal{}).
		Where("user_id = ? AND status = ?", userID, Models.GoalActive).
		Count(&stats.ActiveGoals).Error; err != nil {
		return Stats{}, err
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	return stats, nil
}
