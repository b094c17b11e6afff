package Models

import "time"

type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

// Goal is a tracked objective. Status flips to completed automatically once
// Progress reaches 100 and back to active when it drops below.
type Goal struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text"`
	TargetDate  string     `json:"target_date"` // YYYY-MM-DD
	Progress    int        `json:"progress" gorm:"default:0"`
	Status      GoalStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ApplyProgress clamps the value to 0-100 and keeps Status consistent.
func (g *Goal) ApplyProgress(progress int) {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	g.Progress = progress
	if progress >= 100 {
		g.Status = GoalCompleted
	} else {
		g.Status = GoalActive
	}
}
