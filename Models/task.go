package Models

import (
	"time"

	"gorm.io/datatypes"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type TaskCategory string

const (
	CategoryWork     TaskCategory = "Work"
	CategoryPersonal TaskCategory = "Personal"
	CategoryHealth   TaskCategory = "Health"
	CategoryLearning TaskCategory = "Learning"
	CategoryFinance  TaskCategory = "Finance"
	CategoryOther    TaskCategory = "Other"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning, CategoryFinance, CategoryOther:
		return true
	}
	return false
}

// Task represents a single unit of work owned by one user.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      uint         `json:"user_id" gorm:"index;not null"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"type:text"`
	Category    TaskCategory `json:"category" gorm:"type:varchar(20)"`
	Priority    TaskPriority `json:"priority" gorm:"type:varchar(10)"`
	Status      TaskStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	DueDate     string       `json:"due_date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
	// CompletedAt is non-nil exactly while Status == completed.
	CompletedAt *time.Time `json:"completed_at"`

	EstimatedHours float64        `json:"estimated_hours"`
	Tags           datatypes.JSON `json:"tags"`
}

// Normalize backfills legacy free-text enum values read from the store.
func (t *Task) Normalize() {
	if !t.Status.Valid() {
		t.Status = StatusPending
	}
	if !t.Priority.Valid() {
		t.Priority = PriorityMedium
	}
	if !t.Category.Valid() {
		t.Category = CategoryOther
	}
}
