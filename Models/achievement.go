package Models

import "time"

// Achievement is an unlocked milestone. Rows are append-only and unique per
// (user_id, name); once earned an achievement is never removed.
type Achievement struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}
