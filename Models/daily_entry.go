package Models

// DailyEntry is a journal record, one row per user per calendar date.
// Saving twice for the same date replaces the row in place.
type DailyEntry struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	EntryDate string `json:"entry_date"` // YYYY-MM-DD
	// Mood uses the canonical 1-5 scale.
	Mood          int    `json:"mood"`
	Gratitude     string `json:"gratitude" gorm:"type:text"`
	Highlights    string `json:"highlights" gorm:"type:text"`
	Challenges    string `json:"challenges" gorm:"type:text"`
	TomorrowGoals string `json:"tomorrow_goals" gorm:"type:text"`
}
