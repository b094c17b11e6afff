package Controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Momentum/Models"
	"Momentum/middleware"
)

// JournalController handles daily journal endpoints
type JournalController struct {
	DB *gorm.DB
}

// NewJournalController creates a new JournalController
func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{DB: db}
}

type entryInput struct {
	Mood          int    `json:"mood" validate:"required,gte=1,lte=5"`
	Gratitude     string `json:"gratitude"`
	Highlights    string `json:"highlights"`
	Challenges    string `json:"challenges"`
	TomorrowGoals string `json:"tomorrow_goals"`
}

type dateParam struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

// GetEntry returns the journal entry for one date, 404 when none exists
func (c *JournalController) GetEntry(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	date := ctx.Params("date")
	if err := validate.Struct(dateParam{Date: date}); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid entry date"})
	}

	var entry Models.DailyEntry
	if err := c.DB.Where("user_id = ? AND entry_date = ?", user.ID, date).First(&entry).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No entry for this date"})
	}
	return ctx.JSON(entry)
}

// SaveEntry upserts the journal entry for one date: saving again for a date
// that already has an entry replaces it in place.
func (c *JournalController) SaveEntry(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	date := ctx.Params("date")
	if err := validate.Struct(dateParam{Date: date}); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid entry date"})
	}

	var input entryInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry := Models.DailyEntry{
		UserID:        user.ID,
		EntryDate:     date,
		Mood:          input.Mood,
		Gratitude:     input.Gratitude,
		Highlights:    input.Highlights,
		Challenges:    input.Challenges,
		TomorrowGoals: input.TomorrowGoals,
	}
	created, err := c.upsertEntry(&entry)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save entry"})
	}
	if created {
		return ctx.Status(fiber.StatusCreated).JSON(entry)
	}
	return ctx.JSON(entry)
}

// upsertEntry inserts the row, falling back to an in-place update when the
// (user_id, entry_date) unique index reports the date already has an entry.
// Two concurrent saves for the same date both land; the loser's write wins.
func (c *JournalController) upsertEntry(entry *Models.DailyEntry) (bool, error) {
	err := c.DB.Create(entry).Error
	if err == nil {
		return true, nil
	}
	if !isDuplicateErr(err) {
		return false, err
	}

	var existing Models.DailyEntry
	if err := c.DB.Where("user_id = ? AND entry_date = ?", entry.UserID, entry.EntryDate).
		First(&existing).Error; err != nil {
		return false, err
	}
	entry.ID = existing.ID
	return false, c.DB.Save(entry).Error
}

func isDuplicateErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}

// GetEntries lists all journal entries, most recent first
func (c *JournalController) GetEntries(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	var entries []Models.DailyEntry
	if err := c.DB.Where("user_id = ?", user.ID).
		Order("entry_date DESC").
		Find(&entries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve entries"})
	}
	return ctx.JSON(entries)
}
