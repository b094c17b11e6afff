package Controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Momentum/Ledger"
	"Momentum/Models"
	"Momentum/middleware"
)

// AchievementController exposes the user's earned achievements and stats
type AchievementController struct {
	DB     *gorm.DB
	Ledger *Ledger.Ledger
}

// NewAchievementController creates a new AchievementController
func NewAchievementController(db *gorm.DB, ledger *Ledger.Ledger) *AchievementController {
	return &AchievementController{DB: db, Ledger: ledger}
}

// GetAchievements lists earned achievements, most recent first
func (c *AchievementController) GetAchievements(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	var achievements []Models.Achievement
	if err := c.DB.Where("user_id = ?", user.ID).
		Order("earned_at DESC").
		Find(&achievements).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve achievements"})
	}
	return ctx.JSON(achievements)
}

// GetStats returns the ledger snapshot for the dashboard header
func (c *AchievementController) GetStats(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	stats, err := c.Ledger.ComputeStats(user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute stats"})
	}
	return ctx.JSON(stats)
}
