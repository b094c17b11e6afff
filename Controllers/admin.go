package Controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Momentum/Models"
	"Momentum/middleware"
)

// AdminController handles user management, admin-only
type AdminController struct {
	DB *gorm.DB
}

// NewAdminController creates a new AdminController
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetUsers lists all registered accounts
func (c *AdminController) GetUsers(ctx *fiber.Ctx) error {
	var users []Models.User
	if err := c.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve users"})
	}
	return ctx.JSON(users)
}

// GetUserStats returns per-user activity counts across all tables
func (c *AdminController) GetUserStats(ctx *fiber.Ctx) error {
	type userActivity struct {
		Username       string `json:"username"`
		TotalTasks     int64  `json:"total_tasks"`
		CompletedTasks int64  `json:"completed_tasks"`
		TotalGoals     int64  `json:"total_goals"`
		JournalEntries int64  `json:"journal_entries"`
	}

	var results []userActivity
	err := c.DB.Raw(`
		SELECT
			u.username,
			COUNT(DISTINCT t.id) as total_tasks,
			COUNT(DISTINCT CASE WHEN t.status = 'completed' THEN t.id END) as completed_tasks,
			COUNT(DISTINCT g.id) as total_goals,
			COUNT(DISTINCT de.id) as journal_entries
		FROM users u
		LEFT JOIN tasks t ON u.id = t.user_id
		LEFT JOIN goals g ON u.id = g.user_id
		LEFT JOIN daily_entries de ON u.id = de.user_id
		GROUP BY u.id, u.username
		ORDER BY total_tasks DESC
	`).Scan(&results).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate user activity"})
	}
	return ctx.JSON(results)
}

// DeleteUser removes an account and everything it owns. Deletion order is
// fixed to respect the foreign keys: achievements, entries, goals, tasks,
// then the user row, all inside one transaction.
func (c *AdminController) DeleteUser(ctx *fiber.Ctx) error {
	admin, _ := middleware.CurrentUser(ctx)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}
	if uint(id) == admin.ID {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "You cannot delete your own account while logged in",
		})
	}

	var target Models.User
	if err := c.DB.First(&target, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var tasks, goals, entries, achievements int64
	err = c.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", target.ID).Delete(&Models.Achievement{})
		if result.Error != nil {
			return result.Error
		}
		achievements = result.RowsAffected

		result = tx.Where("user_id = ?", target.ID).Delete(&Models.DailyEntry{})
		if result.Error != nil {
			return result.Error
		}
		entries = result.RowsAffected

		result = tx.Where("user_id = ?", target.ID).Delete(&Models.Goal{})
		if result.Error != nil {
			return result.Error
		}
		goals = result.RowsAffected

		result = tx.Where("user_id = ?", target.ID).Delete(&Models.Task{})
		if result.Error != nil {
			return result.Error
		}
		tasks = result.RowsAffected

		return tx.Delete(&target).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete user"})
	}

	return ctx.JSON(fiber.Map{
		"message":              "User deleted successfully",
		"deleted_tasks":        tasks,
		"deleted_goals":        goals,
		"deleted_entries":      entries,
		"deleted_achievements": achievements,
	})
}
