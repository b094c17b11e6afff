package Controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Momentum/Ledger"
	"Momentum/Models"
	"Momentum/middleware"
)

// GoalController handles goal CRUD endpoints
type GoalController struct {
	DB     *gorm.DB
	Ledger *Ledger.Ledger
}

// NewGoalController creates a new GoalController
func NewGoalController(db *gorm.DB, ledger *Ledger.Ledger) *GoalController {
	return &GoalController{DB: db, Ledger: ledger}
}

type goalInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	TargetDate  string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
}

// GetGoals lists the user's goals, filtered by status (default active)
func (c *GoalController) GetGoals(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	status := ctx.Query("status", string(Models.GoalActive))
	if status != string(Models.GoalActive) && status != string(Models.GoalCompleted) && status != "all" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
	}

	query := c.DB.Where("user_id = ?", user.ID)
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	var goals []Models.Goal
	if err := query.Order("target_date ASC").Find(&goals).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve goals"})
	}
	return ctx.JSON(goals)
}

// CreateGoal creates a new goal
func (c *GoalController) CreateGoal(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	var input goalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goal := Models.Goal{
		UserID:      user.ID,
		Title:       input.Title,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		Status:      Models.GoalActive,
	}
	if err := c.DB.Create(&goal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create goal"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(goal)
}

// UpdateGoal edits title, description and target date
func (c *GoalController) UpdateGoal(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal ID"})
	}

	var goal Models.Goal
	if err := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	var input goalInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	goal.Title = input.Title
	goal.Description = input.Description
	goal.TargetDate = input.TargetDate
	if err := c.DB.Save(&goal).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update goal"})
	}
	return ctx.JSON(goal)
}

type progressInput struct {
	Progress int `json:"progress" validate:"gte=0,lte=100"`
}

// UpdateProgress sets the goal's progress. Reaching 100 marks the goal
// completed; dropping below reverts it to active. Re-evaluates achievements.
func (c *GoalController) UpdateProgress(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal ID"})
	}

	var input progressInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var goal Models.Goal
	if err := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&goal).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}

	goal.ApplyProgress(input.Progress)
	if err := c.DB.Model(&goal).Select("progress", "status").Updates(map[string]interface{}{
		"progress": goal.Progress,
		"status":   goal.Status,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update progress"})
	}

	if _, err := c.Ledger.EvaluateAchievements(user.ID); err != nil {
		log.Printf("Error evaluating achievements for user %d: %v", user.ID, err)
	}

	return ctx.JSON(goal)
}

// DeleteGoal removes the goal permanently
func (c *GoalController) DeleteGoal(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid goal ID"})
	}

	result := c.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&Models.Goal{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete goal"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Goal not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Goal deleted successfully"})
}
