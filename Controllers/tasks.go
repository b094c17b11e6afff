package Controllers

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Momentum/Ledger"
	"Momentum/Models"
	"Momentum/middleware"
)

// TaskController handles task CRUD endpoints
type TaskController struct {
	DB     *gorm.DB
	Ledger *Ledger.Ledger
}

// NewTaskController creates a new TaskController
func NewTaskController(db *gorm.DB, ledger *Ledger.Ledger) *TaskController {
	return &TaskController{DB: db, Ledger: ledger}
}

type taskInput struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category" validate:"omitempty,oneof=Work Personal Health Learning Finance Other"`
	Priority       string   `json:"priority" validate:"omitempty,oneof=high medium low"`
	DueDate        string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours float64  `json:"estimated_hours" validate:"gte=0"`
	Tags           []string `json:"tags"`
}

// GetTasks lists the user's tasks, optionally filtered by status and category
func (c *TaskController) GetTasks(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	query := c.DB.Where("user_id = ?", user.ID)
	if status := ctx.Query("status"); status != "" {
		if !Models.TaskStatus(status).Valid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status filter"})
		}
		query = query.Where("status = ?", status)
	}
	if category := ctx.Query("category"); category != "" {
		if !Models.TaskCategory(category).Valid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category filter"})
		}
		query = query.Where("category = ?", category)
	}

	var tasks []Models.Task
	if err := query.Order("due_date ASC, priority DESC").Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}
	for i := range tasks {
		tasks[i].Normalize()
	}
	return ctx.JSON(tasks)
}

// GetTask retrieves one task by ID
func (c *TaskController) GetTask(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&task).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	task.Normalize()
	return ctx.JSON(task)
}

// CreateTask creates a new task and re-evaluates achievements
func (c *TaskController) CreateTask(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task := Models.Task{
		UserID:         user.ID,
		Title:          input.Title,
		Description:    input.Description,
		Category:       Models.TaskCategory(input.Category),
		Priority:       Models.TaskPriority(input.Priority),
		Status:         Models.StatusPending,
		DueDate:        input.DueDate,
		EstimatedHours: input.EstimatedHours,
	}
	task.Normalize()
	if input.Tags != nil {
		tags, err := json.Marshal(input.Tags)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tags"})
		}
		task.Tags = tags
	}

	if err := c.DB.Create(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create task"})
	}

	if _, err := c.Ledger.EvaluateAchievements(user.ID); err != nil {
		log.Printf("Error evaluating achievements for user %d: %v", user.ID, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask edits the task's fields; status changes go through UpdateStatus
func (c *TaskController) UpdateTask(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var task Models.Task
	if err := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&task).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	var input taskInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Category = Models.TaskCategory(input.Category)
	task.Priority = Models.TaskPriority(input.Priority)
	task.DueDate = input.DueDate
	task.EstimatedHours = input.EstimatedHours
	task.Normalize()
	if input.Tags != nil {
		tags, err := json.Marshal(input.Tags)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid tags"})
		}
		task.Tags = tags
	}

	if err := c.DB.Save(&task).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update task"})
	}
	return ctx.JSON(task)
}

type statusInput struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

// UpdateStatus transitions the task's status. Completing a task stamps
// CompletedAt; reverting clears it. Both paths re-evaluate achievements.
func (c *TaskController) UpdateStatus(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	var input statusInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var task Models.Task
	if err := c.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&task).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}

	// Re-completing an already completed task keeps the original stamp so
	// the completion stays on its original calendar day.
	newStatus := Models.TaskStatus(input.Status)
	switch {
	case newStatus != Models.StatusCompleted:
		task.CompletedAt = nil
	case task.Status != Models.StatusCompleted:
		now := time.Now()
		task.CompletedAt = &now
	}
	task.Status = newStatus

	if err := c.DB.Model(&task).Select("status", "completed_at").Updates(map[string]interface{}{
		"status":       task.Status,
		"completed_at": task.CompletedAt,
	}).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update status"})
	}

	newAwards, err := c.Ledger.EvaluateAchievements(user.ID)
	if err != nil {
		log.Printf("Error evaluating achievements for user %d: %v", user.ID, err)
	}

	return ctx.JSON(fiber.Map{
		"task":             task,
		"new_achievements": newAwards,
	})
}

// DeleteTask removes the task permanently
func (c *TaskController) DeleteTask(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid task ID"})
	}

	result := c.DB.Where("id = ? AND user_id = ?", id, user.ID).Delete(&Models.Task{})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete task"})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Task not found"})
	}
	return ctx.JSON(fiber.Map{"message": "Task deleted successfully"})
}
