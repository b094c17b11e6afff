package Controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Momentum/Models"
	"Momentum/middleware"
)

// ExportController produces downloadable task reports
type ExportController struct {
	DB *gorm.DB
}

// NewExportController creates a new ExportController
func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportTasks streams all of the user's tasks as an Excel workbook
func (c *ExportController) ExportTasks(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	var tasks []Models.Task
	if err := c.DB.Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve tasks"})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Tasks"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Description", "Category", "Priority", "Status", "Due Date", "Created At", "Completed At", "Estimated Hours"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, task := range tasks {
		task.Normalize()
		completedAt := ""
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			task.ID,
			task.Title,
			task.Description,
			string(task.Category),
			string(task.Priority),
			string(task.Status),
			task.DueDate,
			task.CreatedAt.Format("2006-01-02 15:04"),
			completedAt,
			task.EstimatedHours,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build report"})
	}

	filename := fmt.Sprintf("tasks_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buf.Bytes())
}
