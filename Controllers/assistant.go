package Controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"Momentum/Assistant"
	"Momentum/middleware"
)

// AssistantController fronts the Gemini-backed features. A nil assistant
// means no API key was configured; every endpoint then answers 503.
type AssistantController struct {
	Assistant *Assistant.Assistant
}

// NewAssistantController creates a new AssistantController
func NewAssistantController(assistant *Assistant.Assistant) *AssistantController {
	return &AssistantController{Assistant: assistant}
}

func (c *AssistantController) unavailable(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "AI assistant is not configured",
	})
}

type promptInput struct {
	Prompt string `json:"prompt" validate:"required"`
}

// CreateTasks turns a natural-language description into stored tasks
func (c *AssistantController) CreateTasks(ctx *fiber.Ctx) error {
	if c.Assistant == nil {
		return c.unavailable(ctx)
	}
	user, _ := middleware.CurrentUser(ctx)

	var input promptInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	created, err := c.Assistant.CreateTasks(ctx.Context(), user.ID, input.Prompt)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"created": created,
		"message": fmt.Sprintf("Successfully created %d task(s)", created),
	})
}

// Insights returns coaching feedback over recent tasks
func (c *AssistantController) Insights(ctx *fiber.Ctx) error {
	if c.Assistant == nil {
		return c.unavailable(ctx)
	}
	user, _ := middleware.CurrentUser(ctx)

	insights, err := c.Assistant.Insights(ctx.Context(), user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"insights": insights})
}

// DailyPlan suggests a focus list for today
func (c *AssistantController) DailyPlan(ctx *fiber.Ctx) error {
	if c.Assistant == nil {
		return c.unavailable(ctx)
	}
	user, _ := middleware.CurrentUser(ctx)

	plan, err := c.Assistant.DailyPlan(ctx.Context(), user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"plan": plan})
}

// Chat answers a free-form productivity question
func (c *AssistantController) Chat(ctx *fiber.Ctx) error {
	if c.Assistant == nil {
		return c.unavailable(ctx)
	}
	user, _ := middleware.CurrentUser(ctx)

	var input promptInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	answer, err := c.Assistant.Chat(ctx.Context(), user.ID, input.Prompt)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"answer": answer})
}
