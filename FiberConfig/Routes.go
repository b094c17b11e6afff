package FiberConfig

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"Momentum/Assistant"
	"Momentum/Controllers"
	"Momentum/Ledger"
	"Momentum/Models"
	"Momentum/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	ledger := Ledger.New(db)

	// Initialize handlers
	authController := Controllers.NewAuthController(db)
	taskController := Controllers.NewTaskController(db, ledger)
	goalController := Controllers.NewGoalController(db, ledger)
	journalController := Controllers.NewJournalController(db)
	achievementController := Controllers.NewAchievementController(db, ledger)
	analyticsController := Controllers.NewAnalyticsController(db)
	exportController := Controllers.NewExportController(db)
	adminController := Controllers.NewAdminController(db)

	assistant, err := Assistant.New(context.Background(), db, ledger)
	if err != nil {
		if errors.Is(err, Assistant.ErrNotConfigured) {
			log.Println("AI assistant disabled: no API key configured")
		} else {
			log.Printf("AI assistant disabled: %v", err)
		}
	}
	assistantController := Controllers.NewAssistantController(assistant)

	// API group
	api := app.Group("/api")

	// Auth routes
	api.Post("/Register", authController.Register)
	api.Post("/Login", authController.Login)
	api.Post("/Logout", authController.Logout)
	api.Get("/User", middleware.Verify(), authController.User)
	api.Get("/validate-token", authController.ValidateToken)

	// Task routes
	tasks := api.Group("/tasks", middleware.Verify())
	tasks.Get("/", taskController.GetTasks)
	tasks.Post("/", taskController.CreateTask)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Patch("/:id/status", taskController.UpdateStatus)
	tasks.Delete("/:id", taskController.DeleteTask)

	// Goal routes
	goals := api.Group("/goals", middleware.Verify())
	goals.Get("/", goalController.GetGoals)
	goals.Post("/", goalController.CreateGoal)
	goals.Put("/:id", goalController.UpdateGoal)
	goals.Patch("/:id/progress", goalController.UpdateProgress)
	goals.Delete("/:id", goalController.DeleteGoal)

	// Journal routes
	journal := api.Group("/journal", middleware.Verify())
	journal.Get("/", journalController.GetEntries)
	journal.Get("/:date", journalController.GetEntry)
	journal.Put("/:date", journalController.SaveEntry)

	// Dashboard routes
	api.Get("/achievements", middleware.Verify(), achievementController.GetAchievements)
	api.Get("/stats", middleware.Verify(), achievementController.GetStats)
	api.Get("/quote", Controllers.DailyQuote)
	api.Get("/export/tasks", middleware.Verify(), exportController.ExportTasks)

	// Analytics routes
	analytics := api.Group("/analytics", middleware.Verify())
	analytics.Get("/categories", analyticsController.Categories)
	analytics.Get("/priorities", analyticsController.Priorities)
	analytics.Get("/statuses", analyticsController.Statuses)
	analytics.Get("/completions", analyticsController.Completions)
	analytics.Get("/weekly", analyticsController.Weekly)
	analytics.Get("/hours-by-category", analyticsController.HoursByCategory)
	analytics.Get("/mood-trend", analyticsController.MoodTrend)
	analytics.Get("/mood-distribution", analyticsController.MoodDistribution)
	analytics.Get("/mood-productivity", analyticsController.MoodProductivity)
	analytics.Get("/journal-insights", analyticsController.JournalInsights)

	// AI assistant routes
	ai := api.Group("/assistant", middleware.Verify())
	ai.Post("/tasks", assistantController.CreateTasks)
	ai.Get("/insights", assistantController.Insights)
	ai.Get("/plan", assistantController.DailyPlan)
	ai.Post("/chat", assistantController.Chat)

	// Admin routes
	admin := api.Group("/admin", middleware.Verify(), middleware.RequireAdmin())
	admin.Get("/users", adminController.GetUsers)
	admin.Get("/users/stats", adminController.GetUserStats)
	admin.Delete("/users/:id", adminController.DeleteUser)
	admin.Get("/logs/stats", Controllers.GetLogStats)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{"Title": "Momentum"})
	})
	app.Static("/static", "static/")
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupRoutes(app, Models.DB)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
