package Controllers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Momentum/Models"
	"Momentum/middleware"
)

// AnalyticsController serves chart-ready aggregates for the dashboard
type AnalyticsController struct {
	DB *gorm.DB
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

type bucketCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// Categories returns the task count per category
func (c *AnalyticsController) Categories(ctx *fiber.Ctx) error {
	return c.groupTasksBy(ctx, "category")
}

// Priorities returns the task count per priority
func (c *AnalyticsController) Priorities(ctx *fiber.Ctx) error {
	return c.groupTasksBy(ctx, "priority")
}

// Statuses returns the task count per status
func (c *AnalyticsController) Statuses(ctx *fiber.Ctx) error {
	return c.groupTasksBy(ctx, "status")
}

func (c *AnalyticsController) groupTasksBy(ctx *fiber.Ctx, column string) error {
	user, _ := middleware.CurrentUser(ctx)

	var results []bucketCount
	if err := c.DB.Model(&Models.Task{}).
		Select(column+" as label, COUNT(*) as count").
		Where("user_id = ?", user.ID).
		Group(column).
		Scan(&results).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate tasks"})
	}
	return ctx.JSON(results)
}

// HoursByCategory sums estimated effort per category
func (c *AnalyticsController) HoursByCategory(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	type hoursBucket struct {
		Category string  `json:"category"`
		Hours    float64 `json:"hours"`
	}
	var results []hoursBucket
	if err := c.DB.Model(&Models.Task{}).
		Select("category, COALESCE(SUM(estimated_hours), 0) as hours").
		Where("user_id = ?", user.ID).
		Group("category").
		Scan(&results).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to aggregate hours"})
	}
	return ctx.JSON(results)
}

type datedCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Completions returns completed-task counts per day for the trailing 30 days.
// Grouping happens in Go rather than with dialect-specific date functions.
func (c *AnalyticsController) Completions(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	since := time.Now().AddDate(0, 0, -30)
	stamps, err := c.completionStamps(user.ID, since)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve completions"})
	}

	perDay := make(map[string]int)
	for _, s := range stamps {
		perDay[s.Format("2006-01-02")]++
	}

	response := make([]datedCount, 0, 31)
	for i := 30; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		response = append(response, datedCount{Date: date, Count: perDay[date]})
	}
	return ctx.JSON(response)
}

// Weekly returns completed-task counts per ISO week for the last 12 weeks
func (c *AnalyticsController) Weekly(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	since := time.Now().AddDate(0, 0, -12*7)
	stamps, err := c.completionStamps(user.ID, since)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve completions"})
	}

	type weekCount struct {
		Week  string `json:"week"`
		Count int    `json:"count"`
	}
	perWeek := make(map[string]int)
	for _, s := range stamps {
		year, week := s.ISOWeek()
		perWeek[weekKey(year, week)]++
	}

	response := make([]weekCount, 0, 12)
	for i := 11; i >= 0; i-- {
		year, week := time.Now().AddDate(0, 0, -i*7).ISOWeek()
		key := weekKey(year, week)
		response = append(response, weekCount{Week: key, Count: perWeek[key]})
	}
	return ctx.JSON(response)
}

func weekKey(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

func (c *AnalyticsController) completionStamps(userID uint, since time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := c.DB.Model(&Models.Task{}).
		Where("user_id = ? AND status = ? AND completed_at >= ?", userID, Models.StatusCompleted, since).
		Order("completed_at ASC").
		Pluck("completed_at", &stamps).Error
	return stamps, err
}

type moodPoint struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
}

// MoodTrend returns the mood series plus its average
func (c *AnalyticsController) MoodTrend(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	points, err := c.moodPoints(user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve journal entries"})
	}

	average := 0.0
	if len(points) > 0 {
		sum := 0
		for _, p := range points {
			sum += p.Mood
		}
		average = float64(sum) / float64(len(points))
	}

	return ctx.JSON(fiber.Map{
		"points":  points,
		"average": average,
	})
}

// MoodDistribution counts journaled days per mood rating (1-5)
func (c *AnalyticsController) MoodDistribution(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	points, err := c.moodPoints(user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve journal entries"})
	}

	distribution := make([]int, 5)
	for _, p := range points {
		distribution[p.Mood-1]++
	}
	return ctx.JSON(fiber.Map{"distribution": distribution})
}

// moodPoints returns journal entries with a valid 1-5 mood, oldest first.
func (c *AnalyticsController) moodPoints(userID uint) ([]moodPoint, error) {
	var entries []Models.DailyEntry
	if err := c.DB.Where("user_id = ? AND mood BETWEEN 1 AND 5", userID).
		Order("entry_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	points := make([]moodPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, moodPoint{Date: e.EntryDate, Mood: e.Mood})
	}
	return points, nil
}

// MoodProductivity joins journaled moods with tasks completed on the same day
// and reports the Pearson correlation between the two.
func (c *AnalyticsController) MoodProductivity(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	points, err := c.moodPoints(user.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve journal entries"})
	}

	stamps, err := c.completionStamps(user.ID, time.Time{})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve completions"})
	}
	completedPerDay := make(map[string]int)
	for _, s := range stamps {
		completedPerDay[s.Format("2006-01-02")]++
	}

	type correlationPoint struct {
		Date           string `json:"date"`
		Mood           int    `json:"mood"`
		TasksCompleted int    `json:"tasks_completed"`
	}
	joined := make([]correlationPoint, 0, len(points))
	moods := make([]float64, 0, len(points))
	completed := make([]float64, 0, len(points))
	for _, p := range points {
		count := completedPerDay[p.Date]
		joined = append(joined, correlationPoint{Date: p.Date, Mood: p.Mood, TasksCompleted: count})
		moods = append(moods, float64(p.Mood))
		completed = append(completed, float64(count))
	}

	return ctx.JSON(fiber.Map{
		"points":      joined,
		"correlation": pearson(moods, completed),
	})
}

// pearson computes the sample correlation coefficient; 0 when undefined.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 0
	}
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// JournalInsights reports gratitude volume and the highlights/challenges
// positivity ratio
func (c *AnalyticsController) JournalInsights(ctx *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(ctx)

	var entries []Models.DailyEntry
	if err := c.DB.Where("user_id = ?", user.ID).Find(&entries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve journal entries"})
	}

	var gratitude, highlights, challenges int
	for _, e := range entries {
		if strings.TrimSpace(e.Gratitude) != "" {
			gratitude++
		}
		if strings.TrimSpace(e.Highlights) != "" {
			highlights++
		}
		if strings.TrimSpace(e.Challenges) != "" {
			challenges++
		}
	}

	positivity := 0.0
	if highlights+challenges > 0 {
		positivity = float64(highlights) / float64(highlights+challenges) * 100
	}

	return ctx.JSON(fiber.Map{
		"total_entries":    len(entries),
		"gratitude_count":  gratitude,
		"highlights_count": highlights,
		"challenges_count": challenges,
		"positivity_ratio": positivity,
	})
}
