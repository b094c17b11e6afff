package Assistant

import (
	"context"
	"fmt"
	"strings"

	"Momentum/Models"
)

// Insights summarizes the user's recent task patterns through the model.
func (a *Assistant) Insights(ctx context.Context, userID uint) (string, error) {
	var tasks []Models.Task
	if err := a.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&tasks).Error; err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "Not enough data yet. Complete more tasks to get insights!", nil
	}

	completed, pending := 0, 0
	categories := make(map[Models.TaskCategory]int)
	priorities := make(map[Models.TaskPriority]int)
	for _, t := range tasks {
		switch t.Status {
		case Models.StatusCompleted:
			completed++
		case Models.StatusPending:
			pending++
		}
		categories[t.Category]++
		priorities[t.Priority]++
	}

	summary := fmt.Sprintf(`User has %d recent tasks:
- Completed: %d
- Pending: %d
- Categories: %v
- Priorities: %v`, len(tasks), completed, pending, categories, priorities)

	return a.generate(ctx,
		"You are a productivity coach. Analyze task patterns and provide 3-4 actionable insights in a friendly tone.",
		summary)
}

// DailyPlan asks the model to pick a realistic focus list from the user's
// pending tasks.
func (a *Assistant) DailyPlan(ctx context.Context, userID uint) (string, error) {
	var tasks []Models.Task
	if err := a.DB.Where("user_id = ? AND status = ?", userID, Models.StatusPending).
		Order("priority DESC, due_date ASC").
		Limit(20).
		Find(&tasks).Error; err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "You have no pending tasks! Great job!", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User has %d pending tasks. Suggest 5-7 to focus on today.\nTasks:\n", len(tasks))
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s [%s/%s] due %s (%.1fh)\n", t.Title, t.Category, t.Priority, t.DueDate, t.EstimatedHours)
	}

	return a.generate(ctx,
		"You are a productivity planner. Suggest a realistic daily task list. Be encouraging.",
		b.String())
}

// Chat answers a free-form question with the user's stats as context.
func (a *Assistant) Chat(ctx context.Context, userID uint, question string) (string, error) {
	stats, err := a.Ledger.ComputeStats(userID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`User context - Tasks: %d, Completed: %d,
Rate: %.1f%%, Streak: %d days

User question: %s`, stats.TotalTasks, stats.CompletedTasks, stats.CompletionRate, stats.Streak, question)

	return a.generate(ctx,
		"You are a helpful productivity assistant. Provide actionable advice based on the user's stats and question.",
		prompt)
}
