package Assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"Momentum/Models"
)

const createTasksSystemPrompt = `You are a productivity assistant. Convert user requests into structured tasks.
Return ONLY a valid JSON object with a "tasks" key containing an array of task objects.
Each task must have: title, description, category (Work/Personal/Health/Learning/Finance/Other),
priority (high/medium/low), due_date (YYYY-MM-DD), estimated_hours (number).

Example: {"tasks": [{"title": "Finish project report", "description": "Complete and submit",
"category": "Work", "priority": "high", "due_date": "2025-01-17", "estimated_hours": 3.0}]}`

type taskDraft struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Priority       string  `json:"priority"`
	DueDate        string  `json:"due_date"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type taskDraftList struct {
	Tasks []taskDraft `json:"tasks"`
}

// CreateTasks turns a natural-language request into stored tasks for the user
// and returns how many were created.
func (a *Assistant) CreateTasks(ctx context.Context, userID uint, prompt string) (int, error) {
	response, err := a.generate(ctx, createTasksSystemPrompt, prompt)
	if err != nil {
		return 0, err
	}

	drafts, err := parseTaskDrafts(response)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, draft := range drafts {
		task := draftToTask(userID, draft)
		if err := a.DB.Create(&task).Error; err != nil {
			return created, err
		}
		created++
	}

	if created > 0 {
		if _, err := a.Ledger.EvaluateAchievements(userID); err != nil {
			return created, err
		}
	}
	return created, nil
}

// parseTaskDrafts extracts the task list from a model response. Gemini often
// wraps JSON in markdown fences, so those are stripped first.
func parseTaskDrafts(response string) ([]taskDraft, error) {
	payload := stripFences(response)

	var list taskDraftList
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, fmt.Errorf("assistant: invalid task JSON: %w", err)
	}
	return list.Tasks, nil
}

func stripFences(response string) string {
	if idx := strings.Index(response, "```json"); idx >= 0 {
		response = response[idx+len("```json"):]
		if end := strings.Index(response, "```"); end >= 0 {
			response = response[:end]
		}
	} else if idx := strings.Index(response, "```"); idx >= 0 {
		response = response[idx+len("```"):]
		if end := strings.Index(response, "```"); end >= 0 {
			response = response[:end]
		}
	}
	return strings.TrimSpace(response)
}

// draftToTask applies the same defaults the prompt promises for missing
// fields and normalizes anything the model got creative with.
func draftToTask(userID uint, draft taskDraft) Models.Task {
	if draft.Title == "" {
		draft.Title = "Untitled Task"
	}
	if draft.DueDate == "" {
		draft.DueDate = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	}
	if draft.EstimatedHours <= 0 {
		draft.EstimatedHours = 1.0
	}

	task := Models.Task{
		UserID:         userID,
		Title:          draft.Title,
		Description:    draft.Description,
		Category:       Models.TaskCategory(draft.Category),
		Priority:       Models.TaskPriority(draft.Priority),
		Status:         Models.StatusPending,
		DueDate:        draft.DueDate,
		EstimatedHours: draft.EstimatedHours,
	}
	task.Normalize()
	return task
}
