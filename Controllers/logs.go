package Controllers

import (
	"bufio"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"Momentum/middleware"
)

const requestLogFile = "logs/requests.log"

// GetLogStats summarizes the request log for the admin dashboard: request
// counts, success rate, latency, and the busiest paths for a day range.
func GetLogStats(ctx *fiber.Ctx) error {
	dateFrom, dateTo, err := logDateRange(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lines, err := readRequestLog(requestLogFile, dateFrom, dateTo)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to read request log"})
	}

	var successful, failed int
	var totalLatency time.Duration
	statusCounts := make(map[int]int)
	pathCounts := make(map[string]int)

	for _, entry := range lines {
		switch {
		case entry.Status >= 200 && entry.Status < 300:
			successful++
		case entry.Status >= 400:
			failed++
		}
		totalLatency += entry.Latency
		statusCounts[entry.Status]++
		pathCounts[entry.Method+" "+entry.Path]++
	}

	total := len(lines)
	avgLatencyMs := 0.0
	successRate := 0.0
	if total > 0 {
		avgLatencyMs = float64(totalLatency.Microseconds()) / float64(total) / 1000.0
		successRate = float64(successful) / float64(total) * 100
	}

	return ctx.JSON(fiber.Map{
		"total_requests":      total,
		"successful_requests": successful,
		"error_requests":      failed,
		"success_rate":        successRate,
		"avg_latency_ms":      avgLatencyMs,
		"status_counts":       statusCounts,
		"top_paths":           topPaths(pathCounts, 10),
		"date_from":           dateFrom,
		"date_to":             dateTo,
	})
}

func logDateRange(ctx *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	dateFrom := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dateTo := now

	if raw := ctx.Query("date_from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date_from format. Use YYYY-MM-DD")
		}
		dateFrom = parsed
	}
	if raw := ctx.Query("date_to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Invalid date_to format. Use YYYY-MM-DD")
		}
		dateTo = parsed.AddDate(0, 0, 1)
	}
	return dateFrom, dateTo, nil
}

func readRequestLog(path string, dateFrom, dateTo time.Time) ([]middleware.LogData, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []middleware.LogData
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry middleware.LogData
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Timestamp.Before(dateFrom) || entry.Timestamp.After(dateTo) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

func topPaths(counts map[string]int, limit int) []fiber.Map {
	paths := make([]fiber.Map, 0, len(counts))
	for path, count := range counts {
		paths = append(paths, fiber.Map{"path": path, "count": count})
	}
	sort.Slice(paths, func(i, j int) bool {
		return paths[i]["count"].(int) > paths[j]["count"].(int)
	})
	if len(paths) > limit {
		paths = paths[:limit]
	}
	return paths
}
