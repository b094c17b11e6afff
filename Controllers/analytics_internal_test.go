package Controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPearsonPerfectCorrelation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 6, 8, 10}
	require.InDelta(t, 1.0, pearson(xs, ys), 0.0001)
}

func TestPearsonInverseCorrelation(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{10, 8, 6, 4, 2}
	require.InDelta(t, -1.0, pearson(xs, ys), 0.0001)
}

func TestPearsonUndefinedCases(t *testing.T) {
	// Too few points.
	require.Zero(t, pearson([]float64{1}, []float64{2}))
	// Zero variance on one side.
	require.Zero(t, pearson([]float64{3, 3, 3}, []float64{1, 2, 3}))
}

func TestQuoteForDateIsStable(t *testing.T) {
	date := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	later := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	require.Equal(t, quoteForDate(date), quoteForDate(later))

	// Consecutive days land somewhere in the quote list.
	require.Contains(t, motivationalQuotes, quoteForDate(date.AddDate(0, 0, 1)))
}
