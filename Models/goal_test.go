package Models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyProgressStatusFollowsProgress(t *testing.T) {
	goal := Goal{Status: GoalActive}

	goal.ApplyProgress(100)
	require.Equal(t, 100, goal.Progress)
	require.Equal(t, GoalCompleted, goal.Status)

	goal.ApplyProgress(50)
	require.Equal(t, 50, goal.Progress)
	require.Equal(t, GoalActive, goal.Status)
}

func TestApplyProgressClamps(t *testing.T) {
	goal := Goal{Status: GoalActive}

	goal.ApplyProgress(140)
	require.Equal(t, 100, goal.Progress)
	require.Equal(t, GoalCompleted, goal.Status)

	goal.ApplyProgress(-5)
	require.Zero(t, goal.Progress)
	require.Equal(t, GoalActive, goal.Status)
}
