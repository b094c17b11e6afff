package Ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"Momentum/Models"
)

func TestFirstStepsAwardedAtFive(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "starter")
	ledger := New(db)

	now := time.Now()
	for i := 0; i < 5; i++ {
		completeTaskAt(t, db, user.ID, now)
	}

	awarded, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"First Steps"}, awarded)

	var achievement Models.Achievement
	require.NoError(t, db.Where("user_id = ? AND name = ?", user.ID, "First Steps").First(&achievement).Error)
	require.Equal(t, "🌱", achievement.Icon)
	require.Equal(t, "Completed 5 tasks", achievement.Description)
}

func TestNoDuplicateOnSixthCompletion(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "sixth")
	ledger := New(db)

	now := time.Now()
	for i := 0; i < 5; i++ {
		completeTaskAt(t, db, user.ID, now)
	}
	_, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)

	completeTaskAt(t, db, user.ID, now)
	awarded, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)
	require.Empty(t, awarded)

	var count int64
	require.NoError(t, db.Model(&Models.Achievement{}).
		Where("user_id = ? AND name = ?", user.ID, "First Steps").
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "idempotent")
	ledger := New(db)

	now := time.Now()
	for i := 0; i < 25; i++ {
		completeTaskAt(t, db, user.ID, now)
	}

	first, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"First Steps", "Getting Started"}, first)

	second, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)
	require.Empty(t, second)
}

func TestStreakMilestoneUsesStreakBasis(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "warrior")
	ledger := New(db)

	now := time.Now()
	for i := 0; i < 7; i++ {
		completeTaskAt(t, db, user.ID, now.AddDate(0, 0, -i))
	}

	awarded, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)
	// 7 completions on 7 consecutive days unlocks both the count milestone
	// and the streak milestone.
	require.ElementsMatch(t, []string{"First Steps", "Week Warrior"}, awarded)
}

func TestAchievementsArePermanent(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "keeper")
	ledger := New(db)

	now := time.Now()
	for i := 0; i < 5; i++ {
		completeTaskAt(t, db, user.ID, now)
	}
	_, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)

	// Wiping the tasks drops the metric below the threshold, but the earned
	// achievement survives re-evaluation.
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&Models.Task{}).Error)

	awarded, err := ledger.EvaluateAchievements(user.ID)
	require.NoError(t, err)
	require.Empty(t, awarded)

	var count int64
	require.NoError(t, db.Model(&Models.Achievement{}).
		Where("user_id = ?", user.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestMilestoneTableBases(t *testing.T) {
	for _, m := range Milestones {
		switch m.Name {
		case "Week Warrior", "Monthly Master":
			require.Equal(t, BasisStreak, m.Basis, m.Name)
		default:
			require.Equal(t, BasisCompletedCount, m.Basis, m.Name)
		}
	}
}
