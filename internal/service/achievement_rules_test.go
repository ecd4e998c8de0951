package service

import (
	"testing"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAchievementsThresholds(t *testing.T) {
	tests := []struct {
		name string
		sig  Signals
		want []string
	}{
		{
			name: "zero signals qualify for nothing",
			sig:  Signals{},
			want: nil,
		},
		{
			name: "login streak of 7 grants 3 and 7 day codes",
			sig:  Signals{LoginStreak: 7},
			want: []string{AchLoginStreak3, AchLoginStreak7},
		},
		{
			name: "solve streak of 30 grants all streak tiers",
			sig:  Signals{SolveStreak: 30},
			want: []string{AchSolveStreak3, AchSolveStreak7, AchSolveStreak30},
		},
		{
			name: "first solved problem",
			sig:  Signals{TotalSolved: 1},
			want: []string{AchSolve1},
		},
		{
			name: "50 solved grants lower tiers too",
			sig:  Signals{TotalSolved: 50},
			want: []string{AchSolve1, AchSolve10, AchSolve50},
		},
		{
			name: "courses and quizzes",
			sig:  Signals{CompletedCourses: 5, PerfectQuizzes: 1},
			want: []string{AchCourse1, AchCourse5, AchQuizPerfect1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateAchievements(tt.sig))
		})
	}
}

func TestEvaluateAchievementsActivities(t *testing.T) {
	now := time.Now()

	entry := func(typ string) model.ActivityEntry {
		return model.ActivityEntry{Type: typ, Title: typ, Date: now}
	}

	t.Run("one qualifying activity unlocks first use", func(t *testing.T) {
		got := EvaluateAchievements(Signals{Activities: []model.ActivityEntry{entry("resume")}})
		assert.Equal(t, []string{AchFirstAIUse}, got)
	})

	t.Run("logins do not qualify", func(t *testing.T) {
		got := EvaluateAchievements(Signals{Activities: []model.ActivityEntry{entry("login"), entry("login")}})
		assert.Empty(t, got)
	})

	t.Run("five mocks unlock mock master", func(t *testing.T) {
		activities := []model.ActivityEntry{
			entry("mock"), entry("mock"), entry("mock"), entry("mock"), entry("mock"),
		}
		got := EvaluateAchievements(Signals{Activities: activities})
		assert.Contains(t, got, AchMockMaster)
		assert.Contains(t, got, AchFirstAIUse)
	})

	t.Run("four mocks are not enough", func(t *testing.T) {
		activities := []model.ActivityEntry{
			entry("mock"), entry("mock"), entry("mock"), entry("mock"),
		}
		got := EvaluateAchievements(Signals{Activities: activities})
		assert.NotContains(t, got, AchMockMaster)
	})
}

func TestEvaluateAchievementsMonotonic(t *testing.T) {
	small := EvaluateAchievements(Signals{TotalSolved: 10, LoginStreak: 3})
	large := EvaluateAchievements(Signals{TotalSolved: 100, LoginStreak: 14})

	for _, code := range small {
		assert.Contains(t, large, code)
	}
}

func TestMergeAchievements(t *testing.T) {
	t.Run("preserves existing order and appends new", func(t *testing.T) {
		got := MergeAchievements([]string{"solve_1", "3_day_streak"}, []string{"3_day_streak", "solve_10"})
		assert.Equal(t, []string{"solve_1", "3_day_streak", "solve_10"}, got)
	})

	t.Run("never shrinks", func(t *testing.T) {
		existing := []string{"solve_1", "course_1"}
		got := MergeAchievements(existing, nil)
		assert.Equal(t, existing, got)
	})

	t.Run("dedupes existing", func(t *testing.T) {
		got := MergeAchievements([]string{"solve_1", "solve_1"}, nil)
		assert.Equal(t, []string{"solve_1"}, got)
	})
}
