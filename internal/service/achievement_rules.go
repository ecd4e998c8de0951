package service

import "github.com/karthi421/skillmutant-backend/internal/model"

// Achievement codes. The catalog rows are seeded in pkg/database; these
// constants are the only place thresholds are mapped to codes.
const (
	AchLoginStreak3  = "3_day_streak"
	AchLoginStreak7  = "7_day_streak"
	AchLoginStreak14 = "14_day_streak"
	AchSolveStreak3  = "streak_3"
	AchSolveStreak7  = "streak_7"
	AchSolveStreak30 = "streak_30"
	AchSolve1        = "solve_1"
	AchSolve10       = "solve_10"
	AchSolve50       = "solve_50"
	AchSolve100      = "solve_100"
	AchCourse1       = "course_1"
	AchCourse5       = "course_5"
	AchQuizPerfect1  = "quiz_perfect_1"
	AchQuizPerfect5  = "quiz_perfect_5"
	AchFirstAIUse    = "first_ai_use"
	AchMockMaster    = "mock_master"
)

// qualifyingActivityTypes are the activity entry types that count toward
// the first-use and mock-master achievements.
var qualifyingActivityTypes = map[string]bool{
	"resume": true,
	"mock":   true,
	"job":    true,
	"course": true,
}

// Signals is a snapshot of a user's accumulated progress. Zero values mean
// "not known / not applicable" and simply qualify for nothing.
type Signals struct {
	LoginStreak      int
	SolveStreak      int
	TotalSolved      int
	CompletedCourses int
	PerfectQuizzes   int
	Activities       []model.ActivityEntry
}

type threshold struct {
	min  int
	code string
}

var (
	loginStreakThresholds = []threshold{
		{3, AchLoginStreak3},
		{7, AchLoginStreak7},
		{14, AchLoginStreak14},
	}
	solveStreakThresholds = []threshold{
		{3, AchSolveStreak3},
		{7, AchSolveStreak7},
		{30, AchSolveStreak30},
	}
	solvedThresholds = []threshold{
		{1, AchSolve1},
		{10, AchSolve10},
		{50, AchSolve50},
		{100, AchSolve100},
	}
	courseThresholds = []threshold{
		{1, AchCourse1},
		{5, AchCourse5},
	}
	quizThresholds = []threshold{
		{1, AchQuizPerfect1},
		{5, AchQuizPerfect5},
	}
)

// EvaluateAchievements maps a signal snapshot to the full set of codes it
// qualifies for. Pure and deterministic: evaluating the same or larger
// signals never returns fewer codes. Callers union the result into the
// already-unlocked set; persistence stays idempotent through the
// user_achievements unique key.
func EvaluateAchievements(sig Signals) []string {
	var codes []string

	apply := func(value int, ts []threshold) {
		for _, t := range ts {
			if value >= t.min {
				codes = append(codes, t.code)
			}
		}
	}

	apply(sig.LoginStreak, loginStreakThresholds)
	apply(sig.SolveStreak, solveStreakThresholds)
	apply(sig.TotalSolved, solvedThresholds)
	apply(sig.CompletedCourses, courseThresholds)
	apply(sig.PerfectQuizzes, quizThresholds)

	qualifying := 0
	mocks := 0
	for _, a := range sig.Activities {
		if qualifyingActivityTypes[a.Type] {
			qualifying++
			if a.Type == "mock" {
				mocks++
			}
		}
	}
	if qualifying >= 1 {
		codes = append(codes, AchFirstAIUse)
	}
	if mocks >= 5 {
		codes = append(codes, AchMockMaster)
	}

	return codes
}

// MergeAchievements unions newly qualified codes into an existing unlocked
// set, preserving the order already stored. The result never shrinks.
func MergeAchievements(existing, unlocked []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(unlocked))
	for _, code := range existing {
		if !seen[code] {
			seen[code] = true
			merged = append(merged, code)
		}
	}
	for _, code := range unlocked {
		if !seen[code] {
			seen[code] = true
			merged = append(merged, code)
		}
	}
	return merged
}
