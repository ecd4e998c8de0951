package service

import (
	"testing"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGoalStore is an in-memory GoalStore. InTx runs the callback against
// the same store; the transactional boundary is not simulated.
type fakeGoalStore struct {
	topics     []uint
	problems   map[uint]model.Problem // id -> problem (with TopicID set)
	goals      []model.DailyGoal
	solved     map[uint]map[uint]bool // userID -> problemID
	users      map[uint]*model.User
	unlocked   map[uint]map[string]bool
	activities []model.ActivityLog
	nextGoalID uint
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{
		problems: map[uint]model.Problem{},
		solved:   map[uint]map[uint]bool{},
		users:    map[uint]*model.User{},
		unlocked: map[uint]map[string]bool{},
	}
}

func (f *fakeGoalStore) addProblem(id, topicID uint, title string) {
	f.problems[id] = model.Problem{
		BaseModel:  model.BaseModel{ID: id},
		TopicID:    topicID,
		Platform:   "leetcode",
		Title:      title,
		Difficulty: "Easy",
		URL:        "https://example.com/" + title,
	}
	seen := false
	for _, t := range f.topics {
		if t == topicID {
			seen = true
		}
	}
	if !seen {
		f.topics = append(f.topics, topicID)
	}
}

func (f *fakeGoalStore) GoalsForDate(userID uint, date time.Time) ([]model.DailyGoal, error) {
	day := util.DateOnly(date)
	var out []model.DailyGoal
	for _, g := range f.goals {
		if g.UserID == userID && g.GoalDate.Equal(day) {
			g.Problem = f.problems[g.ProblemID]
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGoalStore) TopicIDs() ([]uint, error) {
	return append([]uint(nil), f.topics...), nil
}

func (f *fakeGoalStore) UnsolvedByTopic(userID, topicID uint) ([]model.Problem, error) {
	var out []model.Problem
	for _, p := range f.problems {
		if p.TopicID == topicID && !f.solved[userID][p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGoalStore) Unsolved(userID uint, excludeIDs []uint) ([]model.Problem, error) {
	excluded := map[uint]bool{}
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var out []model.Problem
	for _, p := range f.problems {
		if !f.solved[userID][p.ID] && !excluded[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeGoalStore) CreateGoal(goal *model.DailyGoal) error {
	goal.GoalDate = util.DateOnly(goal.GoalDate)
	for _, g := range f.goals {
		if g.UserID == goal.UserID && g.ProblemID == goal.ProblemID && g.GoalDate.Equal(goal.GoalDate) {
			return nil
		}
	}
	f.nextGoalID++
	goal.ID = f.nextGoalID
	f.goals = append(f.goals, *goal)
	return nil
}

func (f *fakeGoalStore) FindGoal(userID, problemID uint, date time.Time) (*model.DailyGoal, error) {
	day := util.DateOnly(date)
	for i := range f.goals {
		g := &f.goals[i]
		if g.UserID == userID && g.ProblemID == problemID && g.GoalDate.Equal(day) {
			copy := *g
			return &copy, nil
		}
	}
	return nil, util.ErrGoalNotFound
}

func (f *fakeGoalStore) MarkGoalCompleted(goalID uint, at time.Time) error {
	for i := range f.goals {
		if f.goals[i].ID == goalID {
			f.goals[i].Completed = true
			f.goals[i].CompletedAt = &at
			return nil
		}
	}
	return util.ErrGoalNotFound
}

func (f *fakeGoalStore) RecordSolved(userID, problemID uint, day time.Time) error {
	if f.solved[userID] == nil {
		f.solved[userID] = map[uint]bool{}
	}
	f.solved[userID][problemID] = true
	return nil
}

func (f *fakeGoalStore) CountSolved(userID uint) (int64, error) {
	return int64(len(f.solved[userID])), nil
}

func (f *fakeGoalStore) FindUser(userID uint) (*model.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	copy := *user
	return &copy, nil
}

func (f *fakeGoalStore) SaveSolveStreak(userID uint, streak int, day time.Time) error {
	d := util.DateOnly(day)
	f.users[userID].SolveStreak = streak
	f.users[userID].LastSolvedDate = &d
	return nil
}

func (f *fakeGoalStore) UnlockAchievement(userID uint, code string) (bool, error) {
	if f.unlocked[userID] == nil {
		f.unlocked[userID] = map[string]bool{}
	}
	if f.unlocked[userID][code] {
		return false, nil
	}
	f.unlocked[userID][code] = true
	return true, nil
}

func (f *fakeGoalStore) ProblemByID(problemID uint) (*model.Problem, error) {
	p, ok := f.problems[problemID]
	if !ok {
		return nil, util.ErrProblemNotFound
	}
	return &p, nil
}

func (f *fakeGoalStore) AppendActivity(entry *model.ActivityLog) error {
	f.activities = append(f.activities, *entry)
	return nil
}

func (f *fakeGoalStore) InTx(fn func(repository.GoalStore) error) error {
	return fn(f)
}

func seedStore() *fakeGoalStore {
	store := newFakeGoalStore()
	// Five topics, three problems each.
	id := uint(0)
	for topic := uint(1); topic <= 5; topic++ {
		for n := 0; n < 3; n++ {
			id++
			store.addProblem(id, topic, "p"+string(rune('a'+id)))
		}
	}
	store.users[1] = &model.User{BaseModel: model.BaseModel{ID: 1}}
	return store
}

func TestGetDailyGoalsAssignsUpToDailyCount(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 42)

	today := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	items, err := svc.GetDailyGoals(1, today)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	seen := map[uint]bool{}
	for _, item := range items {
		assert.False(t, item.Completed)
		assert.False(t, seen[item.ProblemID], "no duplicate assignments")
		seen[item.ProblemID] = true
	}
}

func TestGetDailyGoalsIsStableWithinADay(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 7)

	today := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	first, err := svc.GetDailyGoals(1, today)
	require.NoError(t, err)

	// Later the same day, even at a different hour.
	second, err := svc.GetDailyGoals(1, today.Add(9*time.Hour))
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ProblemID, second[i].ProblemID)
	}
}

func TestGetDailyGoalsNeverAssignsSolved(t *testing.T) {
	store := seedStore()
	// User already solved everything except problems 1 and 2.
	store.solved[1] = map[uint]bool{}
	for id := uint(3); id <= 15; id++ {
		store.solved[1][id] = true
	}

	svc := NewDailyGoalServiceWithSeed(store, 3, 99)
	items, err := svc.GetDailyGoals(1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Len(t, items, 2, "pool smaller than daily count yields a short set")
	for _, item := range items {
		assert.True(t, item.ProblemID == 1 || item.ProblemID == 2)
	}
}

func TestGetDailyGoalsBackfillsAcrossTopics(t *testing.T) {
	store := newFakeGoalStore()
	// One topic only; topic sampling alone can assign at most one problem.
	store.addProblem(1, 1, "a")
	store.addProblem(2, 1, "b")
	store.addProblem(3, 1, "c")
	store.users[1] = &model.User{BaseModel: model.BaseModel{ID: 1}}

	svc := NewDailyGoalServiceWithSeed(store, 3, 5)
	items, err := svc.GetDailyGoals(1, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Len(t, items, 3, "backfill fills the set from the global pool")
}

func TestCompleteGoalFullPipeline(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 42)

	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items, err := svc.GetDailyGoals(1, today)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	result, err := svc.CompleteGoal(1, items[0].ProblemID, today)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.AlreadyCompleted)
	assert.Equal(t, 1, result.NewStreak)

	// Solved fact recorded.
	assert.True(t, store.solved[1][items[0].ProblemID])

	// First solve unlocks solve_1 and streak_3 is still out of reach.
	assert.True(t, store.unlocked[1][AchSolve1])
	assert.False(t, store.unlocked[1][AchSolveStreak3])

	// Activity entry written.
	require.Len(t, store.activities, 1)
	assert.Equal(t, "daily_goal", store.activities[0].Type)
	assert.Contains(t, store.activities[0].Title, "Solved problem: ")
}

func TestCompleteGoalIsIdempotent(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 42)

	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items, err := svc.GetDailyGoals(1, today)
	require.NoError(t, err)

	first, err := svc.CompleteGoal(1, items[0].ProblemID, today)
	require.NoError(t, err)
	require.False(t, first.AlreadyCompleted)

	second, err := svc.CompleteGoal(1, items[0].ProblemID, today)
	require.NoError(t, err)

	assert.True(t, second.Success)
	assert.True(t, second.AlreadyCompleted)
	assert.Zero(t, second.NewStreak)

	// No duplicate writes.
	assert.Len(t, store.activities, 1)
	assert.Equal(t, 1, store.users[1].SolveStreak)
}

func TestCompleteGoalUnknownProblem(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 42)

	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	_, err := svc.GetDailyGoals(1, today)
	require.NoError(t, err)

	_, err = svc.CompleteGoal(1, 9999, today)
	assert.ErrorIs(t, err, util.ErrGoalNotFound)
}

func TestCompleteGoalAdvancesStreakAcrossDays(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 42)

	day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	items, err := svc.GetDailyGoals(1, day1)
	require.NoError(t, err)
	res1, err := svc.CompleteGoal(1, items[0].ProblemID, day1)
	require.NoError(t, err)
	assert.Equal(t, 1, res1.NewStreak)

	items2, err := svc.GetDailyGoals(1, day2)
	require.NoError(t, err)
	res2, err := svc.CompleteGoal(1, items2[0].ProblemID, day2)
	require.NoError(t, err)
	assert.Equal(t, 2, res2.NewStreak)

	// A second completion on day2 keeps the streak where it is.
	res3, err := svc.CompleteGoal(1, items2[1].ProblemID, day2)
	require.NoError(t, err)
	assert.Equal(t, 2, res3.NewStreak)
}

func TestCompleteGoalStreakResetsAfterGap(t *testing.T) {
	store := seedStore()
	svc := NewDailyGoalServiceWithSeed(store, 3, 42)

	day1 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	day4 := day1.AddDate(0, 0, 3)

	items, err := svc.GetDailyGoals(1, day1)
	require.NoError(t, err)
	_, err = svc.CompleteGoal(1, items[0].ProblemID, day1)
	require.NoError(t, err)

	items2, err := svc.GetDailyGoals(1, day4)
	require.NoError(t, err)
	res, err := svc.CompleteGoal(1, items2[0].ProblemID, day4)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NewStreak)
}
