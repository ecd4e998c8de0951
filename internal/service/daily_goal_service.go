package service

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/karthi421/skillmutant-backend/internal/model"
	"github.com/karthi421/skillmutant-backend/internal/repository"
	"github.com/karthi421/skillmutant-backend/pkg/monitoring"

	"gorm.io/datatypes"
)

// DailyGoalService owns the daily assignment pipeline: the once-per-day
// generator and the completion flow that advances the solve streak and
// unlocks achievements.
type DailyGoalService struct {
	Store      repository.GoalStore
	DailyCount int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDailyGoalService seeds the sampler from the clock; tests pass a fixed
// seed through NewDailyGoalServiceWithSeed instead.
func NewDailyGoalService(store repository.GoalStore, dailyCount int) *DailyGoalService {
	return NewDailyGoalServiceWithSeed(store, dailyCount, time.Now().UnixNano())
}

func NewDailyGoalServiceWithSeed(store repository.GoalStore, dailyCount int, seed int64) *DailyGoalService {
	if dailyCount <= 0 {
		dailyCount = 3
	}
	return &DailyGoalService{
		Store:      store,
		DailyCount: dailyCount,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// GoalItem is what the HTTP layer returns per assigned problem.
type GoalItem struct {
	DailyGoalID uint   `json:"dailyGoalId"`
	ProblemID   uint   `json:"problemId"`
	Platform    string `json:"platform"`
	Title       string `json:"title"`
	Difficulty  string `json:"difficulty"`
	URL         string `json:"url"`
	Completed   bool   `json:"completed"`
}

// CompletionResult mirrors the completion contract: alreadyCompleted means
// the submission was a duplicate and nothing was written.
type CompletionResult struct {
	Success          bool `json:"success"`
	NewStreak        int  `json:"newStreak,omitempty"`
	AlreadyCompleted bool `json:"alreadyCompleted,omitempty"`
}

// GetDailyGoals returns today's assignment set, generating it on first
// call. Repeat calls the same day read the persisted set back unchanged.
// Selection: DailyCount topics sampled without replacement, one unsolved
// problem per topic, then a backfill from the global unsolved pool. A user
// gets fewer than DailyCount problems only when the pool itself is smaller.
func (s *DailyGoalService) GetDailyGoals(userID uint, today time.Time) ([]GoalItem, error) {
	existing, err := s.Store.GoalsForDate(userID, today)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		items := make([]GoalItem, len(existing))
		for i, goal := range existing {
			items[i] = GoalItem{
				DailyGoalID: goal.ID,
				ProblemID:   goal.ProblemID,
				Platform:    goal.Problem.Platform,
				Title:       goal.Problem.Title,
				Difficulty:  goal.Problem.Difficulty,
				URL:         goal.Problem.URL,
				Completed:   goal.Completed,
			}
		}
		return items, nil
	}

	topicIDs, err := s.Store.TopicIDs()
	if err != nil {
		return nil, err
	}

	var (
		items       []GoalItem
		assignedIDs []uint
	)

	assign := func(problem model.Problem) error {
		goal := model.DailyGoal{
			UserID:    userID,
			ProblemID: problem.ID,
			GoalDate:  today,
		}
		if err := s.Store.CreateGoal(&goal); err != nil {
			return err
		}
		assignedIDs = append(assignedIDs, problem.ID)
		items = append(items, GoalItem{
			DailyGoalID: goal.ID,
			ProblemID:   problem.ID,
			Platform:    problem.Platform,
			Title:       problem.Title,
			Difficulty:  problem.Difficulty,
			URL:         problem.URL,
			Completed:   false,
		})
		return nil
	}

	for _, topicID := range s.sampleTopics(topicIDs) {
		pool, err := s.Store.UnsolvedByTopic(userID, topicID)
		if err != nil {
			return nil, err
		}
		if len(pool) == 0 {
			continue
		}
		if err := assign(s.pickOne(pool)); err != nil {
			return nil, err
		}
	}

	// Backfill from the global unsolved pool when topic sampling came up
	// short; the pool excludes everything assigned above.
	if len(items) < s.DailyCount {
		pool, err := s.Store.Unsolved(userID, assignedIDs)
		if err != nil {
			return nil, err
		}
		for _, problem := range s.samplePool(pool, s.DailyCount-len(items)) {
			if err := assign(problem); err != nil {
				return nil, err
			}
		}
	}

	return items, nil
}

// CompleteGoal flips today's assignment to completed and runs the rest of
// the pipeline inside one store transaction: solved fact, solved-count
// achievements, solve streak, streak achievements, activity entry. The
// streak read must see the user row as it was before this completion.
func (s *DailyGoalService) CompleteGoal(userID, problemID uint, today time.Time) (*CompletionResult, error) {
	var result CompletionResult

	err := s.Store.InTx(func(tx repository.GoalStore) error {
		goal, err := tx.FindGoal(userID, problemID, today)
		if err != nil {
			return err
		}

		if goal.Completed {
			result = CompletionResult{Success: true, AlreadyCompleted: true}
			return nil
		}

		now := time.Now()
		if err := tx.MarkGoalCompleted(goal.ID, now); err != nil {
			return err
		}
		if err := tx.RecordSolved(userID, problemID, today); err != nil {
			return err
		}

		totalSolved, err := tx.CountSolved(userID)
		if err != nil {
			return err
		}
		if err := unlockAll(tx, userID, EvaluateAchievements(Signals{TotalSolved: int(totalSolved)})); err != nil {
			return err
		}

		user, err := tx.FindUser(userID)
		if err != nil {
			return err
		}
		streak := AdvanceStreak(Streak{
			Current:  user.SolveStreak,
			Max:      user.SolveStreak,
			LastDate: user.LastSolvedDate,
		}, today)
		if err := tx.SaveSolveStreak(userID, streak.Current, today); err != nil {
			return err
		}
		if err := unlockAll(tx, userID, EvaluateAchievements(Signals{SolveStreak: streak.Current})); err != nil {
			return err
		}

		title := "a problem"
		if problem, err := tx.ProblemByID(problemID); err == nil {
			title = problem.Title
		}
		meta, _ := json.Marshal(map[string]interface{}{"problemId": problemID})
		if err := tx.AppendActivity(&model.ActivityLog{
			UserID: userID,
			Type:   "daily_goal",
			Title:  "Solved problem: " + title,
			Meta:   datatypes.JSON(meta),
		}); err != nil {
			return err
		}

		result = CompletionResult{Success: true, NewStreak: streak.Current}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyCompleted {
		monitoring.GoalsCompleted.Inc()
	}
	return &result, nil
}

func unlockAll(store repository.GoalStore, userID uint, codes []string) error {
	for _, code := range codes {
		fresh, err := store.UnlockAchievement(userID, code)
		if err != nil {
			return err
		}
		if fresh {
			monitoring.AchievementsUnlocked.Inc()
		}
	}
	return nil
}

// sampleTopics picks up to DailyCount topic ids uniformly without
// replacement.
func (s *DailyGoalService) sampleTopics(ids []uint) []uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	shuffled := make([]uint, len(ids))
	copy(shuffled, ids)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > s.DailyCount {
		shuffled = shuffled[:s.DailyCount]
	}
	return shuffled
}

func (s *DailyGoalService) pickOne(pool []model.Problem) model.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pool[s.rng.Intn(len(pool))]
}

func (s *DailyGoalService) samplePool(pool []model.Problem, n int) []model.Problem {
	s.mu.Lock()
	defer s.mu.Unlock()

	shuffled := make([]model.Problem, len(pool))
	copy(shuffled, pool)
	s.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}
