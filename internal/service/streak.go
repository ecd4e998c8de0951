package service

import (
	"time"

	"github.com/karthi421/skillmutant-backend/internal/util"
)

// Streak is the state advanced by one qualifying event (a login or a solved
// goal) on a given day.
type Streak struct {
	Current  int
	Max      int
	LastDate *time.Time
}

// AdvanceStreak applies one qualifying event dated today. Day deltas are
// whole calendar days in UTC: a second event on the same day leaves the
// count untouched, the next day extends it, any gap resets it to 1.
// Max never drops below Current.
func AdvanceStreak(prev Streak, today time.Time) Streak {
	day := util.DateOnly(today)

	next := Streak{Current: 1, Max: prev.Max, LastDate: &day}

	if prev.LastDate != nil {
		switch delta := util.DaysBetween(*prev.LastDate, day); {
		case delta == 0:
			next.Current = prev.Current
		case delta == 1:
			next.Current = prev.Current + 1
		}
	}

	if next.Current > next.Max {
		next.Max = next.Current
	}

	return next
}
