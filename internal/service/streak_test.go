package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceStreak(t *testing.T) {
	yesterday := date(2025, 3, 9)
	threeDaysAgo := date(2025, 3, 7)
	today := date(2025, 3, 10)

	tests := []struct {
		name        string
		prev        Streak
		wantCurrent int
		wantMax     int
	}{
		{
			name:        "first ever event starts at 1",
			prev:        Streak{},
			wantCurrent: 1,
			wantMax:     1,
		},
		{
			name:        "consecutive day extends",
			prev:        Streak{Current: 5, Max: 5, LastDate: &yesterday},
			wantCurrent: 6,
			wantMax:     6,
		},
		{
			name:        "same day keeps the count",
			prev:        Streak{Current: 6, Max: 6, LastDate: &today},
			wantCurrent: 6,
			wantMax:     6,
		},
		{
			name:        "gap resets to 1 but keeps max",
			prev:        Streak{Current: 9, Max: 12, LastDate: &threeDaysAgo},
			wantCurrent: 1,
			wantMax:     12,
		},
		{
			name:        "max follows a new record",
			prev:        Streak{Current: 12, Max: 12, LastDate: &yesterday},
			wantCurrent: 13,
			wantMax:     13,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdvanceStreak(tt.prev, today)
			assert.Equal(t, tt.wantCurrent, got.Current)
			assert.Equal(t, tt.wantMax, got.Max)
			assert.Equal(t, date(2025, 3, 10), *got.LastDate)
		})
	}
}

func TestAdvanceStreakNormalizesTimeOfDay(t *testing.T) {
	lateYesterday := time.Date(2025, 3, 9, 23, 55, 0, 0, time.UTC)
	earlyToday := time.Date(2025, 3, 10, 0, 5, 0, 0, time.UTC)

	first := AdvanceStreak(Streak{}, lateYesterday)
	second := AdvanceStreak(first, earlyToday)

	assert.Equal(t, 2, second.Current, "ten minutes apart across midnight is still consecutive days")
}
