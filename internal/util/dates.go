package util

import "time"

const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight UTC. All streak arithmetic goes through
// this so "today" means the same calendar day regardless of the caller's
// timezone.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day calendar difference b - a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

func FormatDate(t time.Time) string {
	return DateOnly(t).Format(DateLayout)
}
