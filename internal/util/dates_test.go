package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2025, 3, 10, 23, 45, 12, 999, time.FixedZone("IST", 5*3600+1800))
	got := DateOnly(in)

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysBetween(a, b), "two minutes across midnight is one calendar day")
	assert.Equal(t, -1, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestFormatDate(t *testing.T) {
	in := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", FormatDate(in))
}
