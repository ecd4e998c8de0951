package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDataScanLegacyArray(t *testing.T) {
	var d ActivityData
	err := d.Scan([]byte(`["2025-01-01","2025-01-02"]`))
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, d.Logins)
	assert.Empty(t, d.Activities)
	assert.Empty(t, d.Achievements)
	assert.NotNil(t, d.Activities)
	assert.NotNil(t, d.Achievements)
}

func TestActivityDataScanStructured(t *testing.T) {
	raw := `{"logins":["2025-01-01"],"activities":[{"type":"login","title":"Logged in","date":"2025-01-01T09:00:00Z"}],"achievements":["solve_1"]}`

	var d ActivityData
	err := d.Scan([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-01"}, d.Logins)
	require.Len(t, d.Activities, 1)
	assert.Equal(t, "login", d.Activities[0].Type)
	assert.Equal(t, []string{"solve_1"}, d.Achievements)
}

func TestActivityDataScanNullAndEmpty(t *testing.T) {
	var d ActivityData
	require.NoError(t, d.Scan(nil))
	assert.NotNil(t, d.Logins)
	assert.NotNil(t, d.Activities)
	assert.NotNil(t, d.Achievements)

	var e ActivityData
	require.NoError(t, e.Scan([]byte{}))
	assert.NotNil(t, e.Logins)
}

func TestActivityDataValueWritesStructuredShape(t *testing.T) {
	var d ActivityData
	require.NoError(t, d.Scan([]byte(`["2025-01-01"]`)))

	value, err := d.Value()
	require.NoError(t, err)

	var roundTrip map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(value.([]byte), &roundTrip))

	// The legacy array never survives a write.
	assert.Contains(t, roundTrip, "logins")
	assert.Contains(t, roundTrip, "activities")
	assert.Contains(t, roundTrip, "achievements")
}

func TestAddLoginDedupes(t *testing.T) {
	var d ActivityData
	d.AddLogin("2025-01-01")
	d.AddLogin("2025-01-01")
	d.AddLogin("2025-01-02")

	assert.Equal(t, []string{"2025-01-01", "2025-01-02"}, d.Logins)
}

func TestAddActivityAppends(t *testing.T) {
	var d ActivityData
	d.AddActivity(ActivityEntry{Type: "quiz", Title: "Attempted quiz", Date: time.Now()})
	d.AddActivity(ActivityEntry{Type: "quiz", Title: "Attempted quiz", Date: time.Now()})

	assert.Len(t, d.Activities, 2, "activities are a log, not a set")
}
