package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// ActivityEntry is one event inside the per-user activity blob.
type ActivityEntry struct {
	Type  string    `json:"type"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// ActivityData is the users.login_dates JSON column. Historically this
// column held a bare array of login dates; it was later migrated to the
// structured shape below. Both shapes must be tolerated on read, and the
// normalization happens here, in one place, when the row is scanned.
type ActivityData struct {
	Logins       []string        `json:"logins"`
	Activities   []ActivityEntry `json:"activities"`
	Achievements []string        `json:"achievements"`
}

func (d *ActivityData) UnmarshalJSON(b []byte) error {
	// Legacy shape: bare array of "YYYY-MM-DD" strings.
	var legacy []string
	if err := json.Unmarshal(b, &legacy); err == nil {
		*d = ActivityData{Logins: legacy}
		d.normalize()
		return nil
	}

	type plain ActivityData
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = ActivityData(p)
	d.normalize()
	return nil
}

func (d *ActivityData) normalize() {
	if d.Logins == nil {
		d.Logins = []string{}
	}
	if d.Activities == nil {
		d.Activities = []ActivityEntry{}
	}
	if d.Achievements == nil {
		d.Achievements = []string{}
	}
}

// Scan implements sql.Scanner so gorm can read both historical shapes.
func (d *ActivityData) Scan(value interface{}) error {
	if value == nil {
		*d = ActivityData{}
		d.normalize()
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("activity data: unsupported column type")
	}

	if len(raw) == 0 {
		*d = ActivityData{}
		d.normalize()
		return nil
	}

	return d.UnmarshalJSON(raw)
}

// Value always writes the structured shape; reading is where the legacy
// array gets upgraded.
func (d ActivityData) Value() (driver.Value, error) {
	d.normalize()
	return json.Marshal(d)
}

func (ActivityData) GormDataType() string {
	return "json"
}

// HasLogin reports whether the given "YYYY-MM-DD" date is already recorded.
func (d *ActivityData) HasLogin(date string) bool {
	for _, l := range d.Logins {
		if l == date {
			return true
		}
	}
	return false
}

func (d *ActivityData) AddLogin(date string) {
	if !d.HasLogin(date) {
		d.Logins = append(d.Logins, date)
	}
}

func (d *ActivityData) AddActivity(entry ActivityEntry) {
	d.Activities = append(d.Activities, entry)
}
