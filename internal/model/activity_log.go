package model

import "gorm.io/datatypes"

// ActivityLog is the append-only event stream consumed by the weekly and
// monthly analytics endpoints.
type ActivityLog struct {
	BaseModel
	UserID uint           `gorm:"index;not null" json:"userId"`
	Type   string         `gorm:"size:50;not null" json:"type"`
	Title  string         `gorm:"size:255;not null" json:"title"`
	Meta   datatypes.JSON `json:"meta"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
