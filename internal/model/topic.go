package model

// Topic is immutable reference data used to diversify daily goal selection.
type Topic struct {
	BaseModel
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

func (Topic) TableName() string {
	return "topics"
}
