package model

// Problem is one entry of the practice problem bank. (Title, Topic) pairs
// are unique so re-imports stay idempotent.
type Problem struct {
	BaseModel
	TopicID    uint   `gorm:"uniqueIndex:idx_problem_title_topic;not null" json:"topicId"`
	Platform   string `gorm:"size:50;not null" json:"platform"`
	Title      string `gorm:"size:255;uniqueIndex:idx_problem_title_topic;not null" json:"title"`
	Difficulty string `gorm:"size:20;not null" json:"difficulty"`
	URL        string `gorm:"size:512;not null" json:"url"`

	Topic Topic `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (Problem) TableName() string {
	return "problem_bank"
}
