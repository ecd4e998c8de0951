package repository

import (
	"github.com/karthi421/skillmutant-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) ListIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.Topic{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func (r *TopicRepository) FindByName(name string) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.Where("name = ?", name).First(&topic).Error
	return &topic, err
}

func (r *TopicRepository) CreateIfAbsent(topic *model.Topic) error {
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(topic).Error
}
