package repositories

import (
	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
)

type EventRepository interface {
	Create(db *gorm.DB, event *models.Event) error
	List(db *gorm.DB, eventType string, limit, offset int) ([]models.Event, int64, error)
}

type EventRepositoryImpl struct{}

func NewEventRepository() EventRepository {
	return &EventRepositoryImpl{}
}

func (r *EventRepositoryImpl) Create(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

// List возвращает события в порядке эмиссии, опционально по типу
func (r *EventRepositoryImpl) List(db *gorm.DB, eventType string, limit, offset int) ([]models.Event, int64, error) {
	query := db.Model(&models.Event{})
	if eventType != "" {
		query = query.Where("type = ?", eventType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.Event
	err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}
