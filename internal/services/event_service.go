package services

import (
	"encoding/json"

	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventService interface {
	List(db *gorm.DB, query *dto.EventQuery) (*dto.EventListResponse, error)
}

type EventServiceImpl struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) EventService {
	return &EventServiceImpl{eventRepo: eventRepo}
}

func (s *EventServiceImpl) List(db *gorm.DB, query *dto.EventQuery) (*dto.EventListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	events, total, err := s.eventRepo.List(db, query.Type, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.EventListResponse{
		Events:   make([]dto.EventResponse, 0, len(events)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, e := range events {
		resp.Events = append(resp.Events, dto.EventResponse{
			ID:        e.ID,
			Type:      string(e.Type),
			Wallet:    e.Wallet,
			Payload:   e.Payload,
			CreatedAt: e.CreatedAt,
		})
	}
	return resp, nil
}

// emitEvent пишет событие в той же транзакции, что и породившая его мутация.
// Ошибка сериализации или вставки валит всю транзакцию: мутация без
// сигнала для индексаторов хуже, чем откат.
func emitEvent(db *gorm.DB, repo repositories.EventRepository, typ models.EventType, wallet string, payload map[string]interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return repo.Create(db, &models.Event{
		Type:    typ,
		Wallet:  wallet,
		Payload: datatypes.JSON(raw),
	})
}
