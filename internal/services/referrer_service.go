package services

import (
	"errors"
	"strings"

	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReferrerService interface {
	// Register привязывает email к адресу вызывающего.
	// Повторная регистрация той же пары идемпотентна; занятый email - конфликт.
	Register(db *gorm.DB, callerWallet string, req *dto.RegisterReferrerRequest) (*dto.ReferrerResponse, error)
	Get(db *gorm.DB, address string) (*dto.ReferrerResponse, error)
}

type ReferrerServiceImpl struct {
	referrerRepo repositories.ReferrerRepository
}

func NewReferrerService(referrerRepo repositories.ReferrerRepository) ReferrerService {
	return &ReferrerServiceImpl{referrerRepo: referrerRepo}
}

func (s *ReferrerServiceImpl) Register(db *gorm.DB, callerWallet string, req *dto.RegisterReferrerRequest) (*dto.ReferrerResponse, error) {
	referrer := &models.Referrer{
		Address: callerWallet,
		Email:   strings.ToLower(req.Email),
	}
	if err := s.referrerRepo.Create(db, referrer); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyTaken) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, callerWallet)
}

func (s *ReferrerServiceImpl) Get(db *gorm.DB, address string) (*dto.ReferrerResponse, error) {
	referrer, err := s.referrerRepo.FindByAddress(db, address)
	if err != nil {
		if errors.Is(err, repositories.ErrReferrerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.ReferrerResponse{
		Address:   referrer.Address,
		Email:     referrer.Email,
		CreatedAt: referrer.CreatedAt,
	}, nil
}
