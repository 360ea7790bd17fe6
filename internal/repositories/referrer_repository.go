package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReferrerNotFound  = errors.New("referrer not found")
	ErrEmailAlreadyTaken = errors.New("email already registered to another address")
)

type ReferrerRepository interface {
	Create(db *gorm.DB, referrer *models.Referrer) error
	FindByAddress(db *gorm.DB, address string) (*models.Referrer, error)
	FindByEmail(db *gorm.DB, email string) (*models.Referrer, error)
	Exists(db *gorm.DB, address string) (bool, error)
}

type ReferrerRepositoryImpl struct{}

func NewReferrerRepository() ReferrerRepository {
	return &ReferrerRepositoryImpl{}
}

// Create привязывает email к адресу. Привязка необратима:
// занятый другим адресом email - ошибка без какой-либо мутации,
// повторная регистрация той же пары - no-op.
func (r *ReferrerRepositoryImpl) Create(db *gorm.DB, referrer *models.Referrer) error {
	existing, err := r.FindByEmail(db, referrer.Email)
	if err != nil && !errors.Is(err, ErrReferrerNotFound) {
		return err
	}
	if existing != nil {
		if existing.Address == referrer.Address {
			return nil
		}
		return ErrEmailAlreadyTaken
	}

	// Адрес мог быть зарегистрирован с другим email - тоже конфликт
	if _, err := r.FindByAddress(db, referrer.Address); err == nil {
		return ErrEmailAlreadyTaken
	} else if !errors.Is(err, ErrReferrerNotFound) {
		return err
	}

	return db.Create(referrer).Error
}

func (r *ReferrerRepositoryImpl) FindByAddress(db *gorm.DB, address string) (*models.Referrer, error) {
	var referrer models.Referrer
	if err := db.First(&referrer, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferrerNotFound
		}
		return nil, err
	}
	return &referrer, nil
}

func (r *ReferrerRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.Referrer, error) {
	var referrer models.Referrer
	if err := db.First(&referrer, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferrerNotFound
		}
		return nil, err
	}
	return &referrer, nil
}

func (r *ReferrerRepositoryImpl) Exists(db *gorm.DB, address string) (bool, error) {
	var count int64
	err := db.Model(&models.Referrer{}).Where("address = ?", address).Count(&count).Error
	return count > 0, err
}
