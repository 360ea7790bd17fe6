package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FaucetRepository interface {
	// FindForUpdate читает запись выдач адреса под row-lock;
	// nil без ошибки, если адрес еще не обращался
	FindForUpdate(db *gorm.DB, address string) (*models.FaucetGrant, error)
	Upsert(db *gorm.DB, grant *models.FaucetGrant) error
}

type FaucetRepositoryImpl struct{}

func NewFaucetRepository() FaucetRepository {
	return &FaucetRepositoryImpl{}
}

func (r *FaucetRepositoryImpl) FindForUpdate(db *gorm.DB, address string) (*models.FaucetGrant, error) {
	var grant models.FaucetGrant
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&grant, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &grant, nil
}

func (r *FaucetRepositoryImpl) Upsert(db *gorm.DB, grant *models.FaucetGrant) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_request_at", "total_granted"}),
	}).Create(grant).Error
}
