package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimableRepository interface {
	// Get возвращает текущий claimable адреса, 0 если записи нет
	Get(db *gorm.DB, address string) (int64, error)
	// GetForUpdate читает баланс под row-lock; отсутствие записи - это 0
	GetForUpdate(db *gorm.DB, address string) (int64, error)
	// Credit начисляет amount адресу (upsert с инкрементом)
	Credit(db *gorm.DB, address string, amount int64) error
	// Zero обнуляет баланс адреса
	Zero(db *gorm.DB, address string) error
}

type ClaimableRepositoryImpl struct{}

func NewClaimableRepository() ClaimableRepository {
	return &ClaimableRepositoryImpl{}
}

func (r *ClaimableRepositoryImpl) Get(db *gorm.DB, address string) (int64, error) {
	var cb models.ClaimableBalance
	if err := db.First(&cb, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return cb.Amount, nil
}

func (r *ClaimableRepositoryImpl) GetForUpdate(db *gorm.DB, address string) (int64, error) {
	var cb models.ClaimableBalance
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&cb, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return cb.Amount, nil
}

func (r *ClaimableRepositoryImpl) Credit(db *gorm.DB, address string, amount int64) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"amount": gorm.Expr("claimable_balances.amount + ?", amount)}),
	}).Create(&models.ClaimableBalance{Address: address, Amount: amount}).Error
}

func (r *ClaimableRepositoryImpl) Zero(db *gorm.DB, address string) error {
	return db.Model(&models.ClaimableBalance{}).
		Where("address = ?", address).
		UpdateColumn("amount", 0).Error
}
