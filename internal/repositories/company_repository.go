package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	Create(db *gorm.DB, company *models.Company) error
	FindByAddress(db *gorm.DB, address string) (*models.Company, error)
	FindByAddressForUpdate(db *gorm.DB, address string) (*models.Company, error)
	Exists(db *gorm.DB, address string) (bool, error)
	AddToTotalEscrowed(db *gorm.DB, address string, amount int64) error
}

type CompanyRepositoryImpl struct{}

func NewCompanyRepository() CompanyRepository {
	return &CompanyRepositoryImpl{}
}

// Create регистрирует компанию. Повторная регистрация - no-op.
func (r *CompanyRepositoryImpl) Create(db *gorm.DB, company *models.Company) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(company).Error
}

func (r *CompanyRepositoryImpl) FindByAddress(db *gorm.DB, address string) (*models.Company, error) {
	var company models.Company
	if err := db.First(&company, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// FindByAddressForUpdate читает компанию под row-lock (SELECT ... FOR UPDATE)
func (r *CompanyRepositoryImpl) FindByAddressForUpdate(db *gorm.DB, address string) (*models.Company, error) {
	var company models.Company
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&company, "address = ?", address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepositoryImpl) Exists(db *gorm.DB, address string) (bool, error) {
	var count int64
	err := db.Model(&models.Company{}).Where("address = ?", address).Count(&count).Error
	return count > 0, err
}

// AddToTotalEscrowed наращивает справочный агрегат компании
func (r *CompanyRepositoryImpl) AddToTotalEscrowed(db *gorm.DB, address string, amount int64) error {
	return db.Model(&models.Company{}).
		Where("address = ?", address).
		UpdateColumn("total_escrowed", gorm.Expr("total_escrowed + ?", amount)).Error
}
