package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrReferralNotFound = errors.New("referral not found")

type ReferralRepository interface {
	Create(db *gorm.DB, referral *models.Referral) error
	FindByID(db *gorm.DB, id int64) (*models.Referral, error)
	FindByIDForUpdate(db *gorm.DB, id int64) (*models.Referral, error)
	FindIDsByJob(db *gorm.DB, jobID int64) ([]int64, error)
	Save(db *gorm.DB, referral *models.Referral) error
	// ExistsBetween сообщает, есть ли между компанией и кандидатом
	// реферал, достигший хотя бы статуса Hired
	ExistsBetween(db *gorm.DB, companyAddress, candidateAddress string) (bool, error)
}

type ReferralRepositoryImpl struct{}

func NewReferralRepository() ReferralRepository {
	return &ReferralRepositoryImpl{}
}

func (r *ReferralRepositoryImpl) Create(db *gorm.DB, referral *models.Referral) error {
	return db.Create(referral).Error
}

func (r *ReferralRepositoryImpl) FindByID(db *gorm.DB, id int64) (*models.Referral, error) {
	var referral models.Referral
	if err := db.First(&referral, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralNotFound
		}
		return nil, err
	}
	return &referral, nil
}

// FindByIDForUpdate читает реферал под row-lock. Все переходы статуса
// идут только через залоченную строку.
func (r *ReferralRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id int64) (*models.Referral, error) {
	var referral models.Referral
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&referral, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReferralNotFound
		}
		return nil, err
	}
	return &referral, nil
}

// FindIDsByJob возвращает id рефералов вакансии в порядке создания
func (r *ReferralRepositoryImpl) FindIDsByJob(db *gorm.DB, jobID int64) ([]int64, error) {
	var ids []int64
	err := db.Model(&models.Referral{}).
		Where("job_id = ?", jobID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *ReferralRepositoryImpl) Save(db *gorm.DB, referral *models.Referral) error {
	return db.Save(referral).Error
}

func (r *ReferralRepositoryImpl) ExistsBetween(db *gorm.DB, companyAddress, candidateAddress string) (bool, error) {
	var count int64
	err := db.Model(&models.Referral{}).
		Joins("JOIN jobs ON jobs.id = referrals.job_id").
		Where("jobs.company_address = ?", companyAddress).
		Where("referrals.candidate_address = ?", candidateAddress).
		Where("referrals.status IN ?", []models.ReferralStatus{
			models.ReferralStatusHired,
			models.ReferralStatusDisbursed,
		}).
		Count(&count).Error
	return count > 0, err
}
