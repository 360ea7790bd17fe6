package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id int64) (*models.Job, error)
	FindByIDForUpdate(db *gorm.DB, id int64) (*models.Job, error)
	FindIDsByCompany(db *gorm.DB, companyAddress string) ([]int64, error)
	Save(db *gorm.DB, job *models.Job) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id int64) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindByIDForUpdate читает вакансию под row-lock. Обязателен на всех
// путях, которые трогают escrowed_balance.
func (r *JobRepositoryImpl) FindByIDForUpdate(db *gorm.DB, id int64) (*models.Job, error) {
	var job models.Job
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindIDsByCompany возвращает id вакансий компании в порядке создания
func (r *JobRepositoryImpl) FindIDsByCompany(db *gorm.DB, companyAddress string) ([]int64, error) {
	var ids []int64
	err := db.Model(&models.Job{}).
		Where("company_address = ?", companyAddress).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepositoryImpl) Save(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}
