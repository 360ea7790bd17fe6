package services

import (
	"errors"

	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	// Register регистрирует адрес вызывающего как компанию. Идемпотентно.
	Register(db *gorm.DB, callerWallet string) (*dto.CompanyResponse, error)
	Get(db *gorm.DB, address string) (*dto.CompanyResponse, error)
	// GetJobs возвращает id вакансий компании в порядке создания
	GetJobs(db *gorm.DB, address string) (*dto.CompanyJobsResponse, error)
}

type CompanyServiceImpl struct {
	companyRepo repositories.CompanyRepository
	jobRepo     repositories.JobRepository
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	jobRepo repositories.JobRepository,
) CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo, jobRepo: jobRepo}
}

func (s *CompanyServiceImpl) Register(db *gorm.DB, callerWallet string) (*dto.CompanyResponse, error) {
	if err := s.companyRepo.Create(db, &models.Company{Address: callerWallet}); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, callerWallet)
}

func (s *CompanyServiceImpl) Get(db *gorm.DB, address string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByAddress(db, address)
	if err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return &dto.CompanyResponse{
		Address:       company.Address,
		TotalEscrowed: company.TotalEscrowed,
		CreatedAt:     company.CreatedAt,
	}, nil
}

func (s *CompanyServiceImpl) GetJobs(db *gorm.DB, address string) (*dto.CompanyJobsResponse, error) {
	if _, err := s.companyRepo.FindByAddress(db, address); err != nil {
		if errors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	ids, err := s.jobRepo.FindIDsByCompany(db, address)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.CompanyJobsResponse{Address: address, JobIDs: ids}, nil
}
