package services

import (
	"context"
	"errors"

	"frontdoor_backend/internal/ledger"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	// Create публикует вакансию и забирает bounty в эскроу одним шагом.
	// Частичного эскроу не бывает: либо вакансия с полным залогом, либо ничего.
	Create(ctx context.Context, db *gorm.DB, companyWallet string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Get(db *gorm.DB, id int64) (*dto.JobResponse, error)
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	companyRepo repositories.CompanyRepository
	eventRepo   repositories.EventRepository
	ledger      ledger.Client
	treasury    string
}

func NewJobService(
	jobRepo repositories.JobRepository,
	companyRepo repositories.CompanyRepository,
	eventRepo repositories.EventRepository,
	ledgerClient ledger.Client,
	treasury string,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
		eventRepo:   eventRepo,
		ledger:      ledgerClient,
		treasury:    treasury,
	}
}

func (s *JobServiceImpl) Create(ctx context.Context, db *gorm.DB, companyWallet string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	registered, err := s.companyRepo.Exists(db, companyWallet)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !registered {
		return nil, apperrors.ErrCompanyNotRegistered
	}

	allowance, err := s.ledger.Allowance(ctx, companyWallet, s.treasury)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if allowance < req.BountyAmount {
		return nil, apperrors.ErrInsufficientAllowance
	}

	job := &models.Job{
		CompanyAddress:  companyWallet,
		BountyAmount:    req.BountyAmount,
		Category:        req.Category,
		EscrowedBalance: req.BountyAmount,
		Status:          models.JobStatusOpen,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.jobRepo.Create(tx, job); err != nil {
			return apperrors.InternalError(err)
		}
		if err := s.companyRepo.AddToTotalEscrowed(tx, companyWallet, req.BountyAmount); err != nil {
			return apperrors.InternalError(err)
		}
		if err := emitEvent(tx, s.eventRepo, models.EventJobCreated, companyWallet, map[string]interface{}{
			"job_id":        job.ID,
			"bounty_amount": req.BountyAmount,
			"category":      req.Category,
		}); err != nil {
			return apperrors.InternalError(err)
		}

		// Перевод токенов - последним: его отказ откатывает все записи,
		// и вакансия без залога не появится
		if err := s.ledger.TransferFrom(ctx, companyWallet, s.treasury, req.BountyAmount); err != nil {
			switch {
			case errors.Is(err, ledger.ErrInsufficientBalance):
				return apperrors.ErrInsufficientBalance
			case errors.Is(err, ledger.ErrInsufficientAllowance):
				return apperrors.ErrInsufficientAllowance
			}
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return jobToResponse(job), nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, id int64) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return jobToResponse(job), nil
}

func jobToResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:              job.ID,
		CompanyAddress:  job.CompanyAddress,
		BountyAmount:    job.BountyAmount,
		Category:        job.Category,
		EscrowedBalance: job.EscrowedBalance,
		Status:          job.Status,
		CreatedAt:       job.CreatedAt,
	}
}
