package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"frontdoor_backend/internal/email"
	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReferralService interface {
	// Register создает реферал в статусе Pending и отправляет кандидату
	// письмо с кодом. Плейнтекст кода живет только в этом письме.
	Register(db *gorm.DB, referrerWallet string, req *dto.RegisterReferralRequest) (*dto.ReferralResponse, error)
	Get(db *gorm.DB, id int64) (*dto.ReferralResponse, error)
	GetJobReferrals(db *gorm.DB, jobID int64) (*dto.JobReferralsResponse, error)
}

type ReferralServiceImpl struct {
	referralRepo repositories.ReferralRepository
	referrerRepo repositories.ReferrerRepository
	jobRepo      repositories.JobRepository
	eventRepo    repositories.EventRepository
	emailer      email.Provider
}

func NewReferralService(
	referralRepo repositories.ReferralRepository,
	referrerRepo repositories.ReferrerRepository,
	jobRepo repositories.JobRepository,
	eventRepo repositories.EventRepository,
	emailer email.Provider,
) ReferralService {
	return &ReferralServiceImpl{
		referralRepo: referralRepo,
		referrerRepo: referrerRepo,
		jobRepo:      jobRepo,
		eventRepo:    eventRepo,
		emailer:      emailer,
	}
}

// hashReferralCode - каноническое преобразование кода перед хранением.
// Дайджест считается от нормализованного hex-представления.
func hashReferralCode(code string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(code)))
	return hex.EncodeToString(sum[:])
}

func (s *ReferralServiceImpl) Register(db *gorm.DB, referrerWallet string, req *dto.RegisterReferralRequest) (*dto.ReferralResponse, error) {
	referrer, err := s.referrerRepo.FindByAddress(db, referrerWallet)
	if err != nil {
		if errors.Is(err, repositories.ErrReferrerNotFound) {
			return nil, apperrors.ErrReferrerNotRegistered
		}
		return nil, apperrors.InternalError(err)
	}

	referral := &models.Referral{
		JobID:           req.JobID,
		ReferrerAddress: referrerWallet,
		CandidateEmail:  strings.ToLower(req.CandidateEmail),
		CodeHash:        hashReferralCode(req.ReferralCode),
		Status:          models.ReferralStatusPending,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		job, err := s.jobRepo.FindByID(tx, req.JobID)
		if err != nil {
			if errors.Is(err, repositories.ErrJobNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}
		if job.Status != models.JobStatusOpen {
			return apperrors.ErrJobNotOpen
		}

		if err := s.referralRepo.Create(tx, referral); err != nil {
			return apperrors.InternalError(err)
		}
		return emitEvent(tx, s.eventRepo, models.EventReferralRegistered, referrerWallet, map[string]interface{}{
			"referral_id": referral.ID,
			"job_id":      req.JobID,
		})
	})
	if err != nil {
		return nil, err
	}

	// Письмо - вне транзакции: отказ SMTP не откатывает реферал,
	// реферер может переслать код кандидату сам
	go func() {
		err := s.emailer.SendTemplate(
			[]string{referral.CandidateEmail},
			"You have been referred on FrontDoor",
			email.TemplateReferralInvite,
			email.TemplateData{
				"ReferrerEmail": referrer.Email,
				"JobID":         referral.JobID,
				"ReferralCode":  req.ReferralCode,
			},
		)
		if err != nil {
			logger.WithError(err).Warn("failed to send referral invite email")
		}
	}()

	return referralToResponse(referral), nil
}

func (s *ReferralServiceImpl) Get(db *gorm.DB, id int64) (*dto.ReferralResponse, error) {
	referral, err := s.referralRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrReferralNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return referralToResponse(referral), nil
}

func (s *ReferralServiceImpl) GetJobReferrals(db *gorm.DB, jobID int64) (*dto.JobReferralsResponse, error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	ids, err := s.referralRepo.FindIDsByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.JobReferralsResponse{JobID: jobID, ReferralIDs: ids}, nil
}

func referralToResponse(r *models.Referral) *dto.ReferralResponse {
	return &dto.ReferralResponse{
		ID:               r.ID,
		JobID:            r.JobID,
		ReferrerAddress:  r.ReferrerAddress,
		CandidateEmail:   r.CandidateEmail,
		CandidateAddress: r.CandidateAddress,
		Status:           r.Status,
		HiredAt:          r.HiredAt,
		DisbursedAt:      r.DisbursedAt,
		CreatedAt:        r.CreatedAt,
	}
}
