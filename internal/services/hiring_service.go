package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"frontdoor_backend/internal/config"
	"frontdoor_backend/internal/email"
	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type HiringService interface {
	// Confirm сверяет код и email кандидата и привязывает его кошелек.
	// Pending -> Confirmed. Несовпадение не меняет ничего: код остается
	// живым, подтверждение можно повторить.
	Confirm(db *gorm.DB, candidateWallet string, referralID int64, req *dto.ConfirmReferralRequest) (*dto.ReferralResponse, error)
	// Hire фиксирует найм и запускает таймлок выплаты.
	// Confirmed -> Hired, только владелец вакансии.
	Hire(db *gorm.DB, companyWallet string, referralID int64) (*dto.ReferralResponse, error)
}

type HiringServiceImpl struct {
	referralRepo repositories.ReferralRepository
	jobRepo      repositories.JobRepository
	eventRepo    repositories.EventRepository
	emailer      email.Provider
}

func NewHiringService(
	referralRepo repositories.ReferralRepository,
	jobRepo repositories.JobRepository,
	eventRepo repositories.EventRepository,
	emailer email.Provider,
) HiringService {
	return &HiringServiceImpl{
		referralRepo: referralRepo,
		jobRepo:      jobRepo,
		eventRepo:    eventRepo,
		emailer:      emailer,
	}
}

func (s *HiringServiceImpl) Confirm(db *gorm.DB, candidateWallet string, referralID int64, req *dto.ConfirmReferralRequest) (*dto.ReferralResponse, error) {
	var referral *models.Referral

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		referral, err = s.referralRepo.FindByIDForUpdate(tx, referralID)
		if err != nil {
			if errors.Is(err, repositories.ErrReferralNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}

		if !models.CanTransition(referral.Status, models.ReferralStatusConfirmed) {
			return apperrors.ErrInvalidState
		}

		// Сравнение за постоянное время: и дайджест кода, и email.
		// Ответ не выдает, какая из двух частей не совпала.
		codeOK := subtle.ConstantTimeCompare(
			[]byte(hashReferralCode(req.ReferralCode)),
			[]byte(referral.CodeHash),
		) == 1
		emailOK := subtle.ConstantTimeCompare(
			[]byte(strings.ToLower(req.CandidateEmail)),
			[]byte(referral.CandidateEmail),
		) == 1
		if !codeOK || !emailOK {
			return apperrors.ErrReferralCodeMismatch
		}

		referral.CandidateAddress = &candidateWallet
		referral.Status = models.ReferralStatusConfirmed
		if err := s.referralRepo.Save(tx, referral); err != nil {
			return apperrors.InternalError(err)
		}

		return emitEvent(tx, s.eventRepo, models.EventReferralConfirmed, candidateWallet, map[string]interface{}{
			"referral_id": referral.ID,
			"job_id":      referral.JobID,
		})
	})
	if err != nil {
		return nil, err
	}
	return referralToResponse(referral), nil
}

func (s *HiringServiceImpl) Hire(db *gorm.DB, companyWallet string, referralID int64) (*dto.ReferralResponse, error) {
	var referral *models.Referral

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		referral, err = s.referralRepo.FindByIDForUpdate(tx, referralID)
		if err != nil {
			if errors.Is(err, repositories.ErrReferralNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}

		job, err := s.jobRepo.FindByID(tx, referral.JobID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if job.CompanyAddress != companyWallet {
			return apperrors.ErrNotJobOwner
		}

		if !models.CanTransition(referral.Status, models.ReferralStatusHired) {
			return apperrors.ErrInvalidState
		}

		now := time.Now()
		referral.HiredAt = &now
		referral.Status = models.ReferralStatusHired
		if err := s.referralRepo.Save(tx, referral); err != nil {
			return apperrors.InternalError(err)
		}

		return emitEvent(tx, s.eventRepo, models.EventCandidateHired, companyWallet, map[string]interface{}{
			"referral_id": referral.ID,
			"job_id":      referral.JobID,
		})
	})
	if err != nil {
		return nil, err
	}

	go func() {
		err := s.emailer.SendTemplate(
			[]string{referral.CandidateEmail},
			"You are hired!",
			email.TemplateHireNotice,
			email.TemplateData{
				"JobID":        referral.JobID,
				"CooldownDays": config.GetConfig().Bounty.CooldownDays,
			},
		)
		if err != nil {
			logger.WithError(err).Warn("failed to send hire notice email")
		}
	}()

	return referralToResponse(referral), nil
}
