package services

import (
	"context"
	"errors"
	"time"

	"frontdoor_backend/internal/ledger"
	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EscrowService interface {
	// Disburse распределяет bounty между реферером и кандидатом.
	// Только владелец вакансии, только Hired, только после таймлока,
	// ровно один раз на реферал. Токены при этом не двигаются:
	// начисляются claimable-балансы, вывод - через Claim.
	Disburse(db *gorm.DB, companyWallet string, referralID int64) (*dto.DisburseResponse, error)

	// Claim выводит начисленный баланс вызывающего из казны.
	// Баланс обнуляется до перевода; отказ перевода откатывает обнуление.
	Claim(ctx context.Context, db *gorm.DB, callerWallet string) (*dto.ClaimResponse, error)

	GetClaimable(db *gorm.DB, address string) (*dto.ClaimableResponse, error)
}

type EscrowServiceImpl struct {
	referralRepo     repositories.ReferralRepository
	jobRepo          repositories.JobRepository
	claimableRepo    repositories.ClaimableRepository
	eventRepo        repositories.EventRepository
	ledger           ledger.Client
	cooldown         time.Duration
	referrerSharePct int64
}

func NewEscrowService(
	referralRepo repositories.ReferralRepository,
	jobRepo repositories.JobRepository,
	claimableRepo repositories.ClaimableRepository,
	eventRepo repositories.EventRepository,
	ledgerClient ledger.Client,
	cooldownDays int,
	referrerSharePct int,
) EscrowService {
	return &EscrowServiceImpl{
		referralRepo:     referralRepo,
		jobRepo:          jobRepo,
		claimableRepo:    claimableRepo,
		eventRepo:        eventRepo,
		ledger:           ledgerClient,
		cooldown:         time.Duration(cooldownDays) * 24 * time.Hour,
		referrerSharePct: int64(referrerSharePct),
	}
}

func (s *EscrowServiceImpl) Disburse(db *gorm.DB, companyWallet string, referralID int64) (*dto.DisburseResponse, error) {
	var resp *dto.DisburseResponse

	err := db.Transaction(func(tx *gorm.DB) error {
		// Порядок блокировок фиксирован: сначала реферал, потом вакансия
		referral, err := s.referralRepo.FindByIDForUpdate(tx, referralID)
		if err != nil {
			if errors.Is(err, repositories.ErrReferralNotFound) {
				return apperrors.ErrNotFound(err)
			}
			return apperrors.InternalError(err)
		}

		job, err := s.jobRepo.FindByIDForUpdate(tx, referral.JobID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if job.CompanyAddress != companyWallet {
			return apperrors.ErrNotJobOwner
		}

		if referral.Status == models.ReferralStatusDisbursed {
			return apperrors.ErrAlreadyDisbursed
		}
		if !models.CanTransition(referral.Status, models.ReferralStatusDisbursed) {
			return apperrors.ErrInvalidState
		}

		if referral.HiredAt == nil || time.Since(*referral.HiredAt) < s.cooldown {
			return apperrors.ErrCooldownNotElapsed
		}

		// Сиблинг по той же вакансии мог уже выбрать эскроу
		if job.EscrowedBalance < job.BountyAmount {
			return apperrors.ErrAlreadyDisbursed
		}

		referrerShare := job.BountyAmount * s.referrerSharePct / 100
		candidateShare := job.BountyAmount - referrerShare

		if referrerShare > 0 {
			if err := s.claimableRepo.Credit(tx, referral.ReferrerAddress, referrerShare); err != nil {
				return apperrors.InternalError(err)
			}
		}
		if candidateShare > 0 {
			// Hired подразумевает привязанный кошелек кандидата
			if referral.CandidateAddress == nil {
				return apperrors.ErrInvalidState
			}
			if err := s.claimableRepo.Credit(tx, *referral.CandidateAddress, candidateShare); err != nil {
				return apperrors.InternalError(err)
			}
		}

		job.EscrowedBalance -= job.BountyAmount
		if job.EscrowedBalance == 0 {
			job.Status = models.JobStatusClosed
		}
		if err := s.jobRepo.Save(tx, job); err != nil {
			return apperrors.InternalError(err)
		}

		now := time.Now()
		referral.DisbursedAt = &now
		referral.Status = models.ReferralStatusDisbursed
		if err := s.referralRepo.Save(tx, referral); err != nil {
			return apperrors.InternalError(err)
		}

		if err := emitEvent(tx, s.eventRepo, models.EventBountyDisbursed, companyWallet, map[string]interface{}{
			"referral_id":     referral.ID,
			"job_id":          job.ID,
			"referrer_share":  referrerShare,
			"candidate_share": candidateShare,
		}); err != nil {
			return apperrors.InternalError(err)
		}

		resp = &dto.DisburseResponse{
			ReferralID:      referral.ID,
			ReferrerShare:   referrerShare,
			CandidateShare:  candidateShare,
			EscrowRemaining: job.EscrowedBalance,
			JobClosed:       job.Status == models.JobStatusClosed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *EscrowServiceImpl) Claim(ctx context.Context, db *gorm.DB, callerWallet string) (*dto.ClaimResponse, error) {
	var resp *dto.ClaimResponse

	err := db.Transaction(func(tx *gorm.DB) error {
		amount, err := s.claimableRepo.GetForUpdate(tx, callerWallet)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if amount <= 0 {
			return apperrors.ErrNothingToClaim
		}

		// Сначала обнуление, потом перевод: повторный claim в гонке
		// упрется в залоченную нулевую строку
		if err := s.claimableRepo.Zero(tx, callerWallet); err != nil {
			return apperrors.InternalError(err)
		}

		if err := emitEvent(tx, s.eventRepo, models.EventRewardsClaimed, callerWallet, map[string]interface{}{
			"amount": amount,
		}); err != nil {
			return apperrors.InternalError(err)
		}

		if err := s.ledger.Transfer(ctx, callerWallet, amount); err != nil {
			logger.LedgerLog("transfer", "treasury", callerWallet, amount, err)
			if errors.Is(err, ledger.ErrInsufficientBalance) {
				return apperrors.ErrInsufficientBalance
			}
			return apperrors.InternalError(err)
		}

		resp = &dto.ClaimResponse{Address: callerWallet, Amount: amount}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *EscrowServiceImpl) GetClaimable(db *gorm.DB, address string) (*dto.ClaimableResponse, error) {
	amount, err := s.claimableRepo.Get(db, address)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ClaimableResponse{Address: address, Amount: amount}, nil
}
