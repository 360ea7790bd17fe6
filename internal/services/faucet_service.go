package services

import (
	"context"
	"time"

	"frontdoor_backend/internal/ledger"
	"frontdoor_backend/internal/logger"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FaucetService interface {
	// Request выдает тестовые токены: сумма срезается до максимума,
	// один запрос на адрес в сутки
	Request(ctx context.Context, db *gorm.DB, callerWallet string, req *dto.FaucetRequest) (*dto.FaucetResponse, error)
}

type FaucetServiceImpl struct {
	faucetRepo repositories.FaucetRepository
	ledger     ledger.Client
	maxAmount  int64
	cooldown   time.Duration
}

func NewFaucetService(
	faucetRepo repositories.FaucetRepository,
	ledgerClient ledger.Client,
	maxAmount int64,
	cooldownHours int,
) FaucetService {
	return &FaucetServiceImpl{
		faucetRepo: faucetRepo,
		ledger:     ledgerClient,
		maxAmount:  maxAmount,
		cooldown:   time.Duration(cooldownHours) * time.Hour,
	}
}

func (s *FaucetServiceImpl) Request(ctx context.Context, db *gorm.DB, callerWallet string, req *dto.FaucetRequest) (*dto.FaucetResponse, error) {
	amount := req.Amount
	if amount > s.maxAmount {
		amount = s.maxAmount
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		grant, err := s.faucetRepo.FindForUpdate(tx, callerWallet)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if grant != nil && time.Since(grant.LastRequestAt) < s.cooldown {
			return apperrors.ErrFaucetCooldown
		}

		total := amount
		if grant != nil {
			total += grant.TotalGranted
		}
		err = s.faucetRepo.Upsert(tx, &models.FaucetGrant{
			Address:       callerWallet,
			LastRequestAt: time.Now(),
			TotalGranted:  total,
		})
		if err != nil {
			return apperrors.InternalError(err)
		}

		if err := s.ledger.Mint(ctx, callerWallet, amount); err != nil {
			logger.LedgerLog("mint", "", callerWallet, amount, err)
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.FaucetResponse{Address: callerWallet, Granted: amount}, nil
}
