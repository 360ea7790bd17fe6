package services

import (
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/repositories"
	"frontdoor_backend/internal/services/dto"
	"frontdoor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReputationService interface {
	// ScoreCandidate - оценка кандидата компанией. Доступна только парам,
	// связанным хотя бы одним наймом.
	ScoreCandidate(db *gorm.DB, companyWallet string, req *dto.ScoreCandidateRequest) error
	// ScoreCompany - оценка компании кандидатом, та же связь требуется
	ScoreCompany(db *gorm.DB, candidateWallet string, req *dto.ScoreCompanyRequest) error
	GetCandidateReputation(db *gorm.DB, address string) (*dto.ReputationResponse, error)
	GetCompanyReputation(db *gorm.DB, address string) (*dto.ReputationResponse, error)
}

type ReputationServiceImpl struct {
	reputationRepo repositories.ReputationRepository
	referralRepo   repositories.ReferralRepository
}

func NewReputationService(
	reputationRepo repositories.ReputationRepository,
	referralRepo repositories.ReferralRepository,
) ReputationService {
	return &ReputationServiceImpl{
		reputationRepo: reputationRepo,
		referralRepo:   referralRepo,
	}
}

func (s *ReputationServiceImpl) ScoreCandidate(db *gorm.DB, companyWallet string, req *dto.ScoreCandidateRequest) error {
	return s.score(db, companyWallet, req.CandidateAddress, companyWallet, req.CandidateAddress,
		models.ScoreCompanyToCandidate, req.Score)
}

func (s *ReputationServiceImpl) ScoreCompany(db *gorm.DB, candidateWallet string, req *dto.ScoreCompanyRequest) error {
	return s.score(db, req.CompanyAddress, candidateWallet, candidateWallet, req.CompanyAddress,
		models.ScoreCandidateToCompany, req.Score)
}

// score проверяет связь найма (company, candidate) и апсертит оценку rater -> ratee
func (s *ReputationServiceImpl) score(db *gorm.DB, company, candidate, rater, ratee string, direction models.ScoreDirection, value int) error {
	hired, err := s.referralRepo.ExistsBetween(db, company, candidate)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !hired {
		return apperrors.ErrNoHireBetweenParties
	}

	err = s.reputationRepo.Upsert(db, &models.ReputationScore{
		RaterAddress: rater,
		RateeAddress: ratee,
		Direction:    direction,
		Score:        value,
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ReputationServiceImpl) GetCandidateReputation(db *gorm.DB, address string) (*dto.ReputationResponse, error) {
	return s.reputation(db, address, models.ScoreCompanyToCandidate)
}

func (s *ReputationServiceImpl) GetCompanyReputation(db *gorm.DB, address string) (*dto.ReputationResponse, error) {
	return s.reputation(db, address, models.ScoreCandidateToCompany)
}

func (s *ReputationServiceImpl) reputation(db *gorm.DB, address string, direction models.ScoreDirection) (*dto.ReputationResponse, error) {
	avg, count, err := s.reputationRepo.AverageFor(db, address, direction)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// Неоцененный адрес - это нули, не 404
	return &dto.ReputationResponse{
		Address:      address,
		AverageScore: avg,
		TotalScores:  count,
	}, nil
}
