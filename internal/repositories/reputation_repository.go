package repositories

import (
	"errors"

	"frontdoor_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReputationRepository interface {
	// Upsert записывает оценку пары (rater, ratee, direction),
	// перезаписывая предыдущую
	Upsert(db *gorm.DB, score *models.ReputationScore) error
	// Find возвращает оценку пары; 0 для не выставленных пар
	Find(db *gorm.DB, rater, ratee string, direction models.ScoreDirection) (int, error)
	// AverageFor возвращает среднюю оценку адреса в данном направлении
	AverageFor(db *gorm.DB, ratee string, direction models.ScoreDirection) (float64, int64, error)
}

type ReputationRepositoryImpl struct{}

func NewReputationRepository() ReputationRepository {
	return &ReputationRepositoryImpl{}
}

func (r *ReputationRepositoryImpl) Upsert(db *gorm.DB, score *models.ReputationScore) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "rater_address"},
			{Name: "ratee_address"},
			{Name: "direction"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
	}).Create(score).Error
}

func (r *ReputationRepositoryImpl) Find(db *gorm.DB, rater, ratee string, direction models.ScoreDirection) (int, error) {
	var score models.ReputationScore
	err := db.First(&score,
		"rater_address = ? AND ratee_address = ? AND direction = ?",
		rater, ratee, direction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return score.Score, nil
}

func (r *ReputationRepositoryImpl) AverageFor(db *gorm.DB, ratee string, direction models.ScoreDirection) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := db.Model(&models.ReputationScore{}).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("ratee_address = ? AND direction = ?", ratee, direction).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
