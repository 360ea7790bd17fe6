package models

import "time"

type ScoreDirection string

const (
	// Компания оценивает кандидата
	ScoreCompanyToCandidate ScoreDirection = "company_to_candidate"
	// Кандидат оценивает компанию
	ScoreCandidateToCompany ScoreDirection = "candidate_to_company"
)

// ReputationScore - однонаправленная оценка между компанией и кандидатом.
// Две независимые связи (по одной на направление), взаимность не требуется.
type ReputationScore struct {
	RaterAddress string         `gorm:"primaryKey;size:42"`
	RateeAddress string         `gorm:"primaryKey;size:42"`
	Direction    ScoreDirection `gorm:"primaryKey;type:varchar(24)"`
	Score        int            `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}
