package dto

type ScoreCandidateRequest struct {
	CandidateAddress string `json:"candidate_address" validate:"required,wallet"`
	Score            int    `json:"score" validate:"required,min=1,max=5"`
}

type ScoreCompanyRequest struct {
	CompanyAddress string `json:"company_address" validate:"required,wallet"`
	Score          int    `json:"score" validate:"required,min=1,max=5"`
}

type ReputationResponse struct {
	Address      string  `json:"address"`
	AverageScore float64 `json:"average_score"`
	TotalScores  int64   `json:"total_scores"`
}

// PairScoreResponse - оценка конкретной пары, 0 если не выставлена
type PairScoreResponse struct {
	RaterAddress string `json:"rater_address"`
	RateeAddress string `json:"ratee_address"`
	Score        int    `json:"score"`
}
