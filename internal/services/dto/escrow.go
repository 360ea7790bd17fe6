package dto

type DisburseResponse struct {
	ReferralID      int64 `json:"referral_id"`
	ReferrerShare   int64 `json:"referrer_share"`
	CandidateShare  int64 `json:"candidate_share"`
	EscrowRemaining int64 `json:"escrow_remaining"`
	JobClosed       bool  `json:"job_closed"`
}

type ClaimResponse struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}

type ClaimableResponse struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
}
