package dto

import (
	"time"

	"frontdoor_backend/internal/models"
)

type RegisterReferralRequest struct {
	JobID          int64  `json:"job_id" validate:"required,gt=0"`
	CandidateEmail string `json:"candidate_email" validate:"required,email"`
	// Код генерирует реферер и передает кандидату (мы дублируем его письмом).
	// Храним только digest.
	ReferralCode string `json:"referral_code" validate:"required,hexcode"`
}

type ConfirmReferralRequest struct {
	ReferralCode   string `json:"referral_code" validate:"required,hexcode"`
	CandidateEmail string `json:"candidate_email" validate:"required,email"`
}

type ReferralResponse struct {
	ID               int64                 `json:"id"`
	JobID            int64                 `json:"job_id"`
	ReferrerAddress  string                `json:"referrer_address"`
	CandidateEmail   string                `json:"candidate_email"`
	CandidateAddress *string               `json:"candidate_address,omitempty"`
	Status           models.ReferralStatus `json:"status"`
	HiredAt          *time.Time            `json:"hired_at,omitempty"`
	DisbursedAt      *time.Time            `json:"disbursed_at,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}
