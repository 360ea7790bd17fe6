package dto

import (
	"time"

	"frontdoor_backend/internal/models"
)

type CreateJobRequest struct {
	BountyAmount int64 `json:"bounty_amount" validate:"required,gt=0"`
	Category     int   `json:"category" validate:"min=0"`
}

type JobResponse struct {
	ID              int64            `json:"id"`
	CompanyAddress  string           `json:"company_address"`
	BountyAmount    int64            `json:"bounty_amount"`
	Category        int              `json:"category"`
	EscrowedBalance int64            `json:"escrowed_balance"`
	Status          models.JobStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}

type JobReferralsResponse struct {
	JobID       int64   `json:"job_id"`
	ReferralIDs []int64 `json:"referral_ids"`
}
