package dto

import "time"

type RegisterReferrerRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ReferrerResponse struct {
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
