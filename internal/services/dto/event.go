package dto

import (
	"time"

	"gorm.io/datatypes"
)

type EventQuery struct {
	Type     string `form:"type"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=500"`
}

type EventResponse struct {
	ID        int64          `json:"id"`
	Type      string         `json:"type"`
	Wallet    string         `json:"wallet"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

type EventListResponse struct {
	Events   []EventResponse `json:"events"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
