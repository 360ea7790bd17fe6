package dto

import "time"

// Registration needs no body: the caller's wallet identifies the company.

type CompanyResponse struct {
	Address       string    `json:"address"`
	TotalEscrowed int64     `json:"total_escrowed"`
	CreatedAt     time.Time `json:"created_at"`
}

type CompanyJobsResponse struct {
	Address string  `json:"address"`
	JobIDs  []int64 `json:"job_ids"`
}
