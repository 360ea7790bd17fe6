package models

import "time"

// ClaimableBalance - начисленная, но еще не востребованная награда адреса.
// Заполняется только при disbursement, обнуляется при claim,
// никогда не бывает отрицательной.
type ClaimableBalance struct {
	Address   string    `gorm:"primaryKey;size:42"`
	Amount    int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
