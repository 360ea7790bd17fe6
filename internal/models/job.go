package models

import "time"

// Job - вакансия с эскроу-залогом.
// ID последовательный, 1-indexed, никогда не переиспользуется.
// Все суммы - int64 в минимальных единицах токена.
type Job struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	CompanyAddress  string    `gorm:"size:42;not null;index"`
	BountyAmount    int64     `gorm:"not null"`
	Category        int       `gorm:"not null;default:0"`
	EscrowedBalance int64     `gorm:"not null"`
	Status          JobStatus `gorm:"type:varchar(10);not null;default:'open'"`
	CreatedAt       time.Time `gorm:"default:now()"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Referrals []Referral `gorm:"foreignKey:JobID"`
}
