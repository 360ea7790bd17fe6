package models

import "time"

// Referral - реферал кандидата на вакансию.
// Хранится только SHA-256 дайджест кода: плейнтекст никогда не пишется
// в БД, ответы API или логи. Подтверждение сравнивает дайджесты.
type Referral struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	JobID           int64          `gorm:"not null;index"`
	ReferrerAddress string         `gorm:"size:42;not null;index"`
	CandidateEmail  string         `gorm:"not null"`
	CodeHash        string         `gorm:"size:64;not null"`
	Status          ReferralStatus `gorm:"type:varchar(12);not null;default:'pending'"`
	// Адрес кандидата, привязывается при подтверждении
	CandidateAddress *string `gorm:"size:42"`
	// Момент найма - старт 90-дневного таймлока
	HiredAt     *time.Time
	DisbursedAt *time.Time
	CreatedAt   time.Time `gorm:"default:now()"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
