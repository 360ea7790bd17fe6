package models

import "time"

// FaucetGrant - учет выдач тестовых токенов, ключ - адрес.
// Один запрос в сутки на адрес.
type FaucetGrant struct {
	Address       string    `gorm:"primaryKey;size:42"`
	LastRequestAt time.Time `gorm:"not null"`
	TotalGranted  int64     `gorm:"not null;default:0"`
}
