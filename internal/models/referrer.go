package models

import "time"

// Referrer - запись реестра рефереров.
// Email глобально уникален: однажды привязанный к адресу,
// он не может быть перепривязан к другому.
type Referrer struct {
	Address   string    `gorm:"primaryKey;size:42"`
	Email     string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"default:now()"`
}
