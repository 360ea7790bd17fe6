package models

import "time"

// Company - запись реестра работодателей, ключ - адрес кошелька.
// Создается один раз, повторная регистрация - no-op.
type Company struct {
	Address   string    `gorm:"primaryKey;size:42"`
	CreatedAt time.Time `gorm:"default:now()"`
	// Сумма всех эскроу по вакансиям компании.
	// Справочный агрегат, не авторитативное состояние эскроу.
	TotalEscrowed int64 `gorm:"not null;default:0"`

	Jobs []Job `gorm:"foreignKey:CompanyAddress"`
}
