package models

import (
	"time"

	"gorm.io/datatypes"
)

type EventType string

const (
	EventJobCreated         EventType = "JobCreated"
	EventReferralRegistered EventType = "ReferralRegistered"
	EventReferralConfirmed  EventType = "ReferralConfirmed"
	EventCandidateHired     EventType = "CandidateHired"
	EventBountyDisbursed    EventType = "BountyDisbursed"
	EventRewardsClaimed     EventType = "RewardsClaimed"
)

// Event - сигнал для внешних наблюдателей (off-chain индексация).
// Пишется в той же транзакции, что и породившая его мутация,
// внутри ядра никогда не читается.
type Event struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Type      EventType      `gorm:"type:varchar(32);not null;index"`
	Wallet    string         `gorm:"size:42;not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"default:now();index"`
}
