package services

import (
	"frontdoor_backend/internal/email"
	"frontdoor_backend/internal/ledger"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService       AuthService
	CompanyService    CompanyService
	ReferrerService   ReferrerService
	JobService        JobService
	ReferralService   ReferralService
	HiringService     HiringService
	EscrowService     EscrowService
	ReputationService ReputationService
	FaucetService     FaucetService
	EventService      EventService
	EmailService      email.Provider
	Ledger            ledger.Client
	TreasuryAddress   string
}
