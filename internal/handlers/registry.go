package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	CompanyHandler    *CompanyHandler
	ReferrerHandler   *ReferrerHandler
	JobHandler        *JobHandler
	ReferralHandler   *ReferralHandler
	EscrowHandler     *EscrowHandler
	ReputationHandler *ReputationHandler
	FaucetHandler     *FaucetHandler
	EventHandler      *EventHandler
	LedgerHandler     *LedgerHandler
}
