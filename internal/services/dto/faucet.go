package dto

type FaucetRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type FaucetResponse struct {
	Address string `json:"address"`
	// Сумма после clamp до максимума
	Granted int64 `json:"granted"`
}
