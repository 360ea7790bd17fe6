package dto

// ApproveRequest - разрешение казне списывать токены вызывающего.
// Обслуживается только memory-леджером; в продакшене approve делается
// напрямую во внешнем токен-сервисе.
type ApproveRequest struct {
	Amount int64 `json:"amount" validate:"required,gte=0"`
}

type BalanceResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type AllowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance int64  `json:"allowance"`
}
