package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// Общие, не-доменные коды ошибок
const (
	// Системные и неизвестные ошибки
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Общие ошибки бизнес-логики
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeLimitExceeded    ErrorCode = "LIMIT_EXCEEDED"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Аутентификация и Авторизация
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Доменные коды (escrow / referral / ledger)
	CodeInsufficientAllowance ErrorCode = "INSUFFICIENT_ALLOWANCE"
	CodeInsufficientBalance   ErrorCode = "INSUFFICIENT_BALANCE"
	CodeCodeMismatch          ErrorCode = "REFERRAL_CODE_MISMATCH"
	CodeCooldownNotElapsed    ErrorCode = "COOLDOWN_NOT_ELAPSED"
	CodeAlreadyDisbursed      ErrorCode = "ALREADY_DISBURSED"
	CodeNothingToClaim        ErrorCode = "NOTHING_TO_CLAIM"
)
