package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок бизнес-логики домена
(jobs / referrals / escrow / faucet).
*/

// =========================================================================
// Фабричные функции (используются для оборачивания ошибок репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404)
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные (частые, статичные ошибки домена)
// =========================================================================

// ErrInvalidUserRole - операция не предусмотрена для роли пользователя.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrWeakPassword - пароль не проходит минимальные требования.
var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password is too weak",
	http.StatusBadRequest,
)

// ErrEmailAlreadyExists - email занят другим аккаунтом (auth).
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials - неверная пара email/пароль.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrWalletAlreadyBound - кошелек уже привязан к другому аккаунту.
var ErrWalletAlreadyBound = New(
	CodeAlreadyExists,
	"auth",
	"Wallet address already registered",
	http.StatusConflict,
)

// --- Registries ---

// ErrCompanyNotRegistered - адрес не зарегистрирован как компания.
var ErrCompanyNotRegistered = New(
	CodeForbidden,
	"company",
	"Address is not registered as a company",
	http.StatusForbidden,
)

// ErrReferrerNotRegistered - адрес не зарегистрирован как реферер.
var ErrReferrerNotRegistered = New(
	CodeForbidden,
	"referrer",
	"Address is not registered as a referrer",
	http.StatusForbidden,
)

// ErrEmailAlreadyRegistered - referrer email занят другим адресом.
var ErrEmailAlreadyRegistered = New(
	CodeAlreadyExists,
	"referrer",
	"Email already registered",
	http.StatusConflict,
)

// --- Jobs & escrow ---

// ErrInsufficientAllowance - компания не выдала approve на сумму bounty.
var ErrInsufficientAllowance = New(
	CodeInsufficientAllowance,
	"job",
	"Insufficient token allowance for bounty escrow",
	http.StatusPaymentRequired,
)

// ErrInsufficientBalance - на балансе компании не хватает токенов.
var ErrInsufficientBalance = New(
	CodeInsufficientBalance,
	"job",
	"Insufficient token balance for bounty escrow",
	http.StatusPaymentRequired,
)

// ErrJobNotOpen - вакансия закрыта, новые рефералы не принимаются.
var ErrJobNotOpen = New(
	CodeInvalidStatus,
	"job",
	"Job is not open",
	http.StatusConflict,
)

// --- Referrals & hiring workflow ---

// ErrReferralCodeMismatch - код или email не совпали при подтверждении.
var ErrReferralCodeMismatch = New(
	CodeCodeMismatch,
	"referral",
	"Referral code or candidate email does not match",
	http.StatusConflict,
)

// ErrInvalidState - переход из текущего статуса реферала запрещен.
var ErrInvalidState = New(
	CodeInvalidStatus,
	"referral",
	"Operation not permitted in the current referral state",
	http.StatusConflict,
)

// ErrNotJobOwner - вызывающая компания не владеет вакансией реферала.
var ErrNotJobOwner = New(
	CodeForbidden,
	"referral",
	"Caller is not the owning company of this job",
	http.StatusForbidden,
)

// --- Disbursement & claims ---

// ErrCooldownNotElapsed - 90-дневный таймлок после найма еще не истек.
var ErrCooldownNotElapsed = New(
	CodeCooldownNotElapsed,
	"escrow",
	"90 days are not completed yet",
	http.StatusConflict,
)

// ErrAlreadyDisbursed - bounty по этому рефералу/вакансии уже выплачен.
var ErrAlreadyDisbursed = New(
	CodeAlreadyDisbursed,
	"escrow",
	"Bounty already disbursed",
	http.StatusConflict,
)

// ErrNothingToClaim - у адреса нет начисленных наград.
var ErrNothingToClaim = New(
	CodeNothingToClaim,
	"escrow",
	"No rewards to claim",
	http.StatusConflict,
)

// --- Reputation ---

// ErrNoHireBetweenParties - стороны не связаны завершенным наймом.
var ErrNoHireBetweenParties = New(
	CodeInvalidOperation,
	"reputation",
	"No completed hire between rater and ratee",
	http.StatusForbidden,
)

// --- Faucet ---

// ErrFaucetCooldown - адрес уже запрашивал токены за последние сутки.
var ErrFaucetCooldown = New(
	CodeLimitExceeded,
	"faucet",
	"You can only request once per day",
	http.StatusTooManyRequests,
)
