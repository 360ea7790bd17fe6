package models

type UserStatus string
type UserRole string
type JobStatus string
type ReferralStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleCompany   UserRole = "company"
	UserRoleReferrer  UserRole = "referrer"
	UserRoleCandidate UserRole = "candidate"
	UserRoleAdmin     UserRole = "admin"

	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	ReferralStatusPending   ReferralStatus = "pending"
	ReferralStatusConfirmed ReferralStatus = "confirmed"
	ReferralStatusHired     ReferralStatus = "hired"
	ReferralStatusDisbursed ReferralStatus = "disbursed"
)

// referralOrder задает единственный допустимый порядок статусов реферала.
// Статус может только двигаться вперед на один шаг, без пропусков и откатов.
var referralOrder = map[ReferralStatus]int{
	ReferralStatusPending:   0,
	ReferralStatusConfirmed: 1,
	ReferralStatusHired:     2,
	ReferralStatusDisbursed: 3,
}

// CanTransition сообщает, разрешен ли переход from -> to.
// Единая точка проверки для всего hiring workflow.
func CanTransition(from, to ReferralStatus) bool {
	fromOrd, okFrom := referralOrder[from]
	toOrd, okTo := referralOrder[to]
	if !okFrom || !okTo {
		return false
	}
	return toOrd == fromOrd+1
}

// IsTerminal сообщает, является ли статус конечным.
func (s ReferralStatus) IsTerminal() bool {
	return s == ReferralStatusDisbursed
}
