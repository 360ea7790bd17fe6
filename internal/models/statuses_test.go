package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from ReferralStatus
		to   ReferralStatus
		want bool
	}{
		{"pending to confirmed", ReferralStatusPending, ReferralStatusConfirmed, true},
		{"confirmed to hired", ReferralStatusConfirmed, ReferralStatusHired, true},
		{"hired to disbursed", ReferralStatusHired, ReferralStatusDisbursed, true},

		// Пропуск шага запрещен
		{"pending to hired", ReferralStatusPending, ReferralStatusHired, false},
		{"pending to disbursed", ReferralStatusPending, ReferralStatusDisbursed, false},
		{"confirmed to disbursed", ReferralStatusConfirmed, ReferralStatusDisbursed, false},

		// Откат запрещен
		{"confirmed to pending", ReferralStatusConfirmed, ReferralStatusPending, false},
		{"hired to confirmed", ReferralStatusHired, ReferralStatusConfirmed, false},
		{"disbursed to hired", ReferralStatusDisbursed, ReferralStatusHired, false},

		// Статус не переходит сам в себя
		{"pending to pending", ReferralStatusPending, ReferralStatusPending, false},
		{"disbursed to disbursed", ReferralStatusDisbursed, ReferralStatusDisbursed, false},

		// Неизвестные статусы
		{"unknown from", ReferralStatus("bogus"), ReferralStatusConfirmed, false},
		{"unknown to", ReferralStatusPending, ReferralStatus("bogus"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransition(tc.from, tc.to))
		})
	}
}

func TestReferralStatusIsTerminal(t *testing.T) {
	assert.False(t, ReferralStatusPending.IsTerminal())
	assert.False(t, ReferralStatusConfirmed.IsTerminal())
	assert.False(t, ReferralStatusHired.IsTerminal())
	assert.True(t, ReferralStatusDisbursed.IsTerminal())
}
