package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashReferralCode(t *testing.T) {
	code := "deadbeefcafe0123"

	h1 := hashReferralCode(code)
	h2 := hashReferralCode(code)
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	// Регистр hex-кода не влияет на дайджест
	assert.Equal(t, h1, hashReferralCode("DEADBEEFCAFE0123"))

	// Другой код - другой дайджест
	assert.NotEqual(t, h1, hashReferralCode("deadbeefcafe0124"))

	// Дайджест никогда не равен исходному коду
	assert.NotEqual(t, code, h1)
}
