package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type walletPayload struct {
	Wallet string `json:"wallet" validate:"required,wallet"`
}

type codePayload struct {
	Code string `json:"code" validate:"required,hexcode"`
}

func TestWalletRule(t *testing.T) {
	v := New()

	valid := []string{
		"0x1234567890abcdef1234567890abcdef12345678",
		"0xABCDEF0123456789abcdef0123456789ABCDEF01",
	}
	for _, w := range valid {
		assert.NoError(t, v.Validate(&walletPayload{Wallet: w}), w)
	}

	invalid := []string{
		"",
		// без 0x
		"1234567890abcdef1234567890abcdef12345678",
		// 39 и 41 hex-символ
		"0x1234567890abcdef1234567890abcdef1234567",
		"0x1234567890abcdef1234567890abcdef123456789",
		// не hex
		"0x1234567890abcdef1234567890abcdef1234567g",
	}
	for _, w := range invalid {
		err := v.Validate(&walletPayload{Wallet: w})
		require.Error(t, err, w)

		vErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, vErr.Errors, "wallet")
	}
}

func TestHexCodeRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&codePayload{Code: "deadbeefcafe0123"}))
	assert.NoError(t, v.Validate(&codePayload{Code: "ABCDEF0123456789abcdef"}))

	invalid := []string{
		"",
		"short",            // не hex и короткий
		"deadbeef",         // меньше 16 символов
		"code-with-dashes", // не hex
	}
	for _, c := range invalid {
		assert.Error(t, v.Validate(&codePayload{Code: c}), c)
	}
}
