package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("row not found")
	appErr := ErrNotFound(cause)

	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	assert.True(t, As(appErr, &target))
	assert.Equal(t, CodeNotFound, target.Code)
}

func TestDomainErrorMessages(t *testing.T) {
	// Тексты ошибок таймлока, claim и фасета - часть контракта API
	assert.Equal(t, "90 days are not completed yet", ErrCooldownNotElapsed.Message)
	assert.Equal(t, "No rewards to claim", ErrNothingToClaim.Message)
	assert.Equal(t, "You can only request once per day", ErrFaucetCooldown.Message)
	assert.Equal(t, "Email already registered", ErrEmailAlreadyRegistered.Message)
}

func TestDomainErrorHTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusPaymentRequired, ErrInsufficientAllowance.HTTPCode)
	assert.Equal(t, http.StatusPaymentRequired, ErrInsufficientBalance.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrReferralCodeMismatch.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrInvalidState.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrAlreadyDisbursed.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotJobOwner.HTTPCode)
	assert.Equal(t, http.StatusTooManyRequests, ErrFaucetCooldown.HTTPCode)
}

func TestAppErrorMarshalJSON(t *testing.T) {
	appErr := New(CodeInvalidStatus, "referral", "Operation not permitted", http.StatusConflict)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Operation not permitted", decoded["message"])
}
