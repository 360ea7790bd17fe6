package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"frontdoor_backend/internal/models"
	"frontdoor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFaucet_GrantAndCooldown - кран выдает токены и не дает просить
// чаще раза в сутки
func TestFaucet_GrantAndCooldown(t *testing.T) {
	ts := GetTestServer(t)

	token, wallet := helpers.RegisterAndLogin(t, ts, models.UserRoleCandidate)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/faucet/request", token,
		map[string]interface{}{"amount": 1000})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var grant struct {
		Granted int64 `json:"granted"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &grant))
	assert.Equal(t, int64(1000), grant.Granted)
	assert.Equal(t, int64(1000), helpers.GetBalance(t, ts, wallet))

	// Повторный запрос в пределах суток
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/faucet/request", token,
		map[string]interface{}{"amount": 1000})
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.Contains(t, bodyStr, "You can only request once per day")

	// Баланс не изменился
	assert.Equal(t, int64(1000), helpers.GetBalance(t, ts, wallet))
}

// TestFaucet_ClampsToMax - запрос выше лимита урезается, а не отклоняется
func TestFaucet_ClampsToMax(t *testing.T) {
	ts := GetTestServer(t)

	token, wallet := helpers.RegisterAndLogin(t, ts, models.UserRoleCandidate)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/faucet/request", token,
		map[string]interface{}{"amount": 10_000_000})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var grant struct {
		Granted int64 `json:"granted"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &grant))
	assert.Equal(t, ts.Config.Faucet.MaxAmount, grant.Granted)
	assert.Equal(t, ts.Config.Faucet.MaxAmount, helpers.GetBalance(t, ts, wallet))
}

// TestFaucet_RequiresAuth - без токена кран недоступен
func TestFaucet_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/faucet/request", "",
		map[string]interface{}{"amount": 100})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
