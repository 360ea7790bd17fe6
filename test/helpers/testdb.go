package helpers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"frontdoor_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// UniqueWallet генерирует случайный адрес кошелька для теста
func UniqueWallet(t *testing.T) string {
	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("failed to generate wallet: %v", err)
	}
	return "0x" + hex.EncodeToString(raw)
}

// UniqueEmail генерирует уникальный email с заданным префиксом
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, time.Now().UnixNano())
}

// UniqueReferralCode генерирует hex-код реферала
func UniqueReferralCode(t *testing.T) string {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("failed to generate referral code: %v", err)
	}
	return hex.EncodeToString(raw)
}

// RegisterAndLogin регистрирует пользователя через API и возвращает
// access-токен и его кошелек
func RegisterAndLogin(t *testing.T, ts *TestServer, role models.UserRole) (string, string) {
	wallet := UniqueWallet(t)
	email := UniqueEmail(string(role))

	body := map[string]interface{}{
		"email":          email,
		"password":       "super_password123",
		"role":           string(role),
		"wallet_address": wallet,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration must succeed: "+bodyStr)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	require.NotEmpty(t, resp.AccessToken)

	return resp.AccessToken, wallet
}

// SetupCompany создает компанию: юзер + регистрация в реестре
func SetupCompany(t *testing.T, ts *TestServer) (string, string) {
	token, wallet := RegisterAndLogin(t, ts, models.UserRoleCompany)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/companies/register", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "company registration must succeed: "+bodyStr)

	return token, wallet
}

// SetupReferrer создает реферера: юзер + регистрация в реестре,
// возвращает токен, кошелек и email реферера
func SetupReferrer(t *testing.T, ts *TestServer) (string, string, string) {
	token, wallet := RegisterAndLogin(t, ts, models.UserRoleReferrer)
	email := UniqueEmail("ref")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/referrers/register", token,
		map[string]interface{}{"email": email})
	require.Equal(t, http.StatusOK, res.StatusCode, "referrer registration must succeed: "+bodyStr)

	return token, wallet, email
}

// FundViaFaucet пополняет баланс вызывающего через кран
func FundViaFaucet(t *testing.T, ts *TestServer, token string, amount int64) {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/faucet/request", token,
		map[string]interface{}{"amount": amount})
	require.Equal(t, http.StatusOK, res.StatusCode, "faucet request must succeed: "+bodyStr)
}

// ApproveTreasury выдает казне allowance на сумму
func ApproveTreasury(t *testing.T, ts *TestServer, token string, amount int64) {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/ledger/approve", token,
		map[string]interface{}{"amount": amount})
	require.Equal(t, http.StatusOK, res.StatusCode, "approve must succeed: "+bodyStr)
}

// GetBalance возвращает баланс адреса в леджере
func GetBalance(t *testing.T, ts *TestServer, address string) int64 {
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/ledger/balance/"+address, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Balance int64 `json:"balance"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	return resp.Balance
}

// CreateJob публикует вакансию (вызывающий должен иметь баланс и allowance)
// и возвращает ее id
func CreateJob(t *testing.T, ts *TestServer, token string, bounty int64, category int) int64 {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token,
		map[string]interface{}{"bounty_amount": bounty, "category": category})
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation must succeed: "+bodyStr)

	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	require.NotZero(t, resp.ID)
	return resp.ID
}

// RegisterReferral регистрирует реферал и возвращает его id
func RegisterReferral(t *testing.T, ts *TestServer, token string, jobID int64, candidateEmail, code string) int64 {
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/referrals", token,
		map[string]interface{}{
			"job_id":          jobID,
			"candidate_email": candidateEmail,
			"referral_code":   code,
		})
	require.Equal(t, http.StatusCreated, res.StatusCode, "referral registration must succeed: "+bodyStr)

	var resp struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	require.NotZero(t, resp.ID)
	return resp.ID
}

// BackdateHire сдвигает момент найма в прошлое, чтобы проверить таймлок
func BackdateHire(t *testing.T, db *gorm.DB, referralID int64, days int) {
	hiredAt := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	err := db.Model(&models.Referral{}).
		Where("id = ?", referralID).
		UpdateColumn("hired_at", hiredAt).Error
	require.NoError(t, err)
}

// GetReferralStatus читает статус реферала через API
func GetReferralStatus(t *testing.T, ts *TestServer, referralID int64) string {
	res, bodyStr := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/v1/referrals/%d", referralID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	return resp.Status
}
