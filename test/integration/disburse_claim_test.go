package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"frontdoor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hireReferral доводит фикстуру до статуса Hired
func hireReferral(t *testing.T, ts *helpers.TestServer, fx *referralFixture) {
	confirmReferral(t, ts, fx)
	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/hire", fx.ReferralID), fx.CompanyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "hire must succeed: "+bodyStr)
}

// TestDisburse_CooldownNotElapsed - выплата до истечения 90 дней
// отклоняется, состояние не меняется
func TestDisburse_CooldownNotElapsed(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 400)
	hireReferral(t, ts, fx)

	// Сразу после найма
	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/disburse", fx.ReferralID), fx.CompanyToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "90 days are not completed yet")

	// Через 60 дней - все еще рано
	helpers.BackdateHire(t, ts.DB, fx.ReferralID, 60)
	res, bodyStr = ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/disburse", fx.ReferralID), fx.CompanyToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "90 days are not completed yet")

	assert.Equal(t, "hired", helpers.GetReferralStatus(t, ts, fx.ReferralID))
}

// TestDisburse_SplitsAndClosesJob - после таймлока bounty делится
// пополам, вакансия закрывается, повторная выплата отклоняется
func TestDisburse_SplitsAndClosesJob(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 400)
	hireReferral(t, ts, fx)
	helpers.BackdateHire(t, ts.DB, fx.ReferralID, 93)

	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/disburse", fx.ReferralID), fx.CompanyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var disburse struct {
		ReferrerShare   int64 `json:"referrer_share"`
		CandidateShare  int64 `json:"candidate_share"`
		EscrowRemaining int64 `json:"escrow_remaining"`
		JobClosed       bool  `json:"job_closed"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &disburse))
	assert.Equal(t, int64(200), disburse.ReferrerShare)
	assert.Equal(t, int64(200), disburse.CandidateShare)
	assert.Equal(t, int64(0), disburse.EscrowRemaining)
	assert.True(t, disburse.JobClosed)

	assert.Equal(t, "disbursed", helpers.GetReferralStatus(t, ts, fx.ReferralID))

	// Повторная выплата - отказ
	res, bodyStr = ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/disburse", fx.ReferralID), fx.CompanyToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already disbursed")

	// Начисления видны обеим сторонам
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/claims/my", fx.ReferrerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"amount":200`)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/claims/my", fx.CandidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"amount":200`)
}

// TestClaim_MovesTokensAndZeroesBalance - claim переводит токены из
// казны и обнуляет начисление; повторный claim отклоняется
func TestClaim_MovesTokensAndZeroesBalance(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 400)
	hireReferral(t, ts, fx)
	helpers.BackdateHire(t, ts.DB, fx.ReferralID, 91)

	res, _ := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/disburse", fx.ReferralID), fx.CompanyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	balanceBefore := helpers.GetBalance(t, ts, fx.CandidateWallet)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/claims", fx.CandidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var claim struct {
		Amount int64 `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &claim))
	assert.Equal(t, int64(200), claim.Amount)

	assert.Equal(t, balanceBefore+200, helpers.GetBalance(t, ts, fx.CandidateWallet))

	// Повторный claim - пусто
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/claims", fx.CandidateToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "No rewards to claim")
}

// TestClaim_WithoutRewards - claim без начислений сразу отклоняется
func TestClaim_WithoutRewards(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.SetupCompany(t, ts)
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/claims", token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "No rewards to claim")
}
