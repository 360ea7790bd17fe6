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

// TestCreateJob_EscrowEqualsBounty - при публикации вакансии весь bounty
// уходит в эскроу, баланс компании уменьшается ровно на bounty
func TestCreateJob_EscrowEqualsBounty(t *testing.T) {
	ts := GetTestServer(t)

	token, wallet := helpers.SetupCompany(t, ts)
	helpers.FundViaFaucet(t, ts, token, 1000)
	helpers.ApproveTreasury(t, ts, token, 1000)

	balanceBefore := helpers.GetBalance(t, ts, wallet)

	jobID := helpers.CreateJob(t, ts, token, 600, 2)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", jobID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var job struct {
		BountyAmount    int64  `json:"bounty_amount"`
		EscrowedBalance int64  `json:"escrowed_balance"`
		Status          string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &job))
	assert.Equal(t, int64(600), job.BountyAmount)
	assert.Equal(t, int64(600), job.EscrowedBalance)
	assert.Equal(t, "open", job.Status)

	assert.Equal(t, balanceBefore-600, helpers.GetBalance(t, ts, wallet))

	// Вакансия в списке компании, агрегат total_escrowed обновлен
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+wallet+"/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, fmt.Sprintf("%d", jobID))

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+wallet, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var company struct {
		TotalEscrowed int64 `json:"total_escrowed"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &company))
	assert.Equal(t, int64(600), company.TotalEscrowed)
}

// TestCreateJob_InsufficientAllowance - без approve вакансия не создается
func TestCreateJob_InsufficientAllowance(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.SetupCompany(t, ts)
	helpers.FundViaFaucet(t, ts, token, 1000)
	// approve не делаем

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token,
		map[string]interface{}{"bounty_amount": 500, "category": 1})
	assert.Equal(t, http.StatusPaymentRequired, res.StatusCode)
	assert.Contains(t, bodyStr, "allowance")
}

// TestCreateJob_InsufficientBalance - allowance есть, токенов нет
func TestCreateJob_InsufficientBalance(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.SetupCompany(t, ts)
	helpers.FundViaFaucet(t, ts, token, 100)
	helpers.ApproveTreasury(t, ts, token, 10_000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token,
		map[string]interface{}{"bounty_amount": 5_000, "category": 1})
	assert.Equal(t, http.StatusPaymentRequired, res.StatusCode)
	assert.Contains(t, bodyStr, "balance")

	// Ничего не создано и не списано
	var jobsResp struct {
		JobIDs []int64 `json:"job_ids"`
	}
	_, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/companies/"+walletOf(t, ts, token)+"/jobs", "", nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &jobsResp))
	assert.Empty(t, jobsResp.JobIDs)
}

// walletOf достает кошелек вызывающего через /claims/my (любой
// аутентифицированный endpoint, возвращающий address)
func walletOf(t *testing.T, ts *helpers.TestServer, token string) string {
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/claims/my", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Address string `json:"address"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	return resp.Address
}
