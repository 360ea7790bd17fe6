package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"frontdoor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScore_WithoutHire_Forbidden - оценивать можно только после
// состоявшегося найма между сторонами
func TestScore_WithoutHire_Forbidden(t *testing.T) {
	ts := GetTestServer(t)

	companyToken, _ := helpers.SetupCompany(t, ts)
	candidateWallet := helpers.UniqueWallet(t)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/reputation/candidates", companyToken,
		map[string]interface{}{"candidate_address": candidateWallet, "score": 5})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "No completed hire")
}

// TestScore_AfterHire_BothDirections - после найма компания оценивает
// кандидата, кандидат - компанию; средние отражают оценки
func TestScore_AfterHire_BothDirections(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 300)
	hireReferral(t, ts, fx)

	// Компания -> кандидат
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/reputation/candidates", fx.CompanyToken,
		map[string]interface{}{"candidate_address": fx.CandidateWallet, "score": 4})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet,
		"/api/v1/reputation/candidates/"+fx.CandidateWallet, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var rep struct {
		AverageScore float64 `json:"average_score"`
		TotalScores  int64   `json:"total_scores"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &rep))
	assert.Equal(t, 4.0, rep.AverageScore)
	assert.Equal(t, int64(1), rep.TotalScores)

	// Кандидат -> компания
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/reputation/companies", fx.CandidateToken,
		map[string]interface{}{"company_address": fx.CompanyWallet, "score": 5})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet,
		"/api/v1/reputation/companies/"+fx.CompanyWallet, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &rep))
	assert.Equal(t, 5.0, rep.AverageScore)
	assert.Equal(t, int64(1), rep.TotalScores)
}

// TestScore_Rescore_Overwrites - повторная оценка той же пары
// перезаписывает, а не добавляет
func TestScore_Rescore_Overwrites(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 300)
	hireReferral(t, ts, fx)

	for _, score := range []int{2, 5} {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/reputation/candidates", fx.CompanyToken,
			map[string]interface{}{"candidate_address": fx.CandidateWallet, "score": score})
		require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet,
		"/api/v1/reputation/candidates/"+fx.CandidateWallet, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var rep struct {
		AverageScore float64 `json:"average_score"`
		TotalScores  int64   `json:"total_scores"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &rep))
	assert.Equal(t, 5.0, rep.AverageScore)
	assert.Equal(t, int64(1), rep.TotalScores)
}

// TestReputation_UnknownAddress_ReturnsZero - средняя по адресу без
// оценок возвращает нули, а не 404
func TestReputation_UnknownAddress_ReturnsZero(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet,
		"/api/v1/reputation/candidates/"+helpers.UniqueWallet(t), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var rep struct {
		AverageScore float64 `json:"average_score"`
		TotalScores  int64   `json:"total_scores"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &rep))
	assert.Equal(t, 0.0, rep.AverageScore)
	assert.Equal(t, int64(0), rep.TotalScores)
}
