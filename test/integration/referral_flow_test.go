package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"frontdoor_backend/internal/models"
	"frontdoor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupJobWithReferral прогоняет цепочку: компания + вакансия + реферал.
// Возвращает токены участников и идентификаторы.
type referralFixture struct {
	CompanyToken    string
	CompanyWallet   string
	ReferrerToken   string
	CandidateToken  string
	CandidateWallet string
	CandidateEmail  string
	Code            string
	JobID           int64
	ReferralID      int64
}

func setupJobWithReferral(t *testing.T, ts *helpers.TestServer, bounty int64) *referralFixture {
	companyToken, companyWallet := helpers.SetupCompany(t, ts)
	helpers.FundViaFaucet(t, ts, companyToken, bounty)
	helpers.ApproveTreasury(t, ts, companyToken, bounty)
	jobID := helpers.CreateJob(t, ts, companyToken, bounty, 1)

	referrerToken, _, _ := helpers.SetupReferrer(t, ts)

	candidateToken, candidateWallet := helpers.RegisterAndLogin(t, ts, models.UserRoleCandidate)
	candidateEmail := helpers.UniqueEmail("cand")
	code := helpers.UniqueReferralCode(t)

	referralID := helpers.RegisterReferral(t, ts, referrerToken, jobID, candidateEmail, code)

	return &referralFixture{
		CompanyToken:    companyToken,
		CompanyWallet:   companyWallet,
		ReferrerToken:   referrerToken,
		CandidateToken:  candidateToken,
		CandidateWallet: candidateWallet,
		CandidateEmail:  candidateEmail,
		Code:            code,
		JobID:           jobID,
		ReferralID:      referralID,
	}
}

// TestReferral_RequiresRegisteredReferrer - реферал может создать
// только зарегистрированный реферер
func TestReferral_RequiresRegisteredReferrer(t *testing.T) {
	ts := GetTestServer(t)

	companyToken, _ := helpers.SetupCompany(t, ts)
	helpers.FundViaFaucet(t, ts, companyToken, 100)
	helpers.ApproveTreasury(t, ts, companyToken, 100)
	jobID := helpers.CreateJob(t, ts, companyToken, 100, 1)

	// Юзер с ролью referrer, но без записи в реестре
	token, _ := helpers.RegisterAndLogin(t, ts, models.UserRoleReferrer)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/referrals", token,
		map[string]interface{}{
			"job_id":          jobID,
			"candidate_email": helpers.UniqueEmail("cand"),
			"referral_code":   helpers.UniqueReferralCode(t),
		})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "not registered as a referrer")
}

// TestConfirm_CodeMismatch_LeavesPending - неверный код не меняет
// состояние, подтверждение можно повторить
func TestConfirm_CodeMismatch_LeavesPending(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 200)

	wrongCode := helpers.UniqueReferralCode(t)
	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/confirm", fx.ReferralID), fx.CandidateToken,
		map[string]interface{}{"referral_code": wrongCode, "candidate_email": fx.CandidateEmail})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "does not match")

	assert.Equal(t, "pending", helpers.GetReferralStatus(t, ts, fx.ReferralID))

	// Верный код после неудачной попытки - работает
	res, _ = ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/confirm", fx.ReferralID), fx.CandidateToken,
		map[string]interface{}{"referral_code": fx.Code, "candidate_email": fx.CandidateEmail})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "confirmed", helpers.GetReferralStatus(t, ts, fx.ReferralID))
}

// TestConfirm_WrongEmail_Fails - код верный, но email не совпадает
func TestConfirm_WrongEmail_Fails(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 200)

	res, _ := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/confirm", fx.ReferralID), fx.CandidateToken,
		map[string]interface{}{"referral_code": fx.Code, "candidate_email": helpers.UniqueEmail("other")})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Equal(t, "pending", helpers.GetReferralStatus(t, ts, fx.ReferralID))
}

// TestHireBeforeConfirm_InvalidState - нанять неподтвержденного
// кандидата нельзя
func TestHireBeforeConfirm_InvalidState(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 200)

	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/hire", fx.ReferralID), fx.CompanyToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "not permitted")

	assert.Equal(t, "pending", helpers.GetReferralStatus(t, ts, fx.ReferralID))
}

// TestHire_OnlyJobOwner - нанимает только компания-владелец вакансии
func TestHire_OnlyJobOwner(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 200)

	confirmReferral(t, ts, fx)

	otherCompanyToken, _ := helpers.SetupCompany(t, ts)
	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/hire", fx.ReferralID), otherCompanyToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "not the owning company")
}

// TestFullHiringFlow - pending -> confirmed -> hired, с привязкой
// кошелька кандидата
func TestFullHiringFlow(t *testing.T) {
	ts := GetTestServer(t)
	fx := setupJobWithReferral(t, ts, 200)

	confirmReferral(t, ts, fx)

	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/hire", fx.ReferralID), fx.CompanyToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var referral struct {
		Status           string  `json:"status"`
		CandidateAddress *string `json:"candidate_address"`
		HiredAt          *string `json:"hired_at"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &referral))
	assert.Equal(t, "hired", referral.Status)
	require.NotNil(t, referral.CandidateAddress)
	assert.Equal(t, fx.CandidateWallet, *referral.CandidateAddress)
	assert.NotNil(t, referral.HiredAt)
}

func confirmReferral(t *testing.T, ts *helpers.TestServer, fx *referralFixture) {
	res, bodyStr := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/referrals/%d/confirm", fx.ReferralID), fx.CandidateToken,
		map[string]interface{}{"referral_code": fx.Code, "candidate_email": fx.CandidateEmail})
	require.Equal(t, http.StatusOK, res.StatusCode, "confirm must succeed: "+bodyStr)
}
