package integration_test

import (
	"net/http"
	"testing"

	"frontdoor_backend/internal/models"
	"frontdoor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

// TestCompanyRegistration_Idempotent - повторная регистрация компании
// не ошибка и не дубликат
func TestCompanyRegistration_Idempotent(t *testing.T) {
	ts := GetTestServer(t)

	token, wallet := helpers.RegisterAndLogin(t, ts, models.UserRoleCompany)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/companies/register", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, wallet)

	// Второй раз - тот же ответ, без конфликта
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/companies/register", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, wallet)

	var count int64
	ts.DB.Model(&models.Company{}).Where("address = ?", wallet).Count(&count)
	assert.Equal(t, int64(1), count)
}

// TestReferrerEmailRebind_Fails - email реферера нельзя перепривязать
// к другому кошельку
func TestReferrerEmailRebind_Fails(t *testing.T) {
	ts := GetTestServer(t)

	tokenA, walletA := helpers.RegisterAndLogin(t, ts, models.UserRoleReferrer)
	email := helpers.UniqueEmail("shared")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/referrers/register", tokenA,
		map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Другой кошелек с тем же email - конфликт без мутации
	tokenB, _ := helpers.RegisterAndLogin(t, ts, models.UserRoleReferrer)
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/referrers/register", tokenB,
		map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already registered")

	// Исходная привязка не тронута
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/referrers/"+walletA, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, email)

	// Повторная регистрация той же пары - no-op
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/referrers/register", tokenA,
		map[string]interface{}{"email": email})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

// TestJobCreation_RequiresCompanyRegistration - вакансию публикует
// только зарегистрированная компания
func TestJobCreation_RequiresCompanyRegistration(t *testing.T) {
	ts := GetTestServer(t)

	// Юзер с ролью company, но без записи в реестре
	token, _ := helpers.RegisterAndLogin(t, ts, models.UserRoleCompany)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", token,
		map[string]interface{}{"bounty_amount": 100, "category": 1})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "not registered as a company")
}
