package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjperalta/mortgagekit-api/internal/config"
	"github.com/sjperalta/mortgagekit-api/internal/handlers"
	"github.com/sjperalta/mortgagekit-api/internal/middleware"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8080",
		Environment:    "test",
		Version:        "test",
		MaxBodyBytes:   handlers.DefaultMaxBodyBytes,
		AllowedOrigins: []string{"*"},
	}
}

func setupTestRouter(t *testing.T, cfg *config.Config, limiter *middleware.RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := handlers.NewHandlers(services.NewServices(), cfg.Version, cfg.MaxBodyBytes)
	return Setup(h, cfg, limiter)
}

func loanBody(principal, rate string, years int, repaymentType models.RepaymentType, balloon string) string {
	return `{"principal": ` + principal +
		`, "annualInterestRate": ` + rate +
		`, "termYears": ` + jsonInt(years) +
		`, "repaymentType": "` + string(repaymentType) +
		`", "startDate": "2024-01-01", "balloonPaymentPercentage": ` + balloon + `}`
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func do(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)

	w := do(r, http.MethodGet, "/api/v1/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRepaymentTypes(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)

	w := do(r, http.MethodGet, "/api/v1/repayment-types", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var infos []models.RepaymentTypeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &infos))
	assert.Len(t, infos, 5)
}

func TestCalculate_Schedules(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)

	tests := []struct {
		name    string
		body    string
		entries int
	}{
		{"standard", loanBody("300000", "5", 30, models.RepaymentTypeStandard, "0"), 360},
		{"interest only", loanBody("300000", "5", 30, models.RepaymentTypeInterestOnly, "0"), 360},
		{"accelerated biweekly", loanBody("300000", "5", 30, models.RepaymentTypeAcceleratedBiweekly, "0"), 780},
		{"balloon", loanBody("300000", "5", 30, models.RepaymentTypeBalloonPayment, "20"), 360},
		{"floating", loanBody("300000", "5", 30, models.RepaymentTypeFloatingRate, "0"), 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/calculate", tt.body, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var schedule models.MortgageSchedule
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
			assert.Len(t, schedule.Schedule, tt.entries)
			assert.True(t, schedule.MonthlyPayment.IsPositive())
		})
	}
}

func TestCalculate_BalloonFinalPayment(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)

	w := do(r, http.MethodPost, "/api/v1/calculate", loanBody("300000", "5", 30, models.RepaymentTypeBalloonPayment, "20"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var schedule models.MortgageSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))

	last := schedule.Schedule[len(schedule.Schedule)-1]
	expected := schedule.MonthlyPayment.Add(decimal.NewFromInt(60000))
	assert.True(t, last.PaymentAmount.Equal(expected), "final payment %s, expected %s", last.PaymentAmount, expected)
}

func TestCalculate_Errors(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"negative principal", loanBody("-100000", "5", 30, models.RepaymentTypeStandard, "0"), http.StatusBadRequest},
		{"rate above 100", loanBody("300000", "101", 30, models.RepaymentTypeStandard, "0"), http.StatusBadRequest},
		{"term too long", loanBody("300000", "5", 51, models.RepaymentTypeStandard, "0"), http.StatusBadRequest},
		{"zero rate", loanBody("300000", "0", 30, models.RepaymentTypeStandard, "0"), http.StatusUnprocessableEntity},
		{"oversized body", `{"principal": 300000, "padding": "` + strings.Repeat("x", 5000) + `"}`, http.StatusBadRequest},
		{"empty body", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/v1/calculate", tt.body, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestSummaryAndCompare(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)
	body := loanBody("300000", "5", 30, models.RepaymentTypeBalloonPayment, "20")

	w := do(r, http.MethodPost, "/api/v1/calculate/summary", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary models.MortgageSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 360, summary.NumberOfPayments)

	w = do(r, http.MethodPost, "/api/v1/calculate/compare", body, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp handlers.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Summaries, 5)
}

func TestExport_BadFormat(t *testing.T) {
	r := setupTestRouter(t, testConfig(), nil)

	w := do(r, http.MethodPost, "/api/v1/calculate/export?format=docx", loanBody("300000", "5", 30, models.RepaymentTypeStandard, "0"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCalculate_RequiresTokenWhenSecretSet(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "router-secret"
	r := setupTestRouter(t, cfg, nil)
	body := loanBody("300000", "5", 30, models.RepaymentTypeStandard, "0")

	w := do(r, http.MethodPost, "/api/v1/calculate", body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// public routes stay open
	w = do(r, http.MethodGet, "/api/v1/repayment-types", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "client-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	w = do(r, http.MethodPost, "/api/v1/calculate", body, map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCalculate_RateLimited(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	defer limiter.Stop()
	r := setupTestRouter(t, testConfig(), limiter)
	body := loanBody("100000", "5", 1, models.RepaymentTypeStandard, "0")

	for i := 0; i < 2; i++ {
		w := do(r, http.MethodPost, "/api/v1/calculate/summary", body, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(r, http.MethodPost, "/api/v1/calculate/summary", body, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = do(r, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
