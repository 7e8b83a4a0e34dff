package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-repayment/domain"
	"loan-repayment/repository"
	"loan-repayment/service"
)

func newLoanHandler() (*LoanHandler, *repository.LoanRepositoryMemory) {
	repo := repository.NewLoanRepositoryMemory()
	return NewLoanHandler(service.NewLoanService(repo)), repo
}

func TestCalculateLoanHandler_OK(t *testing.T) {
	handler, repo := newLoanHandler()

	body := []byte(`{
		"currency_code": "USD",
		"principal": 200000,
		"interest_rate": 6.5,
		"term_years": 30
	}`)

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var result domain.LoanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "1264.14", result.MonthlyPayment.String())
	assert.Len(t, repo.Records(), 1)
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {
	handler, _ := newLoanHandler()

	req := httptest.NewRequest(http.MethodGet, "/loan/calculate", nil)
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {
	handler, repo := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString(`{invalid-json}`))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.Records())
}

func TestCalculateLoanHandler_ValidationError(t *testing.T) {
	handler, _ := newLoanHandler()

	body := `{"currency_code":"USD","principal":"1000","interest_rate":"5","term_years":0}`
	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "term_years")
}

func TestCalculateLoanHandler_NegligibleRate(t *testing.T) {
	handler, _ := newLoanHandler()

	body := `{"currency_code":"USD","principal":"1200","interest_rate":"0.00000000000001","term_years":1}`
	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.CalculateLoan(w, req) })
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result domain.LoanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "100", result.MonthlyPayment.String())
}

func TestCalculateLoanHandler_BodyTooLarge(t *testing.T) {
	handler, repo := newLoanHandler()

	body := `{"currency_code":"` + strings.Repeat("x", maxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Empty(t, repo.Records())
}

func TestCalculateLoanHandler_UnsupportedMediaType(t *testing.T) {
	handler, _ := newLoanHandler()

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.CalculateLoan(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
