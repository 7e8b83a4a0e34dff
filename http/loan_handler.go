package http

import (
	"net/http"

	"loan-repayment/domain"
	"loan-repayment/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, result)
}
