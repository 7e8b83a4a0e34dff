package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"loan-repayment/domain"
	"loan-repayment/service"
)

type CompareHandler struct {
	service *service.ComparisonService
}

func NewCompareHandler(service *service.ComparisonService) *CompareHandler {
	return &CompareHandler{service: service}
}

type CompareResponse struct {
	Comparisons []domain.ComparisonView `json:"comparisons"`
}

type ProductView struct {
	ID           int             `json:"id"`
	ProductName  string          `json:"product_name"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var input domain.CompareInput
	if !decodeJSON(w, r, &input) {
		return
	}

	compared, err := h.service.Compare(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := CompareResponse{Comparisons: make([]domain.ComparisonView, len(compared))}
	for i, c := range compared {
		resp.Comparisons[i] = c.View()
	}
	writeJSON(w, resp)
}

func (h *CompareHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products := h.service.Products()
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = ProductView{ID: p.Identity(), ProductName: p.ProductName(), InterestRate: p.InterestRate()}
	}
	writeJSON(w, views)
}
