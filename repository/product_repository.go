package repository

import (
	"github.com/shopspring/decimal"

	"loan-repayment/domain"
)

type ProductRepository interface {
	List() []domain.LoanProduct
	FindByID(id int) (domain.LoanProduct, bool)
}

// DefaultProducts is the catalogue the service starts with.
func DefaultProducts() []domain.LoanProduct {
	return []domain.LoanProduct{
		domain.NewLoanProduct(1, "a", decimal.NewFromInt(1)),
		domain.NewLoanProduct(2, "b", decimal.NewFromInt(2)),
		domain.NewLoanProduct(3, "c", decimal.NewFromInt(3)),
	}
}
