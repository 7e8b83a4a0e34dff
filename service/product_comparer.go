package service

import "loan-repayment/domain"

// ProductComparer prices one loan amount against a fixed list of products.
// The product slice is shared read-only; callers must not mutate it while a
// comparison runs.
type ProductComparer struct {
	loanAmount        domain.LoanAmount
	productsToCompare []domain.LoanProduct
	calculator        LoanRepaymentCalculator
}

func NewProductComparer(loanAmount domain.LoanAmount, productsToCompare []domain.LoanProduct) *ProductComparer {
	return &ProductComparer{
		loanAmount:        loanAmount,
		productsToCompare: productsToCompare,
	}
}

// CompareMonthlyRepayments returns one comparison per product, in product
// order, each priced at that product's own rate.
func (c *ProductComparer) CompareMonthlyRepayments(term domain.LoanTerm) []domain.MonthlyRepaymentComparison {
	compared := make([]domain.MonthlyRepaymentComparison, 0, len(c.productsToCompare))
	for _, product := range c.productsToCompare {
		repayment := c.calculator.CalculateMonthlyRepayment(c.loanAmount, product.InterestRate(), term)
		compared = append(compared, domain.NewMonthlyRepaymentComparison(
			product.ProductName(),
			product.InterestRate(),
			repayment,
		))
	}
	return compared
}
