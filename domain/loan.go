package domain

import "github.com/shopspring/decimal"

type LoanInput struct {
	CurrencyCode string          `json:"currency_code"`
	Principal    decimal.Decimal `json:"principal"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	TermYears    int             `json:"term_years"`
}

type LoanResult struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// CompareInput selects the products to compare. An empty ProductIDs compares
// every known product.
type CompareInput struct {
	CurrencyCode string          `json:"currency_code"`
	Principal    decimal.Decimal `json:"principal"`
	TermYears    int             `json:"term_years"`
	ProductIDs   []int           `json:"product_ids,omitempty"`
}

// RepaymentCase is one row of a repayment data file.
type RepaymentCase struct {
	Line            int
	Principal       decimal.Decimal
	InterestRate    decimal.Decimal
	TermYears       int
	ExpectedPayment decimal.Decimal
}
