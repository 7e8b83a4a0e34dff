package domain

import "github.com/shopspring/decimal"

// LoanAmount is a principal in a given currency. The currency code is not
// validated.
type LoanAmount struct {
	currencyCode string
	principal    decimal.Decimal
}

func NewLoanAmount(currencyCode string, principal decimal.Decimal) LoanAmount {
	return LoanAmount{currencyCode: currencyCode, principal: principal}
}

func (a LoanAmount) CurrencyCode() string { return a.currencyCode }

func (a LoanAmount) Principal() decimal.Decimal { return a.principal }

func (a LoanAmount) AtomicValues() []any { return []any{a.currencyCode, a.principal} }

func (a LoanAmount) Equals(other ValueObject) bool { return Equal(a, other) }

func (a LoanAmount) HashCode() uint64 { return HashCode(a) }
