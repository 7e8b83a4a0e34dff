package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"loan-repayment/domain"
)

// CaseMismatch is a repayment case whose computed payment differs from the
// expected one.
type CaseMismatch struct {
	Case   domain.RepaymentCase
	Actual decimal.Decimal
}

// Verify runs every case through the calculator and returns the mismatches.
// A case with an invalid term or rate aborts the run.
func Verify(cases []domain.RepaymentCase) ([]CaseMismatch, error) {
	var calc LoanRepaymentCalculator
	var mismatches []CaseMismatch
	for _, c := range cases {
		term, err := domain.NewLoanTerm(c.TermYears)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.Line, err)
		}
		if err := validateRate(c.InterestRate); err != nil {
			return nil, fmt.Errorf("line %d: %w", c.Line, err)
		}
		got := calc.CalculateMonthlyRepayment(domain.NewLoanAmount("", c.Principal), c.InterestRate, term)
		if !got.Equal(c.ExpectedPayment) {
			mismatches = append(mismatches, CaseMismatch{Case: c, Actual: got})
		}
	}
	return mismatches, nil
}
