package service

import (
	"math"

	"github.com/shopspring/decimal"

	"loan-repayment/domain"
)

// roundTo2Decimals rounds half away from zero to two decimal places.
func roundTo2Decimals(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// LoanRepaymentCalculator computes annuity repayments. The zero value is ready
// to use.
type LoanRepaymentCalculator struct{}

// CalculateMonthlyRepayment returns the fixed monthly payment that repays
// amount over term at annualInterestRate percent, rounded to cents.
//
// With monthly rate r and n months the payment is r*P / (1 - (1+r)^-n). A zero
// rate has no interest to amortise, so the payment is P/n. Rates too small
// for 1+r to differ from 1 in float64 are treated as zero.
func (LoanRepaymentCalculator) CalculateMonthlyRepayment(
	amount domain.LoanAmount,
	annualInterestRate decimal.Decimal,
	term domain.LoanTerm,
) decimal.Decimal {
	n := term.Months()
	straightLine := func() decimal.Decimal {
		return roundTo2Decimals(amount.Principal().Div(decimal.NewFromInt(int64(n))))
	}
	if annualInterestRate.IsZero() {
		return straightLine()
	}

	r := annualInterestRate.InexactFloat64() / 100 / 12
	denominator := 1 - math.Pow(1+r, -float64(n))
	if denominator == 0 {
		return straightLine()
	}

	monthly := r * amount.Principal().InexactFloat64() / denominator
	if math.IsInf(monthly, 0) || math.IsNaN(monthly) {
		return straightLine()
	}
	return roundTo2Decimals(decimal.NewFromFloat(monthly))
}
