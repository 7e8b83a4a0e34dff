package constraint

import (
	"fmt"

	"github.com/shopspring/decimal"

	"loan-repayment/domain"
)

// MonthlyRepaymentGreaterThanZero matches a comparison for the expected
// product at the expected rate whose repayment is positive.
type MonthlyRepaymentGreaterThanZero struct {
	ExpectedProductName  string
	ExpectedInterestRate decimal.Decimal
}

func NewMonthlyRepaymentGreaterThanZero(
	expectedProductName string,
	expectedInterestRate decimal.Decimal,
) *MonthlyRepaymentGreaterThanZero {
	return &MonthlyRepaymentGreaterThanZero{
		ExpectedProductName:  expectedProductName,
		ExpectedInterestRate: expectedInterestRate,
	}
}

func (c *MonthlyRepaymentGreaterThanZero) Description() string {
	return fmt.Sprintf("comparison for product %q at %s%% with a monthly repayment greater than 0",
		c.ExpectedProductName, c.ExpectedInterestRate)
}

// ApplyTo accepts a domain.MonthlyRepaymentComparison or a non-nil pointer to
// one; anything else is an Error.
func (c *MonthlyRepaymentGreaterThanZero) ApplyTo(actual any) Result {
	var comparison domain.MonthlyRepaymentComparison
	switch v := actual.(type) {
	case domain.MonthlyRepaymentComparison:
		comparison = v
	case *domain.MonthlyRepaymentComparison:
		if v == nil {
			return newResult(c, actual, Error)
		}
		comparison = *v
	default:
		return newResult(c, actual, Error)
	}

	if comparison.InterestRate().Equal(c.ExpectedInterestRate) &&
		comparison.ProductName() == c.ExpectedProductName &&
		comparison.MonthlyRepayment().IsPositive() {
		return newResult(c, actual, Success)
	}
	return newResult(c, actual, Failure)
}
