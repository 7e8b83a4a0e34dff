package domain

import "github.com/shopspring/decimal"

// MonthlyRepaymentComparison is the monthly repayment a product would charge
// for a given amount and term.
type MonthlyRepaymentComparison struct {
	productName      string
	interestRate     decimal.Decimal
	monthlyRepayment decimal.Decimal
}

func NewMonthlyRepaymentComparison(
	productName string,
	interestRate decimal.Decimal,
	monthlyRepayment decimal.Decimal,
) MonthlyRepaymentComparison {
	return MonthlyRepaymentComparison{
		productName:      productName,
		interestRate:     interestRate,
		monthlyRepayment: monthlyRepayment,
	}
}

func (c MonthlyRepaymentComparison) ProductName() string { return c.productName }

func (c MonthlyRepaymentComparison) InterestRate() decimal.Decimal { return c.interestRate }

func (c MonthlyRepaymentComparison) MonthlyRepayment() decimal.Decimal { return c.monthlyRepayment }

func (c MonthlyRepaymentComparison) AtomicValues() []any {
	return []any{c.productName, c.interestRate, c.monthlyRepayment}
}

func (c MonthlyRepaymentComparison) Equals(other ValueObject) bool { return Equal(c, other) }

func (c MonthlyRepaymentComparison) HashCode() uint64 { return HashCode(c) }

// ComparisonView is the wire form of a MonthlyRepaymentComparison.
type ComparisonView struct {
	ProductName      string          `json:"product_name"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
	MonthlyRepayment decimal.Decimal `json:"monthly_repayment"`
}

func (c MonthlyRepaymentComparison) View() ComparisonView {
	return ComparisonView{
		ProductName:      c.productName,
		InterestRate:     c.interestRate,
		MonthlyRepayment: c.monthlyRepayment,
	}
}

func (v ComparisonView) Comparison() MonthlyRepaymentComparison {
	return NewMonthlyRepaymentComparison(v.ProductName, v.InterestRate, v.MonthlyRepayment)
}
