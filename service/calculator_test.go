package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-repayment/domain"
	"loan-repayment/repository"
)

func TestCalculateMonthlyRepayment(t *testing.T) {
	tests := []struct {
		principal string
		rate      string
		years     int
		want      string
	}{
		{"200000", "6.5", 30, "1264.14"},
		{"200000", "10", 30, "1755.14"},
		{"500000", "10", 30, "4387.86"},
		{"1200", "0", 1, "100"},
		{"1000", "0", 3, "27.78"},
		{"1200", "0.00000000000001", 1, "100"},
		{"1200", "0.0000000000000000001", 1, "100"},
	}

	var sut LoanRepaymentCalculator
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s@%s%%/%dy", tt.principal, tt.rate, tt.years), func(t *testing.T) {
			got := sut.CalculateMonthlyRepayment(
				domain.NewLoanAmount("USD", decimal.RequireFromString(tt.principal)),
				decimal.RequireFromString(tt.rate),
				domain.MustLoanTerm(tt.years),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
			assert.LessOrEqual(t, -got.Exponent(), int32(2))
		})
	}
}

func TestCalculateMonthlyRepayment_Grid(t *testing.T) {
	var sut LoanRepaymentCalculator
	for principal := int64(50_000); principal <= 1_000_000; principal += 50_000 {
		for rate := decimal.RequireFromString("0.5"); rate.LessThanOrEqual(decimal.NewFromInt(20)); rate = rate.Add(decimal.RequireFromString("0.5")) {
			for _, years := range []int{10, 20, 30} {
				amount := domain.NewLoanAmount("USD", decimal.NewFromInt(principal))
				got := sut.CalculateMonthlyRepayment(amount, rate, domain.MustLoanTerm(years))

				// Interest makes the payment exceed straight-line repayment.
				floor := amount.Principal().Div(decimal.NewFromInt(int64(years * 12)))
				require.True(t, got.GreaterThan(floor), "%d @ %s%% / %dy = %s", principal, rate, years, got)
			}
		}
	}
}

func TestVerify_DataFile(t *testing.T) {
	cases, err := repository.LoadRepaymentCases(filepath.Join("..", "testdata", "repayments.csv"))
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	mismatches, err := Verify(cases)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerify_ReportsMismatch(t *testing.T) {
	cases := []domain.RepaymentCase{
		{Line: 1, Principal: decimal.NewFromInt(200_000), InterestRate: decimal.NewFromInt(10), TermYears: 30, ExpectedPayment: decimal.RequireFromString("1755.14")},
		{Line: 2, Principal: decimal.NewFromInt(200_000), InterestRate: decimal.NewFromInt(10), TermYears: 30, ExpectedPayment: decimal.RequireFromString("1755.15")},
	}

	mismatches, err := Verify(cases)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, 2, mismatches[0].Case.Line)
	assert.Equal(t, "1755.14", mismatches[0].Actual.String())

	_, err = Verify([]domain.RepaymentCase{{Line: 7, TermYears: 0}})
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.ErrorContains(t, err, "line 7")
}

func TestVerify_RejectsInvalidRate(t *testing.T) {
	cases := []domain.RepaymentCase{
		{Line: 3, Principal: decimal.NewFromInt(1000), InterestRate: decimal.NewFromInt(-2400), TermYears: 1, ExpectedPayment: decimal.NewFromInt(1)},
	}

	_, err := Verify(cases)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorContains(t, err, "line 3")
}
