package service

import (
	"github.com/go-logr/logr"
	"github.com/shopspring/decimal"

	"loan-repayment/domain"
	"loan-repayment/logging"
	"loan-repayment/repository"
)

type LoanService struct {
	repo       repository.LoanRepository
	calculator LoanRepaymentCalculator
	log        logr.Logger
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.LoanRepository) *LoanService {
	return &LoanService{repo: repo, log: logging.Log().WithName("loan")}
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if err := validateAmount(input.Principal); err != nil {
		return domain.LoanResult{}, err
	}
	if err := validateRate(input.InterestRate); err != nil {
		return domain.LoanResult{}, err
	}
	term, err := newTerm(input.TermYears)
	if err != nil {
		return domain.LoanResult{}, err
	}

	amount := domain.NewLoanAmount(input.CurrencyCode, input.Principal)
	monthly := s.calculator.CalculateMonthlyRepayment(amount, input.InterestRate, term)

	total := monthly.Mul(decimal.NewFromInt(int64(term.Months())))
	interest := total.Sub(input.Principal)

	result := domain.LoanResult{
		MonthlyPayment: monthly,
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(interest),
	}

	s.log.V(1).Info("calculated loan",
		"principal", logging.Decimal(input.Principal),
		"rate", logging.Decimal(input.InterestRate),
		"months", term.Months(),
		"monthly", logging.Decimal(monthly),
	)

	// A failed save must not fail the calculation.
	if err := s.repo.Save(input, result); err != nil {
		s.log.Error(err, "failed to save loan calculation")
	}

	return result, nil
}

func validateAmount(principal decimal.Decimal) error {
	if !principal.IsPositive() {
		return invalid("principal", "must be greater than zero")
	}
	if principal.GreaterThan(MaxLoanAmount) {
		return invalid("principal", "exceeds the maximum of %s", MaxLoanAmount.StringFixed(2))
	}
	return nil
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return invalid("interest_rate", "must not be negative")
	}
	if rate.GreaterThan(MaxInterestRate) {
		return invalid("interest_rate", "exceeds the maximum of %s%%", MaxInterestRate)
	}
	return nil
}

func newTerm(years int) (domain.LoanTerm, error) {
	if years > MaxTermYears {
		return domain.LoanTerm{}, invalid("term_years", "exceeds the maximum of %d years", MaxTermYears)
	}
	term, err := domain.NewLoanTerm(years)
	if err != nil {
		return domain.LoanTerm{}, invalid("term_years", "must be at least 1")
	}
	return term, nil
}
