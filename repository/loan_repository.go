package repository

import "loan-repayment/domain"

type LoanRepository interface {
	Save(input domain.LoanInput, result domain.LoanResult) error
}

// LoanRecord is one saved calculation.
type LoanRecord struct {
	Input  domain.LoanInput
	Result domain.LoanResult
}
