package domain

// LoanTerm is the length of a loan in whole years.
type LoanTerm struct {
	years int
}

// NewLoanTerm creates a LoanTerm. years must be at least 1.
func NewLoanTerm(years int) (LoanTerm, error) {
	if years < 1 {
		return LoanTerm{}, NewOutOfRangeError("years", years, "please specify a value greater than 0")
	}
	return LoanTerm{years: years}, nil
}

// MustLoanTerm is like NewLoanTerm but panics on an invalid term.
func MustLoanTerm(years int) LoanTerm {
	t, err := NewLoanTerm(years)
	if err != nil {
		panic(err)
	}
	return t
}

func (t LoanTerm) Years() int { return t.years }

// Months returns the term length in months.
func (t LoanTerm) Months() int { return t.years * 12 }

func (t LoanTerm) AtomicValues() []any { return []any{t.years} }

func (t LoanTerm) Equals(other ValueObject) bool { return Equal(t, other) }

func (t LoanTerm) HashCode() uint64 { return HashCode(t) }
