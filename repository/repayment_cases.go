package repository

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"loan-repayment/domain"
)

const repaymentCaseFields = 4

// LoadRepaymentCases reads a repayment data file.
func LoadRepaymentCases(path string) ([]domain.RepaymentCase, error) {
	f, err := os.Open(path) // #nosec G304 -- path is supplied by the operator
	if err != nil {
		return nil, errors.WithMessage(err, "could not open repayment cases")
	}
	defer f.Close()

	cases, err := ParseRepaymentCases(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return cases, nil
}

// ParseRepaymentCases parses rows of "principal, rate, termYears, expected".
// Spaces anywhere in a row are ignored, so "200 000" reads as 200000. Blank
// lines and lines starting with '#' are skipped.
func ParseRepaymentCases(r io.Reader) ([]domain.RepaymentCase, error) {
	var cases []domain.RepaymentCase

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.ReplaceAll(scanner.Text(), " ", "")
		text = strings.TrimSpace(text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		c, err := parseRepaymentCase(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		c.Line = line
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading repayment cases")
	}
	return cases, nil
}

func parseRepaymentCase(text string) (domain.RepaymentCase, error) {
	values := strings.Split(text, ",")
	if len(values) != repaymentCaseFields {
		return domain.RepaymentCase{}, errors.Errorf("expected %d fields, got %d", repaymentCaseFields, len(values))
	}

	principal, err := decimal.NewFromString(values[0])
	if err != nil {
		return domain.RepaymentCase{}, errors.Wrap(err, "principal")
	}
	rate, err := decimal.NewFromString(values[1])
	if err != nil {
		return domain.RepaymentCase{}, errors.Wrap(err, "interest rate")
	}
	years, err := strconv.Atoi(values[2])
	if err != nil {
		return domain.RepaymentCase{}, errors.Wrap(err, "term years")
	}
	expected, err := decimal.NewFromString(values[3])
	if err != nil {
		return domain.RepaymentCase{}, errors.Wrap(err, "expected repayment")
	}

	return domain.RepaymentCase{
		Principal:       principal,
		InterestRate:    rate,
		TermYears:       years,
		ExpectedPayment: expected,
	}, nil
}
