package output

import (
	"fmt"
	"io"

	"loan-repayment/domain"
	"loan-repayment/service"
)

func colorsOrPlain(c *Colors) *Colors {
	if c == nil {
		return NewColors(ColorNever)
	}
	return c
}

// RenderLoanResult prints a single calculation.
func RenderLoanResult(w io.Writer, input domain.LoanInput, result domain.LoanResult, c *Colors) {
	c = colorsOrPlain(c)
	_, _ = fmt.Fprintf(w, "%s %s %s at %s%% over %d years\n",
		c.Header("Loan:"), input.CurrencyCode, input.Principal.StringFixed(2), input.InterestRate, input.TermYears)
	_, _ = fmt.Fprintf(w, "  %-16s %s\n", "Monthly payment", c.Amount("%s", result.MonthlyPayment.StringFixed(2)))
	_, _ = fmt.Fprintf(w, "  %-16s %s\n", "Total payment", result.TotalPayment.StringFixed(2))
	_, _ = fmt.Fprintf(w, "  %-16s %s\n", "Total interest", result.TotalInterest.StringFixed(2))
}

// RenderComparisons prints one row per comparison in the given order.
func RenderComparisons(w io.Writer, comparisons []domain.MonthlyRepaymentComparison, c *Colors) {
	if len(comparisons) == 0 {
		_, _ = fmt.Fprintln(w, "No products to compare.")
		return
	}
	c = colorsOrPlain(c)

	_, _ = fmt.Fprintln(w, c.Header("%-20s %8s %14s", "PRODUCT", "RATE %", "MONTHLY"))
	for _, cmp := range comparisons {
		name := cmp.ProductName()
		if len(name) > 20 {
			name = name[:20]
		}
		_, _ = fmt.Fprintf(w, "%s %8s %s\n",
			c.Product("%-20s", name),
			cmp.InterestRate().StringFixed(2),
			c.Amount("%14s", cmp.MonthlyRepayment().StringFixed(2)),
		)
	}
}

// RenderVerification prints a line per case and a summary.
func RenderVerification(w io.Writer, cases []domain.RepaymentCase, mismatches []service.CaseMismatch, c *Colors) {
	c = colorsOrPlain(c)

	failed := make(map[int]service.CaseMismatch, len(mismatches))
	for _, m := range mismatches {
		failed[m.Case.Line] = m
	}

	for _, rc := range cases {
		desc := fmt.Sprintf("line %d: %s @ %s%% / %dy = %s",
			rc.Line, rc.Principal, rc.InterestRate, rc.TermYears, rc.ExpectedPayment.StringFixed(2))
		if m, ok := failed[rc.Line]; ok {
			_, _ = fmt.Fprintf(w, "%s %s %s\n", c.Fail("FAIL"), desc, c.Muted("(got %s)", m.Actual.StringFixed(2)))
			continue
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", c.Pass("PASS"), desc)
	}
	_, _ = fmt.Fprintf(w, "%d passed, %d failed\n", len(cases)-len(mismatches), len(mismatches))
}
