package constraint_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"loan-repayment/constraint"
	"loan-repayment/domain"
	"loan-repayment/repository"
	"loan-repayment/service"
)

var _ = Describe("MonthlyRepaymentGreaterThanZero", func() {
	var (
		comparison = domain.NewMonthlyRepaymentComparison("a", decimal.NewFromInt(1), decimal.NewFromInt(500))
		sut        constraint.Constraint
	)

	BeforeEach(func() {
		sut = constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1))
	})

	It("succeeds for the expected product and rate", func() {
		Expect(sut.ApplyTo(comparison).Status).To(Equal(constraint.Success))
		Expect(sut.ApplyTo(&comparison).Status).To(Equal(constraint.Success))
		Expect(comparison).To(constraint.Satisfy(sut))
	})

	It("compares rates numerically", func() {
		sut = constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.RequireFromString("1.00"))
		Expect(sut.ApplyTo(comparison).Status).To(Equal(constraint.Success))
	})

	It("fails for a different rate", func() {
		sut = constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(2))
		Expect(sut.ApplyTo(comparison).Status).To(Equal(constraint.Failure))
		Expect(comparison).NotTo(constraint.Satisfy(sut))
	})

	It("fails for a different product", func() {
		sut = constraint.NewMonthlyRepaymentGreaterThanZero("b", decimal.NewFromInt(1))
		Expect(sut.ApplyTo(comparison).Status).To(Equal(constraint.Failure))
	})

	It("fails when the repayment is not positive", func() {
		zero := domain.NewMonthlyRepaymentComparison("a", decimal.NewFromInt(1), decimal.Zero)
		Expect(sut.ApplyTo(zero).Status).To(Equal(constraint.Failure))
	})

	It("errors for anything that is not a comparison", func() {
		var nilComparison *domain.MonthlyRepaymentComparison
		for _, actual := range []any{nil, "a", 500, nilComparison, domain.MustLoanTerm(1)} {
			r := sut.ApplyTo(actual)
			Expect(r.Status).To(Equal(constraint.Error), "actual %#v", actual)
			Expect(r.Message()).To(ContainSubstring("cannot be applied"))
		}
	})

	It("reports errors through gomega as errors, not failures", func() {
		ok, err := constraint.Satisfy(sut).Match("not a comparison")
		Expect(ok).To(BeFalse())
		Expect(err).To(HaveOccurred())

		ok, err = constraint.Satisfy(constraint.NewMonthlyRepaymentGreaterThanZero("b", decimal.NewFromInt(1))).Match(comparison)
		Expect(ok).To(BeFalse())
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("Exactly", func() {
	var comparisons []domain.MonthlyRepaymentComparison

	BeforeEach(func() {
		sut := service.NewProductComparer(
			domain.NewLoanAmount("USD", decimal.NewFromInt(200_000)),
			repository.DefaultProducts(),
		)
		comparisons = sut.CompareMonthlyRepayments(domain.MustLoanTerm(30))
	})

	It("finds exactly one comparison for the first product", func() {
		Expect(comparisons).To(constraint.Satisfy(
			constraint.Exactly(1).Matches(constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1))),
		))
	})

	It("fails when the count differs", func() {
		c := constraint.Exactly(2).Matches(constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1)))
		Expect(c.ApplyTo(comparisons).Status).To(Equal(constraint.Failure))

		c = constraint.Exactly(0).Matches(constraint.NewMonthlyRepaymentGreaterThanZero("z", decimal.NewFromInt(1)))
		Expect(c.ApplyTo(comparisons).Status).To(Equal(constraint.Success))
	})

	It("skips items the inner constraint cannot be applied to", func() {
		mixed := []any{"x", comparisons[0], 3}
		c := constraint.Exactly(1).Matches(constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1)))
		Expect(c.ApplyTo(mixed).Status).To(Equal(constraint.Success))
	})

	It("errors when the actual value is not a collection", func() {
		c := constraint.Exactly(1).Matches(constraint.NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1)))
		Expect(c.ApplyTo(comparisons[0]).Status).To(Equal(constraint.Error))
		Expect(c.ApplyTo(nil).Status).To(Equal(constraint.Error))
		Expect(c.Description()).To(HavePrefix("exactly 1 item(s) matching"))
	})
})
