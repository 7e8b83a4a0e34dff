package constraint

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"

	"loan-repayment/domain"
)

type recordingT struct {
	errors []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestAssertThat(t *testing.T) {
	comparison := domain.NewMonthlyRepaymentComparison("a", decimal.NewFromInt(1), decimal.NewFromInt(500))

	assert.True(t, AssertThat(t, comparison, NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1))))

	rec := &recordingT{}
	assert.False(t, AssertThat(rec, comparison, NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(2))))
	if assert.Len(t, rec.errors, 1) {
		assert.Contains(t, rec.errors[0], "Expected:")
	}

	rec = &recordingT{}
	assert.False(t, AssertThat(rec, 42, NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1)), "custom %s", "context"))
	if assert.Len(t, rec.errors, 1) {
		assert.Contains(t, rec.errors[0], "cannot be applied to int")
		assert.Contains(t, rec.errors[0], "custom context")
	}
}

func TestShouldSatisfy(t *testing.T) {
	convey.Convey("Given a comparison for product a at 1%", t, func() {
		comparison := domain.NewMonthlyRepaymentComparison("a", decimal.NewFromInt(1), decimal.NewFromInt(500))

		convey.Convey("It satisfies a matching constraint", func() {
			convey.So(comparison, ShouldSatisfy, NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1)))
		})

		convey.Convey("A rate mismatch is reported as a failure", func() {
			msg := ShouldSatisfy(comparison, NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(2)))
			convey.So(msg, convey.ShouldStartWith, "Expected:")
		})

		convey.Convey("A wrong type is reported as an error", func() {
			msg := ShouldSatisfy("a", NewMonthlyRepaymentGreaterThanZero("a", decimal.NewFromInt(1)))
			convey.So(msg, convey.ShouldContainSubstring, "cannot be applied")
		})

		convey.Convey("The expected value must be a single constraint", func() {
			convey.So(ShouldSatisfy(comparison), convey.ShouldNotBeEmpty)
			convey.So(ShouldSatisfy(comparison, "x"), convey.ShouldContainSubstring, "must be a constraint.Constraint")
		})
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "Failure", Failure.String())
	assert.Equal(t, "Error", Error.String())
	assert.Equal(t, "Status(7)", Status(7).String())
}
