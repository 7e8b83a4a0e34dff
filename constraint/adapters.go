package constraint

import (
	"errors"
	"fmt"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
	"github.com/stretchr/testify/assert"
)

// AssertThat applies c to actual and reports anything but Success through
// testify.
func AssertThat(t assert.TestingT, actual any, c Constraint, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	r := c.ApplyTo(actual)
	if r.IsSuccess() {
		return true
	}
	return assert.Fail(t, r.Message(), msgAndArgs...)
}

// Satisfy adapts c to a gomega matcher. A Failure makes Match return false;
// an Error is returned as an error so gomega reports it separately.
func Satisfy(c Constraint) types.GomegaMatcher {
	return &matcher{constraint: c}
}

type matcher struct {
	constraint Constraint
}

func (m *matcher) Match(actual any) (bool, error) {
	r := m.constraint.ApplyTo(actual)
	switch r.Status {
	case Success:
		return true, nil
	case Failure:
		return false, nil
	}
	return false, errors.New(r.Message())
}

func (m *matcher) FailureMessage(actual any) string {
	return format.Message(actual, "to satisfy", m.constraint.Description())
}

func (m *matcher) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to satisfy", m.constraint.Description())
}

// ShouldSatisfy is a goconvey assertion: So(actual, ShouldSatisfy, c).
func ShouldSatisfy(actual any, expected ...any) string {
	if len(expected) != 1 {
		return fmt.Sprintf("This assertion requires exactly 1 comparison value (you provided %d).", len(expected))
	}
	c, ok := expected[0].(Constraint)
	if !ok {
		return fmt.Sprintf("The expected value must be a constraint.Constraint (was %T).", expected[0])
	}
	return c.ApplyTo(actual).Message()
}
