// Package constraint provides predicate objects with a three-valued outcome
// and adapters that plug them into testify, gomega and goconvey.
//
// A constraint distinguishes a value that does not match (Failure) from a
// value it cannot be applied to at all (Error).
package constraint

import "fmt"

// Status is the outcome of applying a Constraint.
type Status int

const (
	// Success means the actual value satisfied the constraint.
	Success Status = iota
	// Failure means the actual value was of the right kind but did not match.
	Failure
	// Error means the constraint could not be applied to the actual value.
	Error
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Error:
		return "Error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result records how a constraint judged a value.
type Result struct {
	Status      Status
	Actual      any
	Description string
}

func (r Result) IsSuccess() bool { return r.Status == Success }

// Message renders a failure or error for test output.
func (r Result) Message() string {
	switch r.Status {
	case Success:
		return ""
	case Error:
		return fmt.Sprintf("constraint %q cannot be applied to %T: %#v", r.Description, r.Actual, r.Actual)
	}
	return fmt.Sprintf("Expected: %s\nBut was:  %#v", r.Description, r.Actual)
}

type Constraint interface {
	ApplyTo(actual any) Result
	Description() string
}

func newResult(c Constraint, actual any, status Status) Result {
	return Result{Status: status, Actual: actual, Description: c.Description()}
}
