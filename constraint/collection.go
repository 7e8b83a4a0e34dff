package constraint

import (
	"fmt"
	"reflect"
)

// CountBuilder is the first half of Exactly(n).Matches(c).
type CountBuilder struct {
	expected int
}

// Exactly starts a constraint requiring n matching items in a collection.
func Exactly(n int) CountBuilder {
	return CountBuilder{expected: n}
}

func (b CountBuilder) Matches(item Constraint) Constraint {
	return &exactCount{expected: b.expected, item: item}
}

type exactCount struct {
	expected int
	item     Constraint
}

func (c *exactCount) Description() string {
	return fmt.Sprintf("exactly %d item(s) matching %s", c.expected, c.item.Description())
}

// ApplyTo counts items for which the item constraint succeeds. Items it
// cannot be applied to simply do not count. A non-collection actual is an
// Error.
func (c *exactCount) ApplyTo(actual any) Result {
	rv := reflect.ValueOf(actual)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return newResult(c, actual, Error)
	}

	matched := 0
	for i := 0; i < rv.Len(); i++ {
		if c.item.ApplyTo(rv.Index(i).Interface()).IsSuccess() {
			matched++
		}
	}
	if matched == c.expected {
		return newResult(c, actual, Success)
	}
	return newResult(c, actual, Failure)
}
