package domain

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanProduct_SameIdentity(t *testing.T) {
	a := NewLoanProduct(1, "a", decimal.NewFromInt(1))
	renamed := NewLoanProduct(1, "renamed", decimal.NewFromInt(9))
	other := NewLoanProduct(2, "a", decimal.NewFromInt(1))

	assert.True(t, a.SameIdentityAs(renamed))
	assert.Equal(t, a.HashCode(), renamed.HashCode())
	assert.False(t, a.SameIdentityAs(other))
	assert.NotEqual(t, a.HashCode(), other.HashCode())
	assert.Equal(t, 1, a.Identity())
}

func TestEmployee_SetAge(t *testing.T) {
	emp := NewEmployee("Foo", 70)

	err := emp.SetAge(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrOutOfRange)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "years", argErr.Param)
	assert.Equal(t, 70, emp.Age())

	require.NoError(t, emp.SetAge(66))
	assert.Equal(t, 66, emp.Age())
}

func TestEmployee_SetLevel(t *testing.T) {
	emp := NewEmployee("Foo", 70)

	err := emp.SetLevel(0)
	var rangeErr *OutOfRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "level", rangeErr.Param)
	assert.Contains(t, err.Error(), "level must be greater than zero")

	require.NoError(t, emp.SetLevel(3))
	assert.Equal(t, 3, emp.Level())
}

func TestByAgeThenNameDesc(t *testing.T) {
	employees := []*Employee{
		NewEmployee("Foo", 32),
		NewEmployee("Baz", 49),
		NewEmployee("Bar", 49),
		NewEmployee("Qux", 49),
	}

	slices.SortFunc(employees, ByAgeThenNameDesc)

	names := make([]string, len(employees))
	for i, e := range employees {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"Foo", "Qux", "Baz", "Bar"}, names)
	assert.True(t, slices.IsSortedFunc(employees, ByAgeThenNameDesc))
}
