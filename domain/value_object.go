package domain

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
)

// ValueObject is implemented by types that compare by the values of their
// attributes instead of by identity.
//
// AtomicValues returns the attributes in a fixed order. Two value objects of
// the same concrete type are equal when their sequences are pairwise equal.
type ValueObject interface {
	AtomicValues() []any
}

// hasher lets an atomic value supply its own hash.
type hasher interface {
	Hash() uint64
}

// Equal reports whether a and b are structurally equal.
//
// Two nil values are equal. A nil value never equals a non-nil one, and
// values of different concrete types are never equal. Otherwise the atomic
// values are compared in order; a position where exactly one side is nil, or
// where both sides differ, makes the objects unequal, as does a length
// mismatch.
func Equal(a, b ValueObject) bool {
	aNil, bNil := isNil(a), isNil(b)
	if aNil || bNil {
		return aNil && bNil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	av, bv := a.AtomicValues(), b.AtomicValues()
	i := 0
	for ; i < len(av) && i < len(bv); i++ {
		if !atomicEqual(av[i], bv[i]) {
			return false
		}
	}
	return i == len(av) && i == len(bv)
}

// HashCode folds the hash of every atomic value with XOR; nil values hash to 0.
//
// XOR folding is order-insensitive and lossy: two atomic values with the same
// hash cancel each other out, so e.g. a pair of identical strings contributes
// nothing. Equal objects always hash alike, which is all callers may rely on.
func HashCode(v ValueObject) uint64 {
	if isNil(v) {
		return 0
	}
	var h uint64
	for _, atom := range v.AtomicValues() {
		h ^= atomicHash(atom)
	}
	return h
}

// ShallowCopy duplicates the fields of *v. Referenced values are shared with
// the original.
func ShallowCopy[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func atomicEqual(x, y any) bool {
	xNil, yNil := isNil(x), isNil(y)
	if xNil != yNil {
		return false
	}
	if xNil {
		return true
	}

	if xv, ok := x.(ValueObject); ok {
		yv, ok := y.(ValueObject)
		return ok && Equal(xv, yv)
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	if eq, ok := equalMethod(x, y); ok {
		return eq
	}
	// A comparable struct type can still hold a slice in an interface field.
	if reflect.ValueOf(x).Comparable() && reflect.ValueOf(y).Comparable() {
		return x == y
	}
	return reflect.DeepEqual(x, y)
}

// equalMethod calls x.Equal(y) when x has a method of shape Equal(T) bool,
// as decimal.Decimal and time.Time do.
func equalMethod(x, y any) (bool, bool) {
	m := reflect.ValueOf(x).MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}
	yv := reflect.ValueOf(y)
	if !yv.Type().AssignableTo(mt.In(0)) {
		return false, false
	}
	return m.Call([]reflect.Value{yv})[0].Bool(), true
}

func atomicHash(v any) uint64 {
	if isNil(v) {
		return 0
	}

	switch x := v.(type) {
	case ValueObject:
		return HashCode(x)
	case hasher:
		return x.Hash()
	case decimal.Decimal:
		// String trims trailing zeros, so 1.0 and 1.00 hash alike.
		return xxhash.Sum64String(x.String())
	case string:
		return xxhash.Sum64String(x)
	}

	var buf [8]byte
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(rv.Int()))
		return xxhash.Sum64(buf[:])
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], rv.Uint())
		return xxhash.Sum64(buf[:])
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == 0 {
			f = 0 // -0 == 0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		return xxhash.Sum64(buf[:])
	case reflect.String:
		return xxhash.Sum64String(rv.String())
	}
	return xxhash.Sum64String(fmt.Sprintf("%#v", v))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
