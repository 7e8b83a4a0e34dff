package domain

// MinEmployeeAge is the youngest age SetAge accepts.
const MinEmployeeAge = 66

// Employee is a small mutable model used by the ordering and error fixtures.
type Employee struct {
	Name  string
	age   int
	level int
}

func NewEmployee(name string, age int) *Employee {
	return &Employee{Name: name, age: age}
}

func (e *Employee) Age() int { return e.age }

func (e *Employee) Level() int { return e.level }

func (e *Employee) SetAge(years int) error {
	if years < MinEmployeeAge {
		return NewArgumentError("years", "employee is too young")
	}
	e.age = years
	return nil
}

func (e *Employee) SetLevel(payLevel int) error {
	if payLevel < 1 {
		return NewOutOfRangeError("level", payLevel, "level must be greater than zero")
	}
	e.level = payLevel
	return nil
}

// ByAgeThenNameDesc orders employees by ascending age, then by descending
// name. Use with slices.SortFunc.
func ByAgeThenNameDesc(a, b *Employee) int {
	if a.age != b.age {
		return a.age - b.age
	}
	switch {
	case a.Name > b.Name:
		return -1
	case a.Name < b.Name:
		return 1
	}
	return 0
}
