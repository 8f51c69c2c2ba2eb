package pets

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Pet is a validated pet record. The zero value is not a valid Pet.
type Pet struct {
	id   string
	name string
	kind string
	age  int
}

// NewPet validates and builds a Pet. Name and kind are trimmed.
func NewPet(name, kind string, age int) (*Pet, error) {
	name = strings.TrimSpace(name)
	kind = strings.TrimSpace(kind)
	if name == "" {
		return nil, ErrEmptyName
	}
	if kind == "" {
		return nil, fmt.Errorf("%w: pet %q", ErrEmptyType, name)
	}
	if age < 0 {
		return nil, fmt.Errorf("%w: pet %q age=%d", ErrNegativeAge, name, age)
	}

	return &Pet{
		id:   uuid.NewString(),
		name: name,
		kind: kind,
		age:  age,
	}, nil
}

// ID returns the pet's generated identifier.
func (p *Pet) ID() string { return p.id }

// Name returns the trimmed name.
func (p *Pet) Name() string { return p.name }

// Type returns the trimmed type, e.g. "dog".
func (p *Pet) Type() string { return p.kind }

// Age returns the age in years.
func (p *Pet) Age() int { return p.age }

// HaveBirthday adds one year to the pet's age and returns the new age.
func (p *Pet) HaveBirthday() int {
	p.age++

	return p.age
}

// Description renders "{name} is a {type} that is {age} year(s) old".
func (p *Pet) Description() string {
	unit := "years"
	if p.age == 1 {
		unit = "year"
	}

	return fmt.Sprintf("%s is a %s that is %d %s old", p.name, p.kind, p.age, unit)
}

// String implements fmt.Stringer.
func (p *Pet) String() string { return p.Description() }

// valid reports whether p came from NewPet.
func (p *Pet) valid() bool {
	return p != nil && p.id != "" && p.name != "" && p.kind != "" && p.age >= 0
}
