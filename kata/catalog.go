package kata

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyName indicates an exercise registered without a name.
	ErrEmptyName = Invalid("exercise name is empty")
	// ErrNilDemo indicates an exercise registered without a demo.
	ErrNilDemo = Invalid("exercise demo is nil")
	// ErrDuplicate indicates a second exercise with an already registered name.
	ErrDuplicate = Invalid("exercise already registered")
)

// Catalog is an ordered set of exercises keyed by name.
// It is not safe for concurrent registration.
type Catalog struct {
	order  []string
	byName map[string]Exercise
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]Exercise)}
}

// Register adds e to the catalog. The name is trimmed before use.
func (c *Catalog) Register(e Exercise) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Demo == nil {
		return fmt.Errorf("%w: %q", ErrNilDemo, e.Name)
	}
	if _, ok := c.byName[e.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, e.Name)
	}
	c.order = append(c.order, e.Name)
	c.byName[e.Name] = e

	return nil
}

// Lookup returns the exercise registered under name.
func (c *Catalog) Lookup(name string) (Exercise, bool) {
	e, ok := c.byName[strings.TrimSpace(name)]

	return e, ok
}

// All returns the exercises in registration order.
func (c *Catalog) All() []Exercise {
	out := make([]Exercise, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}

	return out
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of registered exercises.
func (c *Catalog) Len() int { return len(c.order) }

// Run executes the demo of e and classifies its result.
// A panicking demo is reported as Failed.
func Run(e Exercise) (o Outcome) {
	o.Name = e.Name
	defer func() {
		if r := recover(); r != nil {
			o.Verdict = Failed
			o.Output = ""
			o.Err = fmt.Errorf("kata: demo %q panicked: %v", e.Name, r)
		}
	}()

	out, err := e.Demo()
	switch {
	case err == nil:
		o.Verdict = Passed
		o.Output = out
	case errors.Is(err, ErrNotImplemented):
		o.Verdict = Unimplemented
		o.Err = err
	default:
		o.Verdict = Failed
		o.Err = err
	}

	return o
}

// RunAll runs every exercise in c in registration order.
func RunAll(c *Catalog) []Outcome {
	out := make([]Outcome, 0, c.Len())
	for _, e := range c.All() {
		out = append(out, Run(e))
	}

	return out
}
