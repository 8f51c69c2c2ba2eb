package pets

import (
	"iter"
	"strings"
)

// Registry is an ordered collection of pets. It is not safe for concurrent use.
type Registry struct {
	pets []*Pet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddPet appends p and returns the new number of pets.
// A nil or zero-value pet is rejected with ErrNotAPet.
func (r *Registry) AddPet(p *Pet) (int, error) {
	if !p.valid() {
		return len(r.pets), ErrNotAPet
	}
	r.pets = append(r.pets, p)

	return len(r.pets), nil
}

// FindByName returns the first pet whose name equals name, ignoring case and
// surrounding spaces. A blank name finds nothing.
func (r *Registry) FindByName(name string) (*Pet, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	for _, p := range r.pets {
		if strings.EqualFold(p.name, name) {
			return p, true
		}
	}

	return nil, false
}

// Len returns the number of pets.
func (r *Registry) Len() int { return len(r.pets) }

// Pets returns the pets in insertion order. The slice is a copy; the pets are shared.
func (r *Registry) Pets() []*Pet {
	out := make([]*Pet, len(r.pets))
	copy(out, r.pets)

	return out
}

// Descriptions yields each pet's description in insertion order.
// Descriptions are rendered as the sequence is consumed.
func (r *Registry) Descriptions() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, p := range r.pets {
			if !yield(p.Description()) {
				return
			}
		}
	}
}

// DescriptionList returns every description at once.
func (r *Registry) DescriptionList() []string {
	out := make([]string, 0, len(r.pets))
	for d := range r.Descriptions() {
		out = append(out, d)
	}

	return out
}
