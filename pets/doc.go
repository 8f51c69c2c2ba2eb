// Package pets is a small in-memory registry of pets.
//
// A Pet is built only through NewPet, which trims and validates its fields and
// either returns a complete pet or an error; there is no partially valid Pet.
// Name and type are fixed after construction. Age is the only mutable field,
// and it only moves forward, one year per HaveBirthday call.
//
// A Registry keeps pets in insertion order. FindByName matches names
// case-insensitively and returns the first pet added under that name.
// Descriptions yields one sentence per pet lazily, DescriptionList eagerly:
//
//	Rex is a dog that is 1 year old
//	Misu is a cat that is 3 years old
//
// Errors returned by this package wrap kata.ErrInvalidInput.
package pets
