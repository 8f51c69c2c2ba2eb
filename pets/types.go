package pets

import "github.com/katalvlaran/katas/kata"

// Sentinel errors returned by NewPet and Registry.AddPet.
var (
	// ErrEmptyName indicates a name that is blank after trimming.
	ErrEmptyName = kata.Invalid("pets: name is empty")

	// ErrEmptyType indicates a type that is blank after trimming.
	ErrEmptyType = kata.Invalid("pets: type is empty")

	// ErrNegativeAge indicates an age below zero.
	ErrNegativeAge = kata.Invalid("pets: age is negative")

	// ErrNotAPet indicates a nil or zero-value pet passed to AddPet.
	ErrNotAPet = kata.Invalid("pets: value is not a pet")
)
