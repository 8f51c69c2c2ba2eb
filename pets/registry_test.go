package pets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/kata"
	"github.com/katalvlaran/katas/pets"
)

func mustPet(t *testing.T, name, kind string, age int) *pets.Pet {
	t.Helper()
	p, err := pets.NewPet(name, kind, age)
	require.NoError(t, err)

	return p
}

func TestRegistry_AddPet(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	n, err := r.AddPet(mustPet(t, "Rex", "dog", 3))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = r.AddPet(mustPet(t, "Misu", "cat", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_AddPetRejectsNonPets(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	_, _ = r.AddPet(mustPet(t, "Rex", "dog", 3))

	n, err := r.AddPet(nil)
	assert.ErrorIs(t, err, pets.ErrNotAPet)
	assert.ErrorIs(t, err, kata.ErrInvalidInput)
	assert.Equal(t, 1, n)

	n, err = r.AddPet(&pets.Pet{})
	assert.ErrorIs(t, err, pets.ErrNotAPet)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_FindByName(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	first := mustPet(t, "Luna", "cat", 2)
	second := mustPet(t, "LUNA", "dog", 4)
	_, _ = r.AddPet(mustPet(t, "Rex", "dog", 3))
	_, _ = r.AddPet(first)
	_, _ = r.AddPet(second)

	got, ok := r.FindByName("luna")
	require.True(t, ok)
	assert.Same(t, first, got, "first-added match wins")

	got, ok = r.FindByName("  rEx ")
	require.True(t, ok)
	assert.Equal(t, "Rex", got.Name())

	for _, q := range []string{"", "   ", "Lun", "Lunaa", "Max"} {
		got, ok = r.FindByName(q)
		assert.Falsef(t, ok, "query %q", q)
		assert.Nil(t, got)
	}
}

// TestRegistry_BirthdayThroughLookup shows the registry owns live pets.
func TestRegistry_BirthdayThroughLookup(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	_, _ = r.AddPet(mustPet(t, "Rex", "dog", 5))
	p, ok := r.FindByName("rex")
	require.True(t, ok)
	assert.Equal(t, 6, p.HaveBirthday())
	assert.Equal(t, []string{"Rex is a dog that is 6 years old"}, r.DescriptionList())
}

func TestRegistry_Descriptions(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	assert.Empty(t, r.DescriptionList())

	_, _ = r.AddPet(mustPet(t, "Rex", "dog", 1))
	_, _ = r.AddPet(mustPet(t, "Misu", "cat", 3))
	_, _ = r.AddPet(mustPet(t, "Nemo", "fish", 0))

	want := []string{
		"Rex is a dog that is 1 year old",
		"Misu is a cat that is 3 years old",
		"Nemo is a fish that is 0 years old",
	}
	assert.Equal(t, want, r.DescriptionList())

	// Early break stops the lazy sequence.
	var got []string
	for d := range r.Descriptions() {
		got = append(got, d)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, want[:2], got)
}

// TestRegistry_DescriptionsAreLazy renders at consumption time.
func TestRegistry_DescriptionsAreLazy(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	p := mustPet(t, "Rex", "dog", 1)
	_, _ = r.AddPet(p)

	seq := r.Descriptions()
	p.HaveBirthday()
	for d := range seq {
		assert.Equal(t, "Rex is a dog that is 2 years old", d)
	}
}

func TestRegistry_PetsIsACopy(t *testing.T) {
	t.Parallel()

	r := pets.NewRegistry()
	_, _ = r.AddPet(mustPet(t, "A", "dog", 1))
	_, _ = r.AddPet(mustPet(t, "B", "dog", 1))

	list := r.Pets()
	list[0], list[1] = list[1], list[0]
	assert.Equal(t, "A", r.Pets()[0].Name())
}
