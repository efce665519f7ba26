package sat

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLiteralSet(t *testing.T) {
	t.Run("Distinct atoms", func(t *testing.T) {
		set, err := NewLiteralSet([]Literal{1, -2, 3})

		require.NoError(t, err)
		assert.Equal(t, 3, set.Size())
		assert.Equal(t, []Literal{1, -2, 3}, set.Literals())
	})

	t.Run("Duplicate atom", func(t *testing.T) {
		_, err := NewLiteralSet([]Literal{1, -1, 2})

		assert.ErrorIs(t, err, ErrDuplicateAtom)
	})

	t.Run("Repeated literal", func(t *testing.T) {
		_, err := NewLiteralSet([]Literal{2, 2})

		assert.ErrorIs(t, err, ErrDuplicateAtom)
	})

	t.Run("Zero literal", func(t *testing.T) {
		_, err := NewLiteralSet([]Literal{0, 1})

		assert.ErrorIs(t, err, ErrZeroLiteral)
	})

	t.Run("Empty set", func(t *testing.T) {
		set, err := NewLiteralSet(nil)

		require.NoError(t, err)
		assert.Equal(t, 0, set.Size())
	})
}

func TestLiteralSetFromStrings(t *testing.T) {
	t.Run("Valid tokens", func(t *testing.T) {
		set, err := LiteralSetFromStrings([]string{"1", "-2", "3"})

		require.NoError(t, err)
		assert.Equal(t, []Literal{1, -2, 3}, set.Literals())
	})

	t.Run("Non-integer token", func(t *testing.T) {
		_, err := LiteralSetFromStrings([]string{"1", "x", "3"})

		assert.ErrorIs(t, err, ErrNonIntegerLiteral)
	})

	t.Run("Empty token", func(t *testing.T) {
		_, err := LiteralSetFromStrings([]string{"1", "", "3"})

		assert.ErrorIs(t, err, ErrNonIntegerLiteral)
	})
}

func TestLiteralSetAtoms(t *testing.T) {
	set, err := NewLiteralSet([]Literal{4, -2, 9})
	require.NoError(t, err)

	assert.Equal(t, map[int]struct{}{2: {}, 4: {}, 9: {}}, set.Atoms())
	assert.Equal(t, 9, set.MaxAtom())
}

func TestLiteralSetMaxAtomEmptyPanics(t *testing.T) {
	set, err := NewLiteralSet(nil)
	require.NoError(t, err)

	assert.Panics(t, func() { set.MaxAtom() })
}

func TestLiteralSetPolarity(t *testing.T) {
	set, err := NewLiteralSet([]Literal{1, -2, 3})
	require.NoError(t, err)

	positive, err := set.Polarity(1)
	require.NoError(t, err)
	assert.True(t, positive)

	negative, err := set.Polarity(2)
	require.NoError(t, err)
	assert.False(t, negative)

	_, err = set.Polarity(4)
	assert.ErrorIs(t, err, ErrUndefinedAtom)
}

func TestLiteralSetSort(t *testing.T) {
	set, err := NewLiteralSet([]Literal{-3, 1, -2})
	require.NoError(t, err)
	unsorted, err := NewLiteralSet([]Literal{-3, 1, -2})
	require.NoError(t, err)

	set.Sort()

	assert.Equal(t, []Literal{1, -2, -3}, set.Literals())
	// Sorting reorders iteration only: set equality is unchanged.
	assert.True(t, set.Equal(unsorted))
}

func TestLiteralSetEqual(t *testing.T) {
	t.Run("Order does not matter", func(t *testing.T) {
		a, err := NewLiteralSet([]Literal{1, -2, 3})
		require.NoError(t, err)
		b, err := NewLiteralSet([]Literal{3, 1, -2})
		require.NoError(t, err)

		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("Polarity matters", func(t *testing.T) {
		a, err := NewLiteralSet([]Literal{1, -2})
		require.NoError(t, err)
		b, err := NewLiteralSet([]Literal{1, 2})
		require.NoError(t, err)

		assert.False(t, a.Equal(b))
	})

	t.Run("Nil and size mismatch", func(t *testing.T) {
		a, err := NewLiteralSet([]Literal{1})
		require.NoError(t, err)
		b, err := NewLiteralSet([]Literal{1, 2})
		require.NoError(t, err)

		assert.False(t, a.Equal(nil))
		assert.False(t, a.Equal(b))
	})
}

func TestLiteralSetEqualRandomPermutations(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for range 10 {
		assignment := RandomAssignment(rng, 1+rng.IntN(40))
		lits := assignment.Literals()

		rng.Shuffle(len(lits), func(i, j int) { lits[i], lits[j] = lits[j], lits[i] })
		shuffled, err := NewAssignment(lits)

		require.NoError(t, err)
		assert.True(t, assignment.Equal(shuffled))
	}
}

func TestLiteralSetTokens(t *testing.T) {
	set, err := NewLiteralSet([]Literal{1, -2, 3})
	require.NoError(t, err)

	assert.True(t, slices.Equal([]string{"1", "-2", "3"}, set.Tokens()))
}
