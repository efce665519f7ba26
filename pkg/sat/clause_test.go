package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClause(t *testing.T) {
	t.Run("Terminated line", func(t *testing.T) {
		clause, err := ParseClause("1 -2 3 0")

		require.NoError(t, err)
		assert.Equal(t, []Literal{1, -2, 3}, clause.Literals())
	})

	t.Run("Terminator is optional", func(t *testing.T) {
		clause, err := ParseClause("1 -2 3")

		require.NoError(t, err)
		assert.Equal(t, []Literal{1, -2, 3}, clause.Literals())
	})

	t.Run("Trailing spaces", func(t *testing.T) {
		clause, err := ParseClause("1 -2 0  ")

		require.NoError(t, err)
		assert.Equal(t, []Literal{1, -2}, clause.Literals())
	})

	t.Run("Empty clause", func(t *testing.T) {
		clause, err := ParseClause("0")

		require.NoError(t, err)
		assert.Equal(t, 0, clause.Size())
		assert.Equal(t, "0", clause.String())
	})

	t.Run("Literal ending in zero is not a terminator", func(t *testing.T) {
		clause, err := ParseClause("30 -10 0")

		require.NoError(t, err)
		assert.Equal(t, []Literal{30, -10}, clause.Literals())
	})

	t.Run("Blank line", func(t *testing.T) {
		_, err := ParseClause("")

		assert.ErrorIs(t, err, ErrNonIntegerLiteral)
	})

	t.Run("Non-integer token", func(t *testing.T) {
		_, err := ParseClause("1 two 0")

		assert.ErrorIs(t, err, ErrNonIntegerLiteral)
	})

	t.Run("Duplicate atom", func(t *testing.T) {
		_, err := ParseClause("1 -1 0")

		assert.ErrorIs(t, err, ErrDuplicateAtom)
	})
}

func TestClauseRoundTrip(t *testing.T) {
	clause, err := NewClause([]Literal{4, -7, 2})
	require.NoError(t, err)

	serialized := clause.String()
	parsed, err := ParseClause(serialized)

	require.NoError(t, err)
	assert.Equal(t, "4 -7 2 0", serialized)
	assert.True(t, clause.Equal(parsed))
}

func TestClauseTokens(t *testing.T) {
	clause, err := NewClause([]Literal{-5, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"-5", "1", "0"}, clause.Tokens())
}

func TestClauseEqual(t *testing.T) {
	a, err := NewClause([]Literal{1, -2, 3})
	require.NoError(t, err)
	b, err := ParseClause("3 1 -2 0")
	require.NoError(t, err)
	c, err := NewClause([]Literal{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
