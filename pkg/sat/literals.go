// Package sat models CNF formulas, assignments and training samples, and
// converts them to and from the DIMACS text format.
package sat

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Literal is a signed, non-zero integer: its absolute value identifies a
// variable (the atom) and its sign carries the polarity.
type Literal int

// Atom returns the variable identified by the literal.
func (l Literal) Atom() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether the literal carries positive polarity.
func (l Literal) Positive() bool {
	return l > 0
}

func (l Literal) String() string {
	return strconv.Itoa(int(l))
}

// LiteralSet is an ordered sequence of literals in which no two literals
// share an atom. Equality is defined over the set of literals, not their
// order. Clause and Assignment build on it.
type LiteralSet struct {
	lits []Literal
}

// NewLiteralSet validates lits and wraps them. It returns ErrDuplicateAtom
// when two elements share an absolute value and ErrZeroLiteral when an
// element is zero.
func NewLiteralSet(lits []Literal) (*LiteralSet, error) {
	atoms := make(map[int]struct{}, len(lits))
	for _, lit := range lits {
		atoms[lit.Atom()] = struct{}{}
	}
	if len(atoms) != len(lits) {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateAtom, lits)
	}
	if slices.Contains(lits, 0) {
		return nil, ErrZeroLiteral
	}
	return &LiteralSet{lits: slices.Clone(lits)}, nil
}

// LiteralSetFromStrings converts each token to an integer literal and applies
// NewLiteralSet. It returns ErrNonIntegerLiteral on the first token that does
// not parse.
func LiteralSetFromStrings(tokens []string) (*LiteralSet, error) {
	lits := make([]Literal, len(tokens))
	for i, token := range tokens {
		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNonIntegerLiteral, token)
		}
		lits[i] = Literal(value)
	}
	return NewLiteralSet(lits)
}

// Size returns the number of literals.
func (s *LiteralSet) Size() int {
	return len(s.lits)
}

// Literals returns a copy of the literals in their current order.
func (s *LiteralSet) Literals() []Literal {
	return slices.Clone(s.lits)
}

// Atoms returns the set of variables appearing in the literals.
func (s *LiteralSet) Atoms() map[int]struct{} {
	atoms := make(map[int]struct{}, len(s.lits))
	for _, lit := range s.lits {
		atoms[lit.Atom()] = struct{}{}
	}
	return atoms
}

// MaxAtom returns the largest atom. It must not be called on an empty set.
func (s *LiteralSet) MaxAtom() int {
	if len(s.lits) == 0 {
		panic("sat: MaxAtom called on empty literal set")
	}
	max := s.lits[0].Atom()
	for _, lit := range s.lits[1:] {
		if lit.Atom() > max {
			max = lit.Atom()
		}
	}
	return max
}

// Polarity reports whether atom appears as a positive literal. It returns
// ErrUndefinedAtom when the atom is not present.
func (s *LiteralSet) Polarity(atom int) (bool, error) {
	for _, lit := range s.lits {
		if lit.Atom() == atom {
			return lit.Positive(), nil
		}
	}
	return false, fmt.Errorf("%w: %d", ErrUndefinedAtom, atom)
}

// Sort reorders the literals in place, ascending by atom. Polarities are
// preserved; only iteration and serialization order changes.
func (s *LiteralSet) Sort() {
	slices.SortFunc(s.lits, func(a, b Literal) int {
		return cmp.Compare(a.Atom(), b.Atom())
	})
}

// Equal reports whether both sets contain the same literals, regardless of
// order.
func (s *LiteralSet) Equal(other *LiteralSet) bool {
	if other == nil || len(s.lits) != len(other.lits) {
		return false
	}
	seen := make(map[Literal]struct{}, len(s.lits))
	for _, lit := range s.lits {
		seen[lit] = struct{}{}
	}
	for _, lit := range other.lits {
		if _, ok := seen[lit]; !ok {
			return false
		}
	}
	return true
}

// Tokens returns the literals as decimal string tokens in their current
// order.
func (s *LiteralSet) Tokens() []string {
	return lo.Map(s.lits, func(lit Literal, _ int) string { return lit.String() })
}

// key is a canonical order-insensitive form, used to treat literal sets as
// members of a set themselves.
func (s *LiteralSet) key() string {
	sorted := slices.Clone(s.lits)
	slices.SortFunc(sorted, func(a, b Literal) int {
		return cmp.Compare(a.Atom(), b.Atom())
	})
	tokens := lo.Map(sorted, func(lit Literal, _ int) string { return lit.String() })
	return strings.Join(tokens, " ")
}
