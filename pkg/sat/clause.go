package sat

import "strings"

// Clause is a disjunction of literals. Its DIMACS text form is the literals
// separated by single spaces and terminated by 0.
type Clause struct {
	LiteralSet
}

// NewClause validates lits and wraps them into a clause.
func NewClause(lits []Literal) (*Clause, error) {
	set, err := NewLiteralSet(lits)
	if err != nil {
		return nil, err
	}
	return &Clause{LiteralSet: *set}, nil
}

// ParseClause reads one DIMACS clause line. The terminating 0 token is
// optional; an input of exactly "0" yields the empty clause.
func ParseClause(line string) (*Clause, error) {
	tokens := strings.Split(strings.TrimRight(line, " "), " ")
	if tokens[len(tokens)-1] == "0" {
		tokens = tokens[:len(tokens)-1]
	}
	set, err := LiteralSetFromStrings(tokens)
	if err != nil {
		return nil, err
	}
	return &Clause{LiteralSet: *set}, nil
}

// Tokens returns the clause as DIMACS tokens: the literals followed by the
// terminator 0.
func (c *Clause) Tokens() []string {
	return append(c.LiteralSet.Tokens(), "0")
}

// String returns the DIMACS form of the clause. The empty clause serializes
// to exactly "0".
func (c *Clause) String() string {
	return strings.Join(c.Tokens(), " ")
}

// Equal reports whether both clauses contain the same literals, regardless
// of order.
func (c *Clause) Equal(other *Clause) bool {
	if other == nil {
		return false
	}
	return c.LiteralSet.Equal(&other.LiteralSet)
}
