package sat

import (
	"fmt"
	"strings"
)

// Assignment maps decided atoms to truth values, one literal per atom. Its
// DIMACS text form is one or more lines starting with the v marker, with the
// literals terminated by the token 0.
type Assignment struct {
	LiteralSet
}

// NewAssignment validates lits and wraps them into an assignment.
func NewAssignment(lits []Literal) (*Assignment, error) {
	set, err := NewLiteralSet(lits)
	if err != nil {
		return nil, err
	}
	return &Assignment{LiteralSet: *set}, nil
}

// ParseAssignment reads a DIMACS assignment. Every line contributes literal
// tokens until the first 0 token; anything after that is ignored, not
// validated. It returns ErrMalformedAssignmentLine for a consumed line that
// does not start with v, and ErrMissingTerminator when all lines are
// exhausted without a 0.
func ParseAssignment(s string) (*Assignment, error) {
	var tokens []string
	terminated := false
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "v") {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAssignmentLine, line)
		}
		for _, token := range strings.Split(line, " ")[1:] {
			if token == "0" {
				terminated = true
				break
			}
			tokens = append(tokens, token)
		}
		if terminated {
			break
		}
	}
	if !terminated {
		return nil, ErrMissingTerminator
	}
	set, err := LiteralSetFromStrings(tokens)
	if err != nil {
		return nil, err
	}
	return &Assignment{LiteralSet: *set}, nil
}

// Tokens returns the assignment as DIMACS tokens: the v marker, the literals
// and the terminator 0.
func (a *Assignment) Tokens() []string {
	tokens := make([]string, 0, a.Size()+2)
	tokens = append(tokens, "v")
	tokens = append(tokens, a.LiteralSet.Tokens()...)
	return append(tokens, "0")
}

// String returns the single-line DIMACS form of the assignment.
func (a *Assignment) String() string {
	return strings.Join(a.Tokens(), " ")
}

// Equal reports whether both assignments contain the same literals,
// regardless of order.
func (a *Assignment) Equal(other *Assignment) bool {
	if other == nil {
		return false
	}
	return a.LiteralSet.Equal(&other.LiteralSet)
}

// AssignmentFromFields reads the assignment field of a record, as produced by
// ToFields.
func AssignmentFromFields(fields map[string]string) (*Assignment, error) {
	raw, ok := fields[AssignmentField]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, AssignmentField)
	}
	return ParseAssignment(raw)
}

// ToFields returns the assignment as a field record.
func (a *Assignment) ToFields() map[string]string {
	return map[string]string{AssignmentField: a.String()}
}
