package sat

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Formula is a conjunction of clauses in CNF, together with the comments of
// its DIMACS document. Instances are immutable once constructed.
type Formula struct {
	clauses  []*Clause
	comments []string
	nbVars   int
}

// NewFormula builds a formula over the given clauses. The variable count is
// derived from the clauses as the maximum atom, 0 when there are none.
func NewFormula(clauses []*Clause, comments []string) *Formula {
	nbVars := 0
	for _, clause := range clauses {
		if clause.Size() > 0 && clause.MaxAtom() > nbVars {
			nbVars = clause.MaxAtom()
		}
	}
	return &Formula{
		clauses:  slices.Clone(clauses),
		comments: slices.Clone(comments),
		nbVars:   nbVars,
	}
}

// ParseFormula reads a DIMACS CNF document. The declared clause and variable
// counts must match what is actually parsed; mismatches are errors, never
// silently corrected.
func ParseFormula(s string) (*Formula, error) {
	var (
		clauses     []*Clause
		comments    []string
		declVars    int
		declClauses int
		headerRead  bool
	)
	for _, line := range strings.Split(strings.TrimRight(s, "\n "), "\n") {
		switch {
		case strings.HasPrefix(line, "c"):
			if len(line) < 2 {
				comments = append(comments, "")
			} else {
				comments = append(comments, line[2:])
			}
		case strings.HasPrefix(line, "p"):
			if headerRead {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateHeader, line)
			}
			fields := strings.Split(line, " ")
			if len(fields) != 4 || fields[0] != "p" {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			if fields[1] != "cnf" {
				return nil, fmt.Errorf("%w: %q", ErrInvalidFormatTag, fields[1])
			}
			var err error
			if declVars, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			if declClauses, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
			}
			headerRead = true
		default:
			clause, err := ParseClause(line)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, clause)
		}
	}
	if !headerRead {
		return nil, ErrMissingHeader
	}
	formula := NewFormula(clauses, comments)
	if declClauses != formula.NbClauses() {
		return nil, fmt.Errorf("%w: declared %d, parsed %d",
			ErrClauseCountMismatch, declClauses, formula.NbClauses())
	}
	if declVars != formula.NbVars() {
		return nil, fmt.Errorf("%w: declared %d, parsed %d",
			ErrVarCountMismatch, declVars, formula.NbVars())
	}
	return formula, nil
}

// NbVars returns the number of variables of the formula.
func (f *Formula) NbVars() int {
	return f.nbVars
}

// NbClauses returns the number of clauses of the formula.
func (f *Formula) NbClauses() int {
	return len(f.clauses)
}

// Clauses returns the clauses in their stored order.
func (f *Formula) Clauses() []*Clause {
	return slices.Clone(f.clauses)
}

// Comments returns the comment lines in their stored order, without the c
// marker.
func (f *Formula) Comments() []string {
	return slices.Clone(f.comments)
}

// Atoms returns the set of variables appearing anywhere in the formula.
func (f *Formula) Atoms() map[int]struct{} {
	atoms := make(map[int]struct{})
	for _, clause := range f.clauses {
		maps.Copy(atoms, clause.Atoms())
	}
	return atoms
}

// String returns the DIMACS CNF document: comments, then the header, then
// one line per clause.
func (f *Formula) String() string {
	var builder strings.Builder
	for _, comment := range f.comments {
		fmt.Fprintf(&builder, "c %s\n", comment)
	}
	fmt.Fprintf(&builder, "p cnf %d %d\n", f.nbVars, len(f.clauses))
	for _, clause := range f.clauses {
		builder.WriteString(clause.String())
		builder.WriteByte('\n')
	}
	return builder.String()
}

// Equal reports whether both formulas contain the same set of clauses.
// Duplicate clauses collapse, and comments and declared counts are not
// compared.
func (f *Formula) Equal(other *Formula) bool {
	if other == nil {
		return false
	}
	return maps.Equal(f.clauseSet(), other.clauseSet())
}

func (f *Formula) clauseSet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.clauses))
	for _, clause := range f.clauses {
		set[clause.key()] = struct{}{}
	}
	return set
}

// Satisfied reports whether every clause contains at least one literal of
// the assignment.
func (f *Formula) Satisfied(assignment *Assignment) bool {
	decided := make(map[Literal]bool, assignment.Size())
	for _, lit := range assignment.lits {
		decided[lit] = true
	}
	for _, clause := range f.clauses {
		satisfied := false
		for _, lit := range clause.lits {
			if decided[lit] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// Tokens returns the formula as DIMACS tokens: for each clause in order, its
// literals followed by the terminator 0. Comments and the header are not
// tokenized.
func (f *Formula) Tokens() []string {
	var tokens []string
	for _, clause := range f.clauses {
		tokens = append(tokens, clause.Tokens()...)
	}
	return tokens
}

// FormulaFromFields reads the formula field of a record, as produced by
// ToFields.
func FormulaFromFields(fields map[string]string) (*Formula, error) {
	raw, ok := fields[FormulaField]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, FormulaField)
	}
	return ParseFormula(raw)
}

// ToFields returns the formula as a field record.
func (f *Formula) ToFields() map[string]string {
	return map[string]string{FormulaField: f.String()}
}
