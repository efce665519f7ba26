package sat

import "errors"

// Sentinel errors returned by the DIMACS parsers and constructors. They are
// wrapped with the offending input, so callers match them with errors.Is.
var (
	// ErrDuplicateAtom is returned when two literals share an atom, which
	// also covers a variable co-occurring with its own negation.
	ErrDuplicateAtom = errors.New("duplicate atom in literal set")

	// ErrZeroLiteral is returned when a literal value of zero is supplied.
	ErrZeroLiteral = errors.New("zero cannot be a literal")

	// ErrNonIntegerLiteral is returned when a literal token does not parse
	// as an integer.
	ErrNonIntegerLiteral = errors.New("non-integer literal token")

	// ErrUndefinedAtom is returned when polarity is requested for an atom
	// that is not present in the set.
	ErrUndefinedAtom = errors.New("atom not defined")

	// ErrMalformedAssignmentLine is returned when an assignment line does
	// not start with the v marker.
	ErrMalformedAssignmentLine = errors.New("assignment line does not start with v")

	// ErrMissingTerminator is returned when no terminating 0 token is found.
	ErrMissingTerminator = errors.New("missing terminating 0")

	// ErrMissingHeader is returned when a formula has no p cnf header line.
	ErrMissingHeader = errors.New("no header found")

	// ErrDuplicateHeader is returned when a formula declares more than one
	// header line.
	ErrDuplicateHeader = errors.New("duplicate header")

	// ErrMalformedHeader is returned when a header line does not have the
	// shape p cnf <nbvars> <nbclauses>.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrInvalidFormatTag is returned when the header format tag is not cnf.
	ErrInvalidFormatTag = errors.New("header format tag is not cnf")

	// ErrClauseCountMismatch is returned when the declared clause count does
	// not match the number of parsed clauses.
	ErrClauseCountMismatch = errors.New("declared clause count does not match parsed clauses")

	// ErrVarCountMismatch is returned when the declared variable count does
	// not match the maximum atom observed.
	ErrVarCountMismatch = errors.New("declared variable count does not match parsed variables")

	// ErrMissingField is returned when a field record lacks a required field.
	ErrMissingField = errors.New("missing required field")
)
