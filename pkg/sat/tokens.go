package sat

// Tokenizable is implemented by every type with a token-sequence view for
// vocabulary encoding. The tokens are the whitespace tokens of the DIMACS
// serialization; for formulas, comments and the header are left out.
type Tokenizable interface {
	Tokens() []string
}

// AssignmentFromTokens rebuilds an assignment from its token form. A leading
// v marker is optional, literal tokens run until the terminator 0, and
// tokens after the terminator are ignored. It returns ErrMissingTerminator
// when no 0 is present.
func AssignmentFromTokens(tokens []string) (*Assignment, error) {
	if len(tokens) > 0 && tokens[0] == "v" {
		tokens = tokens[1:]
	}
	terminator := -1
	for i, token := range tokens {
		if token == "0" {
			terminator = i
			break
		}
	}
	if terminator < 0 {
		return nil, ErrMissingTerminator
	}
	set, err := LiteralSetFromStrings(tokens[:terminator])
	if err != nil {
		return nil, err
	}
	return &Assignment{LiteralSet: *set}, nil
}

// FormulaFromTokens rebuilds a formula from its token form, splitting the
// stream into clauses on the terminator 0. It returns ErrMissingTerminator
// when literal tokens trail after the last terminator. The variable count is
// derived, since the token form carries no header.
func FormulaFromTokens(tokens []string) (*Formula, error) {
	var clauses []*Clause
	var current []string
	for _, token := range tokens {
		if token != "0" {
			current = append(current, token)
			continue
		}
		set, err := LiteralSetFromStrings(current)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, &Clause{LiteralSet: *set})
		current = nil
	}
	if len(current) > 0 {
		return nil, ErrMissingTerminator
	}
	return NewFormula(clauses, nil), nil
}
