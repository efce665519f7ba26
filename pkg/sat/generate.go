package sat

import "math/rand/v2"

// RandomFormula draws a formula over vars variables with the given number of
// clauses. Each clause includes every atom with probability 1/2 and a random
// polarity, and receives one random literal when the draw comes up empty, so
// no clause is empty.
func RandomFormula(rng *rand.Rand, vars, clauses int) *Formula {
	drawn := make([]*Clause, 0, clauses)
	for range clauses {
		drawn = append(drawn, mustClause(randomLiterals(rng, vars)))
	}
	return NewFormula(drawn, nil)
}

// RandomAssignment draws an assignment deciding every atom in 1..vars with a
// random polarity.
func RandomAssignment(rng *rand.Rand, vars int) *Assignment {
	lits := make([]Literal, vars)
	for i := range lits {
		lits[i] = randomPolarity(rng, i+1)
	}
	assignment, err := NewAssignment(lits)
	if err != nil {
		panic(err)
	}
	return assignment
}

// PlantedSample draws a target assignment first and then only clauses
// containing at least one literal true under it, flipping one literal when a
// draw disagrees everywhere. The resulting sample always passes Correct.
func PlantedSample(rng *rand.Rand, vars, clauses int) *Sample {
	target := RandomAssignment(rng, vars)
	polarity := make(map[int]bool, vars)
	for _, lit := range target.lits {
		polarity[lit.Atom()] = lit.Positive()
	}

	drawn := make([]*Clause, 0, clauses)
	for range clauses {
		lits := randomLiterals(rng, vars)
		agrees := false
		for _, lit := range lits {
			if lit.Positive() == polarity[lit.Atom()] {
				agrees = true
				break
			}
		}
		if !agrees {
			i := rng.IntN(len(lits))
			atom := lits[i].Atom()
			lits[i] = polarized(atom, polarity[atom])
		}
		drawn = append(drawn, mustClause(lits))
	}
	return NewSample(NewFormula(drawn, nil), target)
}

func randomLiterals(rng *rand.Rand, vars int) []Literal {
	lits := make([]Literal, 0, vars)
	for atom := 1; atom <= vars; atom++ {
		if rng.Float32() < 0.5 {
			lits = append(lits, randomPolarity(rng, atom))
		}
	}
	if len(lits) == 0 {
		lits = append(lits, randomPolarity(rng, 1+rng.IntN(vars)))
	}
	return lits
}

func randomPolarity(rng *rand.Rand, atom int) Literal {
	return polarized(atom, rng.Float32() < 0.5)
}

func polarized(atom int, positive bool) Literal {
	if positive {
		return Literal(atom)
	}
	return Literal(-atom)
}

func mustClause(lits []Literal) *Clause {
	clause, err := NewClause(lits)
	if err != nil {
		panic(err)
	}
	return clause
}
