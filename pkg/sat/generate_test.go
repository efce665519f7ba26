package sat

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFormula(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for range 10 {
		vars, clauses := 1+rng.IntN(20), 1+rng.IntN(30)

		formula := RandomFormula(rng, vars, clauses)

		assert.Equal(t, clauses, formula.NbClauses())
		assert.LessOrEqual(t, formula.NbVars(), vars)
		for _, clause := range formula.Clauses() {
			assert.Positive(t, clause.Size())
		}
	}
}

func TestRandomAssignment(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 2))
	for range 10 {
		vars := 1 + rng.IntN(20)

		assignment := RandomAssignment(rng, vars)

		require.Equal(t, vars, assignment.Size())
		for atom := 1; atom <= vars; atom++ {
			_, err := assignment.Polarity(atom)
			assert.NoError(t, err)
		}
	}
}

func TestPlantedSample(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range 20 {
		// Arrange
		vars, clauses := 1+rng.IntN(30), 1+rng.IntN(60)

		// Act
		sample := PlantedSample(rng, vars, clauses)

		// Assert
		require.Equal(t, vars, sample.Target().Size())
		require.Equal(t, clauses, sample.Input().NbClauses())
		assert.True(t, sample.Correct())
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	first := PlantedSample(rand.New(rand.NewPCG(9, 9)), 12, 24)
	second := PlantedSample(rand.New(rand.NewPCG(9, 9)), 12, 24)

	assert.True(t, first.Input().Equal(second.Input()))
	assert.True(t, first.Target().Equal(second.Target()))
}
