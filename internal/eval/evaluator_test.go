package eval

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/ga"
)

func TestEvaluatePopulation(t *testing.T) {
	pop, err := ga.NewPopulation(6, 20, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	e := NewEvaluator()
	fitness := e.EvaluatePopulation(pop)

	require.Len(t, fitness, 6)
	for i, c := range pop.Chromosomes {
		assert.Equal(t, strings.Count(c.String(), "1"), fitness[i])
		assert.Equal(t, fitness[i], c.Fitness())
	}
	assert.Equal(t, 6, e.Evaluations())
}

func TestEvaluate(t *testing.T) {
	c, err := chromosome.FromString("0110111")
	require.NoError(t, err)

	e := NewEvaluator()
	assert.Equal(t, 5, e.Evaluate(&c))
	c.Clear(1)
	assert.Equal(t, 4, e.Evaluate(&c))
	assert.Equal(t, 2, e.Evaluations())
}
