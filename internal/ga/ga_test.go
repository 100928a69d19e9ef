package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/selection"
)

func mustChromosome(t *testing.T, s string) chromosome.Chromosome {
	t.Helper()
	c, err := chromosome.FromString(s)
	require.NoError(t, err)
	return c
}

func fixedPopulation(t *testing.T, alleles ...string) *Population {
	t.Helper()
	p := &Population{ChromosomeSize: len(alleles[0])}
	for _, s := range alleles {
		p.Chromosomes = append(p.Chromosomes, mustChromosome(t, s))
	}
	return p
}

func TestNewPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	pop, err := NewPopulation(10, 16, rng)
	require.NoError(t, err)
	assert.Equal(t, 10, pop.Size())
	for _, c := range pop.Chromosomes {
		assert.Equal(t, 16, c.Len())
	}

	_, err = NewPopulation(7, 16, rng)
	assert.Error(t, err)
	_, err = NewPopulation(0, 16, rng)
	assert.Error(t, err)
	_, err = NewPopulation(4, 0, rng)
	assert.Error(t, err)
}

func TestPopulationRanking(t *testing.T) {
	pop := fixedPopulation(t, "0001", "1111", "0111", "1111", "0000", "0011")

	assert.Equal(t, []int{1, 4, 3, 4, 0, 2}, pop.Fitness())
	assert.Equal(t, 1, pop.Best())
	assert.Equal(t, []int{1, 3, 2}, pop.TopK(3))
	assert.Len(t, pop.TopK(100), 6)
}

func TestReplaceRequiresSameSize(t *testing.T) {
	pop := fixedPopulation(t, "01", "10")
	next := []chromosome.Chromosome{mustChromosome(t, "11"), mustChromosome(t, "00")}

	pop.Replace(next)
	assert.Equal(t, "11", pop.Chromosomes[0].String())

	assert.Panics(t, func() { pop.Replace(next[:1]) })
}

func TestMateWithoutCrossoverCopies(t *testing.T) {
	p1 := mustChromosome(t, "11110000")
	p2 := mustChromosome(t, "00001111")

	c1, c2, locus := Mate(p1, p2, 0, rand.New(rand.NewSource(2)))
	assert.Equal(t, -1, locus)
	assert.Equal(t, p1.String(), c1.String())
	assert.Equal(t, p2.String(), c2.String())

	c1.Flip(0)
	assert.True(t, p1.Has(0), "children must not share storage with parents")
}

func TestMateWithCrossoverSwapsSuffix(t *testing.T) {
	p1 := mustChromosome(t, "11111111")
	p2 := mustChromosome(t, "00000000")
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		c1, c2, locus := Mate(p1, p2, 1, rng)
		require.GreaterOrEqual(t, locus, 0)
		require.Less(t, locus, 8)

		assert.Equal(t, locus, c1.Fitness())
		assert.Equal(t, 8-locus, c2.Fitness())
		assert.Equal(t, 8, c1.Fitness()+c2.Fitness())
	}
	assert.Equal(t, "11111111", p1.String())
}

func TestMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	c := mustChromosome(t, "10101010")
	assert.Equal(t, 0, Mutate(&c, 0, rng))
	assert.Equal(t, "10101010", c.String())

	assert.Equal(t, 8, Mutate(&c, 1, rng))
	assert.Equal(t, "01010101", c.String())
	assert.Equal(t, 4, c.Fitness())
}

func TestNextGenerationBreedsFromSelectedParents(t *testing.T) {
	pop := fixedPopulation(t, "000000", "111111", "000000", "000000")
	sel, err := selection.New(selection.MethodAlias, pop.Fitness())
	require.NoError(t, err)

	var matings []Mating
	offspring := NextGeneration(pop, sel, 0.7, 0, rand.New(rand.NewSource(5)), func(m Mating) {
		matings = append(matings, m)
	})

	require.Len(t, offspring, 4)
	require.Len(t, matings, 2)
	for _, m := range matings {
		assert.Equal(t, 1, m.Parent1)
		assert.Equal(t, 1, m.Parent2)
		assert.Zero(t, m.Mutations)
	}
	for _, c := range offspring {
		assert.Equal(t, "111111", c.String())
	}
}

func TestNextGenerationIsReproducible(t *testing.T) {
	breed := func() []string {
		rng := rand.New(rand.NewSource(6))
		pop, err := NewPopulation(20, 24, rng)
		require.NoError(t, err)
		sel, err := selection.New(selection.MethodRoulette, pop.Fitness())
		require.NoError(t, err)

		var out []string
		for _, c := range NextGeneration(pop, sel, 0.7, 0.01, rng, nil) {
			out = append(out, c.String())
		}
		return out
	}

	assert.Equal(t, breed(), breed())
}
