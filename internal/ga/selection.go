package ga

import (
	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
	"github.com/ryanfaulkenberry100/one-seeker/internal/selection"
)

// SelectParents draws two parent indices, one fresh draw each.
func SelectParents(sel selection.Selector, rng rng.Source) (int, int) {
	p1 := sel.Select(rng.Float64())
	p2 := sel.Select(rng.Float64())
	return p1, p2
}

// Mating records how one pair of offspring was produced
type Mating struct {
	Parent1, Parent2 int
	Locus            int // -1 without crossover
	Mutations        int // flips across both children
}

// NextGeneration breeds a full set of offspring from pop. Each pair of
// children comes from two selected parents, crossover and mutation. onMate,
// if non-nil, is called once per pair.
func NextGeneration(pop *Population, sel selection.Selector, crossoverRate, mutationRate float64, rng rng.Source, onMate func(Mating)) []chromosome.Chromosome {
	offspring := make([]chromosome.Chromosome, pop.Size())

	for i := 0; i+1 < len(offspring); i += 2 {
		p1, p2 := SelectParents(sel, rng)

		c1, c2, locus := Mate(pop.Chromosomes[p1], pop.Chromosomes[p2], crossoverRate, rng)

		flips := Mutate(&c1, mutationRate, rng)
		flips += Mutate(&c2, mutationRate, rng)

		offspring[i] = c1
		offspring[i+1] = c2

		if onMate != nil {
			onMate(Mating{Parent1: p1, Parent2: p2, Locus: locus, Mutations: flips})
		}
	}

	return offspring
}
