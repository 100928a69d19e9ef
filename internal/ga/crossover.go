package ga

import (
	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
)

// SinglePointCrossover swaps allele suffixes of copies of p1 and p2 at a
// random locus and returns both children together with the locus.
func SinglePointCrossover(p1, p2 chromosome.Chromosome, rng rng.Source) (chromosome.Chromosome, chromosome.Chromosome, int) {
	c1 := p1.Clone()
	c2 := p2.Clone()
	locus := rng.Intn(p1.Len())
	chromosome.SwapTail(&c1, &c2, locus)
	return c1, c2, locus
}

// Mate produces two children from two parents. With probability rate the
// children are crossed over; otherwise they are copies of their parents.
// locus is -1 when no crossover happened.
func Mate(p1, p2 chromosome.Chromosome, rate float64, rng rng.Source) (c1, c2 chromosome.Chromosome, locus int) {
	if rng.Float64() >= rate {
		return p1.Clone(), p2.Clone(), -1
	}
	return SinglePointCrossover(p1, p2, rng)
}
