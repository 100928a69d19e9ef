package ga

import (
	"fmt"
	"sort"

	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
)

// Population manages a generation of chromosomes. It is replaced wholesale
// each generation.
type Population struct {
	Chromosomes    []chromosome.Chromosome
	ChromosomeSize int
}

// NewPopulation creates a new random population. size must be positive and
// even so every member has a mate.
func NewPopulation(size, chromosomeSize int, rng rng.Source) (*Population, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("ga: population size must be positive and even, got %d", size)
	}
	if chromosomeSize <= 0 {
		return nil, fmt.Errorf("ga: chromosome size must be positive, got %d", chromosomeSize)
	}

	p := &Population{
		Chromosomes:    make([]chromosome.Chromosome, size),
		ChromosomeSize: chromosomeSize,
	}
	p.Reset(rng)
	return p, nil
}

// Reset redraws every chromosome at random.
func (p *Population) Reset(rng rng.Source) {
	for i := range p.Chromosomes {
		p.Chromosomes[i] = chromosome.Random(p.ChromosomeSize, rng)
	}
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Chromosomes)
}

// Fitness returns the cached fitness of every member, in population order.
func (p *Population) Fitness() []int {
	out := make([]int, len(p.Chromosomes))
	for i := range p.Chromosomes {
		out[i] = p.Chromosomes[i].Fitness()
	}
	return out
}

// Best returns the index of the fittest member; ties go to the lowest index.
func (p *Population) Best() int {
	best := 0
	for i := 1; i < len(p.Chromosomes); i++ {
		if p.Chromosomes[i].Fitness() > p.Chromosomes[best].Fitness() {
			best = i
		}
	}
	return best
}

// TopK returns the indices of the k fittest members, fittest first. The
// population order is left untouched.
func (p *Population) TopK(k int) []int {
	idx := make([]int, len(p.Chromosomes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.Chromosomes[idx[a]].Fitness() > p.Chromosomes[idx[b]].Fitness()
	})
	if k > len(idx) {
		k = len(idx)
	}
	return idx[:k]
}

// Replace swaps in the next generation. offspring must be the same size.
func (p *Population) Replace(offspring []chromosome.Chromosome) {
	if len(offspring) != len(p.Chromosomes) {
		panic(fmt.Sprintf("ga: replacing population of %d with %d offspring", len(p.Chromosomes), len(offspring)))
	}
	p.Chromosomes = offspring
}
