// Package eval computes chromosome fitness.
package eval

import (
	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/ga"
)

// Evaluator handles fitness computation for a population
type Evaluator struct {
	evaluations int
}

// NewEvaluator creates a new evaluator
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate recomputes the fitness of one chromosome: its number of set alleles.
func (e *Evaluator) Evaluate(c *chromosome.Chromosome) int {
	e.evaluations++
	return c.Recount()
}

// EvaluatePopulation refreshes every member's fitness and returns the fitness
// vector in population order.
func (e *Evaluator) EvaluatePopulation(pop *ga.Population) []int {
	fitness := make([]int, pop.Size())
	for i := range pop.Chromosomes {
		fitness[i] = e.Evaluate(&pop.Chromosomes[i])
	}
	return fitness
}

// Evaluations returns how many chromosomes have been evaluated so far.
func (e *Evaluator) Evaluations() int {
	return e.evaluations
}
