package ga

import (
	"github.com/ryanfaulkenberry100/one-seeker/internal/chromosome"
	"github.com/ryanfaulkenberry100/one-seeker/internal/rng"
)

// Mutate flips each allele independently with probability rate and returns
// the number of flips.
func Mutate(c *chromosome.Chromosome, rate float64, rng rng.Source) int {
	flips := 0
	for i := 0; i < c.Len(); i++ {
		if rng.Float64() < rate {
			c.Flip(i)
			flips++
		}
	}
	return flips
}
