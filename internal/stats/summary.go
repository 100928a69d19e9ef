// Package stats summarises population fitness and checks sampled frequencies
// against the weights they were drawn from.
package stats

import (
	"gonum.org/v1/gonum/stat"
)

// Summary captures the fitness distribution of one generation
type Summary struct {
	Best    int     // highest fitness
	Worst   int     // lowest fitness
	Mean    float64 // mean fitness
	Std     float64 // sample standard deviation
	Total   int     // sum of fitness
	Perfect int     // chromosomes whose fitness equals their length
}

// Summarize computes statistics from a fitness vector. perfect is the fitness
// of an all-ones chromosome.
func Summarize(fitness []int, perfect int) Summary {
	n := len(fitness)
	if n == 0 {
		return Summary{}
	}

	s := Summary{Best: fitness[0], Worst: fitness[0]}
	values := make([]float64, n)
	for i, f := range fitness {
		values[i] = float64(f)
		s.Total += f
		if f > s.Best {
			s.Best = f
		}
		if f < s.Worst {
			s.Worst = f
		}
		if f == perfect {
			s.Perfect++
		}
	}

	if n < 2 {
		s.Mean = values[0]
		return s
	}
	s.Mean, s.Std = stat.MeanStdDev(values, nil)
	return s
}
