package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrMismatchedBins is returned when observed counts and weights differ in length.
var ErrMismatchedBins = errors.New("stats: observed and weight vectors differ in length")

// Fit is the result of a chi-square goodness-of-fit test.
type Fit struct {
	ChiSquare float64
	DoF       int     // degrees of freedom
	PValue    float64 // P(X >= ChiSquare) under the weights
	Expected  []float64
}

// GoodnessOfFit tests observed draw counts against the distribution implied by
// weights. Bins with zero weight carry no degree of freedom; any draw landing
// in one makes the fit impossible (p = 0).
func GoodnessOfFit(observed, weights []int) (Fit, error) {
	if len(observed) != len(weights) {
		return Fit{}, ErrMismatchedBins
	}

	draws, total := 0, 0
	for i := range observed {
		draws += observed[i]
		total += weights[i]
	}

	fit := Fit{Expected: make([]float64, len(weights))}
	if draws == 0 || total == 0 {
		fit.PValue = 1
		return fit, nil
	}

	bins := 0
	impossible := false
	for i, w := range weights {
		expected := float64(draws) * float64(w) / float64(total)
		fit.Expected[i] = expected
		if expected == 0 {
			if observed[i] > 0 {
				impossible = true
			}
			continue
		}
		d := float64(observed[i]) - expected
		fit.ChiSquare += d * d / expected
		bins++
	}

	fit.DoF = bins - 1
	switch {
	case impossible:
		fit.ChiSquare = math.Inf(1)
		fit.PValue = 0
	case fit.DoF <= 0:
		fit.PValue = 1
	default:
		fit.PValue = distuv.ChiSquared{K: float64(fit.DoF)}.Survival(fit.ChiSquare)
	}
	return fit, nil
}
