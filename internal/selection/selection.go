// Package selection implements fitness-proportionate sampling of population
// members: a cumulative roulette table scanned per draw, and the Walker/Vose
// alias method that answers each draw in constant time.
//
// Builders take the population's fitness vector and fail on degenerate input.
// Selectors take one uniform draw in [0,1) and return an index in [0, N).
package selection

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPopulation is returned when a table is built from no fitness values.
	ErrEmptyPopulation = errors.New("selection: empty population")
	// ErrDegeneratePopulation is returned when total fitness is zero.
	ErrDegeneratePopulation = errors.New("selection: degenerate population (total fitness is zero)")
	// ErrNegativeFitness is returned when any fitness value is below zero.
	ErrNegativeFitness = errors.New("selection: negative fitness")
	// ErrUnknownMethod is returned by ParseMethod and New for unsupported methods.
	ErrUnknownMethod = errors.New("selection: unknown method")
)

// Method names a weighted selection algorithm
type Method int

const (
	MethodAlias    Method = iota // O(N) build, O(1) draw
	MethodRoulette               // O(N) build, O(log N) draw
)

func (m Method) String() string {
	switch m {
	case MethodAlias:
		return "alias"
	case MethodRoulette:
		return "roulette"
	default:
		return "unknown"
	}
}

// ParseMethod converts a config name into a Method
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alias":
		return MethodAlias, nil
	case "roulette":
		return MethodRoulette, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Selector draws population indices proportionally to fitness.
type Selector interface {
	// Select maps a uniform draw in [0,1) to an index in [0, Len()).
	Select(draw float64) int
	// Len returns the population size the selector was built for.
	Len() int
}

// New builds a selector of the given method from a fitness vector.
func New(method Method, fitness []int) (Selector, error) {
	switch method {
	case MethodAlias:
		table, err := BuildAliasTable(fitness)
		if err != nil {
			return nil, err
		}
		return table, nil
	case MethodRoulette:
		table, err := BuildRouletteTable(fitness)
		if err != nil {
			return nil, err
		}
		return table, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(method))
	}
}

// TotalFitness sums a fitness vector, rejecting empty, negative and all-zero input.
func TotalFitness(fitness []int) (int, error) {
	if len(fitness) == 0 {
		return 0, ErrEmptyPopulation
	}
	total := 0
	for i, f := range fitness {
		if f < 0 {
			return 0, fmt.Errorf("%w: index %d has %d", ErrNegativeFitness, i, f)
		}
		total += f
	}
	if total == 0 {
		return 0, ErrDegeneratePopulation
	}
	return total, nil
}

// binOf maps a draw onto one of n equal-width bins, returning the bin and the
// draw's position inside it. Draws outside [0,1) land in the nearest end bin.
func binOf(draw float64, n int) (int, float64) {
	scaled := draw * float64(n)
	bin := int(scaled) // truncation
	switch {
	case scaled < 0:
		return 0, 0
	case bin >= n:
		return n - 1, 0
	}
	return bin, scaled - float64(bin)
}
