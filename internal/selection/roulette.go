package selection

import "sort"

// RouletteTable is the cumulative selection probability of each index.
// Entries are non-decreasing and the final entry is 1 up to rounding.
type RouletteTable []float64

// BuildRouletteTable computes table[i] = sum(fitness[0..i]) / total.
func BuildRouletteTable(fitness []int) (RouletteTable, error) {
	total, err := TotalFitness(fitness)
	if err != nil {
		return nil, err
	}

	table := make(RouletteTable, len(fitness))
	running := 0
	for i, f := range fitness {
		// Integer running sum keeps the last entry exactly total/total.
		running += f
		table[i] = float64(running) / float64(total)
	}
	return table, nil
}

// SelectRoulette returns the smallest index i with draw < table[i]. When
// rounding leaves no such index the last index is returned.
func SelectRoulette(table RouletteTable, draw float64) int {
	n := len(table)
	i := sort.Search(n, func(i int) bool { return draw < table[i] })
	if i == n {
		return n - 1 // default to last if rounding issues
	}
	return i
}

// Select implements Selector.
func (t RouletteTable) Select(draw float64) int {
	return SelectRoulette(t, draw)
}

// Len implements Selector.
func (t RouletteTable) Len() int {
	return len(t)
}
