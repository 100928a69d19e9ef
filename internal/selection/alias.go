package selection

// NoAlias marks an alias slot that was never assigned. Such a slot always has
// a stay probability of 1, so the selector never reads it.
const NoAlias = -1

// AliasTable holds the Walker/Vose probability and alias tables.
//
// Prob[i] is the chance a draw landing in bin i stays at i; otherwise it is
// redirected to Alias[i]. A table can be rebuilt in place for a new fitness
// vector of the same length without allocating.
type AliasTable struct {
	Prob  []float64
	Alias []int

	// under/over are index stacks used only while building.
	under []int
	over  []int
}

// BuildAliasTable builds a new alias table for the fitness vector in O(N).
func BuildAliasTable(fitness []int) (*AliasTable, error) {
	t := &AliasTable{}
	if err := t.Rebuild(fitness); err != nil {
		return nil, err
	}
	return t, nil
}

// Rebuild replaces the table contents with those for fitness. Buffers are
// reused when their capacity allows. On error the table is left unchanged.
func (t *AliasTable) Rebuild(fitness []int) error {
	total, err := TotalFitness(fitness)
	if err != nil {
		return err
	}

	n := len(fitness)
	t.Prob = resizeFloats(t.Prob, n)
	t.Alias = resizeInts(t.Alias, n)
	t.under = resizeInts(t.under, n)
	t.over = resizeInts(t.over, n)

	// Scale so the average entry is 1 and sort indices into the two stacks.
	// Entries equal to 1 need no alias.
	underCount, overCount := 0, 0
	for i, f := range fitness {
		t.Prob[i] = float64(f) * float64(n) / float64(total)
		t.Alias[i] = NoAlias
		if t.Prob[i] < 1 {
			t.under[underCount] = i
			underCount++
		} else if t.Prob[i] > 1 {
			t.over[overCount] = i
			overCount++
		}
	}

	for underCount != 0 && overCount != 0 {
		underCount--
		overCount--
		u := t.under[underCount]
		o := t.over[overCount]

		// Fill the spare space in u's bin with o, and take that much from o.
		t.Alias[u] = o
		t.Prob[o] += t.Prob[u] - 1

		if t.Prob[o] < 1 {
			t.under[underCount] = o
			underCount++
		} else if t.Prob[o] > 1 {
			t.over[overCount] = o
			overCount++
		}
	}

	// Rounding can empty one stack before the other. The stragglers are
	// within rounding error of 1.
	for underCount != 0 {
		underCount--
		t.Prob[t.under[underCount]] = 1
	}
	for overCount != 0 {
		overCount--
		t.Prob[t.over[overCount]] = 1
	}
	return nil
}

// SelectAlias returns bin floor(draw*N) if the fractional part of draw*N is
// below the bin's stay probability, and the bin's alias otherwise.
func SelectAlias(prob []float64, alias []int, draw float64) int {
	bin, frac := binOf(draw, len(prob))
	if frac < prob[bin] {
		return bin
	}
	return alias[bin]
}

// Select implements Selector.
func (t *AliasTable) Select(draw float64) int {
	return SelectAlias(t.Prob, t.Alias, draw)
}

// Len implements Selector.
func (t *AliasTable) Len() int {
	return len(t.Prob)
}

// Aliased counts the bins that redirect part of their mass through an alias.
func (t *AliasTable) Aliased() int {
	count := 0
	for _, a := range t.Alias {
		if a != NoAlias {
			count++
		}
	}
	return count
}

func resizeFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

func resizeInts(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	return buf[:n]
}
