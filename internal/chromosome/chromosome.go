// Package chromosome provides a fixed-length bit-string candidate solution
// whose fitness is the number of set alleles.
package chromosome

import (
	"fmt"
	"math/bits"
	"strings"
)

const pow uint = 6
const mod uint = 63

// Source supplies the randomness needed to draw alleles.
type Source interface {
	Intn(n int) int
}

// Chromosome is a bit-string of fixed length packed into 64-bit words. The
// cached fitness is updated by every mutator, so it always equals the count
// of set alleles.
type Chromosome struct {
	len     int
	words   []uint64
	fitness int
}

// New returns an all-zero chromosome of the given length.
func New(length int) Chromosome {
	return Chromosome{len: length, words: make([]uint64, (length+63)/64)}
}

// Random returns a chromosome whose alleles are independently 0 or 1.
func Random(length int, rng Source) Chromosome {
	c := New(length)
	for i := 0; i < length; i++ {
		if rng.Intn(2) == 1 {
			c.Set(i)
		}
	}
	return c
}

// FromString parses a string of '0' and '1' where the first character is
// allele 0.
func FromString(s string) (Chromosome, error) {
	c := New(len(s))
	for i, r := range s {
		switch r {
		case '1':
			c.Set(i)
		case '0':
		default:
			return Chromosome{}, fmt.Errorf("chromosome: invalid allele %q at %d", r, i)
		}
	}
	return c, nil
}

// Len returns the number of alleles.
func (c Chromosome) Len() int {
	return c.len
}

// Fitness returns the number of alleles set to 1.
func (c Chromosome) Fitness() int {
	return c.fitness
}

// Perfect reports whether every allele is 1.
func (c Chromosome) Perfect() bool {
	return c.len > 0 && c.fitness == c.len
}

// Has reports whether the allele at pos is 1.
func (c Chromosome) Has(pos int) bool {
	return c.words[pos>>pow]&(1<<(uint(pos)&mod)) != 0
}

// Set sets the allele at pos to 1.
func (c *Chromosome) Set(pos int) {
	if !c.Has(pos) {
		c.words[pos>>pow] |= 1 << (uint(pos) & mod)
		c.fitness++
	}
}

// Clear sets the allele at pos to 0.
func (c *Chromosome) Clear(pos int) {
	if c.Has(pos) {
		c.words[pos>>pow] &^= 1 << (uint(pos) & mod)
		c.fitness--
	}
}

// Flip inverts the allele at pos.
func (c *Chromosome) Flip(pos int) {
	if c.Has(pos) {
		c.Clear(pos)
	} else {
		c.Set(pos)
	}
}

// Recount recomputes the cached fitness from the alleles and returns it.
func (c *Chromosome) Recount() int {
	n := 0
	for _, w := range c.words {
		n += bits.OnesCount64(w)
	}
	c.fitness = n
	return n
}

// Clone returns a copy that shares no storage with c.
func (c Chromosome) Clone() Chromosome {
	words := make([]uint64, len(c.words))
	copy(words, c.words)
	return Chromosome{len: c.len, words: words, fitness: c.fitness}
}

// SwapTail exchanges alleles [locus, Len) between a and b. Both must have
// the same length.
func SwapTail(a, b *Chromosome, locus int) {
	for i := locus; i < a.len; i++ {
		ha, hb := a.Has(i), b.Has(i)
		if ha == hb {
			continue
		}
		a.Flip(i)
		b.Flip(i)
	}
}

// String renders allele 0 first.
func (c Chromosome) String() string {
	var sb strings.Builder
	sb.Grow(c.len)
	for i := 0; i < c.len; i++ {
		if c.Has(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
