// Package rng provides the seeded uniform random sources shared by the
// generation loop and the selectors.
package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"

	"lukechampine.com/frand"
)

// ErrUnknownKind is returned by New for unsupported generator names.
var ErrUnknownKind = errors.New("rng: unknown kind")

const (
	KindMath   = "math"   // math/rand source
	KindChaCha = "chacha" // ChaCha stream keyed by the seed
)

// chachaRounds trades speed for stream quality; 12 is frand's default.
const chachaRounds = 12

// Source is a uniform random source. *rand.Rand and *frand.RNG satisfy it.
type Source interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n).
	Intn(n int) int
}

// New returns a generator of the given kind. The same kind and seed always
// produce the same stream.
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case KindMath, "":
		return rand.New(rand.NewSource(seed)), nil
	case KindChaCha:
		key := make([]byte, 32)
		binary.LittleEndian.PutUint64(key, uint64(seed))
		return frand.NewCustom(key, 1024, chachaRounds), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
