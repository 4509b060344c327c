package generator

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrEmptyPool        = errors.New("character pool is empty")
	ErrNegativeLength   = errors.New("length must not be negative")
	ErrInsufficientPool = errors.New("not enough distinct characters for length without repeats")
)

// NewSource returns the process default random source: ChaCha8 seeded once
// from the operating system. It is not safe for concurrent use.
func NewSource() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(fmt.Sprintf("seeding random source: %v", err))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// Generate returns length characters drawn from pool using rnd.
//
// With allowRepeats each position is drawn independently. Without it the
// result is a uniformly random ordered selection of distinct characters, and
// a length larger than the pool fails with ErrInsufficientPool.
func Generate(rnd *rand.Rand, pool []rune, length int, allowRepeats bool) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}
	pool = dedupe(pool)
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	if length == 0 {
		return "", nil
	}

	if allowRepeats {
		return withReplacement(rnd, pool, length), nil
	}
	if length > len(pool) {
		return "", fmt.Errorf("%w: length %d, pool %d", ErrInsufficientPool, length, len(pool))
	}
	return withoutReplacement(rnd, pool, length), nil
}

func withReplacement(rnd *rand.Rand, pool []rune, length int) string {
	out := make([]rune, length)
	for i := range out {
		out[i] = pool[rnd.IntN(len(pool))]
	}
	return string(out)
}

// withoutReplacement runs a partial Fisher-Yates shuffle and keeps the
// first length positions. pool is owned by the caller after dedupe.
func withoutReplacement(rnd *rand.Rand, pool []rune, length int) string {
	for i := 0; i < length; i++ {
		j := i + rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return string(pool[:length])
}

// dedupe returns a fresh copy of pool with repeated runes removed.
func dedupe(pool []rune) []rune {
	seen := make(map[rune]struct{}, len(pool))
	out := make([]rune, 0, len(pool))
	for _, r := range pool {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
