// Package shuffle provides Fisher-Yates permutations over an injectable random source.
package shuffle

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand used for shuffling.
//
// *math/rand/v2.Rand satisfies Source, so tests can inject a seeded generator:
//
//	src := rand.New(rand.NewPCG(1, 2))
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Global returns a Source backed by the process-wide generator.
//
// The process-wide generator is safe for concurrent use.
func Global() Source {
	return globalSource{}
}

// Seeded returns a deterministic Source for the given seed.
//
// The returned Source is not safe for concurrent use; wrap it with Locked
// when it is shared.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // not used for security
}

// lockedSource serializes access to a Source that is not safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Locked wraps src with a mutex.
//
// Parameters:
//   - src: Source to protect (nil means Global)
//
// Returns:
//   - Source: Concurrency-safe source
func Locked(src Source) Source {
	if src == nil {
		return Global()
	}
	if _, ok := src.(globalSource); ok {
		return src
	}
	if _, ok := src.(*lockedSource); ok {
		return src
	}

	return &lockedSource{src: src}
}

func (l *lockedSource) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.src.IntN(n)
}

// Permute returns a uniformly random permutation of items. The input is not modified.
//
// Parameters:
//   - src: Random source (nil means Global)
//   - items: Items to permute
//
// Returns:
//   - []T: New slice holding a permutation of items
func Permute[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	InPlace(src, out)

	return out
}

// InPlace shuffles items in place with the Fisher-Yates algorithm.
func InPlace[T any](src Source, items []T) {
	if src == nil {
		src = Global()
	}
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
