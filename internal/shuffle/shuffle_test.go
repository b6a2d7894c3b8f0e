package shuffle

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermute(t *testing.T) {
	t.Run("returns a permutation without touching the input", func(t *testing.T) {
		in := []int{1, 2, 3, 4, 5, 6, 7, 8}
		out := Permute(Seeded(7), in)

		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, in)
		require.ElementsMatch(t, in, out)
	})

	t.Run("is deterministic for a seed", func(t *testing.T) {
		in := []string{"a", "b", "c", "d", "e"}

		require.Equal(t, Permute(Seeded(42), in), Permute(Seeded(42), in))
	})

	t.Run("handles empty and single inputs", func(t *testing.T) {
		require.Empty(t, Permute[int](Seeded(1), nil))
		require.Equal(t, []int{9}, Permute(Seeded(1), []int{9}))
	})

	t.Run("nil source falls back to the global generator", func(t *testing.T) {
		out := Permute(nil, []int{1, 2, 3})
		require.ElementsMatch(t, []int{1, 2, 3}, out)
	})
}

func TestPermute_Uniformity(t *testing.T) {
	// Each of the 6 orderings of 3 items should appear roughly 1/6 of the time.
	src := Seeded(2024)
	counts := map[string]int{}
	const rounds = 6000

	for range rounds {
		p := Permute(src, []byte("abc"))
		counts[string(p)]++
	}

	require.Len(t, counts, 6)
	for perm, n := range counts {
		require.InDelta(t, rounds/6, n, 150, "permutation %s is skewed", perm)
	}
}

func TestLocked(t *testing.T) {
	t.Run("is safe for concurrent use", func(t *testing.T) {
		src := Locked(Seeded(3))

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 100 {
					p := Permute(src, []int{1, 2, 3, 4})
					slices.Sort(p)
					if !slices.Equal([]int{1, 2, 3, 4}, p) {
						t.Errorf("not a permutation: %v", p)
					}
				}
			}()
		}
		wg.Wait()
	})

	t.Run("does not double wrap", func(t *testing.T) {
		src := Locked(Seeded(3))
		require.Same(t, src, Locked(src))
		require.Equal(t, Global(), Locked(nil))
		require.Equal(t, Global(), Locked(Global()))
	})
}
