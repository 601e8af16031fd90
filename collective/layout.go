package collective

import (
	"sort"

	"github.com/pkg/errors"
)

// Layout is a balanced, contiguous row partition of [0, n) across a fixed
// number of ranks. Every index belongs to exactly one rank; the first
// n mod size ranks hold one extra row.
type Layout struct {
	n      int64
	starts []int64
}

func NewLayout(n int64, size int) (Layout, error) {
	if n < 1 {
		return Layout{}, errors.Errorf("layout: invalid dimension %d", n)
	}
	if size < 1 {
		return Layout{}, errors.Errorf("layout: invalid group size %d", size)
	}
	starts := make([]int64, size+1)
	base := n / int64(size)
	rem := n % int64(size)
	for r := 0; r < size; r++ {
		starts[r+1] = starts[r] + base
		if int64(r) < rem {
			starts[r+1]++
		}
	}
	return Layout{n: n, starts: starts}, nil
}

// N returns the global dimension.
func (l Layout) N() int64 { return l.n }

// Size returns the number of ranks in the partition.
func (l Layout) Size() int { return len(l.starts) - 1 }

// Range returns the half-open index range [lo, hi) owned by rank.
func (l Layout) Range(rank int) (lo, hi int64) {
	return l.starts[rank], l.starts[rank+1]
}

// LocalLen returns the number of indices owned by rank.
func (l Layout) LocalLen(rank int) int {
	return int(l.starts[rank+1] - l.starts[rank])
}

// Owner returns the rank owning global index i. i must be in [0, n).
func (l Layout) Owner(i int64) int {
	// first rank whose range ends past i
	return sort.Search(l.Size(), func(r int) bool { return l.starts[r+1] > i })
}

// Contains reports whether i falls inside rank's range.
func (l Layout) Contains(rank int, i int64) bool {
	return i >= l.starts[rank] && i < l.starts[rank+1]
}
