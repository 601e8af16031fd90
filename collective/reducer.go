// Package collective provides the cross-rank communication primitives the
// iteration loop is built on: replicated reductions, partial-vector
// exchange, gather and barrier. Two interchangeable substrates implement
// the same contract, one over channels inside a single process and one
// over a gRPC peer mesh.
package collective

import (
	"math"

	"github.com/pkg/errors"
)

// Op selects the combining operator of an all-reduce.
type Op int32

const (
	OpSum Op = iota
	OpMax
	OpMin
)

func (o Op) String() string {
	switch o {
	case OpSum:
		return "sum"
	case OpMax:
		return "max"
	case OpMin:
		return "min"
	}
	return "unknown"
}

// Contribution is a partial value destined for the rank owning Index.
type Contribution struct {
	Index int64
	Value float64
}

// Reducer is the collective contract shared by every rank of a run.
// All methods are blocking synchronization points: every rank must call
// them in the same order with compatible arguments, and no call returns
// before every rank has arrived. A rank that drops out fails the
// collective on all surviving ranks rather than leaving them parked.
type Reducer interface {
	Rank() int
	Size() int

	// AllReduce combines vals elementwise across all ranks with op and
	// returns the combined vector, identical on every rank. Combining is
	// performed in ascending rank order, so a fixed group size yields
	// bitwise-reproducible results.
	AllReduce(op Op, vals []float64) ([]float64, error)

	// Exchange routes each contribution to the rank that owns its index
	// under layout and returns this rank's dense local segment with all
	// contributions summed, again folded in ascending rank order.
	Exchange(layout Layout, contribs []Contribution) ([]float64, error)

	// Gather concatenates the local segments in rank order on root and
	// returns the full vector there; all other ranks return nil.
	Gather(root int, local []float64) ([]float64, error)

	// Barrier blocks until every rank has arrived.
	Barrier() error
}

// combine folds src into dst elementwise under op. Lengths must match.
func combine(op Op, dst, src []float64) error {
	if len(dst) != len(src) {
		return errors.Errorf("collective: reduce length mismatch: %d vs %d", len(dst), len(src))
	}
	switch op {
	case OpSum:
		for i, v := range src {
			dst[i] += v
		}
	case OpMax:
		for i, v := range src {
			dst[i] = math.Max(dst[i], v)
		}
	case OpMin:
		for i, v := range src {
			dst[i] = math.Min(dst[i], v)
		}
	default:
		return errors.Errorf("collective: unknown op %d", op)
	}
	return nil
}

// accumulate folds contributions from one sender into a dense local
// segment with range [lo, hi).
func accumulate(seg []float64, lo, hi int64, indices []int64, values []float64) error {
	if len(indices) != len(values) {
		return errors.Errorf("collective: exchange segment mismatch: %d indices, %d values", len(indices), len(values))
	}
	for k, idx := range indices {
		if idx < lo || idx >= hi {
			return errors.Errorf("collective: contribution for %d routed outside [%d, %d)", idx, lo, hi)
		}
		seg[idx-lo] += values[k]
	}
	return nil
}
