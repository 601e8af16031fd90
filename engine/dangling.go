package engine

import (
	"github.com/pagelab/ppagerank/matrix"
)

// DanglingSet records which locally-owned rows have no outgoing edges.
// Each rank scans only its own rows; the union across ranks is never
// materialized, only the mass those rows carry is reduced globally each
// iteration.
type DanglingSet struct {
	offsets []int64 // local row offsets with zero out-degree
}

func NewDanglingSet(b *matrix.Block) DanglingSet {
	lo, hi := b.Rows()
	var d DanglingSet
	for row := lo; row < hi; row++ {
		if b.OutDegree(row) == 0 {
			d.offsets = append(d.offsets, row-lo)
		}
	}
	return d
}

// Len returns the local dangling-row count.
func (d DanglingSet) Len() int { return len(d.offsets) }

// Mass sums the current rank mass sitting on local dangling rows.
func (d DanglingSet) Mass(x []float64) float64 {
	sum := 0.0
	for _, off := range d.offsets {
		sum += x[off]
	}
	return sum
}
