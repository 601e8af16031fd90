// Package matrix implements the row-partitioned sparse matrix the
// iteration engine consumes: per-rank CSR blocks built from a streamed
// edge list, scaled row-stochastic once at construction and immutable
// afterwards.
package matrix

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/pagelab/ppagerank/collective"
)

// Entry is one nonzero of the global matrix. Row is the node whose rank
// value the entry consumes (the edge source), Col the node receiving the
// contribution (the edge target).
type Entry struct {
	Row, Col int64
	Val      float64
}

// Block holds the locally-owned rows of the global n×n matrix in CSR
// form. Rows are scaled to sum to one at construction; rows with no
// nonzeros (dangling nodes) stay empty and are compensated by the
// engine's dangling-mass redistribution.
type Block struct {
	layout collective.Layout
	rank   int
	rowPtr []int64
	cols   []int64
	vals   []float64
}

// NewBlock builds this rank's CSR block from its share of entries.
// Every entry's row must fall inside the local range and every column
// inside [0, n); duplicates are summed. Violations are setup errors:
// the caller aborts the whole run rather than iterating on a malformed
// matrix.
func NewBlock(layout collective.Layout, rank int, entries []Entry) (*Block, error) {
	lo, hi := layout.Range(rank)
	for _, e := range entries {
		if e.Row < lo || e.Row >= hi {
			return nil, errors.Errorf("matrix: row %d outside local range [%d, %d)", e.Row, lo, hi)
		}
		if e.Col < 0 || e.Col >= layout.N() {
			return nil, errors.Errorf("matrix: column %d outside [0, %d)", e.Col, layout.N())
		}
		if e.Val < 0 {
			return nil, errors.Errorf("matrix: negative weight %g at (%d, %d)", e.Val, e.Row, e.Col)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Row != entries[j].Row {
			return entries[i].Row < entries[j].Row
		}
		return entries[i].Col < entries[j].Col
	})

	b := &Block{
		layout: layout,
		rank:   rank,
		rowPtr: make([]int64, hi-lo+1),
	}
	for k := 0; k < len(entries); {
		e := entries[k]
		v := 0.0
		for k < len(entries) && entries[k].Row == e.Row && entries[k].Col == e.Col {
			v += entries[k].Val
			k++
		}
		b.cols = append(b.cols, e.Col)
		b.vals = append(b.vals, v)
		b.rowPtr[e.Row-lo+1] = int64(len(b.cols))
	}
	for r := 1; r < len(b.rowPtr); r++ {
		if b.rowPtr[r] < b.rowPtr[r-1] {
			b.rowPtr[r] = b.rowPtr[r-1]
		}
	}
	b.scale()
	return b, nil
}

// scale makes each nonempty row sum to one.
func (b *Block) scale() {
	for r := 0; r+1 < len(b.rowPtr); r++ {
		sum := 0.0
		for k := b.rowPtr[r]; k < b.rowPtr[r+1]; k++ {
			sum += b.vals[k]
		}
		if sum == 0 {
			continue
		}
		for k := b.rowPtr[r]; k < b.rowPtr[r+1]; k++ {
			b.vals[k] /= sum
		}
	}
}

// Layout returns the row partition the block was built under.
func (b *Block) Layout() collective.Layout { return b.layout }

// Rank returns the owning rank.
func (b *Block) Rank() int { return b.rank }

// Rows returns the half-open global row range owned locally.
func (b *Block) Rows() (lo, hi int64) { return b.layout.Range(b.rank) }

// NNZ returns the local nonzero count.
func (b *Block) NNZ() int64 { return int64(len(b.cols)) }

// OutDegree returns the nonzero count of a locally-owned global row.
func (b *Block) OutDegree(row int64) int {
	lo, _ := b.Rows()
	r := row - lo
	return int(b.rowPtr[r+1] - b.rowPtr[r])
}

// MulVec computes this rank's share of the transposed matrix-vector
// product: for every local nonzero (r, c, w) it emits w·x[r] destined
// for index c. x is the local segment of the input vector; the returned
// contributions still need routing to their owners through the reducer.
func (b *Block) MulVec(x []float64) []collective.Contribution {
	contribs := make([]collective.Contribution, 0, len(b.cols))
	for r := 0; r+1 < len(b.rowPtr); r++ {
		xr := x[r]
		if xr == 0 {
			continue
		}
		for k := b.rowPtr[r]; k < b.rowPtr[r+1]; k++ {
			contribs = append(contribs, collective.Contribution{
				Index: b.cols[k],
				Value: b.vals[k] * xr,
			})
		}
	}
	return contribs
}
