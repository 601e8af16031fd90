// Package report renders run output: the startup banner, matrix
// statistics, the final ranking, and the optional summary published to
// a message queue or served over HTTP.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pagelab/ppagerank/engine"
	"github.com/pagelab/ppagerank/matrix"
	"github.com/pagelab/ppagerank/proto"
	"github.com/pagelab/ppagerank/utils"
)

const (
	versionMajor = 0
	versionMinor = 2
)

// Banner prints the startup header. Only the root rank should call it.
func Banner(w io.Writer, nprocs int) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "ppagerank %d.%d\n\n", versionMajor, versionMinor)
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "nprocs = %d\n", nprocs)
}

// PrintStats prints the matrix shape and per-rank partition spread.
func PrintStats(w io.Writer, name string, s matrix.Stats) {
	fmt.Fprintf(w, "matrix %s\n", name)
	fmt.Fprintf(w, "rows       = %10d\n", s.Rows)
	fmt.Fprintf(w, "columns    = %10d\n", s.Cols)
	fmt.Fprintf(w, "nnz        = %10d\n", s.NNZ)
	fmt.Fprintf(w, "local rows = (%10d,%10d)\n", s.MinLocalRows, s.MaxLocalRows)
	// The column partition mirrors the row partition of the square matrix.
	fmt.Fprintf(w, "local cols = (%10d,%10d)\n", s.MinLocalRows, s.MaxLocalRows)
	fmt.Fprintf(w, "local nzs  = (%10d,%10d)\n", s.MinLocalNNZ, s.MaxLocalNNZ)
}

// PrintRanks writes the full rank vector, one "node value" line per
// node in node order.
func PrintRanks(w io.Writer, ranks []float64) error {
	for i, v := range ranks {
		if _, err := fmt.Fprintf(w, "%d %.16e\n", i, v); err != nil {
			return err
		}
	}
	return nil
}

// PrintResult prints the terminal state line.
func PrintResult(w io.Writer, res *engine.Result) {
	fmt.Fprintf(w, "state      = %s\n", res.State)
	fmt.Fprintf(w, "iterations = %d\n", res.Iterations)
	fmt.Fprintf(w, "residual   = %g\n", res.Residual)
}

// BuildSummary assembles the publishable terminal summary from the run
// result and the gathered full vector, keeping the k highest-ranked
// nodes.
func BuildSummary(res *engine.Result, ranks []float64, k int) *proto.Summary {
	ids := make([]int64, len(ranks))
	for i := range ids {
		ids[i] = int64(i)
	}
	sort.Slice(ids, func(a, b int) bool {
		if ranks[ids[a]] != ranks[ids[b]] {
			return ranks[ids[a]] > ranks[ids[b]]
		}
		return ids[a] < ids[b]
	})
	k = utils.Min(k, len(ids))
	top := ids[:k]
	topRanks := make([]float64, k)
	for i, id := range top {
		topRanks[i] = ranks[id]
	}
	return &proto.Summary{
		State:      res.State.String(),
		Iterations: uint64(res.Iterations),
		Residual:   res.Residual,
		Nodes:      int64(len(ranks)),
		TopIds:     top,
		TopRanks:   topRanks,
	}
}
