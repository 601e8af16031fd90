package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pagelab/ppagerank/engine"
	"github.com/pagelab/ppagerank/matrix"
)

func TestBanner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Banner(&buf, 4)
	out := buf.String()
	if !strings.Contains(out, "ppagerank") {
		t.Errorf("banner missing program name:\n%s", out)
	}
	if !strings.Contains(out, "nprocs = 4") {
		t.Errorf("banner missing rank count:\n%s", out)
	}
}

func TestPrintStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintStats(&buf, "web.graph", matrix.Stats{
		Rows: 100, Cols: 100, NNZ: 450,
		MinLocalRows: 25, MaxLocalRows: 25,
		MinLocalNNZ: 90, MaxLocalNNZ: 130,
	})
	out := buf.String()
	for _, want := range []string{"matrix web.graph", "rows", "nnz", "local rows", "local cols", "local nzs"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintRanks(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := PrintRanks(&buf, []float64{0.5, 0.25, 0.25}); err != nil {
		t.Fatalf("PrintRanks: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "0 5.") {
		t.Errorf("first line = %q, want node 0 with value 0.5", lines[0])
	}
}

func TestBuildSummary(t *testing.T) {
	t.Parallel()
	res := &engine.Result{State: engine.Converged, Iterations: 42, Residual: 3e-9}
	ranks := []float64{0.1, 0.4, 0.2, 0.3}

	t.Run("orders by descending rank", func(t *testing.T) {
		t.Parallel()
		sum := BuildSummary(res, ranks, 2)
		if sum.State != "converged" || sum.Iterations != 42 {
			t.Errorf("summary header = %s/%d, want converged/42", sum.State, sum.Iterations)
		}
		if sum.Nodes != 4 {
			t.Errorf("nodes = %d, want 4", sum.Nodes)
		}
		if len(sum.TopIds) != 2 || sum.TopIds[0] != 1 || sum.TopIds[1] != 3 {
			t.Errorf("top ids = %v, want [1 3]", sum.TopIds)
		}
		if sum.TopRanks[0] != 0.4 || sum.TopRanks[1] != 0.3 {
			t.Errorf("top ranks = %v, want [0.4 0.3]", sum.TopRanks)
		}
	})

	t.Run("clamps k to the node count", func(t *testing.T) {
		t.Parallel()
		sum := BuildSummary(res, ranks, 100)
		if len(sum.TopIds) != 4 {
			t.Errorf("kept %d ids, want 4", len(sum.TopIds))
		}
	})

	t.Run("ties break on node id", func(t *testing.T) {
		t.Parallel()
		sum := BuildSummary(res, []float64{0.5, 0.5}, 2)
		if sum.TopIds[0] != 0 || sum.TopIds[1] != 1 {
			t.Errorf("top ids = %v, want [0 1]", sum.TopIds)
		}
	})
}
