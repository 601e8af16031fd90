package matrix

import (
	"testing"

	"github.com/pagelab/ppagerank/collective"
)

func TestParseEdgeList(t *testing.T) {
	t.Parallel()

	t.Run("whitespace and comments", func(t *testing.T) {
		t.Parallel()
		input := []byte("# a comment\n0 1\n1\t2\n// another comment\n\n2 0\n")
		edges, n, err := ParseEdgeList(input, false)
		if err != nil {
			t.Fatalf("ParseEdgeList: %v", err)
		}
		if n != 3 {
			t.Errorf("dimension = %d, want 3", n)
		}
		want := []Edge{{0, 1}, {1, 2}, {2, 0}}
		if len(edges) != len(want) {
			t.Fatalf("got %d edges, want %d", len(edges), len(want))
		}
		for i, e := range edges {
			if e != want[i] {
				t.Errorf("edge %d = %+v, want %+v", i, e, want[i])
			}
		}
	})

	t.Run("transpose swaps per line", func(t *testing.T) {
		t.Parallel()
		edges, _, err := ParseEdgeList([]byte("0 1\n2 1\n"), true)
		if err != nil {
			t.Fatalf("ParseEdgeList: %v", err)
		}
		want := []Edge{{1, 0}, {1, 2}}
		for i, e := range edges {
			if e != want[i] {
				t.Errorf("edge %d = %+v, want %+v", i, e, want[i])
			}
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		if _, _, err := ParseEdgeList([]byte("0 x\n"), false); err == nil {
			t.Error("accepted a non-numeric node id")
		}
		if _, _, err := ParseEdgeList([]byte("0\n"), false); err == nil {
			t.Error("accepted a line with one token")
		}
		if _, _, err := ParseEdgeList([]byte("-1 2\n"), false); err == nil {
			t.Error("accepted a negative node id")
		}
	})
}

func TestParseDOT(t *testing.T) {
	t.Parallel()

	t.Run("numeric names keep their ids", func(t *testing.T) {
		t.Parallel()
		input := []byte("digraph { 0 -> 1; 1 -> 2; 2 -> 0; }")
		edges, n, err := ParseDOT(input, false)
		if err != nil {
			t.Fatalf("ParseDOT: %v", err)
		}
		if n != 3 {
			t.Errorf("dimension = %d, want 3", n)
		}
		if len(edges) != 3 {
			t.Errorf("got %d edges, want 3", len(edges))
		}
	})

	t.Run("named nodes get stable ids", func(t *testing.T) {
		t.Parallel()
		input := []byte("digraph { a -> b; b -> c; }")
		first, n, err := ParseDOT(input, false)
		if err != nil {
			t.Fatalf("ParseDOT: %v", err)
		}
		if n != 3 {
			t.Errorf("dimension = %d, want 3", n)
		}
		second, _, err := ParseDOT(input, false)
		if err != nil {
			t.Fatalf("ParseDOT (repeat): %v", err)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("edge %d differs between parses: %+v vs %+v", i, first[i], second[i])
			}
		}
	})
}

func TestBuildBlockPartitions(t *testing.T) {
	t.Parallel()
	edges := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {1, 3}}
	layout, err := collective.NewLayout(4, 2)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	var totalNNZ int64
	for rank := 0; rank < 2; rank++ {
		b, err := BuildBlock(edges, layout, rank)
		if err != nil {
			t.Fatalf("BuildBlock rank %d: %v", rank, err)
		}
		lo, hi := b.Rows()
		wantLo, wantHi := layout.Range(rank)
		if lo != wantLo || hi != wantHi {
			t.Errorf("rank %d rows [%d, %d), want [%d, %d)", rank, lo, hi, wantLo, wantHi)
		}
		totalNNZ += b.NNZ()
	}
	if totalNNZ != 5 {
		t.Errorf("blocks hold %d nonzeros, want 5", totalNNZ)
	}
}
