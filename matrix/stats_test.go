package matrix

import (
	"sync"
	"testing"

	"github.com/pagelab/ppagerank/collective"
)

func TestCollectStats(t *testing.T) {
	t.Parallel()
	edges := []Edge{{0, 1}, {0, 2}, {1, 0}, {3, 1}, {4, 0}}
	layout, err := collective.NewLayout(5, 2)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	group := collective.NewGroup(2)
	stats := make([]Stats, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for rank := 0; rank < 2; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			b, err := BuildBlock(edges, layout, rank)
			if err != nil {
				errs[rank] = err
				return
			}
			stats[rank], errs[rank] = CollectStats(b, group.Reducer(rank))
		}(rank)
	}
	wg.Wait()
	for rank, err := range errs {
		if err != nil {
			t.Fatalf("rank %d: %v", rank, err)
		}
	}
	// Both ranks see identical totals.
	if stats[0] != stats[1] {
		t.Fatalf("stats differ across ranks: %+v vs %+v", stats[0], stats[1])
	}
	s := stats[0]
	if s.Rows != 5 || s.Cols != 5 {
		t.Errorf("shape = %dx%d, want 5x5", s.Rows, s.Cols)
	}
	if s.NNZ != 5 {
		t.Errorf("nnz = %d, want 5", s.NNZ)
	}
	// Rank 0 owns rows 0-2 with 3 edges, rank 1 owns rows 3-4 with 2.
	if s.MinLocalRows != 2 || s.MaxLocalRows != 3 {
		t.Errorf("local rows = (%d,%d), want (2,3)", s.MinLocalRows, s.MaxLocalRows)
	}
	if s.MinLocalNNZ != 2 || s.MaxLocalNNZ != 3 {
		t.Errorf("local nnz = (%d,%d), want (2,3)", s.MinLocalNNZ, s.MaxLocalNNZ)
	}
}
