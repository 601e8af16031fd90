package matrix

import (
	"math"
	"testing"

	"github.com/pagelab/ppagerank/collective"
)

func singleRankLayout(t *testing.T, n int64) collective.Layout {
	t.Helper()
	l, err := collective.NewLayout(n, 1)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return l
}

func TestNewBlock(t *testing.T) {
	t.Parallel()

	t.Run("rows are scaled stochastic", func(t *testing.T) {
		t.Parallel()
		layout := singleRankLayout(t, 3)
		b, err := NewBlock(layout, 0, []Entry{
			{Row: 0, Col: 1, Val: 2},
			{Row: 0, Col: 2, Val: 2},
			{Row: 1, Col: 0, Val: 5},
		})
		if err != nil {
			t.Fatalf("NewBlock: %v", err)
		}
		ones := []float64{1, 1, 1}
		sums := make([]float64, 3)
		for _, c := range b.MulVec(ones) {
			sums[c.Index] += c.Value
		}
		// Row 0 splits 1 between columns 1 and 2; row 1 sends all to 0.
		if sums[0] != 1 || sums[1] != 0.5 || sums[2] != 0.5 {
			t.Errorf("column sums = %v, want [1 0.5 0.5]", sums)
		}
	})

	t.Run("duplicates are summed before scaling", func(t *testing.T) {
		t.Parallel()
		layout := singleRankLayout(t, 2)
		b, err := NewBlock(layout, 0, []Entry{
			{Row: 0, Col: 1, Val: 1},
			{Row: 0, Col: 1, Val: 1},
			{Row: 0, Col: 0, Val: 2},
		})
		if err != nil {
			t.Fatalf("NewBlock: %v", err)
		}
		if b.NNZ() != 2 {
			t.Errorf("nnz = %d, want 2 after merging duplicates", b.NNZ())
		}
		got := map[int64]float64{}
		for _, c := range b.MulVec([]float64{1, 0}) {
			got[c.Index] += c.Value
		}
		if got[0] != 0.5 || got[1] != 0.5 {
			t.Errorf("row 0 contributions = %v, want 0.5 each", got)
		}
	})

	t.Run("rejects foreign rows and bad columns", func(t *testing.T) {
		t.Parallel()
		layout, err := collective.NewLayout(4, 2)
		if err != nil {
			t.Fatalf("NewLayout: %v", err)
		}
		if _, err := NewBlock(layout, 0, []Entry{{Row: 3, Col: 0, Val: 1}}); err == nil {
			t.Error("accepted a row owned by another rank")
		}
		if _, err := NewBlock(layout, 0, []Entry{{Row: 0, Col: 4, Val: 1}}); err == nil {
			t.Error("accepted a column outside the dimension")
		}
		if _, err := NewBlock(layout, 0, []Entry{{Row: 0, Col: 0, Val: -1}}); err == nil {
			t.Error("accepted a negative weight")
		}
	})

	t.Run("dangling rows stay empty", func(t *testing.T) {
		t.Parallel()
		layout := singleRankLayout(t, 3)
		b, err := NewBlock(layout, 0, []Entry{{Row: 0, Col: 1, Val: 1}})
		if err != nil {
			t.Fatalf("NewBlock: %v", err)
		}
		if b.OutDegree(1) != 0 || b.OutDegree(2) != 0 {
			t.Errorf("rows 1 and 2 have degrees %d, %d, want 0, 0", b.OutDegree(1), b.OutDegree(2))
		}
		if b.OutDegree(0) != 1 {
			t.Errorf("row 0 degree = %d, want 1", b.OutDegree(0))
		}
	})
}

func TestMulVecSkipsZeroMass(t *testing.T) {
	t.Parallel()
	layout := singleRankLayout(t, 2)
	b, err := NewBlock(layout, 0, []Entry{
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 1},
	})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	contribs := b.MulVec([]float64{0, 1})
	if len(contribs) != 1 {
		t.Fatalf("got %d contributions, want 1", len(contribs))
	}
	if contribs[0].Index != 0 || contribs[0].Value != 1 {
		t.Errorf("contribution = %+v, want index 0 value 1", contribs[0])
	}
}

func TestBlockMassConservation(t *testing.T) {
	t.Parallel()
	// For a stochastic block, total emitted mass equals the mass on
	// non-dangling rows.
	layout := singleRankLayout(t, 4)
	b, err := NewBlock(layout, 0, []Entry{
		{Row: 0, Col: 1, Val: 3},
		{Row: 0, Col: 2, Val: 1},
		{Row: 1, Col: 3, Val: 7},
		{Row: 2, Col: 0, Val: 2},
		{Row: 2, Col: 3, Val: 2},
	})
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	x := []float64{0.1, 0.2, 0.3, 0.4}
	total := 0.0
	for _, c := range b.MulVec(x) {
		total += c.Value
	}
	want := x[0] + x[1] + x[2] // row 3 is dangling
	if math.Abs(total-want) > 1e-15 {
		t.Errorf("emitted mass %g, want %g", total, want)
	}
}
