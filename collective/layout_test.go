package collective

import "testing"

func TestNewLayout(t *testing.T) {
	t.Parallel()

	t.Run("balanced split", func(t *testing.T) {
		t.Parallel()
		l, err := NewLayout(10, 4)
		if err != nil {
			t.Fatalf("NewLayout: %v", err)
		}
		// 10 rows over 4 ranks: the first two ranks get an extra row.
		want := [][2]int64{{0, 3}, {3, 6}, {6, 8}, {8, 10}}
		for rank, w := range want {
			lo, hi := l.Range(rank)
			if lo != w[0] || hi != w[1] {
				t.Errorf("rank %d range = [%d, %d), want [%d, %d)", rank, lo, hi, w[0], w[1])
			}
		}
	})

	t.Run("more ranks than rows", func(t *testing.T) {
		t.Parallel()
		l, err := NewLayout(2, 4)
		if err != nil {
			t.Fatalf("NewLayout: %v", err)
		}
		total := 0
		for rank := 0; rank < 4; rank++ {
			total += l.LocalLen(rank)
		}
		if total != 2 {
			t.Errorf("local lengths sum to %d, want 2", total)
		}
	})

	t.Run("rejects bad arguments", func(t *testing.T) {
		t.Parallel()
		if _, err := NewLayout(0, 2); err == nil {
			t.Error("NewLayout(0, 2) accepted an empty dimension")
		}
		if _, err := NewLayout(5, 0); err == nil {
			t.Error("NewLayout(5, 0) accepted a zero rank count")
		}
	})
}

func TestLayoutOwner(t *testing.T) {
	t.Parallel()
	l, err := NewLayout(10, 3)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	for i := int64(0); i < 10; i++ {
		owner := l.Owner(i)
		if !l.Contains(owner, i) {
			t.Errorf("Owner(%d) = %d but Contains(%d, %d) is false", i, owner, owner, i)
		}
	}
	// Every index has exactly one owner.
	for rank := 0; rank < 3; rank++ {
		lo, hi := l.Range(rank)
		for i := lo; i < hi; i++ {
			if got := l.Owner(i); got != rank {
				t.Errorf("Owner(%d) = %d, want %d", i, got, rank)
			}
		}
	}
}
