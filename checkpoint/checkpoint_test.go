package checkpoint

import (
	"path/filepath"
	"testing"
)

func openStore(t *testing.T, rank int) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "run"), rank)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreEmpty(t *testing.T) {
	t.Parallel()
	s := openStore(t, 0)
	if _, ok, err := s.Latest(); err != nil {
		t.Fatalf("Latest: %v", err)
	} else if ok {
		t.Error("empty store reported a checkpoint")
	}
	if _, _, err := s.Load(1); err == nil {
		t.Error("Load on an empty store succeeded")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	t.Parallel()
	s := openStore(t, 1)
	seg := []float64{0.25, 0.5, 0.25}
	if err := s.Save(3, 1e-4, seg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(4, 1e-5, []float64{0.2, 0.6, 0.2}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	latest, ok, err := s.Latest()
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if !ok || latest != 4 {
		t.Fatalf("Latest = %d (ok=%v), want 4", latest, ok)
	}

	got, residual, err := s.Load(3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if residual != 1e-4 {
		t.Errorf("residual = %g, want 1e-4", residual)
	}
	if len(got) != len(seg) {
		t.Fatalf("segment length %d, want %d", len(got), len(seg))
	}
	for i := range seg {
		if got[i] != seg[i] {
			t.Errorf("segment[%d] = %g, want %g", i, got[i], seg[i])
		}
	}
}

func TestStoreOverwriteIteration(t *testing.T) {
	t.Parallel()
	s := openStore(t, 0)
	if err := s.Save(1, 0.5, []float64{1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(1, 0.1, []float64{2}); err != nil {
		t.Fatalf("Save (overwrite): %v", err)
	}
	seg, residual, err := s.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if residual != 0.1 || seg[0] != 2 {
		t.Errorf("got residual %g segment %v, want the overwritten record", residual, seg)
	}
}

func TestStorePerRankFiles(t *testing.T) {
	t.Parallel()
	base := filepath.Join(t.TempDir(), "run")
	a, err := Open(base, 0)
	if err != nil {
		t.Fatalf("Open rank 0: %v", err)
	}
	defer a.Close()
	b, err := Open(base, 1)
	if err != nil {
		t.Fatalf("Open rank 1: %v", err)
	}
	defer b.Close()

	if err := a.Save(1, 0.5, []float64{1}); err != nil {
		t.Fatalf("Save rank 0: %v", err)
	}
	if _, ok, err := b.Latest(); err != nil {
		t.Fatalf("Latest rank 1: %v", err)
	} else if ok {
		t.Error("rank 1 sees rank 0's checkpoints")
	}
}
