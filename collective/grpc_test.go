package collective

import (
	"context"
	"net"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// freeAddrs reserves n distinct loopback addresses by binding and
// immediately releasing them.
func freeAddrs(t *testing.T, n int) []string {
	t.Helper()
	addrs := make([]string, n)
	for i := range addrs {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("reserve address: %v", err)
		}
		addrs[i] = lis.Addr().String()
		lis.Close()
	}
	return addrs
}

// dialTestMesh brings up one mesh per rank over loopback. Every mesh is
// listening by the time this returns, so collectives can start at once.
func dialTestMesh(t *testing.T, size int) []*Mesh {
	t.Helper()
	addrs := freeAddrs(t, size)
	peers := make([]Peer, size)
	for i := range peers {
		peers[i] = Peer{Rank: i, Addr: addrs[i]}
	}
	meshes := make([]*Mesh, size)
	errs := make([]error, size)
	var wg sync.WaitGroup
	for rank := 0; rank < size; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			meshes[rank], errs[rank] = DialMesh(context.Background(), rank, peers, zerolog.Nop())
		}(rank)
	}
	wg.Wait()
	for rank, err := range errs {
		if err != nil {
			t.Fatalf("rank %d: DialMesh: %v", rank, err)
		}
	}
	t.Cleanup(func() {
		for _, m := range meshes {
			if m != nil {
				m.Close()
			}
		}
	})
	return meshes
}

func TestMeshCollectives(t *testing.T) {
	t.Parallel()
	meshes := dialTestMesh(t, 3)
	layout, err := NewLayout(7, 3)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}

	type rankOut struct {
		sum  []float64
		seg  []float64
		full []float64
	}
	outs := make([]rankOut, 3)
	errs := make([]error, 3)
	var wg sync.WaitGroup
	for rank := 0; rank < 3; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			m := meshes[rank]
			if err := m.Barrier(); err != nil {
				errs[rank] = err
				return
			}
			sum, err := m.AllReduce(OpSum, []float64{float64(rank), 1})
			if err != nil {
				errs[rank] = err
				return
			}
			// Index rank lands on rank 0's segment, index 6 on rank 2's.
			seg, err := m.Exchange(layout, []Contribution{
				{Index: int64(rank), Value: 1},
				{Index: 6, Value: float64(rank + 1)},
			})
			if err != nil {
				errs[rank] = err
				return
			}
			local := make([]float64, layout.LocalLen(rank))
			for i := range local {
				local[i] = float64(rank)
			}
			full, err := m.Gather(0, local)
			if err != nil {
				errs[rank] = err
				return
			}
			outs[rank] = rankOut{sum: sum, seg: seg, full: full}
			errs[rank] = m.Barrier()
		}(rank)
	}
	wg.Wait()
	for rank, err := range errs {
		if err != nil {
			t.Fatalf("rank %d: %v", rank, err)
		}
	}

	for rank := 0; rank < 3; rank++ {
		if outs[rank].sum[0] != 3 || outs[rank].sum[1] != 3 {
			t.Errorf("rank %d reduce = %v, want [3 3]", rank, outs[rank].sum)
		}
	}
	// Rank 0 owns rows 0-2: one contribution per sender.
	for i := 0; i < 3; i++ {
		if outs[0].seg[i] != 1 {
			t.Errorf("rank 0 segment[%d] = %g, want 1", i, outs[0].seg[i])
		}
	}
	// Rank 2 owns rows 5-6: index 6 collected 1+2+3.
	if outs[2].seg[1] != 6 {
		t.Errorf("rank 2 segment[1] = %g, want 6", outs[2].seg[1])
	}
	want := []float64{0, 0, 0, 1, 1, 2, 2}
	if len(outs[0].full) != len(want) {
		t.Fatalf("gathered %d entries, want %d", len(outs[0].full), len(want))
	}
	for i, v := range outs[0].full {
		if v != want[i] {
			t.Errorf("gathered[%d] = %g, want %g", i, v, want[i])
		}
	}
	if outs[1].full != nil || outs[2].full != nil {
		t.Error("non-root ranks received a gathered vector")
	}
}

func TestMeshShutdownAfterFinalCollective(t *testing.T) {
	t.Parallel()
	// Each rank closes its mesh the moment its own last collective
	// returns. A rank that finishes early must keep draining Acks for
	// slower peers, so no rank sees a transport error on a successful
	// run.
	for trial := 0; trial < 5; trial++ {
		meshes := dialTestMesh(t, 3)
		layout, err := NewLayout(6, 3)
		if err != nil {
			t.Fatalf("NewLayout: %v", err)
		}
		errs := make([]error, 3)
		var wg sync.WaitGroup
		for rank := 0; rank < 3; rank++ {
			wg.Add(1)
			go func(rank int) {
				defer wg.Done()
				m := meshes[rank]
				defer m.Close()
				for i := 0; i < 10; i++ {
					if _, err := m.AllReduce(OpSum, []float64{1}); err != nil {
						errs[rank] = err
						return
					}
					if _, err := m.Exchange(layout, []Contribution{{Index: int64(rank), Value: 1}}); err != nil {
						errs[rank] = err
						return
					}
				}
				errs[rank] = m.Barrier()
			}(rank)
		}
		wg.Wait()
		for rank, err := range errs {
			if err != nil {
				t.Fatalf("trial %d rank %d: %v", trial, rank, err)
			}
		}
	}
}

func TestMeshMismatchedCollectivesFailEveryRank(t *testing.T) {
	t.Parallel()
	// Rank 0 reduces while the others sync: the kind mismatch must
	// poison every mailbox, directly or through the abort broadcast,
	// instead of parking any rank.
	meshes := dialTestMesh(t, 3)
	errs := make([]error, 3)
	var wg sync.WaitGroup
	for rank := 0; rank < 3; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			if rank == 0 {
				_, errs[rank] = meshes[rank].AllReduce(OpSum, []float64{1})
				return
			}
			errs[rank] = meshes[rank].Barrier()
		}(rank)
	}
	wg.Wait()
	for rank, err := range errs {
		if err == nil {
			t.Errorf("rank %d saw no error", rank)
		}
	}
}
