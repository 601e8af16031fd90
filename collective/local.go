package collective

import (
	"sync"

	"github.com/pkg/errors"
)

// Group couples a fixed number of in-process ranks. Each rank runs its
// SPMD loop on its own goroutine and talks through a Reducer obtained
// from the group; collectives rendezvous on a generation-counted
// barrier, with the last arriving rank folding all deposits.
//
// The group is also the reference substrate for tests: it exercises the
// exact call discipline the gRPC mesh requires without any transport.
type Group struct {
	size int

	mu       sync.Mutex
	cond     *sync.Cond
	gen      uint64
	arrived  int
	deposits []interface{}
	result   interface{}
	err      error
}

func NewGroup(size int) *Group {
	g := &Group{
		size:     size,
		deposits: make([]interface{}, size),
	}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Reducer returns the collective endpoint for one rank. rank must be in
// [0, size) and each rank must be driven by exactly one goroutine.
func (g *Group) Reducer(rank int) Reducer {
	return &localReducer{group: g, rank: rank}
}

// round deposits one rank's payload and blocks until all ranks of the
// current generation have arrived. The last rank folds the deposits;
// every rank observes the same result and error.
func (g *Group) round(rank int, deposit interface{}, fold func([]interface{}) (interface{}, error)) (interface{}, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gen := g.gen
	g.deposits[rank] = deposit
	g.arrived++
	if g.arrived == g.size {
		g.result, g.err = fold(g.deposits)
		g.arrived = 0
		for i := range g.deposits {
			g.deposits[i] = nil
		}
		g.gen++
		g.cond.Broadcast()
	} else {
		for g.gen == gen {
			g.cond.Wait()
		}
	}
	return g.result, g.err
}

type localReducer struct {
	group *Group
	rank  int
}

func (l *localReducer) Rank() int { return l.rank }
func (l *localReducer) Size() int { return l.group.size }

func (l *localReducer) AllReduce(op Op, vals []float64) ([]float64, error) {
	res, err := l.group.round(l.rank, vals, func(deposits []interface{}) (interface{}, error) {
		acc := make([]float64, len(deposits[0].([]float64)))
		copy(acc, deposits[0].([]float64))
		for from := 1; from < len(deposits); from++ {
			if err := combine(op, acc, deposits[from].([]float64)); err != nil {
				return nil, err
			}
		}
		return acc, nil
	})
	if err != nil {
		return nil, err
	}
	// Own copy per rank; the folded slice is shared.
	shared := res.([]float64)
	out := make([]float64, len(shared))
	copy(out, shared)
	return out, nil
}

type exchangeDeposit struct {
	layout   Layout
	contribs []Contribution
}

func (l *localReducer) Exchange(layout Layout, contribs []Contribution) ([]float64, error) {
	res, err := l.group.round(l.rank, exchangeDeposit{layout, contribs}, func(deposits []interface{}) (interface{}, error) {
		segs := make([][]float64, len(deposits))
		for r := range segs {
			segs[r] = make([]float64, layout.LocalLen(r))
		}
		// Ascending rank order keeps the summation deterministic.
		for from := 0; from < len(deposits); from++ {
			d := deposits[from].(exchangeDeposit)
			if d.layout.N() != layout.N() || d.layout.Size() != layout.Size() {
				return nil, errors.Errorf("collective: rank %d exchanged under a different layout", from)
			}
			for _, c := range d.contribs {
				if c.Index < 0 || c.Index >= layout.N() {
					return nil, errors.Errorf("collective: contribution index %d outside [0, %d)", c.Index, layout.N())
				}
				owner := layout.Owner(c.Index)
				lo, _ := layout.Range(owner)
				segs[owner][c.Index-lo] += c.Value
			}
		}
		return segs, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([][]float64)[l.rank], nil
}

func (l *localReducer) Gather(root int, local []float64) ([]float64, error) {
	res, err := l.group.round(l.rank, local, func(deposits []interface{}) (interface{}, error) {
		var full []float64
		for from := 0; from < len(deposits); from++ {
			full = append(full, deposits[from].([]float64)...)
		}
		return full, nil
	})
	if err != nil {
		return nil, err
	}
	if l.rank != root {
		return nil, nil
	}
	return res.([]float64), nil
}

func (l *localReducer) Barrier() error {
	_, err := l.group.round(l.rank, nil, func([]interface{}) (interface{}, error) {
		return nil, nil
	})
	return err
}
