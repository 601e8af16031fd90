// Package engine runs the distributed power iteration. Every rank
// constructs an Engine over its matrix block and the shared reducer and
// calls Run; the ranks advance in lockstep through the reducer's
// collectives and either all converge or all fail together.
package engine

import (
	"math"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/pagelab/ppagerank/collective"
	"github.com/pagelab/ppagerank/matrix"
)

// State tracks where a run is in its lifecycle.
type State int

const (
	Initialized State = iota
	Iterating
	Converged
	MaxIterationsReached
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Iterating:
		return "iterating"
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max-iterations-reached"
	default:
		return "unknown"
	}
}

// Norm selects how the residual between successive iterates is measured.
type Norm int

const (
	NormL1 Norm = iota
	NormLInf
)

func (n Norm) String() string {
	if n == NormLInf {
		return "linf"
	}
	return "l1"
}

// ParseNorm maps the CLI spelling to a Norm.
func ParseNorm(s string) (Norm, error) {
	switch s {
	case "l1", "1":
		return NormL1, nil
	case "linf", "inf", "max":
		return NormLInf, nil
	default:
		return 0, errors.Errorf("unknown norm %q (want l1 or linf)", s)
	}
}

// Options configures a run. The zero value is not usable; fill in at
// least Alpha, Tolerance and MaxIterations.
type Options struct {
	Alpha         float64
	Tolerance     float64
	MaxIterations int
	Norm          Norm

	// Initial restarts the iteration from a previous segment instead of
	// the teleportation vector. StartIteration is the iteration the
	// segment was taken at; counting resumes after it.
	Initial        []float64
	StartIteration int

	// Checkpointer, when set, persists the local segment after every
	// iteration. A persistence failure on any rank aborts all ranks.
	Checkpointer Checkpointer
}

// Checkpointer persists per-iteration local segments for restarts.
type Checkpointer interface {
	Save(iteration int, residual float64, segment []float64) error
}

// Result is what Run hands back on every rank once the ranks agree the
// run is over.
type Result struct {
	State      State
	Iterations int
	Residual   float64
	// Local is this rank's segment of the final rank vector.
	Local []float64
}

// Engine holds one rank's share of a run.
type Engine struct {
	mat  *matrix.Block
	red  collective.Reducer
	pv   []float64
	dang DanglingSet
	opts Options
	log  zerolog.Logger

	mu       sync.Mutex
	state    State
	iter     int
	residual float64
}

// New validates the configuration and prepares an engine. pv is this
// rank's segment of the teleportation vector; its global sum is checked
// collectively at the start of Run, not here.
func New(mat *matrix.Block, pv []float64, red collective.Reducer, opts Options, log zerolog.Logger) (*Engine, error) {
	if opts.Alpha < 0 || opts.Alpha >= 1 {
		return nil, errors.Errorf("damping factor %g outside [0, 1)", opts.Alpha)
	}
	if opts.Tolerance <= 0 {
		return nil, errors.Errorf("tolerance %g must be positive", opts.Tolerance)
	}
	if opts.MaxIterations < 1 {
		return nil, errors.Errorf("iteration cap %d must be at least one", opts.MaxIterations)
	}
	localLen := mat.Layout().LocalLen(mat.Rank())
	if len(pv) != localLen {
		return nil, errors.Errorf("teleportation segment has %d entries, rank owns %d rows", len(pv), localLen)
	}
	if opts.Initial != nil && len(opts.Initial) != localLen {
		return nil, errors.Errorf("restart segment has %d entries, rank owns %d rows", len(opts.Initial), localLen)
	}
	if opts.StartIteration < 0 {
		return nil, errors.Errorf("start iteration %d must not be negative", opts.StartIteration)
	}
	return &Engine{
		mat:      mat,
		red:      red,
		pv:       pv,
		dang:     NewDanglingSet(mat),
		opts:     opts,
		log:      log,
		state:    Initialized,
		iter:     opts.StartIteration,
		residual: math.Inf(1),
	}, nil
}

// Snapshot reports the current state for status endpoints. Safe to call
// concurrently with Run.
func (e *Engine) Snapshot() (State, int, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, e.iter, e.residual
}

func (e *Engine) set(state State, iter int, residual float64) {
	e.mu.Lock()
	e.state = state
	e.iter = iter
	e.residual = residual
	e.mu.Unlock()
}

// Run executes power iterations until the residual drops below the
// tolerance or the iteration cap is reached. All ranks must call Run;
// they return the same State, Iterations and Residual, each with its
// own Local segment.
func (e *Engine) Run() (*Result, error) {
	cur, err := e.setup()
	if err != nil {
		return nil, err
	}
	e.set(Iterating, e.opts.StartIteration, math.Inf(1))

	next := make([]float64, len(cur))
	iter := e.opts.StartIteration
	for {
		iter++
		residual, err := e.step(cur, next, iter)
		if err != nil {
			return nil, err
		}
		cur, next = next, cur
		e.set(Iterating, iter, residual)
		e.log.Debug().Int("iteration", iter).Float64("residual", residual).Msg("iteration complete")

		if err := e.checkpoint(iter, residual, cur); err != nil {
			return nil, err
		}
		if residual < e.opts.Tolerance {
			e.set(Converged, iter, residual)
			e.log.Info().Int("iterations", iter).Float64("residual", residual).Msg("converged")
			return &Result{State: Converged, Iterations: iter, Residual: residual, Local: cur}, nil
		}
		if iter >= e.opts.StartIteration+e.opts.MaxIterations {
			e.set(MaxIterationsReached, iter, residual)
			e.log.Warn().Int("iterations", iter).Float64("residual", residual).Msg("iteration cap reached before convergence")
			return &Result{State: MaxIterationsReached, Iterations: iter, Residual: residual, Local: cur}, nil
		}
	}
}

// setup verifies the teleportation vector is a distribution globally and
// picks the starting iterate. Both checks reduce across all ranks, so
// every rank reaches the same verdict.
func (e *Engine) setup() ([]float64, error) {
	sums, err := e.red.AllReduce(collective.OpSum, []float64{floats.Sum(e.pv), floats.Sum(e.opts.Initial)})
	if err != nil {
		return nil, err
	}
	if math.Abs(sums[0]-1) > 1e-9 {
		return nil, errors.Errorf("teleportation vector sums to %g, want 1", sums[0])
	}
	cur := make([]float64, len(e.pv))
	if e.opts.Initial != nil {
		if math.Abs(sums[1]-1) > 1e-6 {
			return nil, errors.Errorf("restart vector sums to %g, want 1", sums[1])
		}
		copy(cur, e.opts.Initial)
	} else {
		copy(cur, e.pv)
	}
	return cur, nil
}

// step advances one iteration: redistribute dangling mass, apply the
// transposed matrix, damp against the teleportation vector and measure
// the change. The residual comes back identical on every rank; a
// numerical failure anywhere aborts everywhere through the same reduce.
func (e *Engine) step(cur, next []float64, iter int) (float64, error) {
	dm, err := e.red.AllReduce(collective.OpSum, []float64{e.dang.Mass(cur)})
	if err != nil {
		return 0, errors.Wrapf(err, "iteration %d", iter)
	}
	y, err := e.red.Exchange(e.mat.Layout(), e.mat.MulVec(cur))
	if err != nil {
		return 0, errors.Wrapf(err, "iteration %d", iter)
	}

	alpha := e.opts.Alpha
	localRes, failed := 0.0, 0.0
	for i := range next {
		v := alpha*(y[i]+dm[0]*e.pv[i]) + (1-alpha)*e.pv[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			failed = 1
		}
		next[i] = v
		d := math.Abs(v - cur[i])
		if e.opts.Norm == NormLInf {
			localRes = math.Max(localRes, d)
		} else {
			localRes += d
		}
	}

	// One reduce carries both the residual and the failure flag. The
	// flag survives either op: a 1 dominates under max and stays
	// nonzero under sum.
	op := collective.OpSum
	if e.opts.Norm == NormLInf {
		op = collective.OpMax
	}
	global, err := e.red.AllReduce(op, []float64{localRes, failed})
	if err != nil {
		return 0, errors.Wrapf(err, "iteration %d", iter)
	}
	if global[1] != 0 {
		return 0, errors.Errorf("iteration %d produced a non-finite rank value", iter)
	}
	return global[0], nil
}

// checkpoint persists the segment and reduces the outcome so a disk
// failure on one rank stops every rank instead of desynchronizing them.
func (e *Engine) checkpoint(iter int, residual float64, seg []float64) error {
	if e.opts.Checkpointer == nil {
		return nil
	}
	failed := 0.0
	saveErr := e.opts.Checkpointer.Save(iter, residual, seg)
	if saveErr != nil {
		failed = 1
		e.log.Error().Err(saveErr).Int("iteration", iter).Msg("checkpoint save failed")
	}
	status, err := e.red.AllReduce(collective.OpMax, []float64{failed})
	if err != nil {
		return err
	}
	if status[0] != 0 {
		if saveErr != nil {
			return errors.Wrapf(saveErr, "checkpoint at iteration %d", iter)
		}
		return errors.Errorf("checkpoint at iteration %d failed on another rank", iter)
	}
	return nil
}
