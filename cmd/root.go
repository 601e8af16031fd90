// Package cmd wires the CLI: flag parsing, environment overrides, and
// the launch of either an in-process rank group or one rank of a
// distributed run.
package cmd

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagelab/ppagerank/checkpoint"
	"github.com/pagelab/ppagerank/collective"
	"github.com/pagelab/ppagerank/engine"
	"github.com/pagelab/ppagerank/matrix"
	"github.com/pagelab/ppagerank/report"
	"github.com/pagelab/ppagerank/utils"
)

type runConfig struct {
	matrixPath string
	pvecPath   string
	trans      bool

	alpha     float64
	tolerance float64
	maxIter   int
	norm      engine.Norm

	outPath    string
	noout      bool
	checkpoint string
	publish    string
	statusAddr string
	topK       int
}

var rootCmd = &cobra.Command{
	Use:   "ppagerank",
	Short: "Distributed PageRank by power iteration",
	Long: `ppagerank computes a PageRank vector for a directed graph by power
iteration over a row-partitioned sparse matrix. Ranks run either as
goroutines inside one process (--procs) or as separate processes
connected over gRPC (--rank and --peers).`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringP("matrix", "m", "", "graph file to load (edge list or .dot), required")
	f.String("pvec", "", "personalization vector file, default uniform")
	f.Bool("trans", false, "input stores edge i->j at row j")
	f.Float64("alpha", 0.85, "damping factor")
	f.Float64("tolerance", 1e-8, "convergence tolerance on the residual")
	f.Int("max-iter", 1000, "iteration cap")
	f.String("norm", "l1", "residual norm: l1 or linf")
	f.String("out", "", "write the rank vector to this file, default stdout")
	f.Bool("noout", false, "skip writing the rank vector")
	f.String("checkpoint", "", "checkpoint base path; resumes when files exist")
	f.String("publish", "", "publish the terminal summary to this RabbitMQ queue")
	f.String("status", "", "serve /status and /healthz on this address")
	f.Int("top", 10, "entries to keep in the published summary")
	f.Int("procs", 1, "ranks to run as goroutines in this process")
	f.Int("rank", -1, "this process's rank in a distributed run")
	f.String("peers", "", "comma-separated rank addresses, in rank order")
	f.Bool("debug", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("matrix")
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	utils.LoadEnv()
	v := viper.New()
	v.SetEnvPrefix("PPR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	log := utils.NewLogger(v.GetBool("debug"))

	norm, err := engine.ParseNorm(v.GetString("norm"))
	if err != nil {
		return err
	}
	cfg := runConfig{
		matrixPath: v.GetString("matrix"),
		pvecPath:   v.GetString("pvec"),
		trans:      v.GetBool("trans"),
		alpha:      v.GetFloat64("alpha"),
		tolerance:  v.GetFloat64("tolerance"),
		maxIter:    v.GetInt("max-iter"),
		norm:       norm,
		outPath:    v.GetString("out"),
		noout:      v.GetBool("noout"),
		checkpoint: v.GetString("checkpoint"),
		publish:    v.GetString("publish"),
		statusAddr: v.GetString("status"),
		topK:       v.GetInt("top"),
	}

	if peers := v.GetString("peers"); peers != "" {
		return runDistributed(cfg, v.GetInt("rank"), peers, log)
	}
	return runLocal(cfg, v.GetInt("procs"), log)
}

// runLocal runs every rank as a goroutine over the in-process reducer.
func runLocal(cfg runConfig, procs int, log zerolog.Logger) error {
	if procs < 1 {
		return errors.Errorf("rank count %d must be at least one", procs)
	}
	report.Banner(os.Stdout, procs)

	group := collective.NewGroup(procs)
	results := make([]*engine.Result, procs)
	fulls := make([][]float64, procs)
	errs := make([]error, procs)
	var wg sync.WaitGroup
	for rank := 0; rank < procs; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			red := group.Reducer(rank)
			results[rank], fulls[rank], errs[rank] = worker(red, cfg, utils.RankLogger(log, "rank", rank))
		}(rank)
	}
	wg.Wait()
	for rank, err := range errs {
		if err != nil {
			return errors.Wrapf(err, "rank %d", rank)
		}
	}
	return emit(cfg, results[0], fulls[0], log)
}

// runDistributed runs one rank of a multi-process run over gRPC.
func runDistributed(cfg runConfig, rank int, peerList string, log zerolog.Logger) error {
	addrs := strings.Split(peerList, ",")
	if rank < 0 || rank >= len(addrs) {
		return errors.Errorf("rank %d outside peer list of %d", rank, len(addrs))
	}
	peers := make([]collective.Peer, len(addrs))
	for i, addr := range addrs {
		peers[i] = collective.Peer{Rank: i, Addr: strings.TrimSpace(addr)}
	}
	if rank == 0 {
		report.Banner(os.Stdout, len(peers))
	}

	mesh, err := collective.DialMesh(context.Background(), rank, peers, log)
	if err != nil {
		return err
	}
	defer mesh.Close()

	res, full, err := worker(mesh, cfg, utils.RankLogger(log, "rank", rank))
	if err != nil {
		return errors.Wrapf(err, "rank %d", rank)
	}
	if rank != 0 {
		return nil
	}
	return emit(cfg, res, full, log)
}

// worker is the SPMD body every rank executes. All ranks walk the same
// sequence of collectives; the reducer propagates any failure so no
// rank is left waiting.
func worker(red collective.Reducer, cfg runConfig, log zerolog.Logger) (*engine.Result, []float64, error) {
	rank := red.Rank()
	edges, n, err := matrix.LoadEdges(cfg.matrixPath, cfg.trans)
	if err != nil {
		return nil, nil, err
	}
	layout, err := collective.NewLayout(n, red.Size())
	if err != nil {
		return nil, nil, err
	}
	block, err := matrix.BuildBlock(edges, layout, rank)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("block", block.Describe()).Msg("running")

	stats, err := matrix.CollectStats(block, red)
	if err != nil {
		return nil, nil, err
	}
	if rank == 0 {
		report.PrintStats(os.Stdout, cfg.matrixPath, stats)
	}

	var pv []float64
	if cfg.pvecPath != "" {
		pv, err = engine.LoadPersonalization(cfg.pvecPath, layout, rank)
		if err != nil {
			return nil, nil, err
		}
	} else {
		pv = engine.Uniform(layout, rank)
	}

	opts := engine.Options{
		Alpha:         cfg.alpha,
		Tolerance:     cfg.tolerance,
		MaxIterations: cfg.maxIter,
		Norm:          cfg.norm,
	}
	if cfg.checkpoint != "" {
		store, err := checkpoint.Open(cfg.checkpoint, rank)
		if err != nil {
			return nil, nil, err
		}
		defer store.Close()
		opts.Checkpointer = store
		latest, ok, err := store.Latest()
		if err != nil {
			return nil, nil, err
		}
		// Resume from the highest iteration every rank has. A rank
		// whose store is empty or behind drags the whole group back,
		// never forward.
		mine := -1.0
		if ok {
			mine = float64(latest)
		}
		agreed, err := red.AllReduce(collective.OpMin, []float64{mine})
		if err != nil {
			return nil, nil, err
		}
		if resume := int(agreed[0]); resume >= 0 {
			seg, _, err := store.Load(resume)
			if err != nil {
				return nil, nil, err
			}
			opts.Initial = seg
			opts.StartIteration = resume
			log.Info().Int("iteration", resume).Msg("resuming from checkpoint")
		}
	}

	eng, err := engine.New(block, pv, red, opts, log)
	if err != nil {
		return nil, nil, err
	}
	if cfg.statusAddr != "" && rank == 0 {
		srv := report.StartStatus(cfg.statusAddr, eng, log)
		defer srv.Close()
	}

	res, err := eng.Run()
	if err != nil {
		return nil, nil, err
	}

	var full []float64
	if !cfg.noout || cfg.publish != "" {
		full, err = red.Gather(0, res.Local)
		if err != nil {
			return nil, nil, err
		}
	}
	return res, full, nil
}

// emit handles root-side output once the run is over.
func emit(cfg runConfig, res *engine.Result, full []float64, log zerolog.Logger) error {
	report.PrintResult(os.Stdout, res)
	if !cfg.noout {
		w := os.Stdout
		if cfg.outPath != "" {
			f, err := os.Create(cfg.outPath)
			if err != nil {
				return errors.Wrapf(err, "could not create output file %s", cfg.outPath)
			}
			defer f.Close()
			w = f
		}
		if err := report.PrintRanks(w, full); err != nil {
			return errors.Wrap(err, "could not write rank vector")
		}
	}
	if cfg.publish != "" {
		user := utils.ReadStringEnvVarOr("PPR_RABBIT_USER", "guest")
		pass := utils.ReadStringEnvVarOr("PPR_RABBIT_PASSWORD", "guest")
		host := utils.ReadStringEnvVarOr("PPR_RABBIT_HOST", "localhost")
		sum := report.BuildSummary(res, full, cfg.topK)
		if err := report.Publish(report.QueueURL(user, pass, host), cfg.publish, sum); err != nil {
			return err
		}
		log.Info().Str("queue", cfg.publish).Msg("summary published")
	}
	return nil
}
