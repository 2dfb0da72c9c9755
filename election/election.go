package election

import (
	"ElectSim/logger"
	"ElectSim/vote"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"
)

// Result is the outcome of one simulation run.
type Result struct {
	RunID        string        `json:"run_id"`
	Seed         uint64        `json:"seed"`
	Population   int           `json:"population"`
	Tally        Tally         `json:"tally"`
	Outcome      Outcome       `json:"outcome"`
	Demographics Demographics  `json:"demographics"`
	Strengths    vote.Weights  `json:"strengths"`
	Elapsed      time.Duration `json:"elapsed_ns"`
}

// Election owns a validated configuration and runs simulations over it.
// The configuration never changes, so an Election may be simulated repeatedly.
type Election struct {
	cfg  Config
	seed uint64
	runs atomic.Uint64
	lg   *zap.Logger
}

type Option func(*Election)

func WithLogger(lg *zap.Logger) Option {
	return func(e *Election) {
		e.lg = lg
	}
}

// New validates cfg and returns an election over a copy of it.
func New(cfg Config, opts ...Option) (*Election, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Election{cfg: cfg, seed: cfg.Seed, lg: logger.Logger()}
	if e.seed == 0 {
		e.seed = uint64(time.Now().UnixNano())
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *Election) Config() Config {
	return e.cfg
}

// Seed is the master seed every run seed is derived from.
func (e *Election) Seed() uint64 {
	return e.seed
}

// Simulate runs the election with the next run seed. Successive calls use
// fresh randomness; two elections with the same master seed produce the
// same sequence of results. It fails only if ctx is done.
func (e *Election) Simulate(ctx context.Context) (Result, error) {
	return e.SimulateSeed(ctx, vote.DeriveSeed(e.seed, e.runs.Inc()))
}

// SimulateSeed runs the election with an explicit run seed.
func (e *Election) SimulateSeed(ctx context.Context, seed uint64) (Result, error) {
	start := time.Now()
	id := uuid.New().String()
	lg := e.lg.With(zap.String("run_id", id), zap.Uint64("seed", seed))
	lg.Info("simulation_start",
		zap.Int("population", e.cfg.Population),
		zap.Int("workers", e.cfg.Workers))

	electorate := e.electorate(seed)
	tally, err := e.poll(ctx, electorate)
	if err != nil {
		lg.Warn("simulation_aborted", zap.Error(err))
		return Result{}, err
	}
	res := Result{
		RunID:        id,
		Seed:         seed,
		Population:   e.cfg.Population,
		Tally:        tally,
		Outcome:      tally.Outcome(),
		Demographics: electorate.Demographics(),
		Strengths:    e.cfg.Strengths,
		Elapsed:      time.Since(start),
	}
	lg.Info("simulation_finish",
		zap.Int("republican", tally.Republican),
		zap.Int("democrat", tally.Democrat),
		zap.Int("independent", tally.Independent),
		zap.Int("abstentions", tally.Abstentions),
		zap.Stringer("outcome", res.Outcome),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}

// electorate draws a home party and a kind for every individual. Stream 0 of
// seed drives the classification, stream i+1 belongs to voter i.
func (e *Election) electorate(seed uint64) Electorate {
	src := vote.NewSource(vote.DeriveSeed(seed, 0))
	registration := distuv.NewCategorical(e.cfg.Registration[:], src)
	var undecided [vote.NumParties]distuv.Bernoulli
	for _, p := range vote.Parties {
		undecided[p] = distuv.Bernoulli{P: e.cfg.Undecided[p], Src: src}
	}

	el := make(Electorate, 0, e.cfg.Population)
	for i := 0; i < e.cfg.Population; i++ {
		p := vote.Party(registration.Rand())
		voterSeed := vote.DeriveSeed(seed, uint64(i)+1)
		if undecided[p].Rand() == 1 {
			el = append(el, vote.NewSwingVoter(p, e.cfg.Turnout[p], e.cfg.SwingWeights[p], voterSeed))
		} else {
			el = append(el, vote.NewBaseVoter(p, e.cfg.Turnout[p], voterSeed))
		}
	}
	return el
}

// poll tallies the electorate, split into contiguous chunks across workers.
// Each voter owns its stream, so the tally does not depend on the split.
func (e *Election) poll(ctx context.Context, el Electorate) (Tally, error) {
	workers := e.cfg.Workers
	if workers > len(el) {
		workers = len(el)
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return Tally{}, err
		}
		return el.Poll(), nil
	}

	chunk := (len(el) + workers - 1) / workers
	partials := make([]Tally, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		if lo >= len(el) {
			break
		}
		hi := min(lo+chunk, len(el))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partials[w] = el[lo:hi].Poll()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Tally{}, err
	}
	var total Tally
	for _, p := range partials {
		total.Add(p)
	}
	return total, nil
}
