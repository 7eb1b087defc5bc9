package experiments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warships/engine"
	"warships/experiments/metrics"
	"warships/game"
	"warships/meta"
	"warships/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var ErrTrialPanicked = errors.New("trial panicked")

type Option func(t *Tester)

// Tester plays many independent games and aggregates how many shots each needed.
type Tester struct {
	workers   int
	fleet     game.Fleet
	seed      uint64
	collector metrics.Collector
	progress  func(done int)
}

func WithWorkers(workers int) Option {
	return func(t *Tester) {
		if workers > 0 {
			t.workers = workers
		}
	}
}

func WithFleet(fleet game.Fleet) Option {
	return func(t *Tester) {
		t.fleet = fleet.Clone()
	}
}

// WithSeed makes a run reproducible: trial i uses seed+i for its board and strategy.
func WithSeed(seed uint64) Option {
	return func(t *Tester) {
		if seed > 0 {
			t.seed = seed
		}
	}
}

func WithCollector(collector metrics.Collector) Option {
	return func(t *Tester) {
		if collector != nil {
			t.collector = collector
		}
	}
}

// WithProgress calls fn with the number of finished games each time one finishes.
func WithProgress(fn func(done int)) Option {
	return func(t *Tester) {
		t.progress = fn
	}
}

func NewTester(options ...Option) *Tester {
	fleet, err := game.NewFleet(meta.FLEET)
	if err != nil {
		panic(fmt.Sprintf("default fleet: %v", err))
	}
	t := &Tester{ // Default values
		workers:   meta.WORKERS,
		fleet:     fleet,
		seed:      uint64(time.Now().UnixNano()),
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Seed is the base seed of the run.
func (t *Tester) Seed() uint64 {
	return t.seed
}

type trial struct {
	index  int
	seed   uint64
	metric metrics.GameMetric
	err    error
}

// Run plays games games, each with a fresh board and a fresh strategy from
// factory, spread over the worker pool. Failed games are kept out of the
// histogram and listed in Results.Failures.
func (t *Tester) Run(ctx context.Context, factory strategy.Factory, games int) (*Results, error) {
	if games <= 0 {
		return nil, fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, games)
	}

	log.Info().Msgf("starting %d games on %d workers with seed %d...", games, t.workers, t.seed)
	t.collector.Start(games, t.workers)

	tasks := make(chan int, games)
	for i := 0; i < games; i++ {
		tasks <- i
	}
	close(tasks)

	outcomes := make(chan trial, t.workers)
	eg, egCtx := errgroup.WithContext(ctx)
	for i := 0; i < t.workers; i++ {
		eg.Go(func() error {
			for index := range tasks {
				if err := egCtx.Err(); err != nil {
					return err
				}
				select {
				case outcomes <- t.play(index, factory):
				case <-egCtx.Done():
					return egCtx.Err()
				}
			}
			return nil
		})
	}

	var runErr error
	go func() {
		runErr = eg.Wait()
		close(outcomes)
	}()

	results := newResults(games)
	for outcome := range outcomes {
		results.add(outcome)
		if outcome.err != nil {
			t.collector.AddFailure()
			log.Warn().Err(outcome.err).Msgf("game %d with seed %d failed", outcome.index, outcome.seed)
		} else {
			t.collector.AddGame(outcome.metric)
		}
		if t.progress != nil {
			t.progress(results.done())
		}
	}
	if runErr != nil {
		return nil, fmt.Errorf("run stopped after %d of %d games: %w", results.done(), games, runErr)
	}

	results.finish()
	results.Run = t.collector.Complete()
	log.Info().Msgf("completed %d games, %d failed", results.Completed(), len(results.Failures))
	return results, nil
}

// play runs a single game; panics are reported as a failed trial.
func (t *Tester) play(index int, factory strategy.Factory) (outcome trial) {
	outcome = trial{index: index, seed: t.seed + uint64(index)}
	defer func() {
		if r := recover(); r != nil {
			outcome.err = fmt.Errorf("%w: %v", ErrTrialPanicked, r)
		}
	}()

	rng := rand.New(rand.NewSource(outcome.seed))
	board := game.Generate(t.fleet, rng)
	outcome.metric, outcome.err = engine.LocalEngine(board, factory(rng)).Run()
	return outcome
}
