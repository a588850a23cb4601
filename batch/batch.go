// Package batch solves sequences of data sets and returns answers in input
// order. Data sets share no state, so with more than one worker they are
// solved concurrently on an ants goroutine pool; the output order still
// mirrors the input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/evenflow/minrange"
)

// DefaultWorkers solves data sets one after another.
const DefaultWorkers = 1

// ErrInvalidWorkers indicates a non-positive worker count.
var ErrInvalidWorkers = errors.New("batch: workers must be positive")

// Solver runs minrange.MinRange over many data sets.
type Solver struct {
	workers int
	search  []minrange.Option
	logger  *log.Logger
	metrics *Metrics
}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		s.workers = n
	}
}

// WithLogger sets the logger used for per-data-set debug lines.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSearchOptions forwards opts to every minrange.MinRange call.
func WithSearchOptions(opts ...minrange.Option) Option {
	return func(s *Solver) {
		s.search = append(s.search, opts...)
	}
}

// New returns a Solver with a silent logger and fresh metrics.
func New(opts ...Option) *Solver {
	s := &Solver{
		workers: DefaultWorkers,
		logger:  log.New(io.Discard),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Metrics returns the solver's collectors.
func (s *Solver) Metrics() *Metrics {
	return s.metrics
}

// Solve returns one result per data set, in input order.
// Invalid data sets are reported together via errors.Join; cancellation of
// ctx stops scheduling further data sets and returns ctx.Err().
func (s *Solver) Solve(ctx context.Context, insts []minrange.Instance) ([]minrange.Result, error) {
	if s.workers < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWorkers, s.workers)
	}

	results := make([]minrange.Result, len(insts))
	errs := make([]error, len(insts))

	if s.workers == 1 {
		for i := range insts {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i], errs[i] = s.solveOne(i, insts[i])
		}

		return results, errors.Join(errs...)
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("batch: create pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range insts {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = s.solveOne(i, insts[i])
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("batch: submit data set %d: %w", i+1, submitErr)
			break
		}
	}
	wg.Wait()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	return results, errors.Join(errs...)
}

// solveOne solves data set i and records metrics.
func (s *Solver) solveOne(i int, inst minrange.Instance) (minrange.Result, error) {
	start := time.Now()
	res, err := minrange.MinRange(inst, s.search...)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.Instances(OutcomeInvalid).Inc()
		s.logger.Warn("invalid data set", "dataset", i+1, "err", err)
		return res, fmt.Errorf("data set %d: %w", i+1, err)
	}

	outcome := OutcomeConnected
	if !res.Spanning() {
		outcome = OutcomeDisconnected
	}
	s.metrics.Instances(outcome).Inc()
	s.metrics.Passes().Add(float64(res.Passes))
	s.metrics.Duration().Observe(elapsed.Seconds())

	s.logger.Debug("solved data set",
		"dataset", i+1,
		"junctions", inst.Junctions,
		"pipes", len(inst.Edges),
		"range", res.Range,
		"passes", res.Passes,
		"elapsed", elapsed,
	)

	return res, nil
}
