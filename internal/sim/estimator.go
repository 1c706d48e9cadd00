// Package sim runs Monte Carlo batches of duels and reports the empirical
// win fraction for the first-named ship.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/pefman/eclipse-duel/internal/engine"
	"github.com/pefman/eclipse-duel/internal/game"
)

// ErrInvalidTrials indicates a non-positive trial count.
var ErrInvalidTrials = errors.New("trials must be positive")

// Request describes one estimation run.
type Request struct {
	A game.Ship
	B game.Ship
	// Trials is the number of independent duels to simulate.
	Trials int
	// Seed fixes the random stream for reproducible runs. Nil means a
	// crypto-random seed is generated (and reported in the Result).
	Seed *int64
	// Workers is the number of goroutines splitting the trial range.
	// Values <= 1 run sequentially; a sequential run is bit-reproducible
	// for a fixed seed.
	Workers int
}

// Result is the aggregate of one run.
type Result struct {
	Wins        int
	Trials      int
	Probability float64
	// Seed is the master seed actually used, whether supplied or generated.
	Seed    int64
	Elapsed time.Duration
}

// Run validates the request, simulates req.Trials independent duels and
// returns the fraction won by ship A. Validation failures surface before any
// trial executes.
func Run(req Request) (Result, error) {
	if req.Trials <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTrials, req.Trials)
	}
	if err := req.A.Validate(); err != nil {
		return Result{}, fmt.Errorf("ship A: %w", err)
	}
	if err := req.B.Validate(); err != nil {
		return Result{}, fmt.Errorf("ship B: %w", err)
	}

	seed, err := masterSeed(req.Seed)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	var wins int
	if req.Workers <= 1 {
		wins = runSequential(req.A, req.B, req.Trials, seed)
	} else {
		wins = runParallel(req.A, req.B, req.Trials, seed, req.Workers)
	}

	return Result{
		Wins:        wins,
		Trials:      req.Trials,
		Probability: float64(wins) / float64(req.Trials),
		Seed:        seed,
		Elapsed:     time.Since(start),
	}, nil
}

// WinProbability is the one-call form: estimate P(A beats B) over trials
// duels, sequentially, with an optional seed.
func WinProbability(a, b game.Ship, trials int, seed *int64) (float64, error) {
	res, err := Run(Request{A: a, B: b, Trials: trials, Seed: seed})
	if err != nil {
		return 0, err
	}
	return res.Probability, nil
}

func masterSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	s, err := engine.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("seeding run: %w", err)
	}
	return s, nil
}

func runSequential(a, b game.Ship, trials int, seed int64) int {
	src := engine.New(seed)
	wins := 0
	for i := 0; i < trials; i++ {
		if game.Fight(a, b, src) == game.OutcomeFirstWins {
			wins++
		}
	}
	return wins
}

// runParallel splits the trial range across workers, each owning a stream
// derived from the master seed. Only per-worker win counts cross goroutine
// boundaries, summed after every worker is done, so parallelism changes RNG
// draw order but never the counting logic.
func runParallel(a, b game.Ship, trials int, seed int64, workers int) int {
	if workers > trials {
		workers = trials
	}
	perWorker := trials / workers
	remainder := trials % workers
	seeds := engine.DeriveSeeds(seed, workers)

	partials := make(chan int, workers)
	for w := 0; w < workers; w++ {
		n := perWorker
		if w == 0 {
			n += remainder
		}
		go func(n int, seed int64) {
			partials <- runSequential(a, b, n, seed)
		}(n, seeds[w])
	}

	wins := 0
	for w := 0; w < workers; w++ {
		wins += <-partials
	}
	return wins
}
