// Command sim is a benchmark and demo runner for the duel estimator.
//
// By default it simulates a canned matchup locally and prints the estimated
// win probability and throughput. With -remote it posts the same job to a
// running API instance instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/pefman/eclipse-duel/internal/api"
	"github.com/pefman/eclipse-duel/internal/game"
	"github.com/pefman/eclipse-duel/internal/models"
	"github.com/pefman/eclipse-duel/internal/sim"
)

func main() {
	trials := flag.Int("trials", 1_000_000, "number of duels to simulate")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel workers (1 = sequential)")
	remote := flag.String("remote", "", "base URL of a running estimator API (empty = run locally)")
	flag.Parse()

	shipA := game.Ship{
		Initiative: 6, Hull: 3, Computer: 2, Shield: 1,
		Missiles: []int{2, 1}, Cannons: []int{2, 1},
	}
	shipB := game.Ship{
		Initiative: 4, Hull: 3, Computer: 1, Shield: 1,
		Missiles: []int{2, 1, 1}, Cannons: []int{1, 1},
	}

	var seedPtr *int64
	if *seed != 0 {
		seedPtr = seed
	}

	if *remote != "" {
		runRemote(*remote, shipA, shipB, *trials, seedPtr, *workers)
		return
	}

	res, err := sim.Run(sim.Request{
		A:       shipA,
		B:       shipB,
		Trials:  *trials,
		Seed:    seedPtr,
		Workers: *workers,
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	report(res.Probability, res.Trials, res.Seed, *workers, res.Elapsed)
}

func runRemote(baseURL string, a, b game.Ship, trials int, seed *int64, workers int) {
	client := api.NewClient(baseURL)
	start := time.Now()
	resp, err := client.Estimate(context.Background(), models.EstimateRequest{
		ShipA:   a,
		ShipB:   b,
		Trials:  trials,
		Seed:    seed,
		Workers: workers,
	})
	if err != nil {
		log.Fatalf("remote estimate: %v", err)
	}
	report(resp.Probability, resp.Trials, resp.Seed, workers, time.Since(start))
}

func report(p float64, trials int, seed int64, workers int, elapsed time.Duration) {
	rate := float64(trials) / elapsed.Seconds()
	fmt.Printf("P(A wins) ≈ %.4f%%\n", p*100)
	fmt.Printf("%d trials in %s (%.0f sims/sec, %d workers, seed %d)\n",
		trials, elapsed.Round(time.Millisecond), rate, workers, seed)
}
