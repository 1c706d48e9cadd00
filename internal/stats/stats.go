package stats

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory run history for the estimator service. Good enough for a single
// instance; nothing here survives a restart.

const recentLimit = 50

var (
	mu sync.Mutex
	// recent holds the latest runs, newest first.
	recent []Run
	// dailyBiggest tracks the largest run per date key (YYYY-MM-DD UTC).
	dailyBiggest = make(map[string]Run)
)

// Run summarizes one completed estimation.
type Run struct {
	ID          string    `json:"id"`
	Probability float64   `json:"probability"`
	Trials      int       `json:"trials"`
	Workers     int       `json:"workers"`
	Seed        int64     `json:"seed"`
	ElapsedMS   int64     `json:"elapsed_ms"`
	At          time.Time `json:"at"`
}

// Record stores a completed run in the recent list and, if it is the largest
// of its day by trial count, as that day's biggest. Returns the run with its
// ID and timestamp filled in.
func Record(r Run) Run {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.At.IsZero() {
		r.At = time.Now().UTC()
	}
	dateKey := r.At.UTC().Format("2006-01-02")

	mu.Lock()
	defer mu.Unlock()
	recent = append([]Run{r}, recent...)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	if cur, ok := dailyBiggest[dateKey]; !ok || r.Trials > cur.Trials {
		dailyBiggest[dateKey] = r
	}
	return r
}

// Recent returns a copy of the latest runs, newest first.
func Recent() []Run {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Run, len(recent))
	copy(out, recent)
	return out
}

// BiggestToday returns the largest run recorded today, if any.
func BiggestToday() (Run, bool) {
	dateKey := time.Now().UTC().Format("2006-01-02")
	mu.Lock()
	defer mu.Unlock()
	r, ok := dailyBiggest[dateKey]
	return r, ok
}
