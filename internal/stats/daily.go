package stats

// This file contains helpers around the in-memory history. It complements
// stats.go.

// Reset clears the recent list and the daily map.
// Intended for tests and dev convenience.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	recent = nil
	for k := range dailyBiggest {
		delete(dailyBiggest, k)
	}
}
