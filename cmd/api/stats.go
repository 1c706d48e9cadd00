package main

import (
	"encoding/json"
	"net/http"

	"github.com/pefman/eclipse-duel/internal/stats"
)

// GET /api/stats/recent
func (s *server) handleStatsRecent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	runs := stats.Recent()
	if runs == nil {
		runs = []stats.Run{}
	}
	json.NewEncoder(w).Encode(runs)
}

// GET /api/stats/daily
func (s *server) handleStatsDaily(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if run, ok := stats.BiggestToday(); ok {
		json.NewEncoder(w).Encode(run)
		return
	}
	json.NewEncoder(w).Encode(map[string]interface{}{})
}
