package models

// Wire types shared by the API server and the Go client.

import "github.com/pefman/eclipse-duel/internal/game"

// EstimateRequest is one estimation job as posted to /api/estimate or sent
// over the websocket.
type EstimateRequest struct {
	ShipA game.Ship `json:"ship_a"`
	ShipB game.Ship `json:"ship_b"`
	// Trials defaults server-side when omitted.
	Trials int `json:"trials,omitempty"`
	// Seed, when present, makes the run reproducible.
	Seed *int64 `json:"seed,omitempty"`
	// Workers > 1 enables parallel execution server-side.
	Workers int `json:"workers,omitempty"`
}

// EstimateResponse reports the finished run. Probability is P(ship A wins).
type EstimateResponse struct {
	ID          string  `json:"id"`
	Probability float64 `json:"probability"`
	Wins        int     `json:"wins"`
	Trials      int     `json:"trials"`
	Workers     int     `json:"workers,omitempty"`
	Seed        int64   `json:"seed"`
	ElapsedMS   int64   `json:"elapsed_ms"`
}

// Progress is the incremental frame streamed over the websocket while a run
// is in flight. Probability is the running estimate over Done trials.
type Progress struct {
	Done        int     `json:"done"`
	Total       int     `json:"total"`
	Wins        int     `json:"wins"`
	Probability float64 `json:"probability"`
}

// WebSocket message structure
type WsMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// WsMsg types.
const (
	WsTypeEstimate = "estimate" // client -> server: EstimateRequest
	WsTypeProgress = "progress" // server -> client: Progress
	WsTypeResult   = "result"   // server -> client: EstimateResponse
	WsTypeError    = "error"    // server -> client: string
)
