package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pefman/eclipse-duel/internal/engine"
	"github.com/pefman/eclipse-duel/internal/models"
	"github.com/pefman/eclipse-duel/internal/sim"
	"github.com/pefman/eclipse-duel/internal/stats"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// wsChunks is how many sub-runs a websocket estimation is split into; one
// progress frame is sent after each.
const wsChunks = 20

// handleWS runs estimations with incremental progress frames. The client
// sends one "estimate" message and receives "progress" frames followed by a
// final "result" (or an "error").
func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("ws upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	for {
		var msg struct {
			Type string                 `json:"type"`
			Data models.EstimateRequest `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != models.WsTypeEstimate {
			wsSend(conn, models.WsMsg{Type: models.WsTypeError, Data: "unknown message type"})
			continue
		}
		s.runStreamed(conn, msg.Data)
	}
}

// runStreamed splits one request into wsChunks sequential sub-runs whose
// seeds are derived from the master seed, so a seeded streamed run is as
// reproducible as a plain one.
func (s *server) runStreamed(conn *websocket.Conn, req models.EstimateRequest) {
	if err := s.normalize(&req); err != nil {
		wsSend(conn, models.WsMsg{Type: models.WsTypeError, Data: err.Error()})
		return
	}

	master := int64(0)
	if req.Seed != nil {
		master = *req.Seed
	} else {
		var err error
		if master, err = engine.NewSeed(); err != nil {
			wsSend(conn, models.WsMsg{Type: models.WsTypeError, Data: err.Error()})
			return
		}
	}

	chunks := wsChunks
	if chunks > req.Trials {
		chunks = req.Trials
	}
	if chunks < 1 {
		chunks = 1
	}
	perChunk := req.Trials / chunks
	remainder := req.Trials % chunks
	seeds := engine.DeriveSeeds(master, chunks)

	wins := 0
	done := 0
	var elapsedMS int64
	for i := 0; i < chunks; i++ {
		n := perChunk
		if i == 0 {
			n += remainder
		}
		res, err := sim.Run(sim.Request{
			A:       req.ShipA,
			B:       req.ShipB,
			Trials:  n,
			Seed:    &seeds[i],
			Workers: req.Workers,
		})
		if err != nil {
			wsSend(conn, models.WsMsg{Type: models.WsTypeError, Data: err.Error()})
			return
		}
		wins += res.Wins
		done += n
		elapsedMS += res.Elapsed.Milliseconds()
		wsSend(conn, models.WsMsg{Type: models.WsTypeProgress, Data: models.Progress{
			Done:        done,
			Total:       req.Trials,
			Wins:        wins,
			Probability: float64(wins) / float64(done),
		}})
	}

	run := stats.Record(stats.Run{
		Probability: float64(wins) / float64(req.Trials),
		Trials:      req.Trials,
		Workers:     req.Workers,
		Seed:        master,
		ElapsedMS:   elapsedMS,
	})
	wsSend(conn, models.WsMsg{Type: models.WsTypeResult, Data: models.EstimateResponse{
		ID:          run.ID,
		Probability: run.Probability,
		Wins:        wins,
		Trials:      req.Trials,
		Workers:     req.Workers,
		Seed:        master,
		ElapsedMS:   elapsedMS,
	}})
}

func wsSend(conn *websocket.Conn, m models.WsMsg) {
	// A write error means the peer went away; the reader loop notices on its
	// next ReadJSON, so it is safe to drop here.
	_ = conn.WriteJSON(m)
}
