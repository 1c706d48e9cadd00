package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"runtime"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/pefman/eclipse-duel/internal/config"
	"github.com/pefman/eclipse-duel/internal/models"
	"github.com/pefman/eclipse-duel/internal/observability"
	"github.com/pefman/eclipse-duel/internal/sim"
	"github.com/pefman/eclipse-duel/internal/stats"
)

// Build metadata injected via -ldflags at build time
var (
	buildVersion = "dev"
	buildTime    = ""
)

type server struct {
	cfg config.Config
	log *zap.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	s := &server{cfg: cfg, log: logger}
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/estimate", s.handleEstimate).Methods(http.MethodPost)
	r.HandleFunc("/api/stats/recent", s.handleStatsRecent).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/daily", s.handleStatsDaily).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)

	logger.Info("eclipse-duel api starting",
		zap.String("addr", cfg.Addr()),
		zap.String("version", buildVersion),
		zap.String("build_time", buildTime),
	)
	if err := http.ListenAndServe(cfg.Addr(), r); err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": buildVersion})
}

// maxWorkers resolves the per-request worker cap.
func (s *server) maxWorkers() int {
	if s.cfg.MaxWorkers > 0 {
		return s.cfg.MaxWorkers
	}
	return runtime.NumCPU()
}

// normalize applies server defaults and caps to an incoming request.
func (s *server) normalize(req *models.EstimateRequest) error {
	if req.Trials == 0 {
		req.Trials = s.cfg.DefaultTrials
	}
	if req.Trials > s.cfg.MaxTrials {
		return errors.New("trials exceeds server limit")
	}
	if req.Workers > s.maxWorkers() {
		req.Workers = s.maxWorkers()
	}
	return nil
}

func (s *server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req models.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.normalize(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := sim.Run(sim.Request{
		A:       req.ShipA,
		B:       req.ShipB,
		Trials:  req.Trials,
		Seed:    req.Seed,
		Workers: req.Workers,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	run := stats.Record(stats.Run{
		Probability: res.Probability,
		Trials:      res.Trials,
		Workers:     req.Workers,
		Seed:        res.Seed,
		ElapsedMS:   res.Elapsed.Milliseconds(),
	})
	s.log.Info("estimate",
		zap.String("run_id", run.ID),
		zap.Int("trials", res.Trials),
		zap.Float64("probability", res.Probability),
		zap.Duration("elapsed", res.Elapsed),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.EstimateResponse{
		ID:          run.ID,
		Probability: res.Probability,
		Wins:        res.Wins,
		Trials:      res.Trials,
		Workers:     req.Workers,
		Seed:        res.Seed,
		ElapsedMS:   res.Elapsed.Milliseconds(),
	})
}
