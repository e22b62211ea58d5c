package bench

import (
	"io"
	"time"

	"github.com/google/uuid"

	"skirmish/internal/config"
	"skirmish/internal/logger"
	"skirmish/internal/report"
	"skirmish/internal/stats"
)

// Runner executes the configured sweep of population sizes.
type Runner struct {
	cfg config.Config
	log logger.Logger
}

// NewRunner creates a sweep runner.
func NewRunner(cfg config.Config, log logger.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run executes the sweep and writes the result table to w. Each population
// size is simulated from scratch for every repetition, so repetitions are
// independent and reproducible rather than resumed.
func (r *Runner) Run(w io.Writer) {
	if r.cfg.Load.Enabled {
		load, err := StartLoad(r.cfg.Load.Workers)
		if err != nil {
			r.log.Warn("background load disabled", logger.Field{Key: "error", Value: err})
		} else {
			defer load.Stop()
			r.log.Info("background load enabled", logger.Field{Key: "workers", Value: load.Workers()})
		}
	}

	report.WriteHeader(w)
	for _, count := range r.cfg.EntityCounts {
		runs := make([]stats.Metrics, 0, r.cfg.Repetitions)
		for rep := 0; rep < r.cfg.Repetitions; rep++ {
			runID := uuid.NewString()
			r.log.Info("starting run",
				logger.Field{Key: "run_id", Value: runID},
				logger.Field{Key: "entities", Value: count},
				logger.Field{Key: "repetition", Value: rep + 1},
				logger.Field{Key: "repetitions", Value: r.cfg.Repetitions},
			)

			start := time.Now()
			samples := RunSimulation(count, r.cfg.Frames, r.cfg.Seed, r.cfg.DeltaTime)
			metrics := stats.Aggregate(samples)
			runs = append(runs, metrics)

			r.log.Info("run complete",
				logger.Field{Key: "run_id", Value: runID},
				logger.Field{Key: "elapsed", Value: time.Since(start)},
				logger.Field{Key: "avg_ms", Value: metrics.Avg},
				logger.Field{Key: "p99_ms", Value: metrics.P99},
				logger.Field{Key: "jank", Value: metrics.Jank},
			)
		}
		report.WriteRow(w, count, stats.Average(runs))
	}
}
