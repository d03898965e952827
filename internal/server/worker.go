package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/cwbudde/labsopt/internal/labs"
	"github.com/cwbudde/labsopt/internal/opt"
)

// runJob executes a search job in the background, broadcasting a progress
// event after every completed restart.
func runJob(ctx context.Context, jm *JobManager, jobID string) error {
	job, exists := jm.GetJob(jobID)
	if !exists {
		return fmt.Errorf("job not found: %s", jobID)
	}

	err := jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateRunning
	})
	if err != nil {
		return err
	}

	cfg := job.Config
	slog.Info("Starting job", "job_id", jobID, "n", cfg.N, "restarts", cfg.Restarts, "strategy", cfg.Strategy)

	start := time.Now()

	progress := func(tr labs.Trial) {
		jm.UpdateJob(jobID, func(j *Job) {
			j.Trials = tr.Index + 1
			j.BestCost = tr.Best
		})

		elapsed := time.Since(start).Seconds()
		var tps float64
		if elapsed > 0 {
			tps = float64(tr.Index+1) / elapsed
		}

		jm.broadcaster.Broadcast(ProgressEvent{
			JobID:     jobID,
			State:     StateRunning,
			Trial:     tr.Index + 1,
			BestCost:  tr.Best,
			TPS:       tps,
			Timestamp: time.Now(),
		})
	}

	var result labs.Result
	switch cfg.Strategy {
	case "", StrategyRandom:
		rng := rand.New(rand.NewSource(cfg.Seed))
		result, err = labs.SearchContext(ctx, cfg.N, cfg.Restarts, rng, progress)
	case StrategyRelaxed:
		result, err = opt.SeededSearch(ctx, cfg.N, cfg.Restarts, cfg.Iters, cfg.Pop, cfg.Seed, progress)
	default:
		err = fmt.Errorf("unknown strategy: %s", cfg.Strategy)
	}

	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			markJobCancelled(jm, jobID)
		} else {
			markJobFailed(jm, jobID, err)
		}
		return err
	}

	endTime := time.Now()
	err = jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCompleted
		j.BestSequence = result.Seq.String()
		j.BestCost = result.Cost
		j.Trials = cfg.Restarts
		j.EndTime = &endTime
	})
	if err != nil {
		return err
	}

	tps := float64(cfg.Restarts) / elapsed.Seconds()

	slog.Info("Job completed",
		"job_id", jobID,
		"elapsed", elapsed,
		"best_cost", result.Cost,
		"trials_per_second", tps,
	)

	jm.broadcaster.Broadcast(ProgressEvent{
		JobID:     jobID,
		State:     StateCompleted,
		Trial:     cfg.Restarts,
		BestCost:  result.Cost,
		TPS:       tps,
		Timestamp: time.Now(),
	})

	return nil
}

// markJobFailed marks a job as failed with an error message
func markJobFailed(jm *JobManager, jobID string, err error) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateFailed
		j.Error = err.Error()
		j.EndTime = &endTime
	})
	slog.Error("Job failed", "job_id", jobID, "error", err)
}

// markJobCancelled marks a job as cancelled
func markJobCancelled(jm *JobManager, jobID string) {
	endTime := time.Now()
	jm.UpdateJob(jobID, func(j *Job) {
		j.State = StateCancelled
		j.EndTime = &endTime
	})
	slog.Info("Job cancelled", "job_id", jobID)
}
