package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"hrm-retention/internal/domain/retention"
	"hrm-retention/internal/platform/metrics"
)

const JobRetention = "retention_cleanup"

// RunLog is the run-history surface of the retention store. Bookkeeping
// failures are logged but never fail a run; the engine's own store errors
// are what abort it.
type RunLog interface {
	RecordRun(ctx context.Context, startedAt time.Time) (string, error)
	FinalizeRun(ctx context.Context, runID, status string, detailsJSON []byte) error
}

type Runner interface {
	Run(ctx context.Context, now time.Time) (retention.Summary, error)
}

type Reporter interface {
	Write(runID string, completedAt time.Time, summary retention.Summary) (string, error)
}

type Service struct {
	runLog  RunLog
	runner  Runner
	reports Reporter
	metrics *metrics.Collector
	cron    *cron.Cron
	logger  *slog.Logger
}

func New(runLog RunLog, runner Runner, reports Reporter, collector *metrics.Collector) *Service {
	return &Service{
		runLog:  runLog,
		runner:  runner,
		reports: reports,
		metrics: collector,
		logger:  slog.Default().With("component", "jobs"),
	}
}

// RunOnce executes a single retention run against the wall clock captured
// here, so every cutoff within the run shares one reference time.
func (s *Service) RunOnce(ctx context.Context) (retention.Summary, error) {
	now := time.Now()

	runID, err := s.runLog.RecordRun(ctx, now)
	if err != nil {
		s.logger.Warn("run insert failed", "jobType", JobRetention, "err", err)
	}
	if runID == "" {
		runID = uuid.NewString()
	}

	summary, runErr := s.runner.Run(ctx, now)
	duration := time.Since(now)

	status := retention.RunStatusCompleted
	if runErr != nil {
		status = retention.RunStatusFailed
	}
	if s.metrics != nil {
		s.metrics.RecordRun(runErr != nil, summary.TotalRemoved(), duration)
	}

	details := map[string]any{
		"summary":    summary,
		"durationMs": duration.Milliseconds(),
	}
	if runErr != nil {
		details["error"] = runErr.Error()
	}
	if s.metrics != nil {
		details["metrics"] = s.metrics.Snapshot()
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		s.logger.Warn("run details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if err := s.runLog.FinalizeRun(ctx, runID, status, detailsJSON); err != nil {
		s.logger.Warn("run update failed", "runId", runID, "err", err)
	}

	if runErr != nil {
		return summary, runErr
	}

	if s.reports != nil {
		if path, err := s.reports.Write(runID, time.Now(), summary); err != nil {
			s.logger.Warn("run report write failed", "runId", runID, "err", err)
		} else {
			s.logger.Info("run report written", "runId", runID, "path", path)
		}
	}
	return summary, nil
}

// Schedule starts an in-process cron for deployments without an external
// scheduler. Overlapping ticks are skipped, which is the only exclusivity
// guarantee offered; running two processes against one database remains the
// operator's problem.
func (s *Service) Schedule(ctx context.Context, expr string) error {
	if _, err := cron.ParseStandard(expr); err != nil {
		return err
	}

	s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := s.cron.AddFunc(expr, func() {
		summary, err := s.RunOnce(ctx)
		if err != nil {
			s.logger.Error("scheduled retention run failed", "err", err)
			return
		}
		s.logger.Info("scheduled retention run completed", "removed", summary.TotalRemoved())
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("retention schedule started", "schedule", expr)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

func (s *Service) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
