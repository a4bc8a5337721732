// retentiond purges and anonymizes HR records that have aged past their
// retention horizons. By default it performs one run and exits; with
// RETENTION_SCHEDULE set it stays resident and runs on the given cron
// expression.
//
// The job is not reentrant-safe: the invoking scheduler must ensure at most
// one instance runs against a database at a time.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrm-retention/internal/domain/retention"
	"hrm-retention/internal/platform/config"
	cryptoutil "hrm-retention/internal/platform/crypto"
	"hrm-retention/internal/platform/db"
	"hrm-retention/internal/platform/jobs"
	"hrm-retention/internal/platform/metrics"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		log.Fatalf("db not reachable: %v", err)
	}

	cryptoSvc, err := cryptoutil.New(cfg.DataEncryptionKey)
	if err != nil {
		log.Fatalf("invalid encryption key: %v", err)
	}

	store := retention.NewStore(pool)
	reports := retention.NewReportWriter(cfg.ReportDir, cfg.ReportPDF, cryptoSvc)
	runner := jobs.New(store, retention.NewService(store), reports, metrics.New())

	if cfg.Schedule == "" {
		summary, err := runner.RunOnce(ctx)
		if err != nil {
			slog.Error("retention run failed", "err", err)
			os.Exit(1)
		}
		slog.Info("retention run completed",
			"deletedAuditLogs", summary.DeletedAuditLogs,
			"deletedAttendance", summary.DeletedAttendance,
			"deletedPayroll", summary.DeletedPayroll,
			"deletedPayrollOverrides", summary.DeletedPayrollOverrides,
			"anonymizedEmployees", summary.AnonymizedEmployees,
			"deletedOffboardingTasks", summary.DeletedOffboardingTasks,
			"deletedOffboardingProcesses", summary.DeletedOffboardingProcesses,
		)
		return
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()
	if err := runner.Schedule(runCtx, cfg.Schedule); err != nil {
		log.Fatalf("invalid RETENTION_SCHEDULE: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	stop()
	runner.Stop()
}
