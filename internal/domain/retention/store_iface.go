package retention

import (
	"context"
	"time"
)

type StoreAPI interface {
	PurgeAuditLogs(ctx context.Context, cutoff time.Time) (int64, error)
	PurgeAttendance(ctx context.Context, cutoff time.Time) (int64, error)
	PurgePayrollRecords(ctx context.Context, cutoff time.Time) (int64, error)
	PurgePayrollOverrides(ctx context.Context, cutoff time.Time) (int64, error)
	ListExpiredOffboarding(ctx context.Context, cutoff time.Time) ([]ProcessRef, error)
	AnonymizeEmployee(ctx context.Context, employeeID string) error
	DeleteOffboardingTasks(ctx context.Context, processIDs []string) (int64, error)
	DeleteOffboardingProcesses(ctx context.Context, processIDs []string) (int64, error)
	RecordRun(ctx context.Context, startedAt time.Time) (string, error)
	FinalizeRun(ctx context.Context, runID, status string, detailsJSON []byte) error
}
