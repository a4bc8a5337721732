package retention

import (
	"context"
	"time"
)

// Each purge is a hard delete in its own unit of work. Deletes committed
// before a later failure are not rolled back; the run is safe to repeat.

func (s *Store) PurgeAuditLogs(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM audit_logs
    WHERE created_at < $1
  `, cutoff)
	return tag.RowsAffected(), storeErr("purge audit logs", err)
}

func (s *Store) PurgeAttendance(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM attendance_records
    WHERE check_in < $1
  `, cutoff)
	return tag.RowsAffected(), storeErr("purge attendance", err)
}

func (s *Store) PurgePayrollRecords(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM payroll_records
    WHERE created_at < $1
  `, cutoff)
	return tag.RowsAffected(), storeErr("purge payroll records", err)
}

func (s *Store) PurgePayrollOverrides(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM payroll_overrides
    WHERE created_at < $1
  `, cutoff)
	return tag.RowsAffected(), storeErr("purge payroll overrides", err)
}
