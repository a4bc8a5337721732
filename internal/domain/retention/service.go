package retention

import (
	"context"
	"log/slog"
	"time"
)

// Service coordinates one retention run. It holds no state between runs and
// performs no internal locking: the invoker must ensure at most one run is
// in flight at a time.
type Service struct {
	store  StoreAPI
	logger *slog.Logger
}

func NewService(store StoreAPI) *Service {
	return &Service{
		store:  store,
		logger: slog.Default().With("component", "retention"),
	}
}

// Run executes the fixed sequence: the four independent category purges,
// then the offboarding reaper. Every cutoff derives from the single now
// argument, so the five cutoffs of one run are mutually consistent however
// long the run takes. The first store failure aborts the run; earlier
// categories' deletes stay committed and the job is safe to re-invoke.
func (s *Service) Run(ctx context.Context, now time.Time) (Summary, error) {
	var summary Summary

	purges := []struct {
		category string
		purge    func(context.Context, time.Time) (int64, error)
		count    *int64
	}{
		{CategoryAuditLogs, s.store.PurgeAuditLogs, &summary.DeletedAuditLogs},
		{CategoryAttendance, s.store.PurgeAttendance, &summary.DeletedAttendance},
		{CategoryPayroll, s.store.PurgePayrollRecords, &summary.DeletedPayroll},
		{CategoryPayrollOverrides, s.store.PurgePayrollOverrides, &summary.DeletedPayrollOverrides},
	}
	for _, p := range purges {
		cutoff := CategoryCutoff(p.category, now)
		deleted, err := p.purge(ctx, cutoff)
		if err != nil {
			return summary, &RunError{Phase: "purge " + p.category, Err: err}
		}
		*p.count = deleted
		s.logger.Info("category purged", "category", p.category, "cutoff", cutoff, "deleted", deleted)
	}

	reaped, err := s.Reap(ctx, CategoryCutoff(CategoryEmployeePII, now))
	if err != nil {
		return summary, &RunError{Phase: "offboarding reap", Err: err}
	}
	summary.AnonymizedEmployees = reaped.AnonymizedEmployees
	summary.DeletedOffboardingTasks = reaped.DeletedTasks
	summary.DeletedOffboardingProcesses = reaped.DeletedProcesses

	return summary, nil
}

// Reap handles offboarding processes whose exit date passed the employee
// cutoff. The step order is load-bearing: employees are anonymized before
// any task or process row is deleted, so an interrupted run can leave
// orphaned tasks behind but never live PII past its horizon. Tasks are
// deleted before their parent processes to keep references intact.
func (s *Service) Reap(ctx context.Context, employeeCutoff time.Time) (ReapResult, error) {
	var result ReapResult

	refs, err := s.store.ListExpiredOffboarding(ctx, employeeCutoff)
	if err != nil {
		return result, err
	}
	if len(refs) == 0 {
		return result, nil
	}

	processIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		if err := s.store.AnonymizeEmployee(ctx, ref.EmployeeID); err != nil {
			return result, err
		}
		result.AnonymizedEmployees++
		processIDs = append(processIDs, ref.ID)
	}

	deletedTasks, err := s.store.DeleteOffboardingTasks(ctx, processIDs)
	if err != nil {
		return result, err
	}
	result.DeletedTasks = deletedTasks

	deletedProcesses, err := s.store.DeleteOffboardingProcesses(ctx, processIDs)
	if err != nil {
		return result, err
	}
	result.DeletedProcesses = deletedProcesses

	s.logger.Info("offboarding processes reaped",
		"cutoff", employeeCutoff,
		"anonymized", result.AnonymizedEmployees,
		"deletedTasks", result.DeletedTasks,
		"deletedProcesses", result.DeletedProcesses,
	)
	return result, nil
}
