package retention

// Summary carries the per-category counts of one run. Counts only; no PII
// ever leaves the engine.
type Summary struct {
	DeletedAuditLogs            int64 `json:"deletedAuditLogs"`
	DeletedAttendance           int64 `json:"deletedAttendance"`
	DeletedPayroll              int64 `json:"deletedPayroll"`
	DeletedPayrollOverrides     int64 `json:"deletedPayrollOverrides"`
	AnonymizedEmployees         int64 `json:"anonymizedEmployees"`
	DeletedOffboardingTasks     int64 `json:"deletedOffboardingTasks"`
	DeletedOffboardingProcesses int64 `json:"deletedOffboardingProcesses"`
}

func (s Summary) TotalRemoved() int64 {
	return s.DeletedAuditLogs + s.DeletedAttendance + s.DeletedPayroll +
		s.DeletedPayrollOverrides + s.DeletedOffboardingTasks + s.DeletedOffboardingProcesses
}

// ProcessRef is the projection the reaper works from. Full process rows are
// never loaded.
type ProcessRef struct {
	ID         string
	EmployeeID string
}

type ReapResult struct {
	AnonymizedEmployees int64 `json:"anonymizedEmployees"`
	DeletedTasks        int64 `json:"deletedTasks"`
	DeletedProcesses    int64 `json:"deletedProcesses"`
}
