package retention

const (
	CategoryAuditLogs        = "audit_logs"
	CategoryAttendance       = "attendance"
	CategoryPayroll          = "payroll"
	CategoryPayrollOverrides = "payroll_overrides"
	CategoryEmployeePII      = "employee_pii"
)

const (
	OffboardingStatusCompleted = "completed"
	EmployeeStatusInactive     = "inactive"
)

const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)
