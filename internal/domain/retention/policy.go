package retention

import "time"

// Retention horizons in whole years, fixed by policy. Payroll data and
// employee PII carry the longest horizon (statutory financial retention).
var horizonYears = map[string]int{
	CategoryAuditLogs:        5,
	CategoryAttendance:       3,
	CategoryPayroll:          7,
	CategoryPayrollOverrides: 7,
	CategoryEmployeePII:      7,
}

func HorizonYears(category string) int {
	return horizonYears[category]
}

// Cutoff returns now with its year decremented by horizon years; the
// remaining fields are preserved. A Feb 29 reference whose target year is
// not a leap year clamps to Feb 28 rather than normalizing to Mar 1, so the
// cutoff never lands a day late.
func Cutoff(horizonYears int, now time.Time) time.Time {
	cutoff := time.Date(now.Year()-horizonYears, now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location())
	if cutoff.Month() != now.Month() {
		cutoff = cutoff.AddDate(0, 0, -1)
	}
	return cutoff
}

// CategoryCutoff is the per-category convenience over HorizonYears and
// Cutoff. Callers must derive every cutoff of one run from the same
// captured timestamp.
func CategoryCutoff(category string, now time.Time) time.Time {
	return Cutoff(HorizonYears(category), now)
}
