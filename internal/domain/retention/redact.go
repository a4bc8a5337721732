package retention

import "fmt"

const (
	RedactedFirstName = "Redacted"
	RedactedLastName  = "Employee"
)

// The synthetic values below are pure functions of the immutable employee
// ID: re-anonymizing an already-redacted row rewrites the same values, so
// repeat runs cannot trip a uniqueness constraint.

func RedactedEmail(employeeID string) string {
	return fmt.Sprintf("redacted+%s@example.invalid", employeeID)
}

func RedactedEmployeeNumber(employeeID string) string {
	return fmt.Sprintf("redacted-%s", employeeID)
}
