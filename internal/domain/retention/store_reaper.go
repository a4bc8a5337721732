package retention

import (
	"context"
	"time"
)

func (s *Store) ListExpiredOffboarding(ctx context.Context, cutoff time.Time) ([]ProcessRef, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id
    FROM offboarding_processes
    WHERE status = $1 AND exit_date < $2
  `, OffboardingStatusCompleted, cutoff)
	if err != nil {
		return nil, storeErr("list expired offboarding", err)
	}
	defer rows.Close()

	var refs []ProcessRef
	for rows.Next() {
		var ref ProcessRef
		if err := rows.Scan(&ref.ID, &ref.EmployeeID); err != nil {
			return nil, storeErr("list expired offboarding", err)
		}
		refs = append(refs, ref)
	}
	return refs, storeErr("list expired offboarding", rows.Err())
}

// AnonymizeEmployee overwrites every identifying field and severs the user
// account link. The row itself stays for financial audit linkage. Running
// it against an already-redacted row rewrites the same values.
func (s *Store) AnonymizeEmployee(ctx context.Context, employeeID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $1,
        last_name = $2,
        email = $3,
        phone_number = NULL,
        address = NULL,
        date_of_birth = NULL,
        gender = NULL,
        marital_status = NULL,
        emergency_contact = NULL,
        employee_number = $4,
        salary = 0,
        status = $5,
        user_id = NULL,
        updated_at = now()
    WHERE id = $6
  `, RedactedFirstName, RedactedLastName, RedactedEmail(employeeID),
		RedactedEmployeeNumber(employeeID), EmployeeStatusInactive, employeeID)
	return storeErr("anonymize employee", err)
}

func (s *Store) DeleteOffboardingTasks(ctx context.Context, processIDs []string) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM offboarding_tasks
    WHERE process_id = ANY($1::uuid[])
  `, processIDs)
	return tag.RowsAffected(), storeErr("delete offboarding tasks", err)
}

func (s *Store) DeleteOffboardingProcesses(ctx context.Context, processIDs []string) (int64, error) {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM offboarding_processes
    WHERE id = ANY($1::uuid[])
  `, processIDs)
	return tag.RowsAffected(), storeErr("delete offboarding processes", err)
}
