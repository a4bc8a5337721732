package retention

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"
)

// memoryStore mimics the SQL semantics of Store against in-memory fixtures.
type memoryStore struct {
	auditLogs  []time.Time
	attendance []time.Time
	payroll    []time.Time
	overrides  []time.Time
	processes  []fixtureProcess
	tasks      []fixtureTask
	employees  map[string]*fixtureEmployee

	failOp string
	ops    []string
	runs   []fixtureRun
}

type fixtureProcess struct {
	ID         string
	EmployeeID string
	ExitDate   time.Time
	Status     string
}

type fixtureTask struct {
	ID        string
	ProcessID string
}

type fixtureEmployee struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      *string
	Address          *string
	DateOfBirth      *time.Time
	Gender           *string
	MaritalStatus    *string
	EmergencyContact *string
	EmployeeNumber   string
	Salary           float64
	Status           string
	UserID           *string
}

type fixtureRun struct {
	ID          string
	Status      string
	DetailsJSON []byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{employees: map[string]*fixtureEmployee{}}
}

func (m *memoryStore) fail(op string) error {
	m.ops = append(m.ops, op)
	if m.failOp == op {
		return &StoreError{Op: op, Err: errors.New("store unavailable")}
	}
	return nil
}

func purgeBefore(records []time.Time, cutoff time.Time) ([]time.Time, int64) {
	var kept []time.Time
	var deleted int64
	for _, ts := range records {
		if ts.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, ts)
	}
	return kept, deleted
}

func (m *memoryStore) PurgeAuditLogs(_ context.Context, cutoff time.Time) (int64, error) {
	if err := m.fail("purge audit logs"); err != nil {
		return 0, err
	}
	var deleted int64
	m.auditLogs, deleted = purgeBefore(m.auditLogs, cutoff)
	return deleted, nil
}

func (m *memoryStore) PurgeAttendance(_ context.Context, cutoff time.Time) (int64, error) {
	if err := m.fail("purge attendance"); err != nil {
		return 0, err
	}
	var deleted int64
	m.attendance, deleted = purgeBefore(m.attendance, cutoff)
	return deleted, nil
}

func (m *memoryStore) PurgePayrollRecords(_ context.Context, cutoff time.Time) (int64, error) {
	if err := m.fail("purge payroll records"); err != nil {
		return 0, err
	}
	var deleted int64
	m.payroll, deleted = purgeBefore(m.payroll, cutoff)
	return deleted, nil
}

func (m *memoryStore) PurgePayrollOverrides(_ context.Context, cutoff time.Time) (int64, error) {
	if err := m.fail("purge payroll overrides"); err != nil {
		return 0, err
	}
	var deleted int64
	m.overrides, deleted = purgeBefore(m.overrides, cutoff)
	return deleted, nil
}

func (m *memoryStore) ListExpiredOffboarding(_ context.Context, cutoff time.Time) ([]ProcessRef, error) {
	if err := m.fail("list expired offboarding"); err != nil {
		return nil, err
	}
	var refs []ProcessRef
	for _, p := range m.processes {
		if p.Status == OffboardingStatusCompleted && p.ExitDate.Before(cutoff) {
			refs = append(refs, ProcessRef{ID: p.ID, EmployeeID: p.EmployeeID})
		}
	}
	return refs, nil
}

func (m *memoryStore) AnonymizeEmployee(_ context.Context, employeeID string) error {
	if err := m.fail("anonymize " + employeeID); err != nil {
		return err
	}
	emp, ok := m.employees[employeeID]
	if !ok {
		return nil
	}
	emp.FirstName = RedactedFirstName
	emp.LastName = RedactedLastName
	emp.Email = RedactedEmail(employeeID)
	emp.PhoneNumber = nil
	emp.Address = nil
	emp.DateOfBirth = nil
	emp.Gender = nil
	emp.MaritalStatus = nil
	emp.EmergencyContact = nil
	emp.EmployeeNumber = RedactedEmployeeNumber(employeeID)
	emp.Salary = 0
	emp.Status = EmployeeStatusInactive
	emp.UserID = nil
	return nil
}

func (m *memoryStore) DeleteOffboardingTasks(_ context.Context, processIDs []string) (int64, error) {
	if err := m.fail("delete offboarding tasks"); err != nil {
		return 0, err
	}
	var kept []fixtureTask
	var deleted int64
	for _, task := range m.tasks {
		if slices.Contains(processIDs, task.ProcessID) {
			deleted++
			continue
		}
		kept = append(kept, task)
	}
	m.tasks = kept
	return deleted, nil
}

func (m *memoryStore) DeleteOffboardingProcesses(_ context.Context, processIDs []string) (int64, error) {
	if err := m.fail("delete offboarding processes"); err != nil {
		return 0, err
	}
	var kept []fixtureProcess
	var deleted int64
	for _, p := range m.processes {
		if slices.Contains(processIDs, p.ID) {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	m.processes = kept
	return deleted, nil
}

func (m *memoryStore) RecordRun(_ context.Context, _ time.Time) (string, error) {
	if err := m.fail("record run"); err != nil {
		return "", err
	}
	run := fixtureRun{ID: fmt.Sprintf("run-%d", len(m.runs)+1), Status: RunStatusRunning}
	m.runs = append(m.runs, run)
	return run.ID, nil
}

func (m *memoryStore) FinalizeRun(_ context.Context, runID, status string, detailsJSON []byte) error {
	if err := m.fail("finalize run"); err != nil {
		return err
	}
	for i := range m.runs {
		if m.runs[i].ID == runID {
			m.runs[i].Status = status
			m.runs[i].DetailsJSON = detailsJSON
		}
	}
	return nil
}
