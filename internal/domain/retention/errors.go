package retention

import "fmt"

// StoreError marks a failure reaching the backing store. It is never
// retried here; the run aborts and the scheduler re-invokes the whole job.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// RunError is what the coordinator surfaces: the failing phase plus the
// underlying cause.
type RunError struct {
	Phase string
	Err   error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("retention run failed during %s: %v", e.Phase, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
