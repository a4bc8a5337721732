package retention

import (
	"context"
	"time"

	"hrm-retention/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

func (s *Store) RecordRun(ctx context.Context, startedAt time.Time) (string, error) {
	var runID string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO retention_runs (status, started_at)
    VALUES ($1, $2)
    RETURNING id
  `, RunStatusRunning, startedAt).Scan(&runID); err != nil {
		return "", storeErr("record run", err)
	}
	return runID, nil
}

func (s *Store) FinalizeRun(ctx context.Context, runID, status string, detailsJSON []byte) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE retention_runs
    SET status = $1, details_json = $2, completed_at = now()
    WHERE id = $3
  `, status, detailsJSON, runID)
	return storeErr("finalize run", err)
}
