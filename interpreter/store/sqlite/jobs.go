package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/frobware/go-xdna"
	"github.com/frobware/go-xdna/job"
)

// SaveJob inserts a job or updates its state and finish time.
func (s *sqliteStore) SaveJob(ctx context.Context, info job.Info) error {
	var finished sql.NullString
	if !info.FinishedAt.IsZero() {
		finished = sql.NullString{String: info.FinishedAt.UTC().Format(time.RFC3339Nano), Valid: true}
	}
	start := time.Now()
	_, err := s.stmts.saveJob.ExecContext(ctx,
		info.Context, info.Seq, info.Opcode, info.CUIndex, info.State,
		info.SubmittedAt.UTC().Format(time.RFC3339Nano), finished)
	s.logSQL("SaveJob", start, err, info.Context, info.Seq, info.State)
	if err != nil {
		return fmt.Errorf("save job %d/%d: %w", info.Context, info.Seq, err)
	}
	return nil
}

// ListJobs returns the recorded jobs of a context in sequence order.
func (s *sqliteStore) ListJobs(ctx context.Context, id xdna.ContextID) ([]job.Info, error) {
	start := time.Now()
	rows, err := s.stmts.listJobs.QueryContext(ctx, id)
	if err != nil {
		s.logSQL("ListJobs", start, err, id)
		return nil, err
	}
	defer rows.Close()

	var out []job.Info
	for rows.Next() {
		var (
			info      job.Info
			submitted string
			finished  sql.NullString
		)
		if err := rows.Scan(&info.Context, &info.Seq, &info.Opcode, &info.CUIndex, &info.State, &submitted, &finished); err != nil {
			return nil, err
		}
		if info.SubmittedAt, err = time.Parse(time.RFC3339Nano, submitted); err != nil {
			return nil, fmt.Errorf("job %d/%d: parse submitted_at: %w", info.Context, info.Seq, err)
		}
		if finished.Valid {
			if info.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
				return nil, fmt.Errorf("job %d/%d: parse finished_at: %w", info.Context, info.Seq, err)
			}
		}
		out = append(out, info)
	}
	err = rows.Err()
	s.logSQL("ListJobs", start, err, id)
	return out, err
}
