package store

import (
	"context"
	"time"

	"github.com/unkn0wn-root/paystore"
)

func (s *Store) InsertProcess(ctx context.Context, process *paystore.ProcessTracker) (*paystore.ProcessTracker, error) {
	query := `INSERT INTO process_tracker
        (process_id, name, tag, runner, retry_count, schedule_time, status, business_data)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at, updated_at`

	out := *process
	err := s.db.QueryRowContext(ctx, query,
		process.ProcessID, process.Name, process.Tag, process.Runner,
		process.RetryCount, process.ScheduleTime, process.Status, process.BusinessData,
	).Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, mapErr(err, "insert process")
	}
	return &out, nil
}

func (s *Store) FindProcessByID(ctx context.Context, processID string) (*paystore.ProcessTracker, error) {
	query := `SELECT process_id, name, tag, runner, retry_count, schedule_time, status, business_data, created_at, updated_at
        FROM process_tracker WHERE process_id = $1`

	p := &paystore.ProcessTracker{}
	err := s.db.QueryRowContext(ctx, query, processID).Scan(
		&p.ProcessID, &p.Name, &p.Tag, &p.Runner, &p.RetryCount,
		&p.ScheduleTime, &p.Status, &p.BusinessData, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err, "find process")
	}
	return p, nil
}

func (s *Store) UpdateProcessStatus(ctx context.Context, processID string, status paystore.ProcessStatus) (*paystore.ProcessTracker, error) {
	query := `UPDATE process_tracker SET status = $2, updated_at = now()
        WHERE process_id = $1
        RETURNING process_id, name, tag, runner, retry_count, schedule_time, status, business_data, created_at, updated_at`

	p := &paystore.ProcessTracker{}
	err := s.db.QueryRowContext(ctx, query, processID, status).Scan(
		&p.ProcessID, &p.Name, &p.Tag, &p.Runner, &p.RetryCount,
		&p.ScheduleTime, &p.Status, &p.BusinessData, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err, "update process status")
	}
	return p, nil
}

func (s *Store) FindProcessesDueBefore(ctx context.Context, t time.Time, limit int) ([]*paystore.ProcessTracker, error) {
	query := `SELECT process_id, name, tag, runner, retry_count, schedule_time, status, business_data, created_at, updated_at
        FROM process_tracker
        WHERE schedule_time <= $1 AND status IN ('new', 'pending')
        ORDER BY schedule_time LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, t, limit)
	if err != nil {
		return nil, mapErr(err, "find due processes")
	}
	defer rows.Close()

	var out []*paystore.ProcessTracker
	for rows.Next() {
		p := &paystore.ProcessTracker{}
		if err := rows.Scan(
			&p.ProcessID, &p.Name, &p.Tag, &p.Runner, &p.RetryCount,
			&p.ScheduleTime, &p.Status, &p.BusinessData, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, mapErr(err, "find due processes")
		}
		out = append(out, p)
	}
	return out, mapErr(rows.Err(), "find due processes")
}
