package paystore

import (
	"context"
	"time"
)

type ProcessStatus string

const (
	ProcessNew        ProcessStatus = "new"
	ProcessPending    ProcessStatus = "pending"
	ProcessProcessing ProcessStatus = "processing"
	ProcessFinished   ProcessStatus = "finished"
	ProcessFailed     ProcessStatus = "failed"
)

// ProcessTracker is the scheduler's work ledger: one row per deferred job
// (payment sync, webhook retry, mandate expiry). Workers claim rows due for
// execution; retry policy lives with the scheduler, not here.
type ProcessTracker struct {
	ProcessID    string
	Name         string
	Tag          string
	Runner       string
	RetryCount   int
	ScheduleTime time.Time
	Status       ProcessStatus
	BusinessData []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProcessTrackerInterface interface {
	InsertProcess(ctx context.Context, process *ProcessTracker) (*ProcessTracker, error)
	FindProcessByID(ctx context.Context, processID string) (*ProcessTracker, error)
	UpdateProcessStatus(ctx context.Context, processID string, status ProcessStatus) (*ProcessTracker, error)

	// FindProcessesDueBefore returns up to limit jobs scheduled at or before t
	// that are still new or pending, ordered by schedule time.
	FindProcessesDueBefore(ctx context.Context, t time.Time, limit int) ([]*ProcessTracker, error)
}
