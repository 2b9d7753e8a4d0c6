package domain

import "time"

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Phase string

const (
	PhaseDownloading Phase = "downloading"
	PhaseProcessing  Phase = "processing"
	PhaseInserting   Phase = "inserting"
	PhaseCompleted   Phase = "completed"
	PhaseFailed      Phase = "failed"
)

type Execution struct {
	ID               string     `db:"id"                json:"id"`
	Status           Status     `db:"status"            json:"status"`
	Phase            Phase      `db:"phase"             json:"phase"`
	BatchID          string     `db:"batch_id"          json:"batch_id"`
	StartedAt        time.Time  `db:"started_at"        json:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"      json:"completed_at,omitempty"`
	RecordsProcessed int        `db:"records_processed" json:"records_processed"`
	RecordsFailed    int        `db:"records_failed"    json:"records_failed"`
}

// ExecutionUpdate holds the fields to change on an execution. Nil fields are left untouched.
type ExecutionUpdate struct {
	Status           *Status
	Phase            *Phase
	CompletedAt      *time.Time
	RecordsProcessed *int
	RecordsFailed    *int
}

func (u ExecutionUpdate) Empty() bool {
	return u.Status == nil &&
		u.Phase == nil &&
		u.CompletedAt == nil &&
		u.RecordsProcessed == nil &&
		u.RecordsFailed == nil
}
