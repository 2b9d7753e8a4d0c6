package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// BatchPrefix marks every batch written by the robot.
	BatchPrefix = "HITSS_AUTO_"

	ProjectReference = "HITSS_AUTO"
)

// Run identifies a single robot execution. It is created once and passed by value.
type Run struct {
	ExecutionID string
	BatchID     string
	FileName    string
	Year        int
	StartedAt   time.Time
}

func NewRun(now time.Time) Run {
	return Run{
		ExecutionID: uuid.NewString(),
		BatchID:     fmt.Sprintf("%s%d", BatchPrefix, now.UnixMilli()),
		FileName:    fmt.Sprintf("hitss_auto_%s.xlsx", now.Format(time.DateOnly)),
		Year:        now.Year(),
		StartedAt:   now,
	}
}

func (r Run) IsAutomationBatch() bool {
	return strings.HasPrefix(r.BatchID, BatchPrefix)
}
