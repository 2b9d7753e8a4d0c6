package domain

import "fmt"

// CleanupScope selects which previously inserted records are removed before an insert.
type CleanupScope string

const (
	// CleanupPrefix removes every batch written by the robot.
	CleanupPrefix CleanupScope = "prefix"
	// CleanupBatch removes only records of the current batch.
	CleanupBatch CleanupScope = "batch"
)

func ParseCleanupScope(s string) (CleanupScope, error) {
	switch scope := CleanupScope(s); scope {
	case CleanupPrefix, CleanupBatch:
		return scope, nil
	default:
		return "", fmt.Errorf("unknown cleanup scope %q", s)
	}
}

// Pattern returns the batch id pattern to delete for the given run.
func (s CleanupScope) Pattern(run Run) (pattern string, exact bool) {
	if s == CleanupBatch {
		return run.BatchID, true
	}
	return BatchPrefix + "%", false
}
