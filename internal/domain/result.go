package domain

const (
	MessageSuccess = "HITSS robot finished successfully"
	MessageFailure = "HITSS robot failed"
)

// Result is the summary printed at the end of a run.
type Result struct {
	Success          bool   `json:"success"`
	ExecutionID      string `json:"execution_id"`
	BatchID          string `json:"batch_id"`
	RecordsProcessed int    `json:"records_processed"`
	RecordsFailed    int    `json:"records_failed"`
	RecordsInserted  int    `json:"records_inserted"`
	Message          string `json:"message"`
	Error            string `json:"error,omitempty"`
}

// NewFailedResult reports a run that could not get past its preconditions.
func NewFailedResult(run Run, err error) *Result {
	return &Result{
		ExecutionID: run.ExecutionID,
		BatchID:     run.BatchID,
		Message:     MessageFailure,
		Error:       err.Error(),
	}
}

// Extraction is the output of scanning a spreadsheet.
type Extraction struct {
	Records   []*Record
	HeaderRow int
	Months    []string
	Processed int
	Failed    int
}
