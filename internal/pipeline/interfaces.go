package pipeline

import (
	"context"

	"github.com/kurochkinivan/dre_robot/internal/domain"
)

type Downloader interface {
	Download(ctx context.Context) ([]byte, error)
}

type Archiver interface {
	Archive(ctx context.Context, objectName string, data []byte) error
}

type ExecutionStore interface {
	CreateExecution(ctx context.Context, execution *domain.Execution) error
	UpdateExecution(ctx context.Context, id string, update domain.ExecutionUpdate) error
}

type RecordsStore interface {
	LockRecords(ctx context.Context) error
	DeleteRecords(ctx context.Context, batchPattern string, exact bool) (int64, error)
	SaveRecords(ctx context.Context, records []*domain.Record) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, run domain.Run, records []*domain.Record) error
}
