package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/dre_robot/internal/domain"
)

const TableExecutions = "automation_executions"

var executionColumns = []string{
	"id",
	"status",
	"phase",
	"batch_id",
	"started_at",
	"completed_at",
	"records_processed",
	"records_failed",
}

type ExecutionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewExecutionsRepository(pool *pgxpool.Pool) *ExecutionsRepository {
	return &ExecutionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ExecutionsRepository) CreateExecution(ctx context.Context, execution *domain.Execution) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableExecutions).
		Columns(
			"id",
			"status",
			"phase",
			"batch_id",
			"started_at",
		).
		Values(
			execution.ID,
			execution.Status,
			execution.Phase,
			execution.BatchID,
			execution.StartedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *ExecutionsRepository) UpdateExecution(ctx context.Context, id string, update domain.ExecutionUpdate) error {
	if update.Empty() {
		return nil
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableExecutions).
		SetMap(updateColumns(update)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrExecutionNotFound
	}

	return nil
}

func updateColumns(update domain.ExecutionUpdate) map[string]any {
	columns := make(map[string]any)

	if update.Status != nil {
		columns["status"] = *update.Status
	}
	if update.Phase != nil {
		columns["phase"] = *update.Phase
	}
	if update.CompletedAt != nil {
		columns["completed_at"] = *update.CompletedAt
	}
	if update.RecordsProcessed != nil {
		columns["records_processed"] = *update.RecordsProcessed
	}
	if update.RecordsFailed != nil {
		columns["records_failed"] = *update.RecordsFailed
	}

	return columns
}

func (r *ExecutionsRepository) Executions(ctx context.Context, limit, offset uint64) ([]*domain.Execution, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableExecutions).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(executionColumns...).
		From(TableExecutions).
		OrderBy("started_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	executions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Execution])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return executions, total, nil
}

func (r *ExecutionsRepository) ExecutionByID(ctx context.Context, id string) (*domain.Execution, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(executionColumns...).
		From(TableExecutions).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	execution, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Execution])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExecutionNotFound
		}
		return nil, collectRowsError(err)
	}

	return execution, nil
}
