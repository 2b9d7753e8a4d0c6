package postgresql

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/dre_robot/internal/domain"
)

const TableRecords = "dre_hitss"

// recordsLockKey is the advisory lock serializing robot writes to TableRecords.
const recordsLockKey int64 = 0x445245484954

type RecordsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewRecordsRepository(pool *pgxpool.Pool) *RecordsRepository {
	return &RecordsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// LockRecords takes a transaction-scoped advisory lock. It must run inside a transaction.
func (r *RecordsRepository) LockRecords(ctx context.Context) error {
	tx, ok := ctx.Value(ctxKey{}).(pgx.Tx)
	if !ok {
		return errors.New("records lock requires a transaction")
	}

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", recordsLockKey); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *RecordsRepository) DeleteRecords(ctx context.Context, batchPattern string, exact bool) (int64, error) {
	db := extractDB(ctx, r.pool)

	var where sq.Sqlizer = sq.Like{"upload_batch_id": batchPattern}
	if exact {
		where = sq.Eq{"upload_batch_id": batchPattern}
	}

	sql, args, err := r.qb.
		Delete(TableRecords).
		Where(where).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *RecordsRepository) SaveRecords(ctx context.Context, records []*domain.Record) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableRecords}, []string{
		"upload_batch_id",
		"file_name",
		"tipo",
		"natureza",
		"descricao",
		"valor",
		"data",
		"categoria",
		"observacao",
		"lancamento",
		"projeto",
		"periodo",
		"denominacao_conta",
		"conta_resumo",
		"linha_negocio",
		"relatorio",
		"raw_data",
	}, pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		amount := records[i].Amount.String()

		return []any{
			records[i].BatchID,
			records[i].FileName,
			string(records[i].Type),
			string(records[i].Nature),
			records[i].Description,
			amount,
			records[i].Period,
			records[i].Category,
			nil,
			amount,
			records[i].Project,
			records[i].Period,
			records[i].AccountName,
			records[i].AccountCode,
			records[i].BusinessLine,
			records[i].Report,
			records[i].RawData,
		}, nil
	}))
	if err != nil {
		return copyRowsError(TableRecords, err)
	}

	if copied != int64(len(records)) {
		return copyRowsError(TableRecords, fmt.Errorf("copied %d rows, expected %d", copied, len(records)))
	}

	return nil
}
