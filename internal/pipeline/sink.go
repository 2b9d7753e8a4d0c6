package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/dre_robot/internal/domain"
)

const DefaultChunkSize = 100

type Sink struct {
	log        *slog.Logger
	records    RecordsStore
	transactor Transactor
	scope      domain.CleanupScope
	chunkSize  int
}

func NewSink(
	log *slog.Logger,
	records RecordsStore,
	transactor Transactor,
	scope domain.CleanupScope,
	chunkSize int,
) *Sink {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Sink{
		log:        log,
		records:    records,
		transactor: transactor,
		scope:      scope,
		chunkSize:  chunkSize,
	}
}

// Write replaces previous automation records with records. Cleanup is best-effort,
// inserts are not: the first failing chunk rolls the whole write back.
//
// With CleanupPrefix the delete wipes every robot batch, not just this run's one.
// Two runs doing that concurrently used to race, so the write holds an advisory
// lock for the length of its transaction.
func (s *Sink) Write(ctx context.Context, run domain.Run, records []*domain.Record) (inserted int, err error) {
	if len(records) == 0 {
		s.log.InfoContext(ctx, "no records to write")
		return 0, nil
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.records.LockRecords(ctx); err != nil {
			return fmt.Errorf("failed to lock records: %w", err)
		}

		s.cleanup(ctx, run)

		for start := 0; start < len(records); start += s.chunkSize {
			chunk := records[start:min(start+s.chunkSize, len(records))]
			number := start/s.chunkSize + 1

			if err := s.records.SaveRecords(ctx, chunk); err != nil {
				s.log.ErrorContext(ctx, "failed to insert chunk",
					slog.Int("chunk", number),
					slog.String("err", err.Error()),
				)
				return fmt.Errorf("failed to insert chunk %d: %w", number, err)
			}

			inserted += len(chunk)
			s.log.DebugContext(ctx, "chunk inserted",
				slog.Int("chunk", number),
				slog.Int("records", len(chunk)),
			)
		}

		return nil
	})
	if err != nil {
		return inserted, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.log.InfoContext(ctx, "records written", slog.Int("inserted", inserted))

	return inserted, nil
}

func (s *Sink) cleanup(ctx context.Context, run domain.Run) Outcome {
	outcome := Outcome{Step: "cleanup"}

	// prefix cleanup runs only for batches carrying the robot prefix
	if s.scope == domain.CleanupPrefix && !run.IsAutomationBatch() {
		outcome.Err = fmt.Errorf("batch %q is not an automation batch, prefix cleanup refused", run.BatchID)
		s.log.WarnContext(ctx, "skipping removal of previous records",
			slog.String("batch_id", run.BatchID),
			slog.String("err", outcome.Err.Error()),
		)
		return outcome
	}

	pattern, exact := s.scope.Pattern(run)

	// nested transaction: a failed delete rolls back to a savepoint only
	outcome.Err = s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		deleted, err := s.records.DeleteRecords(ctx, pattern, exact)
		if err != nil {
			return err
		}

		s.log.InfoContext(ctx, "previous records removed",
			slog.String("scope", string(s.scope)),
			slog.Int64("deleted", deleted),
		)

		return nil
	})

	if outcome.Err != nil {
		s.log.WarnContext(ctx, "failed to remove previous records",
			slog.String("scope", string(s.scope)),
			slog.String("err", outcome.Err.Error()),
		)
	}

	return outcome
}
