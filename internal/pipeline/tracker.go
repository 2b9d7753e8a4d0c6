package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/dre_robot/internal/domain"
)

// Outcome is the result of a best-effort step. It is logged where it happens
// and never changes the control flow of a run.
type Outcome struct {
	Step string
	Err  error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

type Tracker struct {
	log   *slog.Logger
	store ExecutionStore
	now   func() time.Time
}

func NewTracker(log *slog.Logger, store ExecutionStore, now func() time.Time) *Tracker {
	return &Tracker{
		log:   log,
		store: store,
		now:   now,
	}
}

// Start records the beginning of a run. A run must not proceed without it.
func (t *Tracker) Start(ctx context.Context, run domain.Run) error {
	err := t.store.CreateExecution(ctx, &domain.Execution{
		ID:        run.ExecutionID,
		Status:    domain.StatusRunning,
		Phase:     domain.PhaseDownloading,
		BatchID:   run.BatchID,
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create execution record: %w", domain.ErrPersistence, err)
	}

	t.log.InfoContext(ctx, "execution record created")

	return nil
}

// SetPhase moves the execution to phase, writing any extra fields set in update.
func (t *Tracker) SetPhase(ctx context.Context, run domain.Run, phase domain.Phase, update domain.ExecutionUpdate) Outcome {
	update.Phase = &phase

	return t.update(ctx, run, "phase "+string(phase), update)
}

func (t *Tracker) Finish(ctx context.Context, run domain.Run, success bool, processed, failed int) Outcome {
	status, phase := domain.StatusCompleted, domain.PhaseCompleted
	if !success {
		status, phase = domain.StatusFailed, domain.PhaseFailed
	}
	completedAt := t.now()

	return t.update(ctx, run, "finish", domain.ExecutionUpdate{
		Status:           &status,
		Phase:            &phase,
		CompletedAt:      &completedAt,
		RecordsProcessed: &processed,
		RecordsFailed:    &failed,
	})
}

func (t *Tracker) update(ctx context.Context, run domain.Run, step string, update domain.ExecutionUpdate) Outcome {
	outcome := Outcome{Step: step}

	if err := t.store.UpdateExecution(ctx, run.ExecutionID, update); err != nil {
		outcome.Err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		t.log.WarnContext(ctx, "failed to update execution record",
			slog.String("step", step),
			slog.String("err", err.Error()),
		)
		return outcome
	}

	t.log.DebugContext(ctx, "execution record updated", slog.String("step", step))

	return outcome
}
