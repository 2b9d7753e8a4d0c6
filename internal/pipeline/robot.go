package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/kurochkinivan/dre_robot/internal/domain"
)

// Robot runs fetch, extract and insert in sequence and keeps the execution record current.
type Robot struct {
	log           *slog.Logger
	tracker       *Tracker
	downloader    Downloader
	extractor     *Extractor
	sink          *Sink
	archiver      Archiver
	archivePrefix string
	reporter      *Reporter
}

type RobotOption func(r *Robot)

// WithArchive uploads every downloaded spreadsheet under prefix.
func WithArchive(archiver Archiver, prefix string) RobotOption {
	return func(r *Robot) {
		r.archiver = archiver
		r.archivePrefix = prefix
	}
}

func WithReporter(reporter *Reporter) RobotOption {
	return func(r *Robot) {
		r.reporter = reporter
	}
}

func NewRobot(
	log *slog.Logger,
	tracker *Tracker,
	downloader Downloader,
	extractor *Extractor,
	sink *Sink,
	opts ...RobotOption,
) *Robot {
	r := &Robot{
		log:        log,
		tracker:    tracker,
		downloader: downloader,
		extractor:  extractor,
		sink:       sink,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes one run. It never returns nil; failures are reported in the result.
func (r *Robot) Run(ctx context.Context, run domain.Run) *domain.Result {
	log := r.log.With(
		slog.String("execution_id", run.ExecutionID),
		slog.String("batch_id", run.BatchID),
	)

	log.InfoContext(ctx, "starting robot run")

	result := &domain.Result{
		ExecutionID: run.ExecutionID,
		BatchID:     run.BatchID,
	}

	err := r.run(ctx, log, run, result)

	// the terminal record is written even when the run was cancelled
	r.tracker.Finish(context.WithoutCancel(ctx), run, err == nil, result.RecordsProcessed, result.RecordsFailed)

	if err != nil {
		result.Message = domain.MessageFailure
		result.Error = err.Error()
		log.ErrorContext(ctx, "robot run failed", slog.String("err", err.Error()))
		return result
	}

	result.Success = true
	result.Message = domain.MessageSuccess
	log.InfoContext(ctx, "robot run finished",
		slog.Int("records_processed", result.RecordsProcessed),
		slog.Int("records_failed", result.RecordsFailed),
		slog.Int("records_inserted", result.RecordsInserted),
	)

	return result
}

func (r *Robot) run(ctx context.Context, log *slog.Logger, run domain.Run, result *domain.Result) error {
	if err := r.tracker.Start(ctx, run); err != nil {
		return err
	}

	r.tracker.SetPhase(ctx, run, domain.PhaseDownloading, domain.ExecutionUpdate{})

	data, err := r.downloader.Download(ctx)
	if err != nil {
		return fmt.Errorf("failed to download spreadsheet: %w", err)
	}

	r.archive(ctx, log, run, data)

	r.tracker.SetPhase(ctx, run, domain.PhaseProcessing, domain.ExecutionUpdate{})

	extraction, err := r.extractor.Extract(ctx, run, data)
	if err != nil {
		return fmt.Errorf("failed to process spreadsheet: %w", err)
	}

	result.RecordsProcessed = extraction.Processed
	result.RecordsFailed = extraction.Failed

	r.tracker.SetPhase(ctx, run, domain.PhaseInserting, domain.ExecutionUpdate{
		RecordsProcessed: &extraction.Processed,
		RecordsFailed:    &extraction.Failed,
	})

	inserted, err := r.sink.Write(ctx, run, extraction.Records)
	if err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}
	result.RecordsInserted = inserted

	if r.reporter != nil {
		r.reporter.Report(ctx, run, extraction.Records)
	}

	return nil
}

func (r *Robot) archive(ctx context.Context, log *slog.Logger, run domain.Run, data []byte) Outcome {
	outcome := Outcome{Step: "archive"}
	if r.archiver == nil {
		return outcome
	}

	objectName := path.Join(r.archivePrefix, run.BatchID+".xlsx")

	if outcome.Err = r.archiver.Archive(ctx, objectName, data); outcome.Err != nil {
		log.WarnContext(ctx, "failed to archive spreadsheet",
			slog.String("object", objectName),
			slog.String("err", outcome.Err.Error()),
		)
		return outcome
	}

	log.InfoContext(ctx, "spreadsheet archived", slog.String("object", objectName))

	return outcome
}
