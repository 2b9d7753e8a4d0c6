package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/dre_robot/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reportGenerator ReportGenerator
}

func NewReporter(log *slog.Logger, outputDir string, reportGenerator ReportGenerator) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reportGenerator: reportGenerator,
	}
}

// Report renders the run summary into <outputDir>/<batch id>.pdf.
func (r *Reporter) Report(ctx context.Context, run domain.Run, records []*domain.Record) Outcome {
	outcome := Outcome{Step: "report"}

	if len(records) == 0 {
		r.log.DebugContext(ctx, "no records, skipping report")
		return outcome
	}

	path := filepath.Join(r.outputDir, run.BatchID+".pdf")

	log := r.log.With(
		slog.String("path", path),
		slog.Int("records_count", len(records)),
	)

	if err := r.reportGenerator.GenerateReport(path, run, records); err != nil {
		outcome.Err = fmt.Errorf("batch %s: %w", run.BatchID, err)
		log.WarnContext(ctx, "failed to generate report", slog.String("err", outcome.Err.Error()))
		return outcome
	}

	log.InfoContext(ctx, "report generated")

	return outcome
}
