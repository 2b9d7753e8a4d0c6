package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/dre_robot/internal/domain"
)

const (
	colSituation = 0
	colGrouping  = 1
	colCode      = 2
	colName      = 3
	minRowCells  = 4
)

type Extractor struct {
	log *slog.Logger
}

func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{log: log}
}

func (e *Extractor) Extract(ctx context.Context, run domain.Run, data []byte) (*domain.Extraction, error) {
	rows, err := DecodeSheet(data)
	if err != nil {
		return nil, err
	}

	e.log.DebugContext(ctx, "spreadsheet decoded", slog.Int("rows", len(rows)))

	return e.ExtractRows(ctx, run, rows)
}

// ExtractRows scans the rows below the month header. Bad cells are counted and skipped.
func (e *Extractor) ExtractRows(ctx context.Context, run domain.Run, rows []domain.RawRow) (*domain.Extraction, error) {
	header, err := LocateHeader(rows)
	if err != nil {
		return nil, err
	}

	e.log.InfoContext(ctx, "month header found",
		slog.Int("row", header.Row+1),
		slog.String("months", strings.Join(header.Months, ", ")),
	)

	extraction := &domain.Extraction{
		HeaderRow: header.Row,
		Months:    header.Months,
	}

	for i := header.Row + 1; i < len(rows); i++ {
		records, failed := e.extractRow(ctx, run, i, rows[i])

		if failed > 0 {
			e.log.WarnContext(ctx, "row has invalid cells",
				slog.Int("row", i),
				slog.Int("failed", failed),
			)
		}

		extraction.Records = append(extraction.Records, records...)
		extraction.Processed += len(records)
		extraction.Failed += failed
	}

	e.log.InfoContext(ctx, "extraction finished",
		slog.Int("processed", extraction.Processed),
		slog.Int("failed", extraction.Failed),
	)

	return extraction, nil
}

func (e *Extractor) extractRow(ctx context.Context, run domain.Run, index int, row domain.RawRow) ([]*domain.Record, int) {
	if len(row) < minRowCells {
		return nil, 0
	}

	code := strings.TrimSpace(row.Cell(colCode).String())
	name := strings.TrimSpace(row.Cell(colName).String())
	// subtotal and spacer rows lack a code or a name; neither is counted as failed
	if code == "" || name == "" {
		return nil, 0
	}

	var (
		records []*domain.Record
		failed  int
	)

	for month, monthName := range monthNames {
		col := firstMonthColumn + month
		cell := row.Cell(col)

		if cell.IsEmpty() || (cell.Kind == domain.CellNumber && cell.Number == 0) {
			continue
		}

		amount, err := ParseAmount(cell)
		if err != nil {
			e.log.DebugContext(ctx, "skipping unparsable cell",
				slog.Int("row", index),
				slog.Int("col", col),
				slog.String("err", err.Error()),
			)
			failed++
			continue
		}

		if amount.IsZero() {
			continue
		}

		record := domain.NewRecord(run, domain.RawData{
			AccountSituation: optionalText(row.Cell(colSituation)),
			AccountGrouping:  optionalText(row.Cell(colGrouping)),
			AccountCode:      code,
			AccountName:      name,
			MonthName:        monthName,
			OriginalAmount:   cell.String(),
			ProjectReference: domain.ProjectReference,
			Year:             run.Year,
			RowIndex:         index,
			ColIndex:         col,
		}, month+1, amount)

		if err := record.Validate(); err != nil {
			e.log.WarnContext(ctx, "skipping invalid record",
				slog.String("err", fmt.Sprintf("row %d col %d: %s", index, col, err)),
			)
			failed++
			continue
		}

		records = append(records, record)
	}

	return records, failed
}

func optionalText(cell domain.Cell) *string {
	if cell.IsEmpty() {
		return nil
	}

	s := strings.TrimSpace(cell.String())
	return &s
}
