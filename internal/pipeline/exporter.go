package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/dre_robot/internal/domain"
)

// ExportCSV writes records with a header line. Raw cell data is left out.
func ExportCSV(w io.Writer, records []*domain.Record) error {
	writer := csv.NewWriter(w)
	enc := csvutil.NewEncoder(writer)

	if len(records) == 0 {
		if err := enc.EncodeHeader(domain.Record{}); err != nil {
			return fmt.Errorf("failed to encode header: %w", err)
		}
	}

	for i, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record #%d: %w", i+1, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	return nil
}
