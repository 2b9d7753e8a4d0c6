package pipeline

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kurochkinivan/dre_robot/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	headerScanRows   = 11
	headerMinMonths  = 3
	firstMonthColumn = 4
)

var monthNames = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

type Header struct {
	Row    int
	Months []string
}

// LocateHeader returns the first row among the leading rows that mentions at least three months.
func LocateHeader(rows []domain.RawRow) (Header, error) {
	limit := min(headerScanRows, len(rows))

	for i := range limit {
		text := foldHeader(joinCells(rows[i]))

		var months []string
		for _, month := range monthNames {
			if strings.Contains(text, foldHeader(month)) {
				months = append(months, month)
			}
		}

		if len(months) >= headerMinMonths {
			return Header{Row: i, Months: months}, nil
		}
	}

	return Header{}, fmt.Errorf("%w in the first %d rows", domain.ErrHeaderNotFound, limit)
}

func joinCells(row domain.RawRow) string {
	values := make([]string, 0, len(row))
	for _, cell := range row {
		if cell.IsEmpty() {
			continue
		}
		values = append(values, cell.String())
	}

	return strings.Join(values, " ")
}

func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	return cases.Fold().String(stripped)
}
