package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kurochkinivan/dre_robot/internal/domain"
	"github.com/shopspring/decimal"
)

var nonAmountChars = regexp.MustCompile(`[^0-9.,-]+`)

var errEmptyAmount = errors.New("empty amount")

// ParseAmount reads a cell as money. Text uses the Brazilian convention: dot groups
// thousands and comma separates decimals, so "1.234,56" is 1234.56.
func ParseAmount(cell domain.Cell) (decimal.Decimal, error) {
	switch cell.Kind {
	case domain.CellNumber:
		return decimal.NewFromFloat(cell.Number), nil
	case domain.CellText:
		return parseBRL(cell.Text)
	default:
		return decimal.Zero, errEmptyAmount
	}
}

func parseBRL(s string) (decimal.Decimal, error) {
	cleaned := nonAmountChars.ReplaceAllString(s, "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: no digits in %q", domain.ErrParse, s)
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q: %w", domain.ErrParse, s, err)
	}

	return amount, nil
}
