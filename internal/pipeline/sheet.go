package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kurochkinivan/dre_robot/internal/domain"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// DecodeSheet reads the first sheet of an xlsx workbook, falling back to the legacy xls format.
func DecodeSheet(data []byte) ([]domain.RawRow, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty spreadsheet", domain.ErrParse)
	}

	rows, xlsxErr := decodeXLSX(data)
	if xlsxErr == nil {
		return rows, nil
	}

	rows, xlsErr := decodeXLS(data)
	if xlsErr == nil {
		return rows, nil
	}

	return nil, fmt.Errorf("%w: failed to read spreadsheet: %w", domain.ErrParse, errors.Join(xlsxErr, xlsErr))
}

func decodeXLSX(data []byte) (_ []domain.RawRow, err error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx: workbook has no sheets")
	}
	sheet := sheets[0]

	values, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: failed to read rows of %q: %w", sheet, err)
	}

	rows := make([]domain.RawRow, 0, len(values))
	for r, row := range values {
		cells := make(domain.RawRow, len(row))

		for c, value := range row {
			if value == "" {
				continue
			}

			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("xlsx: %w", err)
			}

			cellType, err := f.GetCellType(sheet, name)
			if err != nil {
				return nil, fmt.Errorf("xlsx: failed to get type of %s: %w", name, err)
			}

			cells[c] = xlsxCell(cellType, value)
		}

		rows = append(rows, cells)
	}

	return rows, nil
}

func xlsxCell(cellType excelize.CellType, value string) domain.Cell {
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
		return domain.TextCell(value)
	}

	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return domain.NumberCell(n)
	}

	return domain.TextCell(value)
}

func decodeXLS(data []byte) ([]domain.RawRow, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("xls: %w", err)
	}

	sheets := workbook.GetSheets()
	if len(sheets) == 0 {
		return nil, errors.New("xls: workbook has no sheets")
	}

	var rows []domain.RawRow
	for _, row := range sheets[0].GetRows() {
		cols := row.GetCols()
		cells := make(domain.RawRow, len(cols))

		for c, col := range cols {
			value := col.GetString()
			if value == "" {
				continue
			}

			// numeric BIFF records are Number, Rk and MulRk
			if t := col.GetType(); strings.Contains(t, "Number") || strings.Contains(t, "Rk") {
				cells[c] = domain.NumberCell(col.GetFloat64())
				continue
			}

			cells[c] = domain.TextCell(value)
		}

		rows = append(rows, cells)
	}

	return rows, nil
}
