package domain

import (
	"strconv"
	"strings"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

func (c Cell) IsEmpty() bool {
	switch c.Kind {
	case CellNumber:
		return false
	case CellText:
		return strings.TrimSpace(c.Text) == ""
	default:
		return true
	}
}

func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return c.Text
	default:
		return ""
	}
}

// RawRow is a spreadsheet row. Columns 0-3 hold situation, grouping, code and name,
// columns 4-15 hold the twelve month values.
type RawRow []Cell

func (r RawRow) Cell(col int) Cell {
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}
