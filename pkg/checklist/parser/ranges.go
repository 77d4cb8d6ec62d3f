// Package parser reads checklist structure out of spreadsheet templates.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrInvalidRange indicates a cell range reference could not be parsed.
var ErrInvalidRange = errors.New("invalid cell range")

// CellRange represents cell coordinate bounds.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int
	// C1 is the start column (1-based).
	C1 int
	// R2 is the end row (1-based, inclusive).
	R2 int
	// C2 is the end column (1-based, inclusive).
	C2 int
}

// ParseRange parses a range string like F17:F178, $F$17:$F$178 or
// 'Sheet 1'!F17:F178. The sheet prefix, if any, is ignored.
func ParseRange(ref string) (CellRange, error) {
	rangeStr := strings.TrimSpace(ref)
	if idx := strings.LastIndex(rangeStr, "!"); idx >= 0 {
		rangeStr = rangeStr[idx+1:]
	}
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return CellRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return CellRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return CellRange{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, nil
}

// SingleColumn reports whether the range spans exactly one column.
func (r CellRange) SingleColumn() bool {
	return r.C1 == r.C2
}

// Rows returns the number of rows covered by the range.
func (r CellRange) Rows() int {
	return r.R2 - r.R1 + 1
}

func (r CellRange) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}

// CellAt joins a column name such as "B" with a row number.
func CellAt(col string, row int) (string, error) {
	return excelize.JoinCellName(strings.ToUpper(strings.TrimSpace(col)), row)
}

// OffsetRow returns the cell n rows below cell, keeping its column.
func OffsetRow(cell string, n int) (string, error) {
	col, row, err := excelize.SplitCellName(cell)
	if err != nil {
		return "", err
	}
	return excelize.JoinCellName(col, row+n)
}
