package parser

import (
	"fmt"
	"strings"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/xuri/excelize/v2"
)

// ExtractQuestions scans a single-column range of a sheet and returns the
// question rows in order. Empty cells, non-text cells and section headers
// are skipped. An empty result is not an error here; callers decide.
func ExtractQuestions(f *excelize.File, sheetName string, rng CellRange) ([]models.Question, error) {
	if !rng.SingleColumn() {
		return nil, fmt.Errorf("%w: question range %s must span one column", ErrInvalidRange, rng)
	}

	var result []models.Question
	for row := rng.R1; row <= rng.R2; row++ {
		cellName, err := excelize.CoordinatesToCellName(rng.C1, row)
		if err != nil {
			return nil, err
		}

		text, ok, err := textCell(f, sheetName, cellName)
		if err != nil {
			return nil, err
		}
		if !ok || text == "" {
			continue
		}
		if IsSectionHeader(text) {
			continue
		}

		result = append(result, models.Question{
			Index:     len(result),
			SourceRow: row,
			Text:      text,
		})
	}

	return result, nil
}

// textCell returns the trimmed value of a string cell. ok is false for
// numbers, booleans, dates, formulas and unset cells.
func textCell(f *excelize.File, sheetName, cellName string) (string, bool, error) {
	cellType, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return "", false, err
	}
	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
	default:
		return "", false, nil
	}

	value, err := f.GetCellValue(sheetName, cellName)
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(value), true, nil
}
