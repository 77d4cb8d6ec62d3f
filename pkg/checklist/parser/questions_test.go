package parser

import (
	"path/filepath"
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestExtractQuestions(t *testing.T) {
	// Create a temporary template for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "F16", "Outside the range.")
	f.SetCellValue(sheetName, "F17", "PERSONAL")
	f.SetCellValue(sheetName, "F18", "Empleado llega puntual.")
	f.SetCellValue(sheetName, "F19", "  Uniforme completo.  ")
	f.SetCellValue(sheetName, "F20", "CALIDAD")
	f.SetCellValue(sheetName, "F21", 42)
	f.SetCellValue(sheetName, "F22", "   ")
	f.SetCellValue(sheetName, "F24", "¿Vitrinas limpias?")
	f.SetCellValue(sheetName, "G18", "Other column.")

	tmpFile := filepath.Join(t.TempDir(), "template.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	rng, err := ParseRange("F17:F30")
	if err != nil {
		t.Fatalf("ParseRange failed: %v", err)
	}

	questions, err := ExtractQuestions(f2, sheetName, rng)
	if err != nil {
		t.Fatalf("ExtractQuestions failed: %v", err)
	}

	expected := []models.Question{
		{Index: 0, SourceRow: 18, Text: "Empleado llega puntual."},
		{Index: 1, SourceRow: 19, Text: "Uniforme completo."},
		{Index: 2, SourceRow: 24, Text: "¿Vitrinas limpias?"},
	}
	if diff := cmp.Diff(expected, questions); diff != "" {
		t.Errorf("ExtractQuestions mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractQuestionsHeadersOnly(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "F17", "PERSONAL")
	f.SetCellValue("Sheet1", "F18", "CALIDAD")

	questions, err := ExtractQuestions(f, "Sheet1", CellRange{R1: 17, C1: 6, R2: 20, C2: 6})
	if err != nil {
		t.Fatalf("ExtractQuestions failed: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("Expected no questions, got %d", len(questions))
	}
}

func TestExtractQuestionsRejectsWideRange(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := ExtractQuestions(f, "Sheet1", CellRange{R1: 1, C1: 1, R2: 5, C2: 2})
	if err == nil {
		t.Fatalf("expected error for multi-column range")
	}
}
