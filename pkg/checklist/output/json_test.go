package output

import (
	"strings"
	"testing"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
)

func TestQuestionsToJSON(t *testing.T) {
	questions := []models.Question{
		{Index: 0, SourceRow: 18, Text: "Empleado llega puntual."},
		{Index: 1, Text: "Sin fila."},
	}

	data, err := QuestionsToJSON("plantilla.xlsx", questions, false)
	if err != nil {
		t.Fatalf("QuestionsToJSON failed: %v", err)
	}

	expected := `{"source":"plantilla.xlsx","count":2,"questions":[{"index":0,"source_row":18,"text":"Empleado llega puntual."},{"index":1,"text":"Sin fila."}]}`
	if string(data) != expected {
		t.Errorf("QuestionsToJSON = %s, expected %s", data, expected)
	}
}

func TestReportToJSONPretty(t *testing.T) {
	data, err := ReportToJSON(&models.Report{ID: "abc", FileName: "x.xlsx", Warnings: []string{"w"}}, true)
	if err != nil {
		t.Fatalf("ReportToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"id\": \"abc\"") {
		t.Errorf("expected indented output, got %s", data)
	}
}
