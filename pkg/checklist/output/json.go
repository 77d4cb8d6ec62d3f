// Package output serializes checklist data for the command line.
package output

import (
	"encoding/json"

	"github.com/dannyyo/checklist-go/pkg/checklist/models"
)

// QuestionList is the JSON document printed by the questions command.
type QuestionList struct {
	Source    string            `json:"source"`
	Count     int               `json:"count"`
	Questions []models.Question `json:"questions"`
}

// QuestionsToJSON serializes questions read from source.
func QuestionsToJSON(source string, questions []models.Question, pretty bool) ([]byte, error) {
	return marshal(QuestionList{
		Source:    source,
		Count:     len(questions),
		Questions: questions,
	}, pretty)
}

// ReportToJSON serializes a generated report summary.
func ReportToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
